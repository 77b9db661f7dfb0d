// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ApiRequest is the predicate function for apirequest builders.
type ApiRequest func(*sql.Selector)

// AssertRule is the predicate function for assertrule builders.
type AssertRule func(*sql.Selector)

// Dataset is the predicate function for dataset builders.
type Dataset func(*sql.Selector)

// Environment is the predicate function for environment builders.
type Environment func(*sql.Selector)

// ExtractRule is the predicate function for extractrule builders.
type ExtractRule func(*sql.Selector)

// RequestRun is the predicate function for requestrun builders.
type RequestRun func(*sql.Selector)

// RunVariable is the predicate function for runvariable builders.
type RunVariable func(*sql.Selector)

// Scenario is the predicate function for scenario builders.
type Scenario func(*sql.Selector)

// ScenarioCase is the predicate function for scenariocase builders.
type ScenarioCase func(*sql.Selector)

// ScenarioRun is the predicate function for scenariorun builders.
type ScenarioRun func(*sql.Selector)
