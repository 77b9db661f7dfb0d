package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ExileLine/exile-ai-test-platform-server/ent"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/assertrule"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/dataset"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/extractrule"
	"github.com/ExileLine/exile-ai-test-platform-server/pkg/assertion"
	"github.com/ExileLine/exile-ai-test-platform-server/pkg/extract"
)

var allowedSourceTypes = map[string]bool{
	extract.SourceHeader:    true,
	extract.SourceJSON:      true,
	extract.SourceCookie:    true,
	extract.SourceTextRegex: true,
	extract.SourceStatus:    true,
	extract.SourceSession:   true,
}

var allowedScopes = map[string]bool{
	extract.ScopeStep:     true,
	extract.ScopeScenario: true,
	extract.ScopeGlobal:   true,
}

var allowedAssertTypes = map[string]bool{
	assertion.TypeStatusCode:   true,
	assertion.TypeJSONPath:     true,
	assertion.TypeTextContains: true,
}

var allowedComparators = map[string]bool{
	assertion.CompareEq:          true,
	assertion.CompareNe:          true,
	assertion.CompareContains:    true,
	assertion.CompareNotContains: true,
}

// ExtractRuleInput carries the writable fields of an extraction rule.
type ExtractRuleInput struct {
	RequestID    int64
	DatasetID    *int64
	VarName      string
	SourceType   string
	SourceExpr   string
	DefaultValue json.RawMessage
	Required     *bool
	Scope        string
	IsSecret     *bool
	IsEnabled    *bool
	Sort         *int
}

// AssertRuleInput carries the writable fields of an assertion rule.
type AssertRuleInput struct {
	RequestID     int64
	DatasetID     *int64
	AssertType    string
	SourceExpr    string
	Comparator    string
	ExpectedValue json.RawMessage
	Message       *string
	IsEnabled     *bool
	Sort          *int
}

// RuleService manages extraction and assertion rules of a test case.
type RuleService struct {
	client *ent.Client
	cases  *CaseService
}

// NewRuleService creates a new RuleService.
func NewRuleService(client *ent.Client) *RuleService {
	if client == nil {
		panic("NewRuleService: client must not be nil")
	}
	return &RuleService{client: client, cases: NewCaseService(client)}
}

// CreateExtract stores a new extraction rule.
func (s *RuleService) CreateExtract(ctx context.Context, input ExtractRuleInput) (*ent.ExtractRule, error) {
	if err := s.validateExtractInput(ctx, input); err != nil {
		return nil, err
	}

	builder := s.client.ExtractRule.Create().
		SetRequestID(input.RequestID).
		SetNillableDatasetID(input.DatasetID).
		SetVarName(input.VarName).
		SetSourceType(extractrule.SourceType(input.SourceType)).
		SetSourceExpr(input.SourceExpr).
		SetNillableRequired(input.Required).
		SetNillableIsSecret(input.IsSecret).
		SetNillableIsEnabled(input.IsEnabled).
		SetNillableSort(input.Sort)
	if input.DefaultValue != nil {
		builder.SetDefaultValue(input.DefaultValue)
	}
	if input.Scope != "" {
		builder.SetScope(extractrule.Scope(input.Scope))
	}

	rule, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating extract rule: %w", err)
	}
	return rule, nil
}

// UpdateExtract rewrites an extraction rule.
func (s *RuleService) UpdateExtract(ctx context.Context, id int64, input ExtractRuleInput) (*ent.ExtractRule, error) {
	current, err := s.GetExtract(ctx, id)
	if err != nil {
		return nil, err
	}
	input.RequestID = current.RequestID
	if err := s.validateExtractInput(ctx, input); err != nil {
		return nil, err
	}

	builder := s.client.ExtractRule.UpdateOneID(id).
		SetVarName(input.VarName).
		SetSourceType(extractrule.SourceType(input.SourceType)).
		SetSourceExpr(input.SourceExpr).
		SetNillableRequired(input.Required).
		SetNillableIsSecret(input.IsSecret).
		SetNillableIsEnabled(input.IsEnabled).
		SetNillableSort(input.Sort)
	if input.DatasetID != nil {
		builder.SetDatasetID(*input.DatasetID)
	} else {
		builder.ClearDatasetID()
	}
	if input.DefaultValue != nil {
		builder.SetDefaultValue(input.DefaultValue)
	}
	if input.Scope != "" {
		builder.SetScope(extractrule.Scope(input.Scope))
	}

	rule, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("updating extract rule %d: %w", id, err)
	}
	return rule, nil
}

// DeleteExtract tombstones an extraction rule.
func (s *RuleService) DeleteExtract(ctx context.Context, id, operatorID int64) error {
	if _, err := s.GetExtract(ctx, id); err != nil {
		return err
	}
	err := s.client.ExtractRule.UpdateOneID(id).
		SetIsDeleted(tombstone(operatorID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("deleting extract rule %d: %w", id, err)
	}
	return nil
}

// GetExtract loads a live extraction rule.
func (s *RuleService) GetExtract(ctx context.Context, id int64) (*ent.ExtractRule, error) {
	rule, err := s.client.ExtractRule.Query().
		Where(extractrule.IDEQ(id), extractrule.IsDeletedEQ(0)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: extract rule %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("loading extract rule %d: %w", id, err)
	}
	return rule, nil
}

// CreateAssert stores a new assertion rule.
func (s *RuleService) CreateAssert(ctx context.Context, input AssertRuleInput) (*ent.AssertRule, error) {
	if err := s.validateAssertInput(ctx, input); err != nil {
		return nil, err
	}

	builder := s.client.AssertRule.Create().
		SetRequestID(input.RequestID).
		SetNillableDatasetID(input.DatasetID).
		SetAssertType(assertrule.AssertType(input.AssertType)).
		SetSourceExpr(input.SourceExpr).
		SetNillableMessage(input.Message).
		SetNillableIsEnabled(input.IsEnabled).
		SetNillableSort(input.Sort)
	if input.Comparator != "" {
		builder.SetComparator(assertrule.Comparator(input.Comparator))
	}
	if input.ExpectedValue != nil {
		builder.SetExpectedValue(input.ExpectedValue)
	}

	rule, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating assert rule: %w", err)
	}
	return rule, nil
}

// UpdateAssert rewrites an assertion rule.
func (s *RuleService) UpdateAssert(ctx context.Context, id int64, input AssertRuleInput) (*ent.AssertRule, error) {
	current, err := s.GetAssert(ctx, id)
	if err != nil {
		return nil, err
	}
	input.RequestID = current.RequestID
	if err := s.validateAssertInput(ctx, input); err != nil {
		return nil, err
	}

	builder := s.client.AssertRule.UpdateOneID(id).
		SetAssertType(assertrule.AssertType(input.AssertType)).
		SetSourceExpr(input.SourceExpr).
		SetNillableMessage(input.Message).
		SetNillableIsEnabled(input.IsEnabled).
		SetNillableSort(input.Sort)
	if input.DatasetID != nil {
		builder.SetDatasetID(*input.DatasetID)
	} else {
		builder.ClearDatasetID()
	}
	if input.Comparator != "" {
		builder.SetComparator(assertrule.Comparator(input.Comparator))
	}
	if input.ExpectedValue != nil {
		builder.SetExpectedValue(input.ExpectedValue)
	}

	rule, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("updating assert rule %d: %w", id, err)
	}
	return rule, nil
}

// DeleteAssert tombstones an assertion rule.
func (s *RuleService) DeleteAssert(ctx context.Context, id, operatorID int64) error {
	if _, err := s.GetAssert(ctx, id); err != nil {
		return err
	}
	err := s.client.AssertRule.UpdateOneID(id).
		SetIsDeleted(tombstone(operatorID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("deleting assert rule %d: %w", id, err)
	}
	return nil
}

// GetAssert loads a live assertion rule.
func (s *RuleService) GetAssert(ctx context.Context, id int64) (*ent.AssertRule, error) {
	rule, err := s.client.AssertRule.Query().
		Where(assertrule.IDEQ(id), assertrule.IsDeletedEQ(0)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: assert rule %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("loading assert rule %d: %w", id, err)
	}
	return rule, nil
}

func (s *RuleService) validateExtractInput(ctx context.Context, input ExtractRuleInput) error {
	if input.VarName == "" {
		return NewValidationError("var_name", "var_name is required")
	}
	if !allowedSourceTypes[input.SourceType] {
		return NewValidationError("source_type", fmt.Sprintf("unsupported source type %q", input.SourceType))
	}
	if input.Scope != "" && !allowedScopes[input.Scope] {
		return NewValidationError("scope", fmt.Sprintf("unsupported scope %q", input.Scope))
	}
	return s.checkRuleDataset(ctx, input.RequestID, input.DatasetID)
}

func (s *RuleService) validateAssertInput(ctx context.Context, input AssertRuleInput) error {
	if !allowedAssertTypes[input.AssertType] {
		return NewValidationError("assert_type", fmt.Sprintf("unsupported assert type %q", input.AssertType))
	}
	if input.Comparator != "" && !allowedComparators[input.Comparator] {
		return NewValidationError("comparator", fmt.Sprintf("unsupported comparator %q", input.Comparator))
	}
	return s.checkRuleDataset(ctx, input.RequestID, input.DatasetID)
}

// checkRuleDataset verifies the owning case exists and any dataset binding
// points at one of its live datasets.
func (s *RuleService) checkRuleDataset(ctx context.Context, requestID int64, datasetID *int64) error {
	if _, err := s.cases.Get(ctx, requestID); err != nil {
		return err
	}
	if datasetID == nil {
		return nil
	}
	ds, err := s.client.Dataset.Query().
		Where(dataset.IDEQ(*datasetID), dataset.IsDeletedEQ(0)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("%w: dataset %d", ErrNotFound, *datasetID)
		}
		return fmt.Errorf("loading dataset %d: %w", *datasetID, err)
	}
	if ds.RequestID != requestID {
		return fmt.Errorf("%w: dataset %d does not belong to case %d", ErrInvalidState, *datasetID, requestID)
	}
	return nil
}
