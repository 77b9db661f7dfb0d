package runner

import (
	"context"
	"fmt"

	"github.com/ExileLine/exile-ai-test-platform-server/ent"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/assertrule"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/extractrule"
	"github.com/ExileLine/exile-ai-test-platform-server/pkg/assertion"
	"github.com/ExileLine/exile-ai-test-platform-server/pkg/extract"
)

// loadExtractRules lists the enabled extraction rules applying to one
// (request, dataset) execution, ordered by (sort, id). Rules bound to a
// specific dataset apply only when that dataset runs.
func loadExtractRules(ctx context.Context, client *ent.Client, requestID int64, datasetID *int64) ([]extract.Rule, error) {
	q := client.ExtractRule.Query().
		Where(
			extractrule.RequestIDEQ(requestID),
			extractrule.IsDeletedEQ(0),
			extractrule.IsEnabledEQ(true),
		)
	if datasetID != nil {
		q = q.Where(extractrule.Or(
			extractrule.DatasetIDIsNil(),
			extractrule.DatasetIDEQ(*datasetID),
		))
	} else {
		q = q.Where(extractrule.DatasetIDIsNil())
	}

	rules, err := q.
		Order(ent.Asc(extractrule.FieldSort), ent.Asc(extractrule.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing extract rules for request %d: %w", requestID, err)
	}
	return toExtractRules(rules), nil
}

// loadAssertRules lists the enabled assertion rules applying to one
// (request, dataset) execution, ordered by (sort, id).
func loadAssertRules(ctx context.Context, client *ent.Client, requestID int64, datasetID *int64) ([]assertion.Rule, error) {
	q := client.AssertRule.Query().
		Where(
			assertrule.RequestIDEQ(requestID),
			assertrule.IsDeletedEQ(0),
			assertrule.IsEnabledEQ(true),
		)
	if datasetID != nil {
		q = q.Where(assertrule.Or(
			assertrule.DatasetIDIsNil(),
			assertrule.DatasetIDEQ(*datasetID),
		))
	} else {
		q = q.Where(assertrule.DatasetIDIsNil())
	}

	rules, err := q.
		Order(ent.Asc(assertrule.FieldSort), ent.Asc(assertrule.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing assert rules for request %d: %w", requestID, err)
	}
	return toAssertRules(rules), nil
}
