package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ExileLine/exile-ai-test-platform-server/ent"
	testdb "github.com/ExileLine/exile-ai-test-platform-server/test/database"
)

func newTestDatasetService(t *testing.T) (*ent.Client, *DatasetService) {
	client := testdb.NewTestClient(t).Client
	return client, NewDatasetService(client)
}

func seedCase(t *testing.T, client *ent.Client) *ent.ApiRequest {
	t.Helper()
	return client.ApiRequest.Create().
		SetName("case").
		SetURL("http://example.test").
		SaveX(context.Background())
}

func TestDatasetSetDefaultIsExclusive(t *testing.T) {
	client, svc := newTestDatasetService(t)
	ctx := context.Background()
	req := seedCase(t, client)

	a, err := svc.Create(ctx, DatasetInput{RequestID: req.ID, Name: "a"})
	require.NoError(t, err)
	b, err := svc.Create(ctx, DatasetInput{RequestID: req.ID, Name: "b"})
	require.NoError(t, err)

	require.NoError(t, svc.SetDefault(ctx, a.ID))
	require.NoError(t, svc.SetDefault(ctx, b.ID))

	assert.False(t, client.Dataset.GetX(ctx, a.ID).IsDefault)
	assert.True(t, client.Dataset.GetX(ctx, b.ID).IsDefault)

	caseRow := client.ApiRequest.GetX(ctx, req.ID)
	require.NotNil(t, caseRow.DefaultDatasetID)
	assert.Equal(t, b.ID, *caseRow.DefaultDatasetID)
}

func TestDatasetDeleteDefaultClearsMirror(t *testing.T) {
	client, svc := newTestDatasetService(t)
	ctx := context.Background()
	req := seedCase(t, client)

	ds, err := svc.Create(ctx, DatasetInput{RequestID: req.ID, Name: "a"})
	require.NoError(t, err)
	require.NoError(t, svc.SetDefault(ctx, ds.ID))

	require.NoError(t, svc.Delete(ctx, ds.ID, 0))

	assert.Nil(t, client.ApiRequest.GetX(ctx, req.ID).DefaultDatasetID)
	assert.NotZero(t, client.Dataset.GetX(ctx, ds.ID).IsDeleted)

	_, err = svc.Get(ctx, ds.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDatasetSetDefaultRejectsDisabled(t *testing.T) {
	client, svc := newTestDatasetService(t)
	ctx := context.Background()
	req := seedCase(t, client)

	disabled := false
	ds, err := svc.Create(ctx, DatasetInput{RequestID: req.ID, Name: "a", IsEnabled: &disabled})
	require.NoError(t, err)

	err = svc.SetDefault(ctx, ds.ID)
	require.ErrorIs(t, err, ErrInvalidState)
}

func TestCaseDeleteCascades(t *testing.T) {
	client, svc := newTestDatasetService(t)
	cases := NewCaseService(client)
	rules := NewRuleService(client)
	ctx := context.Background()
	req := seedCase(t, client)

	ds, err := svc.Create(ctx, DatasetInput{RequestID: req.ID, Name: "a"})
	require.NoError(t, err)
	rule, err := rules.CreateExtract(ctx, ExtractRuleInput{
		RequestID:  req.ID,
		VarName:    "token",
		SourceType: "response_json",
		SourceExpr: "$.token",
	})
	require.NoError(t, err)

	require.NoError(t, cases.Delete(ctx, req.ID, 9))

	assert.Equal(t, int64(9), client.ApiRequest.GetX(ctx, req.ID).IsDeleted)
	assert.Equal(t, int64(9), client.Dataset.GetX(ctx, ds.ID).IsDeleted)
	assert.Equal(t, int64(9), client.ExtractRule.GetX(ctx, rule.ID).IsDeleted)
}

func TestRuleDatasetMismatch(t *testing.T) {
	client, svc := newTestDatasetService(t)
	rules := NewRuleService(client)
	ctx := context.Background()

	req := seedCase(t, client)
	other := client.ApiRequest.Create().SetName("other").SetURL("http://example.test").SaveX(ctx)
	foreign, err := svc.Create(ctx, DatasetInput{RequestID: other.ID, Name: "foreign"})
	require.NoError(t, err)

	_, err = rules.CreateAssert(ctx, AssertRuleInput{
		RequestID:  req.ID,
		DatasetID:  &foreign.ID,
		AssertType: "status_code",
	})
	require.ErrorIs(t, err, ErrInvalidState)
}
