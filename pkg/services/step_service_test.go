package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ExileLine/exile-ai-test-platform-server/ent"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/scenariocase"
	testdb "github.com/ExileLine/exile-ai-test-platform-server/test/database"
)

func seedScenarioWithCase(t *testing.T, client *ent.Client) (*ent.Scenario, *ent.ApiRequest) {
	t.Helper()
	ctx := context.Background()
	scn := client.Scenario.Create().SetName("scn").SaveX(ctx)
	req := client.ApiRequest.Create().SetName("case").SetURL("http://example.test").SaveX(ctx)
	return scn, req
}

func liveStepNos(t *testing.T, client *ent.Client, scenarioID int64) []int {
	t.Helper()
	steps := client.ScenarioCase.Query().
		Where(scenariocase.ScenarioIDEQ(scenarioID), scenariocase.IsDeletedEQ(0)).
		Order(ent.Asc(scenariocase.FieldStepNo), ent.Asc(scenariocase.FieldID)).
		AllX(context.Background())
	nos := make([]int, 0, len(steps))
	for _, st := range steps {
		nos = append(nos, st.StepNo)
	}
	return nos
}

func TestStepCreateInsertsAndShifts(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	svc := NewStepService(client)
	ctx := context.Background()
	scn, req := seedScenarioWithCase(t, client)

	first, err := svc.Create(ctx, StepInput{ScenarioID: scn.ID, RequestID: req.ID, StepNo: 1})
	require.NoError(t, err)
	second, err := svc.Create(ctx, StepInput{ScenarioID: scn.ID, RequestID: req.ID, StepNo: 99})
	require.NoError(t, err)
	assert.Equal(t, 2, second.StepNo) // clamped to N+1

	// Insert between the two; the old second shifts to 3.
	middle, err := svc.Create(ctx, StepInput{ScenarioID: scn.ID, RequestID: req.ID, StepNo: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, middle.StepNo)

	assert.Equal(t, []int{1, 2, 3}, liveStepNos(t, client, scn.ID))
	assert.Equal(t, 1, client.ScenarioCase.GetX(ctx, first.ID).StepNo)
	assert.Equal(t, 3, client.ScenarioCase.GetX(ctx, second.ID).StepNo)
}

func TestStepDeleteRenormalizes(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	svc := NewStepService(client)
	ctx := context.Background()
	scn, req := seedScenarioWithCase(t, client)

	var steps []*ent.ScenarioCase
	for i := 1; i <= 3; i++ {
		st, err := svc.Create(ctx, StepInput{ScenarioID: scn.ID, RequestID: req.ID, StepNo: i})
		require.NoError(t, err)
		steps = append(steps, st)
	}

	require.NoError(t, svc.Delete(ctx, steps[1].ID, 7))

	assert.Equal(t, []int{1, 2}, liveStepNos(t, client, scn.ID))
	assert.Equal(t, int64(7), client.ScenarioCase.GetX(ctx, steps[1].ID).IsDeleted)
	// The third step slid into position 2.
	assert.Equal(t, 2, client.ScenarioCase.GetX(ctx, steps[2].ID).StepNo)
}

func TestStepReorderMovesToTarget(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	svc := NewStepService(client)
	ctx := context.Background()
	scn, req := seedScenarioWithCase(t, client)

	var ids []int64
	for i := 1; i <= 3; i++ {
		st, err := svc.Create(ctx, StepInput{ScenarioID: scn.ID, RequestID: req.ID, StepNo: i})
		require.NoError(t, err)
		ids = append(ids, st.ID)
	}

	// Move the last step to the front.
	require.NoError(t, svc.Reorder(ctx, ids[2], 1))

	assert.Equal(t, 1, client.ScenarioCase.GetX(ctx, ids[2]).StepNo)
	assert.Equal(t, 2, client.ScenarioCase.GetX(ctx, ids[0]).StepNo)
	assert.Equal(t, 3, client.ScenarioCase.GetX(ctx, ids[1]).StepNo)
}

func TestStepSingleModeRequiresDataset(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	svc := NewStepService(client)
	ctx := context.Background()
	scn, req := seedScenarioWithCase(t, client)

	_, err := svc.Create(ctx, StepInput{
		ScenarioID:     scn.ID,
		RequestID:      req.ID,
		StepNo:         1,
		DatasetRunMode: "single",
	})
	require.ErrorIs(t, err, ErrBadRequest)
	assert.True(t, IsValidationError(err))
}

func TestStepDatasetStrategyRejectsForeignDataset(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	svc := NewStepService(client)
	ctx := context.Background()
	scn, req := seedScenarioWithCase(t, client)

	other := client.ApiRequest.Create().SetName("other").SetURL("http://example.test").SaveX(ctx)
	foreign := client.Dataset.Create().SetRequestID(other.ID).SetName("foreign").SaveX(ctx)

	step, err := svc.Create(ctx, StepInput{ScenarioID: scn.ID, RequestID: req.ID, StepNo: 1})
	require.NoError(t, err)

	_, err = svc.SetDatasetStrategy(ctx, step.ID, "single", &foreign.ID)
	require.ErrorIs(t, err, ErrInvalidState)

	own := client.Dataset.Create().SetRequestID(req.ID).SetName("own").SaveX(ctx)
	updated, err := svc.SetDatasetStrategy(ctx, step.ID, "single", &own.ID)
	require.NoError(t, err)
	require.NotNil(t, updated.DatasetID)
	assert.Equal(t, own.ID, *updated.DatasetID)
}
