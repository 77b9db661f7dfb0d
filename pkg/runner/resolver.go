package runner

import (
	"context"
	"errors"
	"fmt"

	"github.com/ExileLine/exile-ai-test-platform-server/ent"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/dataset"
)

// Dataset resolution errors. The API layer maps these onto invalid-state
// responses; inside a scenario run they fail the run.
var (
	// ErrDatasetRequired indicates a single dataset run mode without a
	// dataset id to run.
	ErrDatasetRequired = errors.New("dataset_id is required for single dataset run mode")

	// ErrDatasetNotFound indicates the referenced dataset is absent or
	// tombstoned.
	ErrDatasetNotFound = errors.New("dataset not found")

	// ErrDatasetMismatch indicates the dataset belongs to another request.
	ErrDatasetMismatch = errors.New("dataset does not belong to the request")

	// ErrDatasetDisabled indicates the dataset is disabled.
	ErrDatasetDisabled = errors.New("dataset is disabled")

	// ErrRequestNotFound indicates the request to execute is absent or
	// tombstoned.
	ErrRequestNotFound = errors.New("request not found")
)

// ResolveStepDatasets produces the ordered dataset list for one scenario
// step. A single nil entry means the request executes once with its base
// fields only.
func ResolveStepDatasets(ctx context.Context, client *ent.Client, step *ent.ScenarioCase, req *ent.ApiRequest) ([]*ent.Dataset, error) {
	switch step.DatasetRunMode {
	case "single":
		if step.DatasetID == nil {
			return nil, ErrDatasetRequired
		}
		ds, err := loadBoundDataset(ctx, client, *step.DatasetID, req.ID)
		if err != nil {
			return nil, err
		}
		return []*ent.Dataset{ds}, nil

	case "all":
		return allEnabledDatasets(ctx, client, req.ID)

	default: // request_default
		if req.DefaultDatasetID == nil {
			return []*ent.Dataset{nil}, nil
		}
		ds, err := loadBoundDataset(ctx, client, *req.DefaultDatasetID, req.ID)
		if err != nil {
			return nil, err
		}
		return []*ent.Dataset{ds}, nil
	}
}

// ResolveCaseDatasets produces the dataset list for a direct single-case
// run, keyed on the request's own dataset policy. An explicit datasetID
// overrides the policy.
func ResolveCaseDatasets(ctx context.Context, client *ent.Client, req *ent.ApiRequest, datasetID *int64) ([]*ent.Dataset, error) {
	if datasetID != nil {
		ds, err := loadBoundDataset(ctx, client, *datasetID, req.ID)
		if err != nil {
			return nil, err
		}
		return []*ent.Dataset{ds}, nil
	}

	if req.DatasetRunMode == "single" {
		if req.DefaultDatasetID == nil {
			return nil, ErrDatasetRequired
		}
		ds, err := loadBoundDataset(ctx, client, *req.DefaultDatasetID, req.ID)
		if err != nil {
			return nil, err
		}
		return []*ent.Dataset{ds}, nil
	}

	return allEnabledDatasets(ctx, client, req.ID)
}

// loadBoundDataset loads one live dataset and verifies it is usable for the
// given request.
func loadBoundDataset(ctx context.Context, client *ent.Client, datasetID, requestID int64) (*ent.Dataset, error) {
	ds, err := client.Dataset.Query().
		Where(
			dataset.IDEQ(datasetID),
			dataset.IsDeletedEQ(0),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: id=%d", ErrDatasetNotFound, datasetID)
		}
		return nil, fmt.Errorf("loading dataset %d: %w", datasetID, err)
	}
	if ds.RequestID != requestID {
		return nil, fmt.Errorf("%w: dataset_id=%d request_id=%d", ErrDatasetMismatch, datasetID, requestID)
	}
	if !ds.IsEnabled {
		return nil, fmt.Errorf("%w: id=%d", ErrDatasetDisabled, datasetID)
	}
	return ds, nil
}

// allEnabledDatasets lists the request's live, enabled datasets ordered by
// (sort, id). An empty list collapses to one template-only execution.
func allEnabledDatasets(ctx context.Context, client *ent.Client, requestID int64) ([]*ent.Dataset, error) {
	datasets, err := client.Dataset.Query().
		Where(
			dataset.RequestIDEQ(requestID),
			dataset.IsDeletedEQ(0),
			dataset.IsEnabledEQ(true),
		).
		Order(ent.Asc(dataset.FieldSort), ent.Asc(dataset.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing datasets for request %d: %w", requestID, err)
	}
	if len(datasets) == 0 {
		return []*ent.Dataset{nil}, nil
	}
	return datasets, nil
}
