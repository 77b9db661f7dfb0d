package services

import (
	"context"
	"fmt"

	"github.com/ExileLine/exile-ai-test-platform-server/ent"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/apirequest"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/dataset"
)

// DatasetInput carries the writable fields of a dataset.
type DatasetInput struct {
	RequestID   int64
	Name        string
	Remark      *string
	Variables   map[string]any
	QueryParams map[string]any
	Headers     map[string]any
	Cookies     map[string]any
	BodyType    *string
	BodyData    map[string]any
	BodyRaw     *string
	IsEnabled   *bool
	Sort        *int
}

// DatasetService manages the parameter overlays of a test case. The default
// dataset is exclusive per case and mirrored on the case row.
type DatasetService struct {
	client *ent.Client
	cases  *CaseService
}

// NewDatasetService creates a new DatasetService.
func NewDatasetService(client *ent.Client) *DatasetService {
	if client == nil {
		panic("NewDatasetService: client must not be nil")
	}
	return &DatasetService{client: client, cases: NewCaseService(client)}
}

// Create stores a new dataset under its case.
func (s *DatasetService) Create(ctx context.Context, input DatasetInput) (*ent.Dataset, error) {
	if input.Name == "" {
		return nil, NewValidationError("name", "name is required")
	}
	if input.BodyType != nil && !allowedBodyTypes[*input.BodyType] {
		return nil, NewValidationError("body_type", fmt.Sprintf("unsupported body type %q", *input.BodyType))
	}
	if _, err := s.cases.Get(ctx, input.RequestID); err != nil {
		return nil, err
	}

	builder := s.client.Dataset.Create().
		SetRequestID(input.RequestID).
		SetName(input.Name).
		SetNillableRemark(input.Remark).
		SetNillableBodyType(input.BodyType).
		SetNillableBodyRaw(input.BodyRaw).
		SetNillableIsEnabled(input.IsEnabled).
		SetNillableSort(input.Sort)
	if input.Variables != nil {
		builder.SetVariables(input.Variables)
	}
	if input.QueryParams != nil {
		builder.SetQueryParams(input.QueryParams)
	}
	if input.Headers != nil {
		builder.SetHeaders(input.Headers)
	}
	if input.Cookies != nil {
		builder.SetCookies(input.Cookies)
	}
	if input.BodyData != nil {
		builder.SetBodyData(input.BodyData)
	}

	ds, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating dataset: %w", err)
	}
	return ds, nil
}

// Update rewrites a dataset's fields. The owning case never changes.
func (s *DatasetService) Update(ctx context.Context, id int64, input DatasetInput) (*ent.Dataset, error) {
	if input.Name == "" {
		return nil, NewValidationError("name", "name is required")
	}
	if input.BodyType != nil && !allowedBodyTypes[*input.BodyType] {
		return nil, NewValidationError("body_type", fmt.Sprintf("unsupported body type %q", *input.BodyType))
	}
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	builder := s.client.Dataset.UpdateOneID(id).
		SetName(input.Name).
		SetNillableRemark(input.Remark).
		SetNillableBodyType(input.BodyType).
		SetNillableBodyRaw(input.BodyRaw).
		SetNillableIsEnabled(input.IsEnabled).
		SetNillableSort(input.Sort)
	if input.Variables != nil {
		builder.SetVariables(input.Variables)
	}
	if input.QueryParams != nil {
		builder.SetQueryParams(input.QueryParams)
	}
	if input.Headers != nil {
		builder.SetHeaders(input.Headers)
	}
	if input.Cookies != nil {
		builder.SetCookies(input.Cookies)
	}
	if input.BodyData != nil {
		builder.SetBodyData(input.BodyData)
	}

	ds, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("updating dataset %d: %w", id, err)
	}
	return ds, nil
}

// Delete tombstones a dataset. Deleting the case's default dataset clears
// the mirror on the case row.
func (s *DatasetService) Delete(ctx context.Context, id, operatorID int64) error {
	ds, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}

	err = tx.Dataset.UpdateOneID(id).
		SetIsDeleted(tombstone(operatorID)).
		SetIsDefault(false).
		Exec(ctx)
	if err == nil && ds.IsDefault {
		_, err = tx.ApiRequest.Update().
			Where(apirequest.IDEQ(ds.RequestID), apirequest.DefaultDatasetIDEQ(id)).
			ClearDefaultDatasetID().
			Save(ctx)
	}
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("deleting dataset %d: %w", id, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing dataset delete: %w", err)
	}
	return nil
}

// Get loads a live dataset.
func (s *DatasetService) Get(ctx context.Context, id int64) (*ent.Dataset, error) {
	ds, err := s.client.Dataset.Query().
		Where(dataset.IDEQ(id), dataset.IsDeletedEQ(0)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: dataset %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("loading dataset %d: %w", id, err)
	}
	return ds, nil
}

// SetDefault makes one dataset the case's default, demoting any previous
// default and syncing default_dataset_id on the case row.
func (s *DatasetService) SetDefault(ctx context.Context, id int64) error {
	ds, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if !ds.IsEnabled {
		return fmt.Errorf("%w: dataset %d is disabled", ErrInvalidState, id)
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}

	_, err = tx.Dataset.Update().
		Where(
			dataset.RequestIDEQ(ds.RequestID),
			dataset.IsDefaultEQ(true),
			dataset.IsDeletedEQ(0),
			dataset.IDNEQ(id),
		).
		SetIsDefault(false).
		Save(ctx)
	if err == nil {
		err = tx.Dataset.UpdateOneID(id).SetIsDefault(true).Exec(ctx)
	}
	if err == nil {
		err = tx.ApiRequest.UpdateOneID(ds.RequestID).SetDefaultDatasetID(id).Exec(ctx)
	}
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("setting default dataset %d: %w", id, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing default dataset: %w", err)
	}
	return nil
}

// SetEnabled toggles a dataset. Disabling the default dataset keeps it the
// default; scenario resolution rejects it at run time.
func (s *DatasetService) SetEnabled(ctx context.Context, id int64, enabled bool) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	err := s.client.Dataset.UpdateOneID(id).
		SetIsEnabled(enabled).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("toggling dataset %d: %w", id, err)
	}
	return nil
}

// ListByCase returns the live datasets of a case ordered by (sort, id).
func (s *DatasetService) ListByCase(ctx context.Context, requestID int64) ([]*ent.Dataset, error) {
	datasets, err := s.client.Dataset.Query().
		Where(dataset.RequestIDEQ(requestID), dataset.IsDeletedEQ(0)).
		Order(ent.Asc(dataset.FieldSort), ent.Asc(dataset.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing datasets for case %d: %w", requestID, err)
	}
	return datasets, nil
}
