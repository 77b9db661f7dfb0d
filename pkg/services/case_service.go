package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/ExileLine/exile-ai-test-platform-server/ent"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/apirequest"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/assertrule"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/dataset"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/extractrule"
)

var allowedMethods = map[string]bool{
	"GET": true, "POST": true, "PUT": true, "DELETE": true,
	"PATCH": true, "HEAD": true, "OPTIONS": true,
}

var allowedBodyTypes = map[string]bool{
	"none": true, "json": true, "form-urlencoded": true,
	"form-data": true, "raw": true, "binary": true,
}

// CaseInput carries the writable fields of a test case (stored request).
type CaseInput struct {
	EnvID           *int64
	Name            string
	Method          string
	URL             string
	Remark          *string
	BaseQueryParams map[string]any
	BaseHeaders     map[string]any
	BaseCookies     map[string]any
	BodyType        string
	BaseBodyData    map[string]any
	BaseBodyRaw     *string
	TimeoutMs       *int
	FollowRedirects *bool
	VerifySSL       *bool
	ProxyURL        *string
	Sort            *int
	DatasetRunMode  string
}

// CaseService manages stored requests and their lifecycle.
type CaseService struct {
	client *ent.Client
}

// NewCaseService creates a new CaseService.
func NewCaseService(client *ent.Client) *CaseService {
	if client == nil {
		panic("NewCaseService: client must not be nil")
	}
	return &CaseService{client: client}
}

// Create stores a new test case.
func (s *CaseService) Create(ctx context.Context, input CaseInput) (*ent.ApiRequest, error) {
	if err := validateCaseInput(input); err != nil {
		return nil, err
	}
	method := strings.ToUpper(input.Method)
	if method == "" {
		method = "GET"
	}

	builder := s.client.ApiRequest.Create().
		SetName(input.Name).
		SetMethod(method).
		SetURL(input.URL).
		SetNillableEnvID(input.EnvID).
		SetNillableRemark(input.Remark).
		SetNillableBaseBodyRaw(input.BaseBodyRaw).
		SetNillableTimeoutMs(input.TimeoutMs).
		SetNillableFollowRedirects(input.FollowRedirects).
		SetNillableVerifySsl(input.VerifySSL).
		SetNillableProxyURL(input.ProxyURL).
		SetNillableSort(input.Sort)
	if input.BaseQueryParams != nil {
		builder.SetBaseQueryParams(input.BaseQueryParams)
	}
	if input.BaseHeaders != nil {
		builder.SetBaseHeaders(input.BaseHeaders)
	}
	if input.BaseCookies != nil {
		builder.SetBaseCookies(input.BaseCookies)
	}
	if input.BodyType != "" {
		builder.SetBodyType(input.BodyType)
	}
	if input.BaseBodyData != nil {
		builder.SetBaseBodyData(input.BaseBodyData)
	}
	if input.DatasetRunMode != "" {
		builder.SetDatasetRunMode(apirequest.DatasetRunMode(input.DatasetRunMode))
	}

	req, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating case: %w", err)
	}
	return req, nil
}

// Update rewrites a test case's fields.
func (s *CaseService) Update(ctx context.Context, id int64, input CaseInput) (*ent.ApiRequest, error) {
	if err := validateCaseInput(input); err != nil {
		return nil, err
	}
	method := strings.ToUpper(input.Method)
	if method == "" {
		method = "GET"
	}
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	builder := s.client.ApiRequest.UpdateOneID(id).
		SetName(input.Name).
		SetMethod(method).
		SetURL(input.URL).
		SetNillableEnvID(input.EnvID).
		SetNillableRemark(input.Remark).
		SetNillableBaseBodyRaw(input.BaseBodyRaw).
		SetNillableTimeoutMs(input.TimeoutMs).
		SetNillableFollowRedirects(input.FollowRedirects).
		SetNillableVerifySsl(input.VerifySSL).
		SetNillableProxyURL(input.ProxyURL).
		SetNillableSort(input.Sort)
	if input.BaseQueryParams != nil {
		builder.SetBaseQueryParams(input.BaseQueryParams)
	}
	if input.BaseHeaders != nil {
		builder.SetBaseHeaders(input.BaseHeaders)
	}
	if input.BaseCookies != nil {
		builder.SetBaseCookies(input.BaseCookies)
	}
	if input.BodyType != "" {
		builder.SetBodyType(input.BodyType)
	}
	if input.BaseBodyData != nil {
		builder.SetBaseBodyData(input.BaseBodyData)
	}
	if input.DatasetRunMode != "" {
		builder.SetDatasetRunMode(apirequest.DatasetRunMode(input.DatasetRunMode))
	}

	req, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("updating case %d: %w", id, err)
	}
	return req, nil
}

// Delete tombstones a test case together with its datasets and rules.
// Historical runs keep referencing the tombstoned rows.
func (s *CaseService) Delete(ctx context.Context, id, operatorID int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	marker := tombstone(operatorID)

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}

	err = tx.ApiRequest.UpdateOneID(id).
		SetIsDeleted(marker).
		ClearDefaultDatasetID().
		Exec(ctx)
	if err == nil {
		_, err = tx.Dataset.Update().
			Where(dataset.RequestIDEQ(id), dataset.IsDeletedEQ(0)).
			SetIsDeleted(marker).
			Save(ctx)
	}
	if err == nil {
		_, err = tx.ExtractRule.Update().
			Where(extractrule.RequestIDEQ(id), extractrule.IsDeletedEQ(0)).
			SetIsDeleted(marker).
			Save(ctx)
	}
	if err == nil {
		_, err = tx.AssertRule.Update().
			Where(assertrule.RequestIDEQ(id), assertrule.IsDeletedEQ(0)).
			SetIsDeleted(marker).
			Save(ctx)
	}
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("deleting case %d: %w", id, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing case delete: %w", err)
	}
	return nil
}

// Get loads a live test case.
func (s *CaseService) Get(ctx context.Context, id int64) (*ent.ApiRequest, error) {
	req, err := s.client.ApiRequest.Query().
		Where(apirequest.IDEQ(id), apirequest.IsDeletedEQ(0)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: case %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("loading case %d: %w", id, err)
	}
	return req, nil
}

func validateCaseInput(input CaseInput) error {
	if input.Name == "" {
		return NewValidationError("name", "name is required")
	}
	if input.URL == "" {
		return NewValidationError("url", "url is required")
	}
	if input.Method != "" && !allowedMethods[strings.ToUpper(input.Method)] {
		return NewValidationError("method", fmt.Sprintf("unsupported method %q", input.Method))
	}
	if input.BodyType != "" && !allowedBodyTypes[input.BodyType] {
		return NewValidationError("body_type", fmt.Sprintf("unsupported body type %q", input.BodyType))
	}
	if input.TimeoutMs != nil && *input.TimeoutMs < 1 {
		return NewValidationError("timeout_ms", "timeout_ms must be at least 1")
	}
	if input.DatasetRunMode != "" && input.DatasetRunMode != "single" && input.DatasetRunMode != "all" {
		return NewValidationError("dataset_run_mode", fmt.Sprintf("unsupported dataset run mode %q", input.DatasetRunMode))
	}
	return nil
}
