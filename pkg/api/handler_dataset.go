package api

import (
	echo "github.com/labstack/echo/v5"

	"github.com/ExileLine/exile-ai-test-platform-server/pkg/services"
)

func (s *Server) createDatasetHandler(c *echo.Context) error {
	var req DatasetRequest
	if err := c.Bind(&req); err != nil {
		return respondBusinessError(c, codeBadRequest, err.Error())
	}

	ds, err := s.datasetService.Create(c.Request().Context(), datasetInput(req))
	if err != nil {
		return mapServiceError(c, err)
	}
	return respondCreated(c, ds)
}

func (s *Server) updateDatasetHandler(c *echo.Context) error {
	var req DatasetRequest
	if err := c.Bind(&req); err != nil {
		return respondBusinessError(c, codeBadRequest, err.Error())
	}
	if req.ID <= 0 {
		return respondBusinessError(c, codeBadRequest, "id is required")
	}

	ds, err := s.datasetService.Update(c.Request().Context(), req.ID, datasetInput(req))
	if err != nil {
		return mapServiceError(c, err)
	}
	return respondCreated(c, ds)
}

func (s *Server) deleteDatasetHandler(c *echo.Context) error {
	var req DeleteRequest
	if err := c.Bind(&req); err != nil {
		return respondBusinessError(c, codeBadRequest, err.Error())
	}
	if req.ID <= 0 {
		return respondBusinessError(c, codeBadRequest, "id is required")
	}

	if err := s.datasetService.Delete(c.Request().Context(), req.ID, extractOperator(c)); err != nil {
		return mapServiceError(c, err)
	}
	return respondDeleted(c)
}

func (s *Server) getDatasetHandler(c *echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	ds, err := s.datasetService.Get(c.Request().Context(), id)
	if err != nil {
		return mapServiceError(c, err)
	}
	return respondOK(c, ds)
}

// setDefaultDatasetHandler handles PUT /api/case/dataset/default.
// The default is exclusive per case and mirrored on the case row.
func (s *Server) setDefaultDatasetHandler(c *echo.Context) error {
	var req DatasetDefaultRequest
	if err := c.Bind(&req); err != nil {
		return respondBusinessError(c, codeBadRequest, err.Error())
	}
	if req.ID <= 0 {
		return respondBusinessError(c, codeBadRequest, "id is required")
	}

	if err := s.datasetService.SetDefault(c.Request().Context(), req.ID); err != nil {
		return mapServiceError(c, err)
	}
	return respondCreated(c, nil)
}

func (s *Server) setDatasetEnabledHandler(c *echo.Context) error {
	var req DatasetEnabledRequest
	if err := c.Bind(&req); err != nil {
		return respondBusinessError(c, codeBadRequest, err.Error())
	}
	if req.ID <= 0 {
		return respondBusinessError(c, codeBadRequest, "id is required")
	}

	if err := s.datasetService.SetEnabled(c.Request().Context(), req.ID, req.IsEnabled); err != nil {
		return mapServiceError(c, err)
	}
	return respondCreated(c, nil)
}

func datasetInput(req DatasetRequest) services.DatasetInput {
	return services.DatasetInput{
		RequestID:   req.RequestID,
		Name:        req.Name,
		Remark:      req.Remark,
		Variables:   req.Variables,
		QueryParams: req.QueryParams,
		Headers:     req.Headers,
		Cookies:     req.Cookies,
		BodyType:    req.BodyType,
		BodyData:    req.BodyData,
		BodyRaw:     req.BodyRaw,
		IsEnabled:   req.IsEnabled,
		Sort:        req.Sort,
	}
}
