package api

import (
	echo "github.com/labstack/echo/v5"

	"github.com/ExileLine/exile-ai-test-platform-server/pkg/services"
)

func (s *Server) createCaseHandler(c *echo.Context) error {
	var req CaseRequest
	if err := c.Bind(&req); err != nil {
		return respondBusinessError(c, codeBadRequest, err.Error())
	}

	created, err := s.caseService.Create(c.Request().Context(), caseInput(req))
	if err != nil {
		return mapServiceError(c, err)
	}
	return respondCreated(c, created)
}

func (s *Server) updateCaseHandler(c *echo.Context) error {
	var req CaseRequest
	if err := c.Bind(&req); err != nil {
		return respondBusinessError(c, codeBadRequest, err.Error())
	}
	if req.ID <= 0 {
		return respondBusinessError(c, codeBadRequest, "id is required")
	}

	updated, err := s.caseService.Update(c.Request().Context(), req.ID, caseInput(req))
	if err != nil {
		return mapServiceError(c, err)
	}
	return respondCreated(c, updated)
}

// deleteCaseHandler tombstones a case together with its datasets and rules.
func (s *Server) deleteCaseHandler(c *echo.Context) error {
	var req DeleteRequest
	if err := c.Bind(&req); err != nil {
		return respondBusinessError(c, codeBadRequest, err.Error())
	}
	if req.ID <= 0 {
		return respondBusinessError(c, codeBadRequest, "id is required")
	}

	if err := s.caseService.Delete(c.Request().Context(), req.ID, extractOperator(c)); err != nil {
		return mapServiceError(c, err)
	}
	return respondDeleted(c)
}

func (s *Server) getCaseHandler(c *echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	row, err := s.caseService.Get(c.Request().Context(), id)
	if err != nil {
		return mapServiceError(c, err)
	}
	return respondOK(c, row)
}

func caseInput(req CaseRequest) services.CaseInput {
	return services.CaseInput{
		EnvID:           req.EnvID,
		Name:            req.Name,
		Method:          req.Method,
		URL:             req.URL,
		Remark:          req.Remark,
		BaseQueryParams: req.BaseQueryParams,
		BaseHeaders:     req.BaseHeaders,
		BaseCookies:     req.BaseCookies,
		BodyType:        req.BodyType,
		BaseBodyData:    req.BaseBodyData,
		BaseBodyRaw:     req.BaseBodyRaw,
		TimeoutMs:       req.TimeoutMs,
		FollowRedirects: req.FollowRedirects,
		VerifySSL:       req.VerifySSL,
		ProxyURL:        req.ProxyURL,
		Sort:            req.Sort,
		DatasetRunMode:  req.DatasetRunMode,
	}
}
