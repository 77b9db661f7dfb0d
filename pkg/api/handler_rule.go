package api

import (
	echo "github.com/labstack/echo/v5"

	"github.com/ExileLine/exile-ai-test-platform-server/pkg/services"
)

func (s *Server) createExtractRuleHandler(c *echo.Context) error {
	var req ExtractRuleRequest
	if err := c.Bind(&req); err != nil {
		return respondBusinessError(c, codeBadRequest, err.Error())
	}

	rule, err := s.ruleService.CreateExtract(c.Request().Context(), extractRuleInput(req))
	if err != nil {
		return mapServiceError(c, err)
	}
	return respondCreated(c, rule)
}

func (s *Server) updateExtractRuleHandler(c *echo.Context) error {
	var req ExtractRuleRequest
	if err := c.Bind(&req); err != nil {
		return respondBusinessError(c, codeBadRequest, err.Error())
	}
	if req.ID <= 0 {
		return respondBusinessError(c, codeBadRequest, "id is required")
	}

	rule, err := s.ruleService.UpdateExtract(c.Request().Context(), req.ID, extractRuleInput(req))
	if err != nil {
		return mapServiceError(c, err)
	}
	return respondCreated(c, rule)
}

func (s *Server) deleteExtractRuleHandler(c *echo.Context) error {
	var req DeleteRequest
	if err := c.Bind(&req); err != nil {
		return respondBusinessError(c, codeBadRequest, err.Error())
	}
	if req.ID <= 0 {
		return respondBusinessError(c, codeBadRequest, "id is required")
	}

	if err := s.ruleService.DeleteExtract(c.Request().Context(), req.ID, extractOperator(c)); err != nil {
		return mapServiceError(c, err)
	}
	return respondDeleted(c)
}

func (s *Server) getExtractRuleHandler(c *echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	rule, err := s.ruleService.GetExtract(c.Request().Context(), id)
	if err != nil {
		return mapServiceError(c, err)
	}
	return respondOK(c, rule)
}

func (s *Server) createAssertRuleHandler(c *echo.Context) error {
	var req AssertRuleRequest
	if err := c.Bind(&req); err != nil {
		return respondBusinessError(c, codeBadRequest, err.Error())
	}

	rule, err := s.ruleService.CreateAssert(c.Request().Context(), assertRuleInput(req))
	if err != nil {
		return mapServiceError(c, err)
	}
	return respondCreated(c, rule)
}

func (s *Server) updateAssertRuleHandler(c *echo.Context) error {
	var req AssertRuleRequest
	if err := c.Bind(&req); err != nil {
		return respondBusinessError(c, codeBadRequest, err.Error())
	}
	if req.ID <= 0 {
		return respondBusinessError(c, codeBadRequest, "id is required")
	}

	rule, err := s.ruleService.UpdateAssert(c.Request().Context(), req.ID, assertRuleInput(req))
	if err != nil {
		return mapServiceError(c, err)
	}
	return respondCreated(c, rule)
}

func (s *Server) deleteAssertRuleHandler(c *echo.Context) error {
	var req DeleteRequest
	if err := c.Bind(&req); err != nil {
		return respondBusinessError(c, codeBadRequest, err.Error())
	}
	if req.ID <= 0 {
		return respondBusinessError(c, codeBadRequest, "id is required")
	}

	if err := s.ruleService.DeleteAssert(c.Request().Context(), req.ID, extractOperator(c)); err != nil {
		return mapServiceError(c, err)
	}
	return respondDeleted(c)
}

func (s *Server) getAssertRuleHandler(c *echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	rule, err := s.ruleService.GetAssert(c.Request().Context(), id)
	if err != nil {
		return mapServiceError(c, err)
	}
	return respondOK(c, rule)
}

func extractRuleInput(req ExtractRuleRequest) services.ExtractRuleInput {
	return services.ExtractRuleInput{
		RequestID:    req.RequestID,
		DatasetID:    req.DatasetID,
		VarName:      req.VarName,
		SourceType:   req.SourceType,
		SourceExpr:   req.SourceExpr,
		DefaultValue: req.DefaultValue,
		Required:     req.Required,
		Scope:        req.Scope,
		IsSecret:     req.IsSecret,
		IsEnabled:    req.IsEnabled,
		Sort:         req.Sort,
	}
}

func assertRuleInput(req AssertRuleRequest) services.AssertRuleInput {
	return services.AssertRuleInput{
		RequestID:     req.RequestID,
		DatasetID:     req.DatasetID,
		AssertType:    req.AssertType,
		SourceExpr:    req.SourceExpr,
		Comparator:    req.Comparator,
		ExpectedValue: req.ExpectedValue,
		Message:       req.Message,
		IsEnabled:     req.IsEnabled,
		Sort:          req.Sort,
	}
}
