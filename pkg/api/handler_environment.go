package api

import (
	echo "github.com/labstack/echo/v5"

	"github.com/ExileLine/exile-ai-test-platform-server/pkg/services"
)

func (s *Server) createEnvironmentHandler(c *echo.Context) error {
	var req EnvironmentRequest
	if err := c.Bind(&req); err != nil {
		return respondBusinessError(c, codeBadRequest, err.Error())
	}

	env, err := s.environmentService.Create(c.Request().Context(), environmentInput(req))
	if err != nil {
		return mapServiceError(c, err)
	}
	return respondCreated(c, env)
}

func (s *Server) updateEnvironmentHandler(c *echo.Context) error {
	var req EnvironmentRequest
	if err := c.Bind(&req); err != nil {
		return respondBusinessError(c, codeBadRequest, err.Error())
	}
	if req.ID <= 0 {
		return respondBusinessError(c, codeBadRequest, "id is required")
	}

	env, err := s.environmentService.Update(c.Request().Context(), req.ID, environmentInput(req))
	if err != nil {
		return mapServiceError(c, err)
	}
	return respondCreated(c, env)
}

func (s *Server) deleteEnvironmentHandler(c *echo.Context) error {
	var req DeleteRequest
	if err := c.Bind(&req); err != nil {
		return respondBusinessError(c, codeBadRequest, err.Error())
	}
	if req.ID <= 0 {
		return respondBusinessError(c, codeBadRequest, "id is required")
	}

	if err := s.environmentService.Delete(c.Request().Context(), req.ID, extractOperator(c)); err != nil {
		return mapServiceError(c, err)
	}
	return respondDeleted(c)
}

func (s *Server) getEnvironmentHandler(c *echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	env, err := s.environmentService.Get(c.Request().Context(), id)
	if err != nil {
		return mapServiceError(c, err)
	}
	return respondOK(c, env)
}

func (s *Server) listEnvironmentsHandler(c *echo.Context) error {
	envs, err := s.environmentService.List(c.Request().Context())
	if err != nil {
		return mapServiceError(c, err)
	}
	return respondOK(c, envs)
}

func environmentInput(req EnvironmentRequest) services.EnvironmentInput {
	return services.EnvironmentInput{
		Name:      req.Name,
		Variables: req.Variables,
		IsDefault: req.IsDefault,
	}
}
