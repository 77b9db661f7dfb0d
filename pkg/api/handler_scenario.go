package api

import (
	echo "github.com/labstack/echo/v5"

	"github.com/ExileLine/exile-ai-test-platform-server/pkg/services"
)

func (s *Server) createScenarioHandler(c *echo.Context) error {
	var req ScenarioRequest
	if err := c.Bind(&req); err != nil {
		return respondBusinessError(c, codeBadRequest, err.Error())
	}

	scn, err := s.scenarioService.Create(c.Request().Context(), scenarioInput(req))
	if err != nil {
		return mapServiceError(c, err)
	}
	return respondCreated(c, scn)
}

func (s *Server) updateScenarioHandler(c *echo.Context) error {
	var req ScenarioRequest
	if err := c.Bind(&req); err != nil {
		return respondBusinessError(c, codeBadRequest, err.Error())
	}
	if req.ID <= 0 {
		return respondBusinessError(c, codeBadRequest, "id is required")
	}

	scn, err := s.scenarioService.Update(c.Request().Context(), req.ID, scenarioInput(req))
	if err != nil {
		return mapServiceError(c, err)
	}
	return respondCreated(c, scn)
}

// deleteScenarioHandler tombstones a scenario and its steps.
func (s *Server) deleteScenarioHandler(c *echo.Context) error {
	var req DeleteRequest
	if err := c.Bind(&req); err != nil {
		return respondBusinessError(c, codeBadRequest, err.Error())
	}
	if req.ID <= 0 {
		return respondBusinessError(c, codeBadRequest, "id is required")
	}

	if err := s.scenarioService.Delete(c.Request().Context(), req.ID, extractOperator(c)); err != nil {
		return mapServiceError(c, err)
	}
	return respondDeleted(c)
}

func (s *Server) getScenarioHandler(c *echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	scn, err := s.scenarioService.Get(c.Request().Context(), id)
	if err != nil {
		return mapServiceError(c, err)
	}
	return respondOK(c, scn)
}

func (s *Server) createStepHandler(c *echo.Context) error {
	var req StepRequest
	if err := c.Bind(&req); err != nil {
		return respondBusinessError(c, codeBadRequest, err.Error())
	}
	if req.ScenarioID <= 0 || req.RequestID <= 0 {
		return respondBusinessError(c, codeBadRequest, "scenario_id and request_id are required")
	}

	step, err := s.stepService.Create(c.Request().Context(), services.StepInput{
		ScenarioID:     req.ScenarioID,
		RequestID:      req.RequestID,
		StepNo:         req.StepNo,
		DatasetID:      req.DatasetID,
		DatasetRunMode: req.DatasetRunMode,
		IsEnabled:      req.IsEnabled,
		StopOnFail:     req.StopOnFail,
	})
	if err != nil {
		return mapServiceError(c, err)
	}
	return respondCreated(c, step)
}

func (s *Server) updateStepHandler(c *echo.Context) error {
	var req StepRequest
	if err := c.Bind(&req); err != nil {
		return respondBusinessError(c, codeBadRequest, err.Error())
	}
	if req.ID <= 0 {
		return respondBusinessError(c, codeBadRequest, "id is required")
	}

	step, err := s.stepService.Update(c.Request().Context(), req.ID, req.IsEnabled, req.StopOnFail)
	if err != nil {
		return mapServiceError(c, err)
	}
	return respondCreated(c, step)
}

// deleteStepHandler removes a step; remaining steps renumber to 1..N.
func (s *Server) deleteStepHandler(c *echo.Context) error {
	var req DeleteRequest
	if err := c.Bind(&req); err != nil {
		return respondBusinessError(c, codeBadRequest, err.Error())
	}
	if req.ID <= 0 {
		return respondBusinessError(c, codeBadRequest, "id is required")
	}

	if err := s.stepService.Delete(c.Request().Context(), req.ID, extractOperator(c)); err != nil {
		return mapServiceError(c, err)
	}
	return respondDeleted(c)
}

func (s *Server) getStepHandler(c *echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	step, err := s.stepService.Get(c.Request().Context(), id)
	if err != nil {
		return mapServiceError(c, err)
	}
	return respondOK(c, step)
}

func (s *Server) reorderStepHandler(c *echo.Context) error {
	var req StepReorderRequest
	if err := c.Bind(&req); err != nil {
		return respondBusinessError(c, codeBadRequest, err.Error())
	}
	if req.ID <= 0 {
		return respondBusinessError(c, codeBadRequest, "id is required")
	}

	if err := s.stepService.Reorder(c.Request().Context(), req.ID, req.StepNo); err != nil {
		return mapServiceError(c, err)
	}
	return respondCreated(c, nil)
}

func (s *Server) stepDatasetStrategyHandler(c *echo.Context) error {
	var req StepDatasetStrategyRequest
	if err := c.Bind(&req); err != nil {
		return respondBusinessError(c, codeBadRequest, err.Error())
	}
	if req.ID <= 0 {
		return respondBusinessError(c, codeBadRequest, "id is required")
	}

	step, err := s.stepService.SetDatasetStrategy(c.Request().Context(), req.ID, req.DatasetRunMode, req.DatasetID)
	if err != nil {
		return mapServiceError(c, err)
	}
	return respondCreated(c, step)
}

func scenarioInput(req ScenarioRequest) services.ScenarioInput {
	return services.ScenarioInput{
		EnvID:       req.EnvID,
		Name:        req.Name,
		Description: req.Description,
		RunMode:     req.RunMode,
		StopOnFail:  req.StopOnFail,
		Sort:        req.Sort,
	}
}
