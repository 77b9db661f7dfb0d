package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/ExileLine/exile-ai-test-platform-server/pkg/runner"
	"github.com/ExileLine/exile-ai-test-platform-server/pkg/services"
)

// caseRunHandler handles POST /api/case/run.
// Executes one stored request synchronously and returns the persisted
// request runs with their extracted variables.
func (s *Server) caseRunHandler(c *echo.Context) error {
	var req CaseRunRequest
	if err := c.Bind(&req); err != nil {
		return respondBusinessError(c, codeBadRequest, err.Error())
	}
	if req.RequestID <= 0 {
		return respondBusinessError(c, codeBadRequest, "request_id is required")
	}

	out, err := s.runService.RunCase(c.Request().Context(), runner.CaseRunInput{
		RequestID: req.RequestID,
		DatasetID: req.DatasetID,
		EnvID:     req.EnvID,
		Variables: req.Variables,
	})
	if err != nil {
		return mapServiceError(c, err)
	}
	return respondCreated(c, out)
}

// submitRunHandler handles POST /api/scenario/run.
// Creates a queued ScenarioRun and hands it to the broker; execution is
// asynchronous, the caller polls the run or its report.
func (s *Server) submitRunHandler(c *echo.Context) error {
	var req SubmitRunRequest
	if err := c.Bind(&req); err != nil {
		return respondBusinessError(c, codeBadRequest, err.Error())
	}
	if req.ScenarioID <= 0 {
		return respondBusinessError(c, codeBadRequest, "scenario_id is required")
	}

	result, err := s.runService.Submit(c.Request().Context(), services.SubmitRunInput{
		ScenarioID:       req.ScenarioID,
		EnvID:            req.EnvID,
		TriggerType:      req.TriggerType,
		InitialVariables: req.InitialVariables,
	})
	if err != nil {
		return mapServiceError(c, err)
	}
	return respondAccepted(c, result)
}

// getRunHandler handles GET /api/scenario/run/:id.
func (s *Server) getRunHandler(c *echo.Context) error {
	runID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	run, err := s.runService.Get(c.Request().Context(), runID)
	if err != nil {
		return mapServiceError(c, err)
	}
	return respondOK(c, run)
}

// runReportHandler handles GET /api/scenario/run/:id/report.
// The report is assembled on demand from persisted rows; nothing is cached.
func (s *Server) runReportHandler(c *echo.Context) error {
	runID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	report, err := s.runService.Report(c.Request().Context(), runID)
	if err != nil {
		return mapServiceError(c, err)
	}
	return respondOK(c, report)
}

// cancelRunHandler handles POST /api/scenario/run/cancel.
// Cancellation is cooperative: the flag is set here, the orchestrator
// observes it at the next step boundary.
func (s *Server) cancelRunHandler(c *echo.Context) error {
	var req CancelRunRequest
	if err := c.Bind(&req); err != nil {
		return respondBusinessError(c, codeBadRequest, err.Error())
	}
	if req.ScenarioRunID <= 0 {
		return respondBusinessError(c, codeBadRequest, "scenario_run_id is required")
	}

	if err := s.runService.Cancel(c.Request().Context(), req.ScenarioRunID); err != nil {
		return mapServiceError(c, err)
	}
	return respondCreated(c, &CancelRunResponse{
		ScenarioRunID: req.ScenarioRunID,
		Message:       "cancel requested",
	})
}

// parseIDParam reads the :id path parameter. A malformed id is a routing
// level problem, not a business error, so it stays an HTTP 400.
func parseIDParam(c *echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "id must be a positive integer")
	}
	return id, nil
}
