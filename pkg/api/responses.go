package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// Envelope is the unified response body. Business failures keep HTTP 200
// and carry the failure in Code; transport-level failures (panics, broken
// routing) surface as plain HTTP errors.
type Envelope struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// Envelope codes. The 2xx values mirror their HTTP namesakes, the 1xxxx
// values are business error codes carried on an HTTP 200.
const (
	codeOK             = 200
	codeCreated        = 201
	codeAccepted       = 202
	codeDeleted        = 204
	codeNotFound       = 10002
	codeInvalidState   = 10005
	codeBadRequest     = 10006
	codeDispatchFailed = 500
)

func respondOK(c *echo.Context, data any) error {
	return c.JSON(http.StatusOK, &Envelope{Code: codeOK, Message: "ok", Data: data})
}

func respondCreated(c *echo.Context, data any) error {
	return c.JSON(http.StatusCreated, &Envelope{Code: codeCreated, Message: "ok", Data: data})
}

func respondAccepted(c *echo.Context, data any) error {
	return c.JSON(http.StatusAccepted, &Envelope{Code: codeAccepted, Message: "ok", Data: data})
}

func respondDeleted(c *echo.Context) error {
	return c.JSON(http.StatusOK, &Envelope{Code: codeDeleted, Message: "deleted", Data: nil})
}

func respondBusinessError(c *echo.Context, code int, message string) error {
	return c.JSON(http.StatusOK, &Envelope{Code: code, Message: message, Data: nil})
}

// CancelRunResponse is returned by POST /api/scenario/run/cancel.
type CancelRunResponse struct {
	ScenarioRunID int64  `json:"scenario_run_id"`
	Message       string `json:"message"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status  string                 `json:"status"`
	Version string                 `json:"version"`
	Checks  map[string]HealthCheck `json:"checks"`
}

// HealthCheck is the status of a single component.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}
