package api

import (
	"errors"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/ExileLine/exile-ai-test-platform-server/pkg/services"
)

// mapServiceError writes the envelope for a service-layer error. Business
// errors ride an HTTP 200 with their envelope code; anything unexpected
// becomes a plain HTTP 500.
func mapServiceError(c *echo.Context, err error) error {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return respondBusinessError(c, codeBadRequest, validErr.Error())
	}
	if errors.Is(err, services.ErrBadRequest) {
		return respondBusinessError(c, codeBadRequest, err.Error())
	}
	if errors.Is(err, services.ErrNotFound) {
		return respondBusinessError(c, codeNotFound, err.Error())
	}
	if errors.Is(err, services.ErrInvalidState) {
		return respondBusinessError(c, codeInvalidState, err.Error())
	}
	if errors.Is(err, services.ErrDispatchFailed) {
		return respondBusinessError(c, codeDispatchFailed, err.Error())
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
}
