package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ExileLine/exile-ai-test-platform-server/pkg/services"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		expectCode int
		expectMsg  string
	}{
		{
			name:       "validation error maps to 10006",
			err:        services.NewValidationError("name", "missing field"),
			expectCode: codeBadRequest,
			expectMsg:  "missing field",
		},
		{
			name:       "not found maps to 10002",
			err:        fmt.Errorf("scenario run 7: %w", services.ErrNotFound),
			expectCode: codeNotFound,
			expectMsg:  "scenario run 7",
		},
		{
			name:       "invalid state maps to 10005",
			err:        fmt.Errorf("%w: run 7 is already success", services.ErrInvalidState),
			expectCode: codeInvalidState,
			expectMsg:  "already success",
		},
		{
			name:       "dispatch failure maps to 500",
			err:        fmt.Errorf("%w: scenario run 7: broker down", services.ErrDispatchFailed),
			expectCode: codeDispatchFailed,
			expectMsg:  "broker down",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			require.NoError(t, mapServiceError(c, tt.err))

			// Business errors ride an HTTP 200 with the envelope code.
			assert.Equal(t, http.StatusOK, rec.Code)
			var env Envelope
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
			assert.Equal(t, tt.expectCode, env.Code)
			assert.Contains(t, env.Message, tt.expectMsg)
		})
	}

	t.Run("unknown error stays an HTTP 500", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := mapServiceError(c, fmt.Errorf("something unexpected happened"))
		require.Error(t, err)
		he, ok := err.(*echo.HTTPError)
		require.True(t, ok, "expected echo.HTTPError")
		assert.Equal(t, http.StatusInternalServerError, he.Code)
	})
}
