package api

import (
	"strconv"

	echo "github.com/labstack/echo/v5"
)

// extractOperator extracts the acting user id from proxy headers.
// Priority: X-Operator-Id > X-Forwarded-User-Id. Zero means unknown; soft
// deletes then fall back to the system tombstone marker.
func extractOperator(c *echo.Context) int64 {
	for _, header := range []string{"X-Operator-Id", "X-Forwarded-User-Id"} {
		if raw := c.Request().Header.Get(header); raw != "" {
			if id, err := strconv.ParseInt(raw, 10, 64); err == nil && id > 0 {
				return id
			}
		}
	}
	return 0
}
