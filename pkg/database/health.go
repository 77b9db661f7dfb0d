package database

import (
	"context"
	"time"
)

// PoolStats is a point-in-time snapshot of the connection pool, exposed on
// the health endpoint alongside ping latency.
type PoolStats struct {
	PingMillis   int64 `json:"ping_ms"`
	Open         int   `json:"open_connections"`
	InUse        int   `json:"in_use"`
	Idle         int   `json:"idle"`
	WaitCount    int64 `json:"wait_count"`
	WaitMillis   int64 `json:"wait_duration_ms"`
	MaxOpenConns int   `json:"max_open_conns"`
}

// CheckHealth pings the database and reports pool statistics. On ping
// failure the stats still carry the observed latency so the caller can
// surface how long the failed attempt took.
func (c *Client) CheckHealth(ctx context.Context) (PoolStats, error) {
	start := time.Now()

	if err := c.db.PingContext(ctx); err != nil {
		return PoolStats{PingMillis: time.Since(start).Milliseconds()}, err
	}

	s := c.db.Stats()
	return PoolStats{
		PingMillis:   time.Since(start).Milliseconds(),
		Open:         s.OpenConnections,
		InUse:        s.InUse,
		Idle:         s.Idle,
		WaitCount:    s.WaitCount,
		WaitMillis:   s.WaitDuration.Milliseconds(),
		MaxOpenConns: s.MaxOpenConnections,
	}, nil
}
