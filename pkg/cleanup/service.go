// Package cleanup provides data retention and cleanup services.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/ExileLine/exile-ai-test-platform-server/pkg/config"
	"github.com/ExileLine/exile-ai-test-platform-server/pkg/services"
)

// Service periodically enforces the run retention policy: terminal scenario
// runs older than the retention window are soft-deleted together with their
// request runs and variables.
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config     *config.RetentionConfig
	runService *services.RunService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg *config.RetentionConfig, runService *services.RunService) *Service {
	return &Service{
		config:     cfg,
		runService: runService,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"run_retention_days", s.config.RunRetentionDays,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.purgeOldRuns()

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.purgeOldRuns()
		}
	}
}

func (s *Service) purgeOldRuns() {
	count, err := s.runService.PurgeOldRuns(context.Background(), s.config.RunRetentionDays)
	if err != nil {
		slog.Error("Retention: purge scenario runs failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: purged old scenario runs", "count", count)
	}
}
