// Package api exposes the HTTP surface: run submission and reporting,
// direct case execution, and the CRUD endpoints around the data model.
// Responses use the unified {code, message, data} envelope.
package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/ExileLine/exile-ai-test-platform-server/pkg/config"
	"github.com/ExileLine/exile-ai-test-platform-server/pkg/database"
	"github.com/ExileLine/exile-ai-test-platform-server/pkg/queue"
	"github.com/ExileLine/exile-ai-test-platform-server/pkg/services"
)

// Server is the HTTP API server. It owns no business logic; every handler
// binds a request, calls a service, and writes the envelope.
type Server struct {
	cfg        *config.Config
	dbClient   *database.Client
	workerPool *queue.WorkerPool

	runService         *services.RunService
	environmentService *services.EnvironmentService
	caseService        *services.CaseService
	datasetService     *services.DatasetService
	ruleService        *services.RuleService
	scenarioService    *services.ScenarioService
	stepService        *services.StepService

	echo       *echo.Echo
	httpServer *http.Server
}

// NewServer creates the API server and registers all routes. The run
// service is injected because it carries the broker and worker pool; the
// CRUD services are plain database wrappers and are built here.
func NewServer(cfg *config.Config, dbClient *database.Client, runService *services.RunService, workerPool *queue.WorkerPool) *Server {
	s := &Server{
		cfg:                cfg,
		dbClient:           dbClient,
		workerPool:         workerPool,
		runService:         runService,
		environmentService: services.NewEnvironmentService(dbClient.Client),
		caseService:        services.NewCaseService(dbClient.Client),
		datasetService:     services.NewDatasetService(dbClient.Client),
		ruleService:        services.NewRuleService(dbClient.Client),
		scenarioService:    services.NewScenarioService(dbClient.Client),
		stepService:        services.NewStepService(dbClient.Client),
	}

	e := echo.New()
	e.Use(securityHeaders())
	s.registerRoutes(e)
	s.echo = e

	return s
}

func (s *Server) registerRoutes(e *echo.Echo) {
	e.GET("/health", s.healthHandler)

	// Execution core
	e.POST("/api/case/run", s.caseRunHandler)
	e.POST("/api/scenario/run", s.submitRunHandler)
	e.GET("/api/scenario/run/:id", s.getRunHandler)
	e.GET("/api/scenario/run/:id/report", s.runReportHandler)
	e.POST("/api/scenario/run/cancel", s.cancelRunHandler)

	// Environments
	e.POST("/api/environment", s.createEnvironmentHandler)
	e.PUT("/api/environment", s.updateEnvironmentHandler)
	e.DELETE("/api/environment", s.deleteEnvironmentHandler)
	e.GET("/api/environment/:id", s.getEnvironmentHandler)
	e.GET("/api/environment", s.listEnvironmentsHandler)

	// Cases and their datasets and rules
	e.POST("/api/case", s.createCaseHandler)
	e.PUT("/api/case", s.updateCaseHandler)
	e.DELETE("/api/case", s.deleteCaseHandler)
	e.GET("/api/case/:id", s.getCaseHandler)

	e.POST("/api/case/dataset", s.createDatasetHandler)
	e.PUT("/api/case/dataset", s.updateDatasetHandler)
	e.DELETE("/api/case/dataset", s.deleteDatasetHandler)
	e.GET("/api/case/dataset/:id", s.getDatasetHandler)
	e.PUT("/api/case/dataset/default", s.setDefaultDatasetHandler)
	e.PUT("/api/case/dataset/enabled", s.setDatasetEnabledHandler)

	e.POST("/api/case/extract", s.createExtractRuleHandler)
	e.PUT("/api/case/extract", s.updateExtractRuleHandler)
	e.DELETE("/api/case/extract", s.deleteExtractRuleHandler)
	e.GET("/api/case/extract/:id", s.getExtractRuleHandler)

	e.POST("/api/case/assert", s.createAssertRuleHandler)
	e.PUT("/api/case/assert", s.updateAssertRuleHandler)
	e.DELETE("/api/case/assert", s.deleteAssertRuleHandler)
	e.GET("/api/case/assert/:id", s.getAssertRuleHandler)

	// Scenarios and their steps
	e.POST("/api/scenario", s.createScenarioHandler)
	e.PUT("/api/scenario", s.updateScenarioHandler)
	e.DELETE("/api/scenario", s.deleteScenarioHandler)
	e.GET("/api/scenario/:id", s.getScenarioHandler)

	e.POST("/api/scenario/case", s.createStepHandler)
	e.PUT("/api/scenario/case", s.updateStepHandler)
	e.DELETE("/api/scenario/case", s.deleteStepHandler)
	e.GET("/api/scenario/case/:id", s.getStepHandler)
	e.PUT("/api/scenario/case/reorder", s.reorderStepHandler)
	e.PUT("/api/scenario/case/dataset-strategy", s.stepDatasetStrategyHandler)
}

// Start runs the HTTP server. Blocks until the server stops.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP makes the server mountable in tests without a listener.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}
