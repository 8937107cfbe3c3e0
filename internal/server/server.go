package server

import (
	"context"
	"fmt"

	"github.com/finvops/aplookup-mcp/internal/config"
	"github.com/finvops/aplookup-mcp/internal/database"
	"github.com/finvops/aplookup-mcp/internal/logging"
	"github.com/finvops/aplookup-mcp/internal/metrics"
	"github.com/finvops/aplookup-mcp/internal/middleware"
	"github.com/finvops/aplookup-mcp/internal/resources"
	"github.com/finvops/aplookup-mcp/internal/tools"
	"github.com/finvops/aplookup-mcp/pkg/mcp"
)

// Server is the main MCP server
type Server struct {
	mcpServer    *mcp.Server
	db           *database.Database
	config       *config.ConfigManager
	logger       *logging.Logger
	middleware   *middleware.Manager
	toolRegistry *tools.Registry
	resources    *resources.Manager
	metricsHTTP  *metrics.Server
}

// NewServer creates a new server
func NewServer() (*Server, error) {
	cfgMgr := config.NewConfigManager()
	if _, err := cfgMgr.Load(""); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := logging.NewLogger(cfgMgr.GetLoggingConfig())

	db := database.NewDatabase()
	if err := db.Connect(cfgMgr.GetDatabaseConfig()); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	serverSettings := cfgMgr.GetServerSettings()
	mcpServer := mcp.NewServer(serverSettings.GetName(), serverSettings.GetVersion())

	mwManager := middleware.NewManager(logger)
	setupBuiltInMiddleware(mwManager, cfgMgr, logger)

	runner := tools.NewQueryExecutor(db)
	toolRegistry := tools.NewRegistry(logger)
	tools.RegisterAll(toolRegistry, runner, logger)

	resourcesManager := resources.NewManager(runner)

	s := &Server{
		mcpServer:    mcpServer,
		db:           db,
		config:       cfgMgr,
		logger:       logger,
		middleware:   mwManager,
		toolRegistry: toolRegistry,
		resources:    resourcesManager,
	}

	if serverSettings.EnableMetrics != nil && *serverSettings.EnableMetrics {
		s.metricsHTTP = metrics.NewServer(serverSettings.GetMetricsAddr(), db, logger)
	}

	s.setupHandlers()

	return s, nil
}

func (s *Server) setupHandlers() {
	s.setupToolHandlers()
	s.setupResourceHandlers()

	s.mcpServer.SetCapabilities(mcp.ServerCapabilities{
		Tools:     make(map[string]interface{}),
		Resources: make(map[string]interface{}),
	})
}

// Start starts the server
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("Starting AP lookup MCP server", map[string]interface{}{
		"tools": s.toolRegistry.GetCount(),
	})
	if s.metricsHTTP != nil {
		s.metricsHTTP.Start()
	}
	return s.mcpServer.Run(ctx)
}

// Stop stops the server
func (s *Server) Stop() error {
	s.logger.Info("Stopping AP lookup MCP server", nil)
	if s.metricsHTTP != nil {
		if err := s.metricsHTTP.Stop(context.Background()); err != nil {
			s.logger.Error("Failed to stop metrics server", err, nil)
		}
	}
	s.db.Close()
	return nil
}
