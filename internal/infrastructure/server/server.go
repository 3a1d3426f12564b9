package server

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	apihttp "github.com/Dave-Meloncelli/reliquary-desktop/internal/api/http"
	"github.com/Dave-Meloncelli/reliquary-desktop/internal/api/middleware"
	"github.com/Dave-Meloncelli/reliquary-desktop/internal/api/ws"
	"github.com/Dave-Meloncelli/reliquary-desktop/internal/domain/registry"
	"github.com/Dave-Meloncelli/reliquary-desktop/internal/domain/session"
	"github.com/Dave-Meloncelli/reliquary-desktop/internal/domain/wm"
	"github.com/Dave-Meloncelli/reliquary-desktop/internal/infrastructure/config"
	"github.com/Dave-Meloncelli/reliquary-desktop/internal/infrastructure/logging"
	"github.com/Dave-Meloncelli/reliquary-desktop/internal/infrastructure/monitoring"
	"github.com/Dave-Meloncelli/reliquary-desktop/internal/shared/types"
)

// Server wraps the HTTP server and dependencies
type Server struct {
	router    *gin.Engine
	windows   *wm.Manager
	apps      *registry.Manager
	snapshots *session.Manager
	hub       *ws.Hub
	logger    *logging.Logger
	config    *config.Config
	metrics   *monitoring.Metrics
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config) (*Server, error) {
	var logger *logging.Logger
	if cfg.Logging.Development {
		logger = logging.NewDevelopment()
	} else {
		logger = logging.NewDefault()
	}

	logger.Info("Initializing desktop server",
		zap.String("port", cfg.Server.Port),
		zap.Int("desktop_width", cfg.Desktop.Width),
		zap.Int("desktop_height", cfg.Desktop.Height),
	)

	metrics := monitoring.NewMetrics()

	// Descriptor registry, seeded from disk plus built-ins.
	apps := registry.NewManager()
	seeder := registry.NewSeeder(apps, cfg.Registry.AppsDir, logger)
	if err := seeder.SeedApps(); err != nil {
		logger.Warn("Failed to seed app descriptors", zap.Error(err))
	}
	if err := seeder.SeedDefaults(); err != nil {
		logger.Warn("Failed to seed default descriptors", zap.Error(err))
	}

	// Window manager owns the workspace state.
	windows := wm.NewManager(wm.Config{
		Desktop: types.Geometry{
			X:      0,
			Y:      0,
			Width:  cfg.Desktop.Width,
			Height: cfg.Desktop.Height,
		},
		Origin:      types.Position{X: cfg.Desktop.OriginX, Y: cfg.Desktop.OriginY},
		SpawnJitter: cfg.Desktop.SpawnJitter,
	}).WithMetrics(metrics)

	snapshots := session.NewManager(windows, apps).WithMetrics(metrics)

	hub := ws.NewHub(windows, logger, metrics)

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(monitoring.Middleware(metrics))
	router.Use(middleware.CORS())
	if cfg.RateLimit.Enabled {
		logger.Info("Rate limiting enabled",
			zap.Int("rps", cfg.RateLimit.RequestsPerSecond),
			zap.Int("burst", cfg.RateLimit.Burst),
		)
		router.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		}))
	}

	handlers := apihttp.NewHandlers(windows, apps, snapshots, hub)
	wsHandler := ws.NewHandler(hub, windows, apps, logger)

	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)

	// Window operations
	router.GET("/windows", handlers.ListWindows)
	router.POST("/windows", handlers.OpenWindow)
	router.GET("/windows/:id", handlers.GetWindow)
	router.DELETE("/windows/:id", handlers.CloseWindow)
	router.POST("/windows/:id/focus", handlers.FocusWindow)
	router.POST("/windows/:id/minimize", handlers.MinimizeWindow)
	router.POST("/windows/:id/maximize", handlers.MaximizeWindow)
	router.PUT("/windows/:id/position", handlers.MoveWindow)
	router.PUT("/windows/:id/size", handlers.ResizeWindow)
	router.PUT("/windows/:id/title", handlers.SetWindowTitle)

	// Descriptor registry
	router.GET("/registry/apps", handlers.ListRegistryApps)
	router.POST("/registry/apps", handlers.RegisterApp)
	router.GET("/registry/apps/:id", handlers.GetRegistryApp)
	router.DELETE("/registry/apps/:id", handlers.UnregisterApp)
	router.POST("/registry/apps/:id/launch", handlers.LaunchRegistryApp)

	// Workspace snapshots
	router.POST("/workspaces/save", handlers.SaveSnapshot)
	router.GET("/workspaces", handlers.ListSnapshots)
	router.GET("/workspaces/:id", handlers.GetSnapshot)
	router.POST("/workspaces/:id/restore", handlers.RestoreSnapshot)
	router.DELETE("/workspaces/:id", handlers.DeleteSnapshot)

	// WebSocket
	router.GET("/stream", wsHandler.HandleConnection)

	// Metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	logger.Info("Server initialized successfully")

	return &Server{
		router:    router,
		windows:   windows,
		apps:      apps,
		snapshots: snapshots,
		hub:       hub,
		logger:    logger,
		config:    cfg,
		metrics:   metrics,
	}, nil
}

// Run starts the HTTP server
func (s *Server) Run() error {
	addr := s.config.Server.Host + ":" + s.config.Server.Port
	s.logger.Info("Starting HTTP server", zap.String("addr", addr))
	return s.router.Run(addr)
}

// Router exposes the gin engine, primarily for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Close gracefully shuts down the server
func (s *Server) Close() error {
	s.logger.Info("Shutting down server",
		zap.Int("open_windows", s.windows.Stats().TotalWindows),
		zap.Int("ws_clients", s.hub.ClientCount()),
	)
	s.logger.Sync()
	return nil
}
