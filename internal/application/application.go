package application

import (
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/eugenenazirov/agent-config/internal/api"
	"github.com/eugenenazirov/agent-config/internal/config"
)

// App encapsulates the inspection server dependencies.
type App struct {
	config  *config.Config
	handler *api.Handler
	router  http.Handler
	logger  *zap.Logger
	server  *http.Server
}

// New initializes the application around the process-wide configuration
// instance. Every App shares the same underlying config.
func New(settings Settings, logger *zap.Logger) *App {
	cfg := config.Instance()

	handler := api.NewHandler(cfg)
	router := api.NewRouter(handler, logger,
		api.WithLogging(settings.EnableRequestLogging),
		api.WithRateLimit(settings.RateLimitRPS, settings.RateLimitBurst),
	)

	server := NewServer(settings, router)

	return &App{
		config:  cfg,
		handler: handler,
		router:  router,
		logger:  logger,
		server:  server,
	}
}

// NewServer creates and configures an HTTP server from the provided settings.
func NewServer(settings Settings, handler http.Handler) *http.Server {
	addr := settings.Port
	if !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: settings.ReadHeaderTimeout,
		WriteTimeout:      settings.WriteTimeout,
		IdleTimeout:       settings.IdleTimeout,
	}
}

// Start starts the HTTP server in a goroutine and logs the listening address.
func (a *App) Start() error {
	go func() {
		a.logger.Info("server listening", zap.String("addr", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Fatal("server error", zap.Error(err))
		}
	}()
	return nil
}

// Server returns the HTTP server instance for shutdown handling.
func (a *App) Server() *http.Server {
	return a.server
}

// Config returns the shared configuration instance the app serves.
func (a *App) Config() *config.Config {
	return a.config
}
