package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/eugenenazirov/agent-config/internal/application"
	"github.com/eugenenazirov/agent-config/internal/config"
	"github.com/eugenenazirov/agent-config/internal/logging"
)

var signalNotify = signal.Notify

func main() {
	kingpinApp := kingpin.New("agent-config", "Configuration inspection service for codegen agent deployments")
	port := kingpinApp.Flag("port", "HTTP port exposed by the service").String()
	rateLimitRPSFlag := kingpinApp.Flag("rate-limit-rps", "Requests per second allowed (set 0 to disable)").Default("-1").Float64()
	rateLimitBurstFlag := kingpinApp.Flag("rate-limit-burst", "Burst capacity for rate limiter (set 0 to disable)").Default("-1").Int()
	requestLogFlag := kingpinApp.Flag("request-log", "Emit access logs for every request (true/false)").String()

	kingpin.MustParse(kingpinApp.Parse(os.Args[1:]))

	overrides, err := buildOverrides(*port, *rateLimitRPSFlag, *rateLimitBurstFlag, *requestLogFlag)
	if err != nil {
		panic(fmt.Sprintf("invalid flags: %v", err))
	}

	settings, err := application.LoadSettings(overrides)
	if err != nil {
		panic(fmt.Sprintf("failed to load settings: %v", err))
	}

	logger, err := logging.New()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	cfg := config.Instance()
	logger.Info("configuration loaded",
		zap.String("agent_type", cfg.AgentType()),
		zap.Bool("builder_token_set", cfg.BuilderToken().IsPresent()),
		zap.Bool("snapshot_bucket_set", cfg.SnapshotBucket().IsPresent()),
	)

	app := application.New(settings, logger)
	if err := app.Start(); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}

	shutdown(app.Server(), settings.ShutdownGracePeriod, logger)
}

// buildOverrides converts flag values into settings overrides, treating the
// flags' sentinel defaults as "not provided".
func buildOverrides(port string, rateLimitRPS float64, rateLimitBurst int, requestLog string) (*application.CLIOverrides, error) {
	overrides := &application.CLIOverrides{}

	if port != "" {
		overrides.Port = &port
	}

	if rateLimitRPS >= 0 {
		overrides.RateLimitRPS = &rateLimitRPS
	}

	if rateLimitBurst >= 0 {
		overrides.RateLimitBurst = &rateLimitBurst
	}

	if requestLog != "" {
		enabled, err := strconv.ParseBool(requestLog)
		if err != nil {
			return nil, fmt.Errorf("parse request-log: invalid value %q", requestLog)
		}
		overrides.RequestLog = &enabled
	}

	return overrides, nil
}

func shutdown(server *http.Server, timeout time.Duration, logger *zap.Logger) {
	quit := make(chan os.Signal, 1)
	signalNotify(quit, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Warn("graceful shutdown failed", zap.Error(err))
		if closeErr := server.Close(); closeErr != nil {
			logger.Error("forced close failed", zap.Error(closeErr))
		}
	}
}
