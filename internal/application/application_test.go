package application

import (
	"net/http"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"github.com/eugenenazirov/agent-config/internal/config"
)

func TestNewInitializesDependencies(t *testing.T) {
	settings := baseTestSettings(":8085")
	logger := zaptest.NewLogger(t)

	app := New(settings, logger)

	if app.server == nil || app.router == nil || app.handler == nil {
		t.Fatalf("expected server, router, and handler to be initialized")
	}
	if app.Server() != app.server {
		t.Fatalf("Server accessor did not return underlying instance")
	}
	if app.Config() != config.Instance() {
		t.Fatalf("expected app to serve the process-wide configuration instance")
	}
}

func TestNewSharesSingletonAcrossApps(t *testing.T) {
	logger := zaptest.NewLogger(t)

	first := New(baseTestSettings(":0"), logger)
	second := New(baseTestSettings(":0"), logger)

	if first.Config() != second.Config() {
		t.Fatalf("expected both apps to share one configuration instance")
	}
}

func TestNewServerAppliesSettings(t *testing.T) {
	settings := baseTestSettings("9090")
	handler := http.NewServeMux()

	server := NewServer(settings, handler)
	if server.Addr != ":9090" {
		t.Fatalf("expected address :9090, got %s", server.Addr)
	}
	if server.Handler != handler {
		t.Fatalf("expected handler to be applied")
	}
	if server.ReadHeaderTimeout != settings.ReadHeaderTimeout ||
		server.WriteTimeout != settings.WriteTimeout ||
		server.IdleTimeout != settings.IdleTimeout {
		t.Fatalf("server timeouts do not match settings")
	}
}

func baseTestSettings(port string) Settings {
	return Settings{
		Port:                 port,
		ShutdownGracePeriod:  50 * time.Millisecond,
		ReadHeaderTimeout:    20 * time.Millisecond,
		WriteTimeout:         30 * time.Millisecond,
		IdleTimeout:          40 * time.Millisecond,
		EnableRequestLogging: false,
		RateLimitRPS:         0,
		RateLimitBurst:       0,
	}
}
