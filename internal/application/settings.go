package application

import (
	"fmt"
	"strconv"
	"time"

	"github.com/eugenenazirov/agent-config/internal/envvar"
)

const (
	defaultPort           = "8080"
	defaultRateLimitRPS   = 25.0
	defaultRateLimitBurst = 50
)

// Environment variables controlling the inspection server itself, read
// through the same mechanism the server exposes.
var (
	portVar           = envvar.WithDefault("PORT", defaultPort)
	rateLimitRPSVar   = envvar.New("RATE_LIMIT_RPS")
	rateLimitBurstVar = envvar.New("RATE_LIMIT_BURST")
	requestLogVar     = envvar.New("REQUEST_LOG")
)

// Settings holds runtime settings for the inspection server. The
// configuration attributes served to clients live in the config package;
// Settings only covers how the server itself runs.
type Settings struct {
	Port                 string
	ShutdownGracePeriod  time.Duration
	ReadHeaderTimeout    time.Duration
	WriteTimeout         time.Duration
	IdleTimeout          time.Duration
	EnableRequestLogging bool
	RateLimitRPS         float64
	RateLimitBurst       int
}

// CLIOverrides holds command-line flag overrides, applied over environment values.
type CLIOverrides struct {
	Port           *string
	RateLimitRPS   *float64
	RateLimitBurst *int
	RequestLog     *bool
}

// LoadSettings resolves server settings with precedence:
// CLI flags > Environment variables > Defaults
func LoadSettings(overrides *CLIOverrides) (Settings, error) {
	s := defaultSettings()

	s.Port = portVar.Resolve().Or(defaultPort)

	if raw := rateLimitRPSVar.Resolve(); raw.IsPresent() && raw.String() != "" {
		value, err := strconv.ParseFloat(raw.String(), 64)
		if err != nil || value < 0 {
			return Settings{}, fmt.Errorf("parse %s: invalid value %q", rateLimitRPSVar.Name(), raw.String())
		}
		s.RateLimitRPS = value
	}

	if raw := rateLimitBurstVar.Resolve(); raw.IsPresent() && raw.String() != "" {
		value, err := strconv.Atoi(raw.String())
		if err != nil || value < 0 {
			return Settings{}, fmt.Errorf("parse %s: invalid value %q", rateLimitBurstVar.Name(), raw.String())
		}
		s.RateLimitBurst = value
	}

	if raw := requestLogVar.Resolve(); raw.IsPresent() && raw.String() != "" {
		enabled, err := strconv.ParseBool(raw.String())
		if err != nil {
			return Settings{}, fmt.Errorf("parse %s: invalid value %q", requestLogVar.Name(), raw.String())
		}
		s.EnableRequestLogging = enabled
	}

	if overrides != nil {
		applyCLIOverrides(&s, overrides)
	}

	return s, nil
}

// defaultSettings returns Settings with default values.
func defaultSettings() Settings {
	return Settings{
		Port:                 defaultPort,
		ShutdownGracePeriod:  10 * time.Second,
		ReadHeaderTimeout:    5 * time.Second,
		WriteTimeout:         15 * time.Second,
		IdleTimeout:          60 * time.Second,
		EnableRequestLogging: true,
		RateLimitRPS:         defaultRateLimitRPS,
		RateLimitBurst:       defaultRateLimitBurst,
	}
}

// applyCLIOverrides applies command-line flag overrides.
func applyCLIOverrides(s *Settings, overrides *CLIOverrides) {
	if overrides.Port != nil && *overrides.Port != "" {
		s.Port = *overrides.Port
	}

	if overrides.RateLimitRPS != nil && *overrides.RateLimitRPS >= 0 {
		s.RateLimitRPS = *overrides.RateLimitRPS
	}

	if overrides.RateLimitBurst != nil && *overrides.RateLimitBurst >= 0 {
		s.RateLimitBurst = *overrides.RateLimitBurst
	}

	if overrides.RequestLog != nil {
		s.EnableRequestLogging = *overrides.RequestLog
	}
}
