// Package config manages the service configuration.
//
// It loads values from built-in defaults, an optional YAML file and
// environment variables (optionally from a `.env` file), maps them into
// structured Go types and validates them so the app fails fast on bad config.
//
// Responsibilities:
//   - Provide defaults that reproduce the canned endpoints' latency contract.
//   - Overlay an optional YAML file, then `TRANSITSIM_` env vars.
//   - Validate required values and ranges.
//   - Provide defaults for optional config blocks (e.g. observability).
package config

import (
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists it is loaded into the
	// process env before any env var is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

/*
	Env vars are read using the TRANSITSIM_ prefix. Keys are lowercased and
	a double underscore marks a nesting level:

	  TRANSITSIM_SERVER__PORT                -> server.port
	  TRANSITSIM_SIMULATION__LATENCY__AI_OPTIMIZE -> simulation.latency.ai_optimize
*/

const (
	EnvPrefix = "TRANSITSIM_"

	// ServiceName tags logs, metrics and APM data.
	ServiceName = "transitsim"
)

// Config is the root configuration object for the application.
//
// Observability is a pointer because it is optional. If not provided,
// defaults are injected at load time.
type Config struct {
	Primary       Primary              `koanf:"primary" yaml:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" yaml:"server" validate:"required"`
	Simulation    SimulationConfig     `koanf:"simulation" yaml:"simulation"`
	Observability *ObservabilityConfig `koanf:"observability" yaml:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" yaml:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are in seconds.
type ServerConfig struct {
	Host               string          `koanf:"host" yaml:"host"`
	Port               string          `koanf:"port" yaml:"port" validate:"required,numeric"`
	ReadTimeout        int             `koanf:"read_timeout" yaml:"read_timeout" validate:"required,min=1"`
	WriteTimeout       int             `koanf:"write_timeout" yaml:"write_timeout" validate:"required,min=1"`
	IdleTimeout        int             `koanf:"idle_timeout" yaml:"idle_timeout" validate:"required,min=1"`
	CORSAllowedOrigins []string        `koanf:"cors_allowed_origins" yaml:"cors_allowed_origins" validate:"required,min=1"`
	RateLimit          RateLimitConfig `koanf:"rate_limit" yaml:"rate_limit"`
}

// RateLimitConfig configures the optional per-IP token bucket.
type RateLimitConfig struct {
	Enabled           bool          `koanf:"enabled" yaml:"enabled"`
	RequestsPerSecond float64       `koanf:"requests_per_second" yaml:"requests_per_second" validate:"required_if=Enabled true,gte=0"`
	Burst             int           `koanf:"burst" yaml:"burst" validate:"gte=0"`
	ExpiresIn         time.Duration `koanf:"expires_in" yaml:"expires_in" validate:"gte=0"`
}

// SimulationConfig controls the canned response generators.
type SimulationConfig struct {
	// Seed for the random source. Zero seeds from the clock.
	Seed    uint64        `koanf:"seed" yaml:"seed"`
	Latency LatencyConfig `koanf:"latency" yaml:"latency"`
}

// LatencyConfig is the simulated processing delay per endpoint.
type LatencyConfig struct {
	AIOptimize      time.Duration `koanf:"ai_optimize" yaml:"ai_optimize" validate:"gte=0"`
	GeneticOptimize time.Duration `koanf:"genetic_optimize" yaml:"genetic_optimize" validate:"gte=0"`
	LSTMForecast    time.Duration `koanf:"lstm_forecast" yaml:"lstm_forecast" validate:"gte=0"`
	ProphetForecast time.Duration `koanf:"prophet_forecast" yaml:"prophet_forecast" validate:"gte=0"`
	RunSimulation   time.Duration `koanf:"run_simulation" yaml:"run_simulation" validate:"gte=0"`
}

// For returns the configured delay of an operation, named after its
// config key (e.g. "lstm_forecast"). ok is false for operations without
// simulated latency.
func (l LatencyConfig) For(operation string) (d time.Duration, ok bool) {
	switch operation {
	case "ai_optimize":
		return l.AIOptimize, true
	case "genetic_optimize":
		return l.GeneticOptimize, true
	case "lstm_forecast":
		return l.LSTMForecast, true
	case "prophet_forecast":
		return l.ProphetForecast, true
	case "run_simulation":
		return l.RunSimulation, true
	default:
		return 0, false
	}
}

// Addr is the listen address of the HTTP server.
func (s ServerConfig) Addr() string {
	return s.Host + ":" + s.Port
}

// DefaultConfig returns the configuration used when nothing is overridden:
// all interfaces on port 5000, any CORS origin, and the fixed delays of the
// canned endpoints.
func DefaultConfig() *Config {
	return &Config{
		Primary: Primary{Env: "development"},
		Server: ServerConfig{
			Host:               "0.0.0.0",
			Port:               "5000",
			ReadTimeout:        10,
			WriteTimeout:       30,
			IdleTimeout:        60,
			CORSAllowedOrigins: []string{"*"},
			RateLimit: RateLimitConfig{
				Enabled:           false,
				RequestsPerSecond: 20,
				Burst:             40,
				ExpiresIn:         3 * time.Minute,
			},
		},
		Simulation: SimulationConfig{
			Latency: DefaultLatency(),
		},
		Observability: DefaultObservabilityConfig(),
	}
}

// DefaultLatency is the delay table of the canned endpoints.
func DefaultLatency() LatencyConfig {
	return LatencyConfig{
		AIOptimize:      2 * time.Second,
		GeneticOptimize: 1 * time.Second,
		LSTMForecast:    3 * time.Second,
		ProphetForecast: 2 * time.Second,
		RunSimulation:   2 * time.Second,
	}
}

// LoadConfig builds the configuration from defaults, the YAML file at path
// (skipped when path is empty) and TRANSITSIM_ env vars, then validates it.
func LoadConfig(path string) (*Config, error) {
	mainConfig := DefaultConfig()

	if path != "" {
		if err := loadFile(path, mainConfig); err != nil {
			return nil, err
		}
	}

	k := koanf.New(".")

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, "could not load env variables")
	}

	// Unmarshal only overwrites keys present in the env, so defaults and
	// file values survive.
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, errors.Wrap(err, "could not unmarshal config")
	}

	mainConfig.Server.CORSAllowedOrigins = splitList(mainConfig.Server.CORSAllowedOrigins)

	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}

	// Service name and environment are always derived, never configured.
	mainConfig.Observability.ServiceName = ServiceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	validate := validator.New()
	if err := validate.Struct(mainConfig); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid observability config")
	}

	return mainConfig, nil
}

func loadFile(path string, cfg *Config) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "could not read config file %s", path)
	}

	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return errors.Wrapf(err, "could not parse config file %s", path)
	}

	return nil
}

// splitList expands comma separated entries, which is how list values
// arrive from a single env var.
func splitList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
