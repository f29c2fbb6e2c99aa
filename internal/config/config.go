// Package config loads the service configuration from YAML with environment
// overrides and hot-reloads the conversation script when its file changes.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/cobaltline/basicd/internal/tracing"
)

// Config is the full service configuration.
type Config struct {
	GRPC         GRPCConfig         `mapstructure:"grpc"`
	Admin        AdminConfig        `mapstructure:"admin"`
	Orchestrator OrchestratorConfig `mapstructure:"orchestrator"`
	Eliza        ElizaConfig        `mapstructure:"eliza"`
	Streaming    StreamingConfig    `mapstructure:"streaming"`
	Tracing      tracing.Config     `mapstructure:"tracing"`
	Logging      LoggingConfig      `mapstructure:"logging"`
}

type GRPCConfig struct {
	Port int       `mapstructure:"port"`
	TLS  TLSConfig `mapstructure:"tls"`
	// StreamMsgsPerSecond throttles inbound stream messages per connection;
	// zero disables throttling.
	StreamMsgsPerSecond float64 `mapstructure:"stream_msgs_per_second"`
	StreamBurst         int     `mapstructure:"stream_burst"`
}

type TLSConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	CertFile string `mapstructure:"cert_file"`
	KeyFile  string `mapstructure:"key_file"`
}

// AdminConfig covers the sidecar HTTP server: metrics, health, run events.
type AdminConfig struct {
	Port int `mapstructure:"port"`
}

type OrchestratorConfig struct {
	MaxWorkers  int           `mapstructure:"max_workers"`
	MinLatency  time.Duration `mapstructure:"min_latency"`
	MaxLatency  time.Duration `mapstructure:"max_latency"`
	FailureRate float64       `mapstructure:"failure_rate"`
}

type ElizaConfig struct {
	// ScriptFile overrides the built-in conversation script; empty keeps the
	// default. The file is watched and reloaded on change.
	ScriptFile   string `mapstructure:"script_file"`
	HistoryLimit int    `mapstructure:"history_limit"`
}

type StreamingConfig struct {
	RingCapacity int `mapstructure:"ring_capacity"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("grpc.port", 50051)
	v.SetDefault("grpc.stream_msgs_per_second", 20.0)
	v.SetDefault("grpc.stream_burst", 10)
	v.SetDefault("admin.port", 8081)
	v.SetDefault("orchestrator.max_workers", 64)
	v.SetDefault("orchestrator.min_latency", time.Second)
	v.SetDefault("orchestrator.max_latency", 3*time.Second)
	v.SetDefault("orchestrator.failure_rate", 0.0)
	v.SetDefault("eliza.history_limit", 16)
	v.SetDefault("streaming.ring_capacity", 256)
	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.service_name", "basicd")
	v.SetDefault("tracing.otlp_endpoint", "localhost:4317")
	v.SetDefault("logging.level", "info")
}

// Load reads configuration from path, if non-empty, applying BASICD_*
// environment overrides on top (BASICD_GRPC_PORT, BASICD_LOGGING_LEVEL, ...).
// A missing path yields pure defaults plus overrides.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("BASICD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.GRPC.Port <= 0 || c.GRPC.Port > 65535 {
		return fmt.Errorf("invalid grpc.port %d", c.GRPC.Port)
	}
	if c.Admin.Port <= 0 || c.Admin.Port > 65535 {
		return fmt.Errorf("invalid admin.port %d", c.Admin.Port)
	}
	if c.GRPC.TLS.Enabled && (c.GRPC.TLS.CertFile == "" || c.GRPC.TLS.KeyFile == "") {
		return fmt.Errorf("grpc.tls requires cert_file and key_file")
	}
	if c.Orchestrator.MaxWorkers <= 0 {
		return fmt.Errorf("orchestrator.max_workers must be positive")
	}
	if c.Orchestrator.MinLatency < 0 || c.Orchestrator.MaxLatency < c.Orchestrator.MinLatency {
		return fmt.Errorf("orchestrator latency bounds are inverted")
	}
	if c.Orchestrator.FailureRate < 0 || c.Orchestrator.FailureRate > 1 {
		return fmt.Errorf("orchestrator.failure_rate must be within [0,1]")
	}
	return nil
}
