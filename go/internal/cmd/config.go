package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port            string        `yaml:"port"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
		AllowedOrigins  []string      `yaml:"allowed_origins"`
	} `yaml:"server"`

	Log struct {
		Level  string `yaml:"level"`
		Pretty bool   `yaml:"pretty"`
	} `yaml:"log"`

	RateLimit struct {
		Enabled   bool          `yaml:"enabled"`
		RPS       float64       `yaml:"rps"`
		Burst     int           `yaml:"burst"`
		KeyHeader string        `yaml:"key_header"`
		IdleTTL   time.Duration `yaml:"idle_ttl"`
		RedisAddr string        `yaml:"redis_addr"`
		StatsTTL  time.Duration `yaml:"stats_ttl"`
	} `yaml:"rate_limit"`

	Events struct {
		NatsURL    string `yaml:"nats_url"`
		StreamName string `yaml:"stream_name"`
	} `yaml:"events"`
}

func defaultConfig() *Config {
	var cfg Config
	cfg.Server.Port = "8080"
	cfg.Server.ShutdownTimeout = 10 * time.Second
	cfg.Server.AllowedOrigins = []string{"*"}
	cfg.Log.Level = "info"
	cfg.RateLimit.Enabled = true
	cfg.RateLimit.RPS = 20
	cfg.RateLimit.Burst = 40
	cfg.RateLimit.KeyHeader = "X-API-Key"
	cfg.RateLimit.IdleTTL = 15 * time.Minute
	cfg.RateLimit.StatsTTL = 24 * time.Hour
	cfg.Events.StreamName = "ATHLETE_EVENTS"
	return &cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

// loadConfig reads the YAML file at path over the defaults and then applies
// environment overrides. A missing file is not an error.
func loadConfig(path string) (*Config, error) {
	config := defaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	config.Server.Port = getEnv("PORT", config.Server.Port)
	config.Log.Level = getEnv("LOG_LEVEL", config.Log.Level)
	config.Log.Pretty = getEnvAsBool("LOG_PRETTY", config.Log.Pretty)
	config.RateLimit.Enabled = getEnvAsBool("RATE_LIMIT_ENABLED", config.RateLimit.Enabled)
	config.RateLimit.RPS = getEnvAsFloat("RATE_LIMIT_RPS", config.RateLimit.RPS)
	config.RateLimit.Burst = getEnvAsInt("RATE_LIMIT_BURST", config.RateLimit.Burst)
	config.RateLimit.RedisAddr = getEnv("RATE_LIMIT_REDIS_ADDR", config.RateLimit.RedisAddr)
	config.Events.NatsURL = getEnv("NATS_URL", config.Events.NatsURL)

	if config.RateLimit.Enabled && (config.RateLimit.RPS <= 0 || config.RateLimit.Burst < 1) {
		return nil, errors.New("rate_limit: rps must be positive and burst at least 1")
	}

	return config, nil
}
