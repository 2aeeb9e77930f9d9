// Package config loads service configuration.
//
// Precedence, lowest first: Default(), the optional YAML file, then LOCF_*
// environment variables (LOCF_SERVER_ADDR, LOCF_FILL_POLICY, ...).
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"github.com/katalvlaran/locf/na"
)

// EnvPrefix is the prefix of every environment variable.
const EnvPrefix = "LOCF"

// Config represents the complete application configuration.
//
// Environment keys are derived from the prefix and the field names
// (split_words), so only LOCF_-prefixed variables are read.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Fill    FillConfig    `yaml:"fill"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	Addr            string        `yaml:"addr" split_words:"true" validate:"required"`
	ReadTimeout     time.Duration `yaml:"read_timeout" split_words:"true" validate:"gt=0"`
	WriteTimeout    time.Duration `yaml:"write_timeout" split_words:"true" validate:"gt=0"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" split_words:"true" validate:"gt=0"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" split_words:"true" validate:"gt=0"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes" split_words:"true" validate:"gt=0"`
	MaxValues       int           `yaml:"max_values" split_words:"true" validate:"gt=0"`
}

// FillConfig controls how requests are imputed.
// Workers == 0 means GOMAXPROCS.
type FillConfig struct {
	Workers           int    `yaml:"workers" split_words:"true" validate:"gte=0"`
	MinChunk          int    `yaml:"min_chunk" split_words:"true" validate:"gt=0"`
	ParallelThreshold int    `yaml:"parallel_threshold" split_words:"true" validate:"gt=0"`
	Policy            string `yaml:"policy" split_words:"true" validate:"policy"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level" split_words:"true" validate:"loglevel"`
	Format string `yaml:"format" split_words:"true" validate:"logformat"`
}

// LogLevels are the accepted Logging.Level names, matched case-insensitively.
var LogLevels = []string{"debug", "info", "warn", "warning", "error"}

// LogFormats are the accepted Logging.Format names, matched case-insensitively.
var LogFormats = []string{"json", "text"}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			MaxBodyBytes:    32 << 20,
			MaxValues:       1_000_000,
		},
		Fill: FillConfig{
			Workers:           0,
			MinChunk:          1 << 14,
			ParallelThreshold: 1 << 18,
			Policy:            na.NaNMissing.String(),
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load applies the YAML file at path (skipped when path is empty) and the
// environment on top of Default, then validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	// No default tags: only variables that are set touch the struct.
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate checks value ranges and enumerations. Enumerated names accept
// exactly what na.ParsePolicy and logging.ParseLevel accept.
func (c *Config) Validate() error {
	v := validator.New()
	if err := v.RegisterValidation("policy", func(fl validator.FieldLevel) bool {
		_, err := na.ParsePolicy(fl.Field().String())
		return err == nil
	}); err != nil {
		return err
	}
	if err := v.RegisterValidation("loglevel", oneOfFold(LogLevels)); err != nil {
		return err
	}
	if err := v.RegisterValidation("logformat", oneOfFold(LogFormats)); err != nil {
		return err
	}

	return v.Struct(c)
}

func oneOfFold(names []string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		s := strings.TrimSpace(fl.Field().String())
		for _, n := range names {
			if strings.EqualFold(s, n) {
				return true
			}
		}

		return false
	}
}

// ParsedPolicy returns the missing-value policy. Validate guarantees the
// name is known; an unknown name falls back to NaNMissing.
func (c FillConfig) ParsedPolicy() na.Policy {
	p, err := na.ParsePolicy(c.Policy)
	if err != nil {
		return na.NaNMissing
	}

	return p
}
