// Package config loads settings for the lowcode command line tools.
//
// Sources are applied in order, later ones winning: built-in defaults, an
// optional YAML file, then LOWCODE_* environment variables
// (LOWCODE_TOKEN, LOWCODE_BASE_URL, LOWCODE_TIMEOUT, LOWCODE_USER_AGENT,
// LOWCODE_LOG_LEVEL, LOWCODE_METRICS_ADDR).
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of every environment variable read by Load
const EnvPrefix = "LOWCODE_"

// Default values
const (
	DefaultBaseURL  = "https://api.lowcodeapilib.com"
	DefaultTimeout  = 30 * time.Second
	DefaultLogLevel = "info"
)

// Config holds command settings
type Config struct {
	Token       string        `koanf:"token" json:"token"`
	BaseURL     string        `koanf:"base_url" json:"base_url"`
	Timeout     time.Duration `koanf:"timeout" json:"timeout"`
	UserAgent   string        `koanf:"user_agent" json:"user_agent"`
	LogLevel    string        `koanf:"log_level" json:"log_level"`
	MetricsAddr string        `koanf:"metrics_addr" json:"metrics_addr"`
}

// String never includes the token.
func (c Config) String() string {
	return fmt.Sprintf("Config(base_url=%s, timeout=%s, log_level=%s)", c.BaseURL, c.Timeout, c.LogLevel)
}

// GoString keeps %#v from dumping the token.
func (c Config) GoString() string {
	return c.String()
}

// Load reads defaults, then path (skipped when empty), then the environment,
// and validates the result.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(defaults(), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	// LOWCODE_BASE_URL -> base_url
	transform := func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", transform), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the token is set and the remaining fields are well formed
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Token, validation.Required.Error("is required (set LOWCODE_TOKEN)")),
		validation.Field(&c.BaseURL, validation.Required, is.RequestURL),
		validation.Field(&c.Timeout, validation.Min(time.Duration(0)).Exclusive()),
		validation.Field(&c.LogLevel, validation.In("debug", "info", "warn", "error")),
	)
}

// SlogLevel maps LogLevel to a slog level, defaulting to Info
func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// IsMissingToken reports whether err is a validation failure for the token only
func IsMissingToken(err error) bool {
	var errs validation.Errors
	if !errors.As(err, &errs) {
		return false
	}
	_, ok := errs["token"]
	return ok && len(errs) == 1
}

// mapProvider feeds a static map into koanf
type mapProvider map[string]any

func (m mapProvider) ReadBytes() ([]byte, error) {
	return nil, errors.New("config: map provider does not support ReadBytes")
}

func (m mapProvider) Read() (map[string]any, error) {
	return m, nil
}

func defaults() mapProvider {
	return mapProvider{
		"base_url":  DefaultBaseURL,
		"timeout":   DefaultTimeout.String(),
		"log_level": DefaultLogLevel,
	}
}
