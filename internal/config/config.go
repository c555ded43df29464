// Package config handles server configuration: built-in defaults, an
// optional YAML file, and environment overrides, in that order.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Mode selects the default capture strategy.
const (
	ModeBlit   = "blit"
	ModeRender = "render"
)

type Config struct {
	HTTPAddr string `yaml:"http_addr"`
	// DefaultMode is the capture strategy used when a request does not
	// pick one: "blit" or "render".
	DefaultMode string `yaml:"default_mode"`
	// ThumbMaxWidth caps the thumb query parameter.
	ThumbMaxWidth int `yaml:"thumb_max_width"`
	// CaptureRetries is how many times the server retries a transient
	// capture failure before reporting it.
	CaptureRetries int `yaml:"capture_retries"`
	// RateLimitMessages per RateLimitWindowSec per WebSocket connection.
	RateLimitMessages  int `yaml:"rate_limit_messages"`
	RateLimitWindowSec int `yaml:"rate_limit_window_sec"`
}

func defaults() *Config {
	return &Config{
		HTTPAddr:           ":8600",
		DefaultMode:        ModeBlit,
		ThumbMaxWidth:      1024,
		CaptureRetries:     2,
		RateLimitMessages:  60,
		RateLimitWindowSec: 10,
	}
}

// Load builds the effective configuration. A missing file is not an
// error; a malformed one is.
func Load(path string) (*Config, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// defaults + env only
		case err != nil:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	cfg.HTTPAddr = getEnv("WINLENS_HTTP_ADDR", cfg.HTTPAddr)
	cfg.DefaultMode = getEnv("WINLENS_DEFAULT_MODE", cfg.DefaultMode)
	cfg.ThumbMaxWidth = getEnvInt("WINLENS_THUMB_MAX_WIDTH", cfg.ThumbMaxWidth)
	cfg.CaptureRetries = getEnvInt("WINLENS_CAPTURE_RETRIES", cfg.CaptureRetries)
	cfg.RateLimitMessages = getEnvInt("WINLENS_RATE_LIMIT_MESSAGES", cfg.RateLimitMessages)
	cfg.RateLimitWindowSec = getEnvInt("WINLENS_RATE_LIMIT_WINDOW_SEC", cfg.RateLimitWindowSec)

	if cfg.DefaultMode != ModeBlit && cfg.DefaultMode != ModeRender {
		return nil, fmt.Errorf("default_mode %q: must be %q or %q", cfg.DefaultMode, ModeBlit, ModeRender)
	}
	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}
