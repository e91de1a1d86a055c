// Package config collects runtime settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config is the full runtime configuration. Every field has a working
// default except the OpenRouter key, which is optional: without it the
// editor plans edits heuristically.
type Config struct {
	// Port is the HTTP listen port for serve mode.
	Port int
	// DataDir roots uploads, music, and render outputs.
	DataDir string
	// LogLevel is one of debug, info, warn, error.
	LogLevel string
	// StylesPath optionally overrides the embedded style registry.
	StylesPath string

	FFmpegPath  string
	FFprobePath string

	OpenRouterAPIKey  string
	OpenRouterModel   string
	OpenRouterBaseURL string
}

const (
	defaultPort     = 8000
	defaultDataDir  = "data"
	defaultLogLevel = "info"
)

// FromEnv reads AIVE_* and OPENROUTER_* variables, falling back to
// defaults for anything unset.
func FromEnv() (Config, error) {
	cfg := Config{
		Port:              defaultPort,
		DataDir:           envOr("AIVE_DATA_DIR", defaultDataDir),
		LogLevel:          envOr("AIVE_LOG_LEVEL", defaultLogLevel),
		StylesPath:        os.Getenv("AIVE_STYLES"),
		FFmpegPath:        os.Getenv("AIVE_FFMPEG"),
		FFprobePath:       os.Getenv("AIVE_FFPROBE"),
		OpenRouterAPIKey:  os.Getenv("OPENROUTER_API_KEY"),
		OpenRouterModel:   os.Getenv("OPENROUTER_MODEL"),
		OpenRouterBaseURL: os.Getenv("OPENROUTER_BASE_URL"),
	}

	if raw := os.Getenv("AIVE_PORT"); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil || port < 1 || port > 65535 {
			return Config{}, fmt.Errorf("config: invalid AIVE_PORT %q", raw)
		}
		cfg.Port = port
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
