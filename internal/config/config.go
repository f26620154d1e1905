// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds the device settings. Command line flags in cmd/pokedex
// override individual fields after ParseEnv.
type Config struct {
	DBPath             string  `env:"POKEDEX_DB_PATH" envDefault:"./pokedex.db"`
	AssetsDir          string  `env:"POKEDEX_ASSETS_DIR" envDefault:"."`
	Locale             string  `env:"POKEDEX_LOCALE" envDefault:"fr"`
	ShinyRate          float64 `env:"POKEDEX_SHINY_RATE" envDefault:"0.01"`
	StabilizeThreshold int     `env:"POKEDEX_STABILIZE_THRESHOLD" envDefault:"100"`
	ProgressionFile    string  `env:"POKEDEX_PROGRESSION_FILE"`
	Trainer            string  `env:"POKEDEX_TRAINER" envDefault:"red"`
	MusicVolume        float64 `env:"POKEDEX_MUSIC_VOLUME" envDefault:"0.5"`
	ScreenWidth        int     `env:"POKEDEX_SCREEN_WIDTH" envDefault:"480"`
	ScreenHeight       int     `env:"POKEDEX_SCREEN_HEIGHT" envDefault:"320"`
	Seed               int64   `env:"POKEDEX_SEED"`
	OTelEndpoint       string  `env:"POKEDEX_OTEL_ENDPOINT"`
	OTelEnabled        string  `env:"POKEDEX_OTEL_ENABLED"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.DBPath) == "" {
		return fmt.Errorf("db path is required")
	}
	if c.ShinyRate < 0 || c.ShinyRate > 1 {
		return fmt.Errorf("shiny rate must be between 0 and 1, got %v", c.ShinyRate)
	}
	if c.MusicVolume < 0 || c.MusicVolume > 1 {
		return fmt.Errorf("music volume must be between 0 and 1, got %v", c.MusicVolume)
	}
	if c.StabilizeThreshold < 0 {
		return fmt.Errorf("stabilize threshold must not be negative, got %d", c.StabilizeThreshold)
	}
	if c.ScreenWidth < 320 || c.ScreenHeight < 240 {
		return fmt.Errorf("screen must be at least 320x240, got %dx%d", c.ScreenWidth, c.ScreenHeight)
	}
	if strings.TrimSpace(c.Trainer) == "" {
		return fmt.Errorf("trainer is required")
	}
	return nil
}

// TracingEnabled is false when no endpoint is set or tracing is switched off
// explicitly.
func (c Config) TracingEnabled() bool {
	if strings.EqualFold(c.OTelEnabled, "false") {
		return false
	}
	return c.OTelEndpoint != ""
}

// Exitf prints a formatted message to stderr and exits with status 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
