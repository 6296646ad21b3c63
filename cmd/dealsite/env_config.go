package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alnah/go-dealsite/internal/config"
)

// envPrefix starts every recognized environment variable.
const envPrefix = "DEALSITE_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without editing the YAML file.
type envConfig struct {
	ConfigPath string // DEALSITE_CONFIG: config file path
	DealsDir   string // DEALSITE_DEALS_DIR: deal sources directory
	OutputDir  string // DEALSITE_OUTPUT_DIR: output directory
	BaseURL    string // DEALSITE_BASE_URL: absolute site URL
	Year       string // DEALSITE_YEAR: "auto" or YYYY
	Engine     string // DEALSITE_ENGINE: basic or goldmark
	Workers    int    // DEALSITE_WORKERS: parallel workers
}

// knownEnvVars lists valid DEALSITE_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"DEALSITE_CONFIG":     true,
	"DEALSITE_DEALS_DIR":  true,
	"DEALSITE_OUTPUT_DIR": true,
	"DEALSITE_BASE_URL":   true,
	"DEALSITE_YEAR":       true,
	"DEALSITE_ENGINE":     true,
	"DEALSITE_WORKERS":    true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig(env *Environment) *envConfig {
	cfg := &envConfig{
		ConfigPath: env.Getenv("DEALSITE_CONFIG"),
		DealsDir:   env.Getenv("DEALSITE_DEALS_DIR"),
		OutputDir:  env.Getenv("DEALSITE_OUTPUT_DIR"),
		BaseURL:    env.Getenv("DEALSITE_BASE_URL"),
		Year:       env.Getenv("DEALSITE_YEAR"),
		Engine:     env.Getenv("DEALSITE_ENGINE"),
	}

	if workers := env.Getenv("DEALSITE_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars prints a warning for each unrecognized DEALSITE_*
// variable. Helps catch typos like DEALSITE_OUTPUTDIR.
func warnUnknownEnvVars(env *Environment) {
	known := make([]string, 0, len(knownEnvVars))
	for k := range knownEnvVars {
		known = append(known, k)
	}

	for _, kv := range env.Environ() {
		if !strings.HasPrefix(kv, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(kv, "=")
		if knownEnvVars[name] {
			continue
		}
		fmt.Fprintf(env.Stderr, "warning: unknown environment variable %s (typo?)", name)
		if s := suggest(name, known); len(s) > 0 {
			fmt.Fprintf(env.Stderr, " did you mean %s?", s[0])
		}
		fmt.Fprintln(env.Stderr)
	}
}

// applyEnvConfig overrides config values with set environment variables.
// Precedence: CLI flags > env vars > config file > defaults
// (CLI flags are applied afterwards).
func applyEnvConfig(e *envConfig, cfg *config.Config) {
	if e.DealsDir != "" {
		cfg.Input.DealsDir = e.DealsDir
	}
	if e.OutputDir != "" {
		cfg.Output.Dir = e.OutputDir
	}
	if e.BaseURL != "" {
		cfg.Site.BaseURL = e.BaseURL
	}
	if e.Year != "" {
		cfg.Site.Year = e.Year
	}
	if e.Engine != "" {
		cfg.Markdown.Engine = e.Engine
	}
}
