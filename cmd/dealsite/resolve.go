package main

import (
	"github.com/alnah/go-dealsite/internal/config"
)

// resolveConfig loads the configuration with precedence
// flags > DEALSITE_* env vars > config file > defaults.
// Without --config or DEALSITE_CONFIG, ./dealsite.yaml (or the user config
// dir) is used when present, else the defaults.
func resolveConfig(env *Environment, common *commonFlags, site *siteFlags) (*config.Config, error) {
	ec := loadEnvConfig(env)

	name := common.config
	if name == "" {
		name = ec.ConfigPath
	}
	if name == "" {
		name = config.FindDefault()
	}

	cfg := config.DefaultConfig()
	if name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	applyEnvConfig(ec, cfg)
	if site != nil {
		site.apply(cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolveWorkers picks the worker count: flag, then DEALSITE_WORKERS, then auto.
func resolveWorkers(env *Environment, site *siteFlags) int {
	if site != nil && site.workers > 0 {
		return site.workers
	}
	return loadEnvConfig(env).Workers
}
