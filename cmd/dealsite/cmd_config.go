package main

import (
	"errors"
	"fmt"

	"github.com/alnah/go-dealsite/internal/yamlutil"
)

// runConfig prints the effective configuration after env vars and flags
// are applied.
func runConfig(args []string, env *Environment) error {
	var (
		common commonFlags
		site   siteFlags
	)

	fs := newFlagSet(cmdConfig, "[flags]", env.Stderr)
	addCommonFlags(fs, &common)
	addSiteFlags(fs, &site)

	if err := parseFlags(fs, args); err != nil {
		if errors.Is(err, errHelp) {
			return nil
		}
		return err
	}

	cfg, err := resolveConfig(env, &common, &site)
	if err != nil {
		return err
	}
	out, err := yamlutil.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	_, err = env.Stdout.Write(out)
	return err
}
