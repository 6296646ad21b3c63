package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/alnah/go-dealsite/internal/generator"
)

// runValidate loads and validates every deal without writing output.
func runValidate(ctx context.Context, args []string, env *Environment) error {
	var (
		common commonFlags
		site   siteFlags
	)

	fs := newFlagSet(cmdValidate, "[flags]", env.Stderr)
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

	gen, err := generator.New(cfg,
		generator.WithLogger(newLogger(env.Stderr, common.quiet, common.verbose)),
		generator.WithClock(env.Now),
	)
	if err != nil {
		return err
	}
	cat, err := gen.Load(ctx)
	if err != nil {
		return err
	}

	if !common.quiet {
		fmt.Fprintf(env.Stdout, "OK: %d deals in %d categories\n", len(cat.Deals), len(cat.Categories))
	}
	return nil
}
