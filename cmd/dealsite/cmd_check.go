package main

import (
	"context"
	"errors"
	"fmt"
)

// runCheck verifies internal links in a built site.
func runCheck(ctx context.Context, args []string, env *Environment) error {
	var common commonFlags

	fs := newFlagSet(cmdCheck, "[flags] [dir]", env.Stderr)
	addCommonFlags(fs, &common)

	if err := parseFlags(fs, args); err != nil {
		if errors.Is(err, errHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() > 1 {
		return fmt.Errorf("%w: check takes at most one directory, got %q", ErrUsage, fs.Args())
	}

	dir := fs.Arg(0)
	if dir == "" {
		cfg, err := resolveConfig(env, &common, nil)
		if err != nil {
			return err
		}
		dir = cfg.Output.Dir
	}
	return reportLinks(ctx, env, dir, common.quiet)
}
