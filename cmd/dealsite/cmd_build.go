package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	flag "github.com/spf13/pflag"

	"github.com/alnah/go-dealsite/internal/generator"
	"github.com/alnah/go-dealsite/internal/linkcheck"
)

// buildFlags holds every flag of the build command.
type buildFlags struct {
	common   commonFlags
	site     siteFlags
	clean    bool
	noMinify bool
	check    bool
}

// addBuildFlags registers the build command flags on fs.
func addBuildFlags(fs *flag.FlagSet, f *buildFlags) {
	addCommonFlags(fs, &f.common)
	addSiteFlags(fs, &f.site)
	fs.BoolVar(&f.clean, "clean", false, "Remove the output directory before writing")
	fs.BoolVar(&f.noMinify, "no-minify", false, "Write pages without whitespace minification")
	fs.BoolVar(&f.check, "check", false, "Verify internal links after building")
}

// runBuild generates the site into output.dir.
func runBuild(ctx context.Context, args []string, env *Environment) error {
	var f buildFlags
	fs := newFlagSet(cmdBuild, "[flags]", env.Stderr)
	addBuildFlags(fs, &f)

	if err := parseFlags(fs, args); err != nil {
		if errors.Is(err, errHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: build takes no arguments, got %q", ErrUsage, fs.Args())
	}

	cfg, err := resolveConfig(env, &f.common, &f.site)
	if err != nil {
		return err
	}
	if f.clean {
		cfg.Output.Clean = true
	}
	if f.noMinify {
		cfg.Output.Minify = false
	}

	logger := newLogger(env.Stderr, f.common.quiet, f.common.verbose)
	gen, err := generator.New(cfg,
		generator.WithLogger(logger),
		generator.WithWorkers(resolveWorkers(env, &f.site)),
		generator.WithClock(env.Now),
	)
	if err != nil {
		return err
	}

	result, err := gen.Build(ctx)
	if err != nil {
		return err
	}

	if f.common.verbose {
		for _, f := range result.Files {
			fmt.Fprintf(env.Stdout, "Created %s (%s)\n", f.Path, humanize.Bytes(uint64(f.Size)))
		}
	}
	if !f.common.quiet {
		fmt.Fprintf(env.Stdout, "Built %d deals in %d categories: %d files, %s in %s -> %s\n",
			result.Deals, result.Categories, len(result.Files),
			humanize.Bytes(uint64(result.Bytes())), result.Duration.Round(time.Millisecond), result.OutputDir)
	}

	if !f.check {
		return nil
	}
	return reportLinks(ctx, env, result.OutputDir, f.common.quiet)
}

// reportLinks runs the link checker on dir and prints a one-line summary.
func reportLinks(ctx context.Context, env *Environment, dir string, quiet bool) error {
	report, err := linkcheck.Check(ctx, dir)
	if err != nil {
		return err
	}
	if err := report.Err(); err != nil {
		return err
	}
	if !quiet {
		fmt.Fprintf(env.Stdout, "Checked %d links in %d pages: all resolve\n", report.Links, report.Pages)
	}
	return nil
}
