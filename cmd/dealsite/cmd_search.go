package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alnah/go-dealsite/internal/generator"
	"github.com/alnah/go-dealsite/internal/hints"
	"github.com/alnah/go-dealsite/internal/search"
	"github.com/alnah/go-dealsite/internal/site"
)

// runSearch ranks the catalog against a query, the same way the site's
// search box does.
func runSearch(ctx context.Context, args []string, env *Environment) error {
	var (
		common commonFlags
		sf     siteFlags
	)

	fs := newFlagSet(cmdSearch, "[flags] <query>", env.Stderr)
	addCommonFlags(fs, &common)
	addSiteFlags(fs, &sf)

	if err := parseFlags(fs, args); err != nil {
		if errors.Is(err, errHelp) {
			return nil
		}
		return err
	}
	query := strings.Join(fs.Args(), " ")
	if strings.TrimSpace(query) == "" {
		return fmt.Errorf("%w: search requires a query", ErrUsage)
	}

	cfg, err := resolveConfig(env, &common, &sf)
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

	entries := site.SearchIndex("", cat.Deals)
	matches := search.Search(query, search.Records(entries))
	if len(matches) == 0 {
		companies := make([]string, len(entries))
		for i, e := range entries {
			companies[i] = e.Company
		}
		fmt.Fprintf(env.Stdout, "No deals found for %q.%s\n", query, hints.ForSuggestions(suggest(query, companies)))
		return nil
	}

	for i, m := range matches {
		e := entries[m.Index]
		fmt.Fprintf(env.Stdout, "%d. %s (%s) - %s\n", i+1, e.Company, e.Category, e.Benefit)
		if common.verbose {
			fmt.Fprintf(env.Stdout, "   score %d, %s\n", m.Score, e.URL)
		}
	}
	return nil
}
