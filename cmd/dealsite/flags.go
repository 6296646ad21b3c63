package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-dealsite/internal/config"
)

// ErrUsage marks invalid command-line arguments.
var ErrUsage = errors.New("invalid usage")

// commonFlags holds flags shared by every site command.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// addCommonFlags registers the shared flags on fs.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "Config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "Only print errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "Print debug output and every written file")
}

// siteFlags holds flags that override the loaded configuration.
type siteFlags struct {
	deals   string
	output  string
	baseURL string
	engine  string
	workers int
	lenient bool
}

// addSiteFlags registers the configuration override flags on fs.
func addSiteFlags(fs *flag.FlagSet, f *siteFlags) {
	fs.StringVarP(&f.deals, "deals", "d", "", "Deal sources directory (overrides input.dealsDir)")
	fs.StringVarP(&f.output, "output", "o", "", "Output directory (overrides output.dir)")
	fs.StringVar(&f.baseURL, "base-url", "", "Absolute site URL (overrides site.baseURL)")
	fs.StringVar(&f.engine, "engine", "", "Markdown engine: basic or goldmark")
	fs.IntVarP(&f.workers, "workers", "w", 0, "Parallel render workers (0 = auto)")
	fs.BoolVar(&f.lenient, "lenient", false, "Skip invalid deals instead of failing")
}

// apply overrides cfg with every flag that was set.
func (f *siteFlags) apply(cfg *config.Config) {
	if f.deals != "" {
		cfg.Input.DealsDir = f.deals
	}
	if f.output != "" {
		cfg.Output.Dir = f.output
	}
	if f.baseURL != "" {
		cfg.Site.BaseURL = f.baseURL
	}
	if f.engine != "" {
		cfg.Markdown.Engine = f.engine
	}
	if f.lenient {
		cfg.Validation.Strict = false
	}
}

// newFlagSet returns a FlagSet that reports errors instead of exiting.
func newFlagSet(name, usage string, w io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(w)
	fs.SortFlags = false
	fs.Usage = func() {
		fmt.Fprintf(w, "Usage: dealsite %s %s\n\nFlags:\n", name, usage)
		fs.PrintDefaults()
	}
	return fs
}

// parseFlags parses args and wraps failures as usage errors.
// A help request returns errHelp so callers can exit cleanly.
func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return errHelp
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	return nil
}

// errHelp is returned by parseFlags after -h/--help printed usage.
var errHelp = errors.New("help requested")
