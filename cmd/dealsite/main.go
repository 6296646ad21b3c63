package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/sahilm/fuzzy"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/alnah/go-dealsite/internal/hints"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Command names.
const (
	cmdBuild    = "build"
	cmdValidate = "validate"
	cmdSearch   = "search"
	cmdCheck    = "check"
	cmdConfig   = "config"
	cmdVersion  = "version"
	cmdHelp     = "help"
)

// commands lists every command name, in help order.
var commands = []string{cmdBuild, cmdValidate, cmdSearch, cmdCheck, cmdConfig, cmdVersion, cmdHelp, cmdCompletion}

func main() {
	// Error ignored: maxprocs.Set only fails on an invalid GOMAXPROCS value,
	// in which case the runtime default applies.
	undo, _ := maxprocs.Set(maxprocs.Logger(func(string, ...any) {}))
	code := runMain(os.Args, DefaultEnv())
	undo()
	os.Exit(code)
}

// runMain dispatches to a command and maps its error to an exit code.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	warnUnknownEnvVars(env)

	ctx, stop := notifyContext(context.Background())
	defer stop()

	cmd, rest := args[1], args[2:]
	var err error

	switch cmd {
	case cmdBuild:
		err = runBuild(ctx, rest, env)
	case cmdValidate:
		err = runValidate(ctx, rest, env)
	case cmdSearch:
		err = runSearch(ctx, rest, env)
	case cmdCheck:
		err = runCheck(ctx, rest, env)
	case cmdConfig:
		err = runConfig(rest, env)
	case cmdCompletion:
		err = runCompletion(rest, env)
	case cmdVersion:
		fmt.Fprintf(env.Stdout, "dealsite %s\n", Version)
	case cmdHelp, "-h", "--help":
		runHelp(rest, env)
	default:
		fmt.Fprintf(env.Stderr, "unknown command: %s%s\n", cmd, hints.ForSuggestions(suggest(cmd, commands)))
		printUsage(env.Stderr)
		return ExitUsage
	}

	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err))
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// maxSuggestions caps "did you mean" candidates.
const maxSuggestions = 3

// suggest returns the candidates closest to input, best first.
func suggest(input string, candidates []string) []string {
	matches := fuzzy.Find(strings.ToLower(input), candidates)
	out := make([]string, 0, maxSuggestions)
	for _, m := range matches {
		if len(out) == maxSuggestions {
			break
		}
		out = append(out, m.Str)
	}
	return out
}
