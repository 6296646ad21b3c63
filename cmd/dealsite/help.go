package main

import (
	"context"
	"fmt"
	"io"
)

// printUsage writes the top-level usage text.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: dealsite <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build      Generate the site into the output directory")
	fmt.Fprintln(w, "  validate   Load and validate deals without writing")
	fmt.Fprintln(w, "  search     Rank deals against a query")
	fmt.Fprintln(w, "  check      Verify internal links of a built site")
	fmt.Fprintln(w, "  config     Print the effective configuration")
	fmt.Fprintln(w, "  completion Generate shell completion script")
	fmt.Fprintln(w, "  version    Print the version")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'dealsite help <command>' for command flags.")
}

// runHelp prints usage for one command, or the top-level usage.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case cmdBuild, cmdValidate, cmdSearch, cmdCheck, cmdConfig:
		printCommandHelp(args[0], env)
	case cmdCompletion:
		printCompletionUsage(env.Stdout)
	case cmdVersion:
		fmt.Fprintln(env.Stdout, "Usage: dealsite version")
	case cmdHelp:
		fmt.Fprintln(env.Stdout, "Usage: dealsite help [command]")
	default:
		fmt.Fprintf(env.Stderr, "unknown command: %s\n", args[0])
		printUsage(env.Stdout)
	}
}

// printCommandHelp prints the flag usage of a site command by asking its
// FlagSet for help.
func printCommandHelp(cmd string, env *Environment) {
	helpEnv := &Environment{
		Now:     env.Now,
		Stdout:  env.Stdout,
		Stderr:  env.Stdout,
		Getenv:  env.Getenv,
		Environ: env.Environ,
	}
	ctx := context.Background()
	args := []string{"--help"}
	switch cmd {
	case cmdBuild:
		_ = runBuild(ctx, args, helpEnv)
	case cmdValidate:
		_ = runValidate(ctx, args, helpEnv)
	case cmdSearch:
		_ = runSearch(ctx, args, helpEnv)
	case cmdCheck:
		_ = runCheck(ctx, args, helpEnv)
	case cmdConfig:
		_ = runConfig(args, helpEnv)
	}
}
