package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = errors.New("unsupported shell")

const cmdCompletion = "completion"

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long   string   // --output
	Short  string   // -o (empty if none)
	Desc   string   // help text
	IsBool bool     // takes no value
	Values []string // for enum flags
	IsDir  bool     // completes directories
	Glob   string   // completes files matching the pattern
}

// commandDef describes a command for completion.
type commandDef struct {
	Name  string
	Desc  string
	Flags []flagDef
}

// completionMeta holds completion-specific metadata for flags.
// Flag names and descriptions come from the FlagSet.
var completionMeta = map[string]flagDef{
	"engine": {Values: []string{"basic", "goldmark"}},
	"config": {Glob: "*.yaml"},
	"deals":  {IsDir: true},
	"output": {IsDir: true},
}

// extractFlags converts a FlagSet into completion definitions.
func extractFlags(fs *flag.FlagSet) []flagDef {
	var flags []flagDef
	fs.VisitAll(func(f *flag.Flag) {
		fd := completionMeta[f.Name]
		fd.Long = f.Name
		fd.Short = f.Shorthand
		fd.Desc = f.Usage
		fd.IsBool = f.Value.Type() == "bool"
		flags = append(flags, fd)
	})
	return flags
}

// getCommands returns the command registry for completion.
// Flags are extracted from the same registration the commands use.
func getCommands() []commandDef {
	site := func(name string) *flag.FlagSet {
		fs := flag.NewFlagSet(name, flag.ContinueOnError)
		addCommonFlags(fs, &commonFlags{})
		addSiteFlags(fs, &siteFlags{})
		return fs
	}

	build := flag.NewFlagSet(cmdBuild, flag.ContinueOnError)
	addBuildFlags(build, &buildFlags{})
	check := flag.NewFlagSet(cmdCheck, flag.ContinueOnError)
	addCommonFlags(check, &commonFlags{})

	return []commandDef{
		{Name: cmdBuild, Desc: "Generate the site", Flags: extractFlags(build)},
		{Name: cmdValidate, Desc: "Validate deals", Flags: extractFlags(site(cmdValidate))},
		{Name: cmdSearch, Desc: "Search deals", Flags: extractFlags(site(cmdSearch))},
		{Name: cmdCheck, Desc: "Check internal links", Flags: extractFlags(check)},
		{Name: cmdConfig, Desc: "Print effective configuration", Flags: extractFlags(site(cmdConfig))},
		{Name: cmdVersion, Desc: "Show version information"},
		{Name: cmdHelp, Desc: "Show help for a command"},
		{Name: cmdCompletion, Desc: "Generate shell completion script"},
	}
}

// GenerateCompletion writes shell completion script to w.
func GenerateCompletion(w io.Writer, shell Shell) error {
	switch shell {
	case ShellBash:
		return generateBash(w, getCommands())
	case ShellZsh:
		return generateZsh(w, getCommands())
	case ShellFish:
		return generateFish(w, getCommands())
	default:
		return fmt.Errorf("%w: %q (supported: bash, zsh, fish)", ErrUnsupportedShell, shell)
	}
}

// runCompletion handles the completion command.
func runCompletion(args []string, env *Environment) error {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return nil
	}
	if err := GenerateCompletion(env.Stdout, Shell(args[0])); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	return nil
}

func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: dealsite completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells: bash, zsh, fish")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Bash:  eval \"$(dealsite completion bash)\"")
	fmt.Fprintln(w, "  Zsh:   eval \"$(dealsite completion zsh)\"")
	fmt.Fprintln(w, "  Fish:  dealsite completion fish > ~/.config/fish/completions/dealsite.fish")
}

func commandNames(cmds []commandDef) string {
	names := make([]string, len(cmds))
	for i, c := range cmds {
		names[i] = c.Name
	}
	return strings.Join(names, " ")
}

func generateBash(w io.Writer, cmds []commandDef) error {
	var b strings.Builder
	b.WriteString("# bash completion for dealsite\n")
	b.WriteString("_dealsite() {\n")
	b.WriteString("  local cur prev cmd\n")
	b.WriteString("  cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("  prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n")
	b.WriteString("  cmd=\"${COMP_WORDS[1]}\"\n")
	b.WriteString("  if [[ $COMP_CWORD -eq 1 ]]; then\n")
	fmt.Fprintf(&b, "    COMPREPLY=($(compgen -W %q -- \"$cur\"))\n", commandNames(cmds))
	b.WriteString("    return\n  fi\n")
	b.WriteString("  case \"$prev\" in\n")
	for _, fd := range uniqueValueFlags(cmds) {
		fmt.Fprintf(&b, "    %s)\n", flagPattern(fd))
		switch {
		case len(fd.Values) > 0:
			fmt.Fprintf(&b, "      COMPREPLY=($(compgen -W %q -- \"$cur\"))\n", strings.Join(fd.Values, " "))
		case fd.IsDir:
			b.WriteString("      COMPREPLY=($(compgen -d -- \"$cur\"))\n")
		default:
			b.WriteString("      COMPREPLY=($(compgen -f -- \"$cur\"))\n")
		}
		b.WriteString("      return\n      ;;\n")
	}
	b.WriteString("  esac\n")
	b.WriteString("  case \"$cmd\" in\n")
	for _, c := range cmds {
		if len(c.Flags) == 0 {
			continue
		}
		fmt.Fprintf(&b, "    %s)\n", c.Name)
		fmt.Fprintf(&b, "      COMPREPLY=($(compgen -W %q -- \"$cur\"))\n", flagWords(c.Flags))
		b.WriteString("      ;;\n")
	}
	b.WriteString("  esac\n}\n")
	b.WriteString("complete -F _dealsite dealsite\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func generateZsh(w io.Writer, cmds []commandDef) error {
	var b strings.Builder
	b.WriteString("#compdef dealsite\n\n")
	b.WriteString("_dealsite() {\n")
	b.WriteString("  local -a commands\n  commands=(\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "    '%s:%s'\n", c.Name, zshEscape(c.Desc))
	}
	b.WriteString("  )\n")
	b.WriteString("  if (( CURRENT == 2 )); then\n    _describe 'command' commands\n    return\n  fi\n")
	b.WriteString("  case $words[2] in\n")
	for _, c := range cmds {
		if len(c.Flags) == 0 {
			continue
		}
		fmt.Fprintf(&b, "    %s)\n      _arguments \\\n", c.Name)
		for _, fd := range c.Flags {
			fmt.Fprintf(&b, "        '--%s[%s]%s' \\\n", fd.Long, zshEscape(fd.Desc), zshAction(fd))
		}
		b.WriteString("        '*:file:_files'\n      ;;\n")
	}
	b.WriteString("  esac\n}\n\n")
	b.WriteString("compdef _dealsite dealsite\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func generateFish(w io.Writer, cmds []commandDef) error {
	var b strings.Builder
	b.WriteString("# fish completion for dealsite\n")
	b.WriteString("complete -c dealsite -f\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "complete -c dealsite -n '__fish_use_subcommand' -a %s -d '%s'\n", c.Name, fishEscape(c.Desc))
	}
	for _, c := range cmds {
		for _, fd := range c.Flags {
			fmt.Fprintf(&b, "complete -c dealsite -n '__fish_seen_subcommand_from %s' -l %s", c.Name, fd.Long)
			if fd.Short != "" {
				fmt.Fprintf(&b, " -s %s", fd.Short)
			}
			switch {
			case fd.IsBool:
			case len(fd.Values) > 0:
				fmt.Fprintf(&b, " -x -a '%s'", strings.Join(fd.Values, " "))
			case fd.IsDir:
				b.WriteString(" -x -a '(__fish_complete_directories)'")
			default:
				b.WriteString(" -r -F")
			}
			fmt.Fprintf(&b, " -d '%s'\n", fishEscape(fd.Desc))
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// uniqueValueFlags returns every flag taking a value, once per name.
func uniqueValueFlags(cmds []commandDef) []flagDef {
	seen := make(map[string]bool)
	var out []flagDef
	for _, c := range cmds {
		for _, fd := range c.Flags {
			if fd.IsBool || seen[fd.Long] {
				continue
			}
			seen[fd.Long] = true
			out = append(out, fd)
		}
	}
	return out
}

func flagPattern(fd flagDef) string {
	if fd.Short != "" {
		return "--" + fd.Long + "|-" + fd.Short
	}
	return "--" + fd.Long
}

func flagWords(flags []flagDef) string {
	words := make([]string, 0, len(flags)*2)
	for _, fd := range flags {
		words = append(words, "--"+fd.Long)
		if fd.Short != "" {
			words = append(words, "-"+fd.Short)
		}
	}
	return strings.Join(words, " ")
}

func zshAction(fd flagDef) string {
	switch {
	case fd.IsBool:
		return ""
	case len(fd.Values) > 0:
		return ":value:(" + strings.Join(fd.Values, " ") + ")"
	case fd.IsDir:
		return ":directory:_files -/"
	case fd.Glob != "":
		return ":file:_files -g '" + fd.Glob + "'"
	default:
		return ":value:"
	}
}

func zshEscape(s string) string {
	r := strings.NewReplacer("'", "'\\''", "[", "\\[", "]", "\\]", ":", "\\:")
	return r.Replace(s)
}

func fishEscape(s string) string {
	return strings.ReplaceAll(s, "'", "\\'")
}
