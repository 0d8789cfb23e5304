package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Configure GOMAXPROCS before worker sizing happens.
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if hasVerboseFlag(os.Args[1:]) {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	os.Exit(runMain(os.Args, DefaultEnv()))
}

// hasVerboseFlag scans raw arguments for the verbose flag before full
// parsing so GOMAXPROCS adjustments can be logged.
func hasVerboseFlag(args []string) bool {
	for _, a := range args {
		if a == "-v" || a == "--verbose" {
			return true
		}
	}
	return false
}

// isCommand reports whether s names a known subcommand.
func isCommand(s string) bool {
	switch s {
	case "convert", "watch", "inspect", "completion", "version", "help":
		return true
	}
	return false
}

// looksLikeMarkdown reports whether the argument is a markdown file path.
// Used to detect legacy invocations that pass files without a command.
func looksLikeMarkdown(s string) bool {
	return strings.HasSuffix(s, ".md") || strings.HasSuffix(s, ".markdown")
}

// runMain dispatches to the requested command and returns the process
// exit code. args is the full argument vector including the program name.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd, rest := args[1], args[2:]

	switch {
	case cmd == "version":
		fmt.Fprintf(env.Stdout, "md2xlsx %s\n", Version)
		return ExitSuccess

	case cmd == "help":
		runHelp(rest, &Dependencies{Now: env.Now, Stdout: env.Stdout, Stderr: env.Stderr})
		return ExitSuccess

	case cmd == "completion":
		if err := runCompletion(rest, env); err != nil {
			fmt.Fprintf(env.Stderr, "Error: %v\n", err)
			return exitCodeFor(err)
		}
		return ExitSuccess

	case cmd == "inspect":
		return runInspectCmd(rest, env)

	case cmd == "convert":
		return runConvertCmd(rest, env)

	case cmd == "watch":
		return runWatchCmd(rest, env)

	case looksLikeMarkdown(cmd):
		// Legacy direct-file invocation: md2xlsx notes.md
		fmt.Fprintln(env.Stderr, "DEPRECATED: pass files to the convert command: md2xlsx convert <file>")
		return runConvertCmd(args[1:], env)

	default:
		fmt.Fprintf(env.Stderr, "unknown command: %s\n", cmd)
		printUsage(env.Stderr)
		return ExitUsage
	}
}

// runConvertCmd parses convert flags, runs the conversion, and maps the
// outcome to an exit code.
func runConvertCmd(args []string, env *Environment) int {
	flags, positional, err := parseConvertFlags(args)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintf(env.Stderr, "Error: %v\n", err)
		return ExitUsage
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	if err := runConvert(ctx, positional, flags, env); err != nil {
		fmt.Fprintf(env.Stderr, "Error: %v%s\n", err, hintFor(err))
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// runWatchCmd parses watch flags, starts the watch loop, and maps the
// outcome to an exit code.
func runWatchCmd(args []string, env *Environment) int {
	flags, positional, err := parseWatchFlags(args)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintf(env.Stderr, "Error: %v\n", err)
		return ExitUsage
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	if err := runWatch(ctx, positional, flags, env); err != nil {
		fmt.Fprintf(env.Stderr, "Error: %v%s\n", err, hintFor(err))
		return exitCodeFor(err)
	}
	return ExitSuccess
}
