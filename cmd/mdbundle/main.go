package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

// ErrUnknownCommand indicates an unrecognized subcommand.
var ErrUnknownCommand = errors.New("unknown command")

func main() {
	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain dispatches to a command and returns the process exit code.
// args includes the program name. With no command, or when the first
// argument is a flag, build runs.
func runMain(args []string, env *Environment) int {
	if len(args) > 0 {
		args = args[1:]
	}

	cmd := "build"
	if len(args) > 0 && isCommand(args[0]) {
		cmd, args = args[0], args[1:]
	} else if len(args) > 0 && !isFlag(args[0]) {
		fmt.Fprintf(env.Stderr, "%v: %s\n", ErrUnknownCommand, args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}

	switch cmd {
	case "version":
		fmt.Fprintf(env.Stdout, "mdbundle %s\n", Version)
		return ExitSuccess
	case "help":
		if !runHelp(args, env) {
			return ExitUsage
		}
		return ExitSuccess
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	if err := runBuild(ctx, args, env); err != nil {
		fmt.Fprintln(env.Stderr, "error:", err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// isCommand reports whether s names a subcommand.
func isCommand(s string) bool {
	switch s {
	case "build", "version", "help":
		return true
	}
	return false
}

func isFlag(s string) bool {
	return len(s) > 1 && s[0] == '-'
}

// setupMaxProcs sizes GOMAXPROCS to the container CPU quota, logging the
// decision only in verbose mode.
// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
// in which case Go runtime defaults apply and the program continues safely.
func setupMaxProcs(verbose bool, env *Environment) func() {
	logf := func(string, ...interface{}) {}
	if verbose {
		logf = func(format string, args ...interface{}) {
			fmt.Fprintf(env.Stderr, format+"\n", args...)
		}
	}
	undo, _ := maxprocs.Set(maxprocs.Logger(logf))
	return undo
}
