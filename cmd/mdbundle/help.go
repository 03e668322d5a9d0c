package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdbundle [command] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build      Bundle the book into PDF and markdown (default)")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'mdbundle help <command>' for details on a specific command.")
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdbundle [build] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Read the table of contents, then write every listed chapter into one")
	fmt.Fprintln(w, "plain-text PDF and one combined markdown file.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input:")
	fmt.Fprintln(w, "  -r, --root <dir>          Project root (default: .)")
	fmt.Fprintln(w, "  -s, --summary <path>      Table of contents, relative to root (default: SUMMARY.md)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "      --pdf <path>          Output PDF (default: <root>/csapp.pdf)")
	fmt.Fprintln(w, "      --markdown <path>     Combined markdown (default: <root>/csapp.md)")
	fmt.Fprintln(w, "      --skip-markdown       Do not write the combined markdown")
	fmt.Fprintln(w, "      --html <path>         Also write an HTML rendering")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Layout:")
	fmt.Fprintln(w, "      --width <n>           Wrap width of PDF text (default: 90)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MDBUNDLE_CONFIG, MDBUNDLE_ROOT, MDBUNDLE_SUMMARY, MDBUNDLE_PDF,")
	fmt.Fprintln(w, "  MDBUNDLE_MARKDOWN, MDBUNDLE_HTML, MDBUNDLE_WIDTH")
	fmt.Fprintln(w, "  Precedence: flags > environment > config file > defaults")
}

// runHelp prints help for a specific command.
// Returns false if the command is unknown.
func runHelp(args []string, env *Environment) bool {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return true
	}

	switch args[0] {
	case "build":
		printBuildUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: mdbundle version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: mdbundle help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return false
	}
	return true
}
