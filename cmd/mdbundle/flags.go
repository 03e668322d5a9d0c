package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// ErrUsage indicates invalid command-line usage.
var ErrUsage = errors.New("invalid usage")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// inputFlags holds book location flags.
type inputFlags struct {
	root    string
	summary string
}

// outputFlags holds output destination flags.
type outputFlags struct {
	pdf          string
	markdown     string
	html         string
	skipMarkdown bool
}

// layoutFlags holds text layout flags. Zero means unset.
type layoutFlags struct {
	width int
}

// buildFlags holds all flags for the build command.
type buildFlags struct {
	common commonFlags
	input  inputFlags
	output outputFlags
	layout layoutFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addInputFlags adds book location flags to a FlagSet.
func addInputFlags(fs *flag.FlagSet, f *inputFlags) {
	fs.StringVarP(&f.root, "root", "r", "", "project root (default: .)")
	fs.StringVarP(&f.summary, "summary", "s", "", "table of contents, relative to root (default: SUMMARY.md)")
}

// addOutputFlags adds output destination flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.StringVar(&f.pdf, "pdf", "", "output PDF path (default: <root>/csapp.pdf)")
	fs.StringVar(&f.markdown, "markdown", "", "combined markdown path (default: <root>/csapp.md)")
	fs.StringVar(&f.html, "html", "", "also write an HTML rendering to this path")
	fs.BoolVar(&f.skipMarkdown, "skip-markdown", false, "do not write the combined markdown")
}

// addLayoutFlags adds text layout flags to a FlagSet.
func addLayoutFlags(fs *flag.FlagSet, f *layoutFlags) {
	fs.IntVar(&f.width, "width", 0, "wrap width of PDF text (default: 90)")
}

// parseBuildFlags parses build command flags. Positional arguments are rejected.
func parseBuildFlags(args []string, usage io.Writer) (*buildFlags, error) {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f := &buildFlags{}

	addCommonFlags(fs, &f.common)
	addInputFlags(fs, &f.input)
	addOutputFlags(fs, &f.output)
	addLayoutFlags(fs, &f.layout)

	fs.Usage = func() { printBuildUsage(usage) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: unexpected argument %q", ErrUsage, fs.Arg(0))
	}
	if fs.Changed("width") && f.layout.width < 1 {
		return nil, fmt.Errorf("%w: --width must be at least 1, got %d", ErrUsage, f.layout.width)
	}

	return f, nil
}
