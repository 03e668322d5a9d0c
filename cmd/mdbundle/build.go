package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	flag "github.com/spf13/pflag"

	mdbundle "github.com/alnah/go-mdbundle"
	"github.com/alnah/go-mdbundle/internal/config"
	"github.com/alnah/go-mdbundle/internal/fileutil"
	"github.com/alnah/go-mdbundle/internal/hints"
)

// Default output names, placed in the project root.
const (
	defaultPDFName      = "csapp.pdf"
	defaultMarkdownName = "csapp.md"
)

// filePermissions is rw-r--r--: owner read+write, others read.
const filePermissions = 0o644

// buildParams is the fully resolved build request.
type buildParams struct {
	root         string
	summary      string
	pdfPath      string
	markdownPath string
	htmlPath     string
	skipMarkdown bool
	width        int
	layout       mdbundle.Layout
}

// output is one artifact to write.
type output struct {
	path string
	data []byte
}

// runBuild resolves configuration, builds the book, and writes the outputs.
func runBuild(ctx context.Context, args []string, env *Environment) error {
	flags, err := parseBuildFlags(args, env.Stdout)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	undo := setupMaxProcs(flags.common.verbose, env)
	defer undo()

	if !flags.common.quiet {
		warnUnknownEnvVars(env.Stderr, env.Environ())
	}
	envCfg := loadEnvConfig(env)

	cfg, err := loadBuildConfig(flags.common.config, envCfg.ConfigPath)
	if err != nil {
		return err
	}
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)

	params := resolveParams(cfg)

	builder, err := mdbundle.NewBuilder(builderOptions(params)...)
	if err != nil {
		return err
	}

	start := env.Now()
	result, err := builder.Build(ctx)
	if err != nil {
		if errors.Is(err, mdbundle.ErrReadManifest) {
			return fmt.Errorf("%w%s", err, hints.ForManifestNotFound(params.root, params.summary))
		}
		return err
	}

	if len(result.Missing) > 0 && !flags.common.quiet {
		fmt.Fprintf(env.Stderr, "warning: missing files: %s%s\n",
			strings.Join(result.Missing, ", "), hints.ForMissingDocuments(len(result.Missing)))
	}
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Built %d chapters, %d pages in %v\n",
			result.Entries, result.Pages, env.Now().Sub(start).Round(time.Millisecond))
	}

	for _, out := range params.outputs(result) {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fileutil.WriteFileAtomic(out.path, out.data, filePermissions); err != nil {
			return fmt.Errorf("%w: %s: %w%s", mdbundle.ErrWriteOutput, out.path, err, hints.ForOutputDirectory())
		}
		if !flags.common.quiet {
			fmt.Fprintf(env.Stdout, "Wrote %s\n", out.path)
		}
	}

	return nil
}

// loadBuildConfig loads the config named by the flag, else by the env var.
// With neither set, returns the neutral default config.
func loadBuildConfig(flagValue, envValue string) (*config.Config, error) {
	name := flagValue
	if name == "" {
		name = envValue
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name) {
			return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeFlags applies CLI flags to config. Only explicitly set values win.
func mergeFlags(flags *buildFlags, cfg *config.Config) {
	if flags.input.root != "" {
		cfg.Root = flags.input.root
	}
	if flags.input.summary != "" {
		cfg.Summary = flags.input.summary
	}
	if flags.output.pdf != "" {
		cfg.Output.PDF = flags.output.pdf
	}
	if flags.output.markdown != "" {
		cfg.Output.Markdown = flags.output.markdown
	}
	if flags.output.html != "" {
		cfg.Output.HTML = flags.output.html
	}
	if flags.output.skipMarkdown {
		cfg.Output.SkipMarkdown = true
	}
	if flags.layout.width > 0 {
		cfg.Wrap.Width = flags.layout.width
	}
}

// resolveParams fills every unset config value with its default.
func resolveParams(cfg *config.Config) buildParams {
	p := buildParams{
		root:         orDefault(cfg.Root, "."),
		summary:      orDefault(cfg.Summary, mdbundle.DefaultSummary),
		htmlPath:     cfg.Output.HTML,
		skipMarkdown: cfg.Output.SkipMarkdown,
		width:        cfg.Wrap.Width,
		layout:       resolveLayout(cfg.Page),
	}
	if p.width == 0 {
		p.width = mdbundle.DefaultWrapWidth
	}
	p.pdfPath = orDefault(cfg.Output.PDF, filepath.Join(p.root, defaultPDFName))
	p.markdownPath = orDefault(cfg.Output.Markdown, filepath.Join(p.root, defaultMarkdownName))
	return p
}

// resolveLayout overlays configured page values on the default layout.
func resolveLayout(page config.PageConfig) mdbundle.Layout {
	l := mdbundle.DefaultLayout()
	overlay := []struct {
		dst *int
		src int
	}{
		{&l.LinesPerPage, page.LinesPerPage},
		{&l.PageWidth, page.Width},
		{&l.PageHeight, page.Height},
		{&l.MarginLeft, page.MarginLeft},
		{&l.StartY, page.StartY},
		{&l.Leading, page.Leading},
		{&l.FontSize, page.FontSize},
	}
	for _, o := range overlay {
		if o.src != 0 {
			*o.dst = o.src
		}
	}
	l.FontName = orDefault(page.Font, l.FontName)
	return l
}

// builderOptions converts resolved params to library options.
func builderOptions(p buildParams) []mdbundle.Option {
	opts := []mdbundle.Option{
		mdbundle.WithRoot(p.root),
		mdbundle.WithSummary(p.summary),
		mdbundle.WithWrapWidth(p.width),
		mdbundle.WithLayout(p.layout),
	}
	if p.htmlPath != "" {
		opts = append(opts, mdbundle.WithHTML(filepath.Dir(p.htmlPath)))
	}
	return opts
}

// outputs lists the artifacts to write, in write order: markdown, PDF, HTML.
func (p buildParams) outputs(r *mdbundle.Result) []output {
	var outs []output
	if !p.skipMarkdown {
		outs = append(outs, output{p.markdownPath, r.Markdown})
	}
	outs = append(outs, output{p.pdfPath, r.PDF})
	if p.htmlPath != "" {
		outs = append(outs, output{p.htmlPath, r.HTML})
	}
	return outs
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
