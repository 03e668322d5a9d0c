package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alnah/go-mdbundle/internal/config"
)

// envPrefix is the prefix of every environment variable read by the CLI.
const envPrefix = "MDBUNDLE_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // MDBUNDLE_CONFIG: config file name or path
	Root       string // MDBUNDLE_ROOT: project root
	Summary    string // MDBUNDLE_SUMMARY: table of contents path
	PDF        string // MDBUNDLE_PDF: output PDF path
	Markdown   string // MDBUNDLE_MARKDOWN: combined markdown path
	HTML       string // MDBUNDLE_HTML: HTML output path
	Width      int    // MDBUNDLE_WIDTH: wrap width
}

// knownEnvVars lists valid MDBUNDLE_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MDBUNDLE_CONFIG":   true,
	"MDBUNDLE_ROOT":     true,
	"MDBUNDLE_SUMMARY":  true,
	"MDBUNDLE_PDF":      true,
	"MDBUNDLE_MARKDOWN": true,
	"MDBUNDLE_HTML":     true,
	"MDBUNDLE_WIDTH":    true,
}

// loadEnvConfig reads configuration from environment variables.
// An MDBUNDLE_WIDTH that is not a positive integer is ignored with a warning.
func loadEnvConfig(env *Environment) *envConfig {
	cfg := &envConfig{
		ConfigPath: env.Getenv("MDBUNDLE_CONFIG"),
		Root:       env.Getenv("MDBUNDLE_ROOT"),
		Summary:    env.Getenv("MDBUNDLE_SUMMARY"),
		PDF:        env.Getenv("MDBUNDLE_PDF"),
		Markdown:   env.Getenv("MDBUNDLE_MARKDOWN"),
		HTML:       env.Getenv("MDBUNDLE_HTML"),
	}

	if width := env.Getenv("MDBUNDLE_WIDTH"); width != "" {
		if w, err := strconv.Atoi(width); err == nil && w > 0 {
			cfg.Width = w
		} else {
			fmt.Fprintf(env.Stderr, "warning: ignoring MDBUNDLE_WIDTH=%q (want a positive integer)\n", width)
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized MDBUNDLE_* variables.
// Helps catch typos like MDBUNDLE_SUMARY instead of MDBUNDLE_SUMMARY.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	for _, kv := range environ {
		if !strings.HasPrefix(kv, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(kv, "=")
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Env values override the config file; CLI flags are applied later via
// mergeFlags. This ensures: CLI flags > env vars > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Root != "" {
		cfg.Root = env.Root
	}
	if env.Summary != "" {
		cfg.Summary = env.Summary
	}
	if env.PDF != "" {
		cfg.Output.PDF = env.PDF
	}
	if env.Markdown != "" {
		cfg.Output.Markdown = env.Markdown
	}
	if env.HTML != "" {
		cfg.Output.HTML = env.HTML
	}
	if env.Width > 0 {
		cfg.Wrap.Width = env.Width
	}
}
