package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-mdbundle/internal/fileutil"
	"github.com/alnah/go-mdbundle/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrFieldOutOfRange = errors.New("field out of range")
)

// Field limits.
const (
	MaxPathLength     = 4096 // PATH_MAX on Linux
	MaxFontNameLength = 64   // "Helvetica", "Courier-Bold"
	MaxWrapWidth      = 1000
	MaxLinesPerPage   = 500
	MaxPageDimension  = 14400 // PDF 1.4 implementation limit, in points
)

// configDirName is the directory searched under the user config directory.
const configDirName = "go-mdbundle"

// Config holds all configuration for a book build.
// Zero values mean "use the built-in default".
type Config struct {
	Root    string       `yaml:"root"`    // Project root (default: ".")
	Summary string       `yaml:"summary"` // Manifest, relative to root (default: "SUMMARY.md")
	Output  OutputConfig `yaml:"output"`
	Wrap    WrapConfig   `yaml:"wrap"`
	Page    PageConfig   `yaml:"page"`
}

// OutputConfig defines output destinations.
type OutputConfig struct {
	PDF          string `yaml:"pdf"`          // default: <root>/csapp.pdf
	Markdown     string `yaml:"markdown"`     // default: <root>/csapp.md
	HTML         string `yaml:"html"`         // empty = no HTML output
	SkipMarkdown bool   `yaml:"skipMarkdown"` // do not write the combined markdown
}

// WrapConfig defines line wrapping for the PDF text.
type WrapConfig struct {
	Width int `yaml:"width"` // columns (default: 90)
}

// PageConfig defines the PDF page layout, in points.
type PageConfig struct {
	LinesPerPage int    `yaml:"linesPerPage"` // default: 46
	Width        int    `yaml:"width"`        // default: 612
	Height       int    `yaml:"height"`       // default: 792
	MarginLeft   int    `yaml:"marginLeft"`   // default: 72
	StartY       int    `yaml:"startY"`       // default: 720
	Leading      int    `yaml:"leading"`      // default: 14
	FontSize     int    `yaml:"fontSize"`     // default: 12
	Font         string `yaml:"font"`         // base-14 font name (default: "Helvetica")
}

// Validate checks field lengths and numeric ranges.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	for _, f := range []struct{ name, value string }{
		{"root", c.Root},
		{"summary", c.Summary},
		{"output.pdf", c.Output.PDF},
		{"output.markdown", c.Output.Markdown},
		{"output.html", c.Output.HTML},
	} {
		if err := validateFieldLength(f.name, f.value, MaxPathLength); err != nil {
			return err
		}
	}
	if err := validateFieldLength("page.font", c.Page.Font, MaxFontNameLength); err != nil {
		return err
	}
	if strings.ContainsAny(c.Page.Font, " /()<>[]{}%") {
		return fmt.Errorf("page.font: invalid font name %q", c.Page.Font)
	}

	if err := validateRange("wrap.width", c.Wrap.Width, MaxWrapWidth); err != nil {
		return err
	}
	if err := validateRange("page.linesPerPage", c.Page.LinesPerPage, MaxLinesPerPage); err != nil {
		return err
	}
	for _, f := range []struct {
		name  string
		value int
	}{
		{"page.width", c.Page.Width},
		{"page.height", c.Page.Height},
		{"page.marginLeft", c.Page.MarginLeft},
		{"page.startY", c.Page.StartY},
		{"page.leading", c.Page.Leading},
		{"page.fontSize", c.Page.FontSize},
	} {
		if err := validateRange(f.name, f.value, MaxPageDimension); err != nil {
			return err
		}
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// validateRange checks 0 <= value <= maxValue. Zero means default.
func validateRange(fieldName string, value, maxValue int) error {
	if value < 0 || value > maxValue {
		return fmt.Errorf("%w: %s must be between 0 and %d, got %d", ErrFieldOutOfRange, fieldName, maxValue, value)
	}
	return nil
}

// DefaultConfig returns a neutral configuration where every field defers to
// the built-in defaults.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SearchPaths returns the candidate locations for a config name, in lookup order.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, <user config dir>/go-mdbundle/
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, configDirName, name+ext))
		}
	}

	return paths
}

// resolveConfigPath searches for a config file by name in standard locations.
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
