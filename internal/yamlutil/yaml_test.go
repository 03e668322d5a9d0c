package yamlutil_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-mdbundle/internal/yamlutil"
)

type testConfig struct {
	Root   string `yaml:"root"`
	Width  int    `yaml:"width"`
	Output struct {
		SkipMarkdown bool `yaml:"skipMarkdown"`
	} `yaml:"output"`
}

// ---------------------------------------------------------------------------
// TestUnmarshalStrict - Parses YAML and rejects unknown fields
// ---------------------------------------------------------------------------

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		data       []byte
		dest       any
		wantErr    error
		wantErrMsg string
	}{
		{
			name: "valid YAML",
			data: []byte("root: book\nwidth: 72\noutput:\n  skipMarkdown: true\n"),
			dest: &testConfig{},
		},
		{
			name:    "nil data",
			data:    nil,
			dest:    &testConfig{},
			wantErr: yamlutil.ErrNilData,
		},
		{
			name:    "nil destination",
			data:    []byte("root: book"),
			dest:    nil,
			wantErr: yamlutil.ErrNilDestination,
		},
		{
			name:       "unknown field",
			data:       []byte("root: book\nwdith: 72\n"),
			dest:       &testConfig{},
			wantErrMsg: "yamlutil:",
		},
		{
			name:       "invalid syntax",
			data:       []byte("root: [unclosed"),
			dest:       &testConfig{},
			wantErrMsg: "yamlutil:",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := yamlutil.UnmarshalStrict(tt.data, tt.dest)

			switch {
			case tt.wantErr != nil:
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("error = %v, want %v", err, tt.wantErr)
				}
			case tt.wantErrMsg != "":
				if err == nil || !strings.Contains(err.Error(), tt.wantErrMsg) {
					t.Errorf("error = %v, want message containing %q", err, tt.wantErrMsg)
				}
			default:
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				cfg := tt.dest.(*testConfig)
				if cfg.Root != "book" || cfg.Width != 72 || !cfg.Output.SkipMarkdown {
					t.Errorf("decoded = %+v", cfg)
				}
			}
		})
	}
}

func TestUnmarshalStrict_InputTooLarge(t *testing.T) {
	t.Parallel()

	data := []byte("root: " + strings.Repeat("x", yamlutil.MaxInputSize))
	err := yamlutil.UnmarshalStrict(data, &testConfig{})
	if !errors.Is(err, yamlutil.ErrInputTooLarge) {
		t.Errorf("error = %v, want ErrInputTooLarge", err)
	}
}
