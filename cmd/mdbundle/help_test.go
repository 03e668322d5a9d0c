package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrintUsage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printUsage(&buf)

	for _, want := range []string{"Usage: mdbundle", "build", "version", "help"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("usage missing %q", want)
		}
	}
}

func TestPrintBuildUsage_ListsEveryFlag(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printBuildUsage(&buf)
	out := buf.String()

	for _, flag := range []string{
		"--root", "--summary", "--config", "--pdf", "--markdown",
		"--skip-markdown", "--html", "--width", "--quiet", "--verbose",
	} {
		if !strings.Contains(out, flag) {
			t.Errorf("build usage missing %s", flag)
		}
	}
	for name := range knownEnvVars {
		if !strings.Contains(out, name) {
			t.Errorf("build usage missing %s", name)
		}
	}
}

func TestRunHelp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       []string
		wantOK     bool
		wantStdout string
		wantStderr string
	}{
		{"no args", nil, true, "Commands:", ""},
		{"build", []string{"build"}, true, "Usage: mdbundle [build]", ""},
		{"version", []string{"version"}, true, "Usage: mdbundle version", ""},
		{"help", []string{"help"}, true, "Usage: mdbundle help", ""},
		{"unknown", []string{"convert"}, false, "", "Unknown command: convert"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := testEnv(nil)
			if ok := runHelp(tt.args, env); ok != tt.wantOK {
				t.Errorf("runHelp() = %v, want %v", ok, tt.wantOK)
			}
			if !strings.Contains(stdout.String(), tt.wantStdout) {
				t.Errorf("stdout = %q, want %q", stdout.String(), tt.wantStdout)
			}
			if !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr = %q, want %q", stderr.String(), tt.wantStderr)
			}
		})
	}
}
