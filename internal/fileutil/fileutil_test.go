package fileutil_test

// Notes:
// - WriteFileAtomic: the Write and Close error branches are not tested because
//   triggering disk write failures is platform-specific.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/alnah/go-mdbundle/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestWriteFileAtomic - Temp-file-then-rename writes
// ---------------------------------------------------------------------------

func TestWriteFileAtomic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content []byte
	}{
		{"markdown content", []byte("# Intro\n\nHello\n")},
		{"pdf bytes", []byte("%PDF-1.4\n%%EOF\n")},
		{"empty content", []byte{}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "out.bin")
			if err := fileutil.WriteFileAtomic(path, tt.content, 0o644); err != nil {
				t.Fatalf("WriteFileAtomic() error = %v", err)
			}

			got, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("ReadFile() error = %v", err)
			}
			if string(got) != string(tt.content) {
				t.Errorf("content = %q, want %q", got, tt.content)
			}
		})
	}
}

func TestWriteFileAtomic_Overwrite(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "book.md")
	if err := os.WriteFile(path, []byte("old content that is longer"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := fileutil.WriteFileAtomic(path, []byte("new"), 0o644); err != nil {
		t.Fatalf("WriteFileAtomic() error = %v", err)
	}

	got, _ := os.ReadFile(path)
	if string(got) != "new" {
		t.Errorf("content = %q, want %q", got, "new")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want 1 (temp file left behind?)", len(entries))
	}
}

func TestWriteFileAtomic_Errors(t *testing.T) {
	t.Parallel()

	t.Run("empty path", func(t *testing.T) {
		t.Parallel()
		err := fileutil.WriteFileAtomic("", []byte("x"), 0o644)
		if !errors.Is(err, fileutil.ErrEmptyPath) {
			t.Errorf("error = %v, want ErrEmptyPath", err)
		}
	})

	t.Run("path is directory", func(t *testing.T) {
		t.Parallel()
		err := fileutil.WriteFileAtomic(t.TempDir(), []byte("x"), 0o644)
		if !errors.Is(err, fileutil.ErrIsDir) {
			t.Errorf("error = %v, want ErrIsDir", err)
		}
	})

	t.Run("missing parent directory", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "nope", "out.pdf")
		if err := fileutil.WriteFileAtomic(path, []byte("x"), 0o644); err == nil {
			t.Error("expected error for missing parent directory")
		}
	})
}

// ---------------------------------------------------------------------------
// TestFileExists - Regular file detection
// ---------------------------------------------------------------------------

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "a.md")
	if err := os.WriteFile(file, []byte("a"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"existing file", file, true},
		{"directory", dir, false},
		{"missing file", filepath.Join(dir, "b.md"), false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := fileutil.FileExists(tt.path); got != tt.want {
				t.Errorf("FileExists(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestIsFilePath - Name vs path detection
// ---------------------------------------------------------------------------

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"book", false},
		{"my-book", false},
		{"./book.yaml", true},
		{"/abs/book.yaml", true},
		{`C:\books\book.yaml`, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			if got := fileutil.IsFilePath(tt.input); got != tt.want {
				t.Errorf("IsFilePath(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestSplitLines - Line splitting
// ---------------------------------------------------------------------------

func TestSplitLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"single line no newline", "a", []string{"a"}},
		{"trailing newline dropped", "a\nb\n", []string{"a", "b"}},
		{"blank lines kept", "a\n\nb", []string{"a", "", "b"}},
		{"only newline", "\n", []string{""}},
		{"CRLF", "a\r\nb\r\n", []string{"a", "b"}},
		{"CR", "a\rb", []string{"a", "b"}},
		{"form feed and vertical tab", "a\fb\vc", []string{"a", "b", "c"}},
		{"separators", "a\x1cb\x1dc\x1ed", []string{"a", "b", "c", "d"}},
		{"NEL and unicode separators", "a\u0085b\u2028c\u2029d", []string{"a", "b", "c", "d"}},
		{"trailing form feed dropped", "a\f", []string{"a"}},
		{"CR then LF separately", "a\r\n\nb", []string{"a", "", "b"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := fileutil.SplitLines(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitLines(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestReadText(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "doc.md")
	if err := os.WriteFile(path, []byte("line1\r\nline2\r"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := fileutil.ReadText(path)
	if err != nil {
		t.Fatalf("ReadText() error = %v", err)
	}
	if got != "line1\nline2\n" {
		t.Errorf("ReadText() = %q, want %q", got, "line1\nline2\n")
	}

	if _, err := fileutil.ReadText(filepath.Join(t.TempDir(), "missing.md")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("ReadText(missing) error = %v, want os.ErrNotExist", err)
	}
}
