// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Sentinel errors for file utility operations.
var (
	ErrEmptyPath = errors.New("path cannot be empty")
	ErrIsDir     = errors.New("path is a directory")
)

// crlfOrCR matches Windows and old Mac line endings.
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// lineBreak matches every line boundary: CRLF, LF, CR, VT, FF, FS, GS, RS,
// NEL, LINE SEPARATOR and PARAGRAPH SEPARATOR.
var lineBreak = regexp.MustCompile(`\r\n|[\n\r\v\f\x1c\x1d\x1e\x{85}\x{2028}\x{2029}]`)

// WriteFileAtomic writes content to a temporary file next to path, then renames
// it over path. A failed write never leaves a partial file at path.
func WriteFileAtomic(path string, content []byte, perm os.FileMode) error {
	if path == "" {
		return ErrEmptyPath
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return fmt.Errorf("%w: %s", ErrIsDir, path)
	}

	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, ".mdbundle-*"+filepath.Ext(path))
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}

	tmpPath := tmpFile.Name()
	cleanup := func() { _ = os.Remove(tmpPath) }

	if _, writeErr := tmpFile.Write(content); writeErr != nil {
		_ = tmpFile.Close()
		cleanup()
		return fmt.Errorf("writing temp file: %w", writeErr)
	}

	if closeErr := tmpFile.Close(); closeErr != nil {
		cleanup()
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Chmod(tmpPath, perm); err != nil {
		cleanup()
		return fmt.Errorf("setting permissions: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		cleanup()
		return fmt.Errorf("renaming temp file: %w", err)
	}

	return nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "book" -> false (name)
//   - "./book.yaml" -> true (relative path)
//   - "/etc/mdbundle/book.yaml" -> true (absolute)
//   - "C:\books\book.yaml" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// NormalizeLineEndings converts \r\n and \r to \n.
func NormalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// SplitLines splits text into lines without their terminators.
// A trailing line break does not produce a trailing empty line, and empty
// text yields no lines.
func SplitLines(content string) []string {
	content = lineBreak.ReplaceAllString(content, "\n")
	if content == "" {
		return nil
	}
	content = strings.TrimSuffix(content, "\n")
	return strings.Split(content, "\n")
}

// ReadText reads a UTF-8 text file with line endings normalized to \n.
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the manifest or CLI
	if err != nil {
		return "", err
	}
	return NormalizeLineEndings(string(data)), nil
}
