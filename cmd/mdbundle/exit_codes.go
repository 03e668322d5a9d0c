package main

import (
	"errors"
	"os"

	mdbundle "github.com/alnah/go-mdbundle"
	"github.com/alnah/go-mdbundle/internal/config"
)

// Exit codes for the mdbundle CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful build
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // Manifest unreadable, chapter unreadable, write failed
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrFieldOutOfRange) ||
		errors.Is(err, mdbundle.ErrInvalidLayout) ||
		errors.Is(err, mdbundle.ErrInvalidWrapWidth) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, mdbundle.ErrReadManifest) ||
		errors.Is(err, mdbundle.ErrReadDocument) ||
		errors.Is(err, mdbundle.ErrWriteOutput) ||
		errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	return ExitGeneral
}
