package anydir

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	data, err := dir.ReadFile("a.txt")
//	if errors.Is(err, anydir.ErrNotFound) {
//	    // Handle the missing file
//	}
var (
	// ErrNotFound indicates a directory or file does not exist.
	// Listing a nonexistent base path returns this error, never an
	// empty list.
	ErrNotFound = errors.New("not found")

	// ErrNotADirectory indicates a path exists but is not a directory.
	ErrNotADirectory = errors.New("not a directory")

	// ErrNotUTF8 indicates embedded content is not valid UTF-8.
	ErrNotUTF8 = errors.New("content is not valid UTF-8")

	// ErrTraversal indicates the build-time source traversal failed.
	// This is fatal to code generation and is never observed by the
	// generated program at run time.
	ErrTraversal = errors.New("source traversal failed")

	// ErrInvalidConfig indicates the generator configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrOutput indicates a generated source file could not be written.
	ErrOutput = errors.New("failed to write generated file")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrTraversal):
		return ExitTraversalError
	case errors.Is(err, ErrOutput):
		return ExitOutputError
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrNotADirectory):
		return ExitTraversalError
	}

	// Check for cobra/pflag usage error patterns
	errStr := err.Error()
	if strings.Contains(errStr, "unknown flag") ||
		strings.Contains(errStr, "unknown shorthand flag") ||
		strings.Contains(errStr, "unknown command") ||
		strings.Contains(errStr, "missing required argument") ||
		strings.Contains(errStr, "invalid argument") ||
		strings.Contains(errStr, "accepts 1 arg") {
		return ExitUsageError
	}

	return ExitGeneralError
}
