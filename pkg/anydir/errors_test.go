package anydir

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCodeForError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, ExitSuccess},
		{"invalid config", ErrInvalidConfig, ExitConfigError},
		{"wrapped invalid config", fmt.Errorf("target 2: %w", ErrInvalidConfig), ExitConfigError},
		{"traversal", ErrTraversal, ExitTraversalError},
		{"wrapped traversal", fmt.Errorf("%w: permission denied", ErrTraversal), ExitTraversalError},
		{"output", ErrOutput, ExitOutputError},
		{"not found", ErrNotFound, ExitTraversalError},
		{"not a directory", ErrNotADirectory, ExitTraversalError},
		{"unknown flag", errors.New("unknown flag --foo"), ExitUsageError},
		{"unknown shorthand flag", errors.New("unknown shorthand flag: 'x'"), ExitUsageError},
		{"missing argument", errors.New("missing required argument: <target_path>"), ExitUsageError},
		{"accepts args", errors.New("accepts 1 arg(s), received 2"), ExitUsageError},
		{"unclassified", errors.New("something else"), ExitGeneralError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ExitCodeForError(tc.err))
		})
	}
}
