package cli

import (
	"errors"
	"fmt"
	"testing"

	clierrors "github.com/ariel-frischer/releasekit/internal/errors"
	"github.com/stretchr/testify/assert"
)

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		err  error
		want int
	}{
		"nil error":          {err: nil, want: ExitSuccess},
		"generic error":      {err: errors.New("boom"), want: ExitFailure},
		"argument error":     {err: clierrors.NewArgumentError("bad"), want: ExitInvalidArguments},
		"config error":       {err: clierrors.ConfigInvalid(errors.New("bad")), want: ExitInvalidArguments},
		"prerequisite error": {err: clierrors.GitHubOutputNotSet(), want: ExitMissingPrerequisite},
		"runtime error":      {err: clierrors.NewRuntimeError("bad", nil), want: ExitFailure},
		"wrapped cli error":  {err: fmt.Errorf("ctx: %w", clierrors.NoPackages()), want: ExitInvalidArguments},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, ExitCode(tc.err))
		})
	}
}

func TestExitCodeUniqueness(t *testing.T) {
	t.Parallel()

	codes := []int{ExitSuccess, ExitFailure, ExitInvalidArguments, ExitMissingPrerequisite}
	seen := make(map[int]bool)
	for _, code := range codes {
		assert.False(t, seen[code], "Duplicate exit code: %d", code)
		seen[code] = true
	}
}
