package cli

import (
	clierrors "github.com/ariel-frischer/releasekit/internal/errors"
)

// Exit codes for the releasekit CLI
// These codes support programmatic composition and CI/CD integration
const (
	// ExitSuccess indicates successful command execution, including
	// "nothing matched" outcomes such as an empty matrix
	ExitSuccess = 0

	// ExitFailure indicates a runtime failure (I/O error, unwritable output)
	ExitFailure = 1

	// ExitInvalidArguments indicates invalid command arguments or configuration
	ExitInvalidArguments = 3

	// ExitMissingPrerequisite indicates a required file or environment is missing
	ExitMissingPrerequisite = 4
)

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if cliErr := clierrors.AsCLIError(err); cliErr != nil {
		switch cliErr.Category {
		case clierrors.Argument, clierrors.Configuration:
			return ExitInvalidArguments
		case clierrors.Prerequisite:
			return ExitMissingPrerequisite
		}
	}

	return ExitFailure
}
