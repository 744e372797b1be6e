package errors

import "fmt"

// Common error messages for the releasekit CLI.
// These templates ensure consistent, actionable error messages.

// ChangelogNotFound creates an error for a missing changelog file.
func ChangelogNotFound(path string, cause error) *CLIError {
	return &CLIError{
		Category: Prerequisite,
		Message:  fmt.Sprintf("changelog not found: %s", path),
		Remediation: []string{
			"Check the path passed to 'releasekit notes <changelog>'",
			"Or set the default with RELEASEKIT_CHANGELOG=path/to/CHANGELOG.md",
		},
		Cause: cause,
	}
}

// ChangelogUnreadable creates an error for a changelog that exists but cannot be read.
func ChangelogUnreadable(path string, cause error) *CLIError {
	return &CLIError{
		Category: Runtime,
		Message:  fmt.Sprintf("cannot read changelog %s: %v", path, cause),
		Remediation: []string{
			"Check file permissions: ls -la " + path,
		},
		Cause: cause,
	}
}

// NotesNotWritable creates an error when the release notes file cannot be written.
func NotesNotWritable(path string, cause error) *CLIError {
	return &CLIError{
		Category: Runtime,
		Message:  fmt.Sprintf("cannot write release notes to %s: %v", path, cause),
		Remediation: []string{
			"Ensure the parent directory exists and is writable",
			"Or choose another file with --output",
		},
		Cause: cause,
	}
}

// GitHubOutputNotSet creates an error when step outputs are requested outside GitHub Actions.
func GitHubOutputNotSet() *CLIError {
	return NewPrerequisiteError(
		"GITHUB_OUTPUT is not set",
		"Step outputs are only available inside a GitHub Actions job",
		"Run without --github-output locally, or export GITHUB_OUTPUT=/tmp/output",
	)
}

// InvalidMatrix creates an error for an unreadable matrix document.
func InvalidMatrix(err error) *CLIError {
	return WrapWithMessage(err, Argument,
		"invalid matrix document on stdin",
		"Pipe the output of 'releasekit matrix' into this command",
		`Expected shape: {"include":[{"package":"core","bump":"minor"}]}`,
	)
}

// NoPackages creates an error when package-notes is given nothing to do.
func NoPackages() *CLIError {
	return NewArgumentErrorWithUsage(
		"no packages given",
		"releasekit package-notes <package>... | releasekit package-notes --from-matrix",
		"Pass package names as arguments",
		"Or pipe a matrix: releasekit matrix | releasekit package-notes --from-matrix",
	)
}

// ConfigInvalid creates an error for a configuration that failed to load.
func ConfigInvalid(err error) *CLIError {
	return WrapWithMessage(err, Configuration,
		"invalid configuration",
		"Check .releasekit.yml and RELEASEKIT_* environment variables",
		"Run 'releasekit config keys' to list valid keys and defaults",
	)
}

// EnvFileNotLoaded creates an error when a dotenv file cannot be loaded.
func EnvFileNotLoaded(path string, cause error) *CLIError {
	return &CLIError{
		Category: Prerequisite,
		Message:  fmt.Sprintf("cannot load env file %s: %v", path, cause),
		Remediation: []string{
			"Check that the file exists and uses KEY=value lines",
		},
		Cause: cause,
	}
}
