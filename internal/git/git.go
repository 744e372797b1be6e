// Package git locates the enclosing git repository using go-git, so commands
// can resolve repository-relative paths without a git CLI on the runner.
package git

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
)

// ErrNotRepository is returned when no repository encloses the start path.
var ErrNotRepository = git.ErrRepositoryNotExists

// debugLogger is a function that logs debug messages when debug mode is enabled.
// By default, it's a no-op. Set it via SetDebugLogger to enable debug output.
var debugLogger func(format string, args ...any)

// SetDebugLogger configures the debug logger for git operations.
// Pass nil to disable debug logging.
func SetDebugLogger(logger func(format string, args ...any)) {
	debugLogger = logger
}

func logDebug(format string, args ...any) {
	if debugLogger != nil {
		debugLogger(format, args...)
	}
}

// openRepo opens the git repository enclosing path, walking up the directory
// tree until a .git entry is found. If path is empty, the current working
// directory is used.
func openRepo(path string) (*git.Repository, error) {
	if path == "" {
		var err error
		path, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting current directory: %w", err)
		}
	}

	logDebug("[git] opening repository at %s", path)

	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening repository at %s: %w", path, err)
	}
	return repo, nil
}

// RepositoryRoot returns the absolute worktree root of the repository
// enclosing path (or the working directory when path is empty).
func RepositoryRoot(path string) (string, error) {
	repo, err := openRepo(path)
	if err != nil {
		return "", err
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("getting worktree: %w", err)
	}

	root := worktree.Filesystem.Root()
	logDebug("[git] repository root: %s", root)
	return root, nil
}

// ResolvePath resolves a repository-relative path against the root of the
// repository enclosing the working directory. Absolute paths are returned
// unchanged, and outside a repository the path is left relative to the
// working directory.
func ResolvePath(rel string) (string, error) {
	if filepath.IsAbs(rel) {
		return rel, nil
	}

	root, err := RepositoryRoot("")
	if err != nil {
		if errors.Is(err, ErrNotRepository) {
			logDebug("[git] not in a repository, using %s relative to working directory", rel)
			return rel, nil
		}
		return "", err
	}
	return filepath.Join(root, rel), nil
}
