package changelog

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
)

// ErrInvalidPackageName is returned by PackageBatch.Run for a package name
// that is not a single directory name.
var ErrInvalidPackageName = errors.New("invalid package name")

// PackageResult describes the notes extracted for one package.
type PackageResult struct {
	Package    string
	Changelog  string
	OutputPath string
	Notes      Notes
}

// PackageBatch extracts release notes for several packages of a monorepo.
// Each package keeps its changelog at <Dir>/<package>/CHANGELOG.md and gets
// its notes written next to it.
type PackageBatch struct {
	// Dir is the directory holding one sub-directory per package.
	Dir string
	// ChangelogName is the changelog file name inside a package directory.
	ChangelogName string
	// OutputName is the notes file name inside a package directory.
	OutputName string
	// MaxParallel caps concurrent extractions; values below 1 mean unlimited.
	MaxParallel int
	Options     Options
}

func (b PackageBatch) paths(pkg string) (string, string) {
	changelogName := b.ChangelogName
	if changelogName == "" {
		changelogName = DefaultChangelogFile
	}
	outputName := b.OutputName
	if outputName == "" {
		outputName = DefaultOutputFile
	}
	pkgDir := filepath.Join(b.Dir, pkg)
	return filepath.Join(pkgDir, changelogName), filepath.Join(pkgDir, outputName)
}

// Run extracts notes for every package concurrently.
// Results are returned in the order of packages. The first failure cancels
// the remaining extractions and is returned.
func (b PackageBatch) Run(ctx context.Context, packages []string) ([]PackageResult, error) {
	for _, pkg := range packages {
		if !isPackageName(pkg) {
			return nil, fmt.Errorf("%w %q", ErrInvalidPackageName, pkg)
		}
	}

	results := make([]PackageResult, len(packages))

	g, ctx := errgroup.WithContext(ctx)
	if b.MaxParallel > 0 {
		g.SetLimit(b.MaxParallel)
	}

	for i, pkg := range packages {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			changelogPath, outputPath := b.paths(pkg)
			notes, err := ExtractToFile(changelogPath, outputPath, b.Options)
			if err != nil {
				return fmt.Errorf("package %s: %w", pkg, err)
			}

			logger.Debug("package notes extracted", "package", pkg, "lines", len(notes.Lines))
			results[i] = PackageResult{
				Package:    pkg,
				Changelog:  changelogPath,
				OutputPath: outputPath,
				Notes:      notes,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// isPackageName reports whether pkg names a single directory inside the
// packages directory. Names come from pull request labels, so "..", "." and
// anything with a separator are refused.
func isPackageName(pkg string) bool {
	if pkg == "." || strings.ContainsAny(pkg, `/\`) {
		return false
	}
	return filepath.IsLocal(pkg)
}
