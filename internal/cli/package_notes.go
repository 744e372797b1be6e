package cli

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/ariel-frischer/releasekit/internal/changelog"
	clierrors "github.com/ariel-frischer/releasekit/internal/errors"
	"github.com/ariel-frischer/releasekit/internal/labels"
	"github.com/ariel-frischer/releasekit/internal/output"
	"github.com/spf13/cobra"
)

type packageNotesOptions struct {
	fromMatrix  bool
	packagesDir string
	parallel    int
}

func newPackageNotesCmd(g *globalOptions) *cobra.Command {
	opts := &packageNotesOptions{}

	cmd := &cobra.Command{
		Use:   "package-notes [package...]",
		Short: "Extract release notes for several packages of a monorepo",
		Long: `Extract release notes for several packages of a monorepo.

Each package keeps its own changelog at <packages_dir>/<package>/CHANGELOG.md.
Its upcoming section is written to <packages_dir>/<package>/release-notes.txt.
Packages are processed concurrently; the first failure stops the rest.

With --from-matrix the package list is read from a matrix document on stdin,
as printed by 'releasekit matrix'. An empty matrix is not an error.`,
		Example: `  releasekit package-notes core ui
  releasekit matrix | releasekit package-notes --from-matrix
  releasekit package-notes --packages-dir packages client`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPackageNotes(cmd, g, opts, args)
		},
	}
	cmd.GroupID = GroupRelease

	cmd.Flags().BoolVar(&opts.fromMatrix, "from-matrix", false, "Read packages from a matrix JSON document on stdin")
	cmd.Flags().StringVar(&opts.packagesDir, "packages-dir", "", "Directory holding the packages (default from packages_dir: modules)")
	cmd.Flags().IntVarP(&opts.parallel, "parallel", "p", -1, "Maximum concurrent extractions (default from max_parallel)")

	return cmd
}

func runPackageNotes(cmd *cobra.Command, g *globalOptions, opts *packageNotesOptions, args []string) error {
	packages := args
	if opts.fromMatrix {
		if len(args) > 0 {
			return clierrors.NewArgumentError(
				"package arguments cannot be combined with --from-matrix",
				"Pass packages as arguments or pipe a matrix, not both",
			)
		}
		m, err := labels.ReadMatrix(cmd.InOrStdin())
		if err != nil {
			return clierrors.InvalidMatrix(err)
		}
		packages = m.Packages()
		if len(packages) == 0 {
			g.logger.Info("matrix is empty, nothing to extract")
			return nil
		}
	}
	if len(packages) == 0 {
		return clierrors.NoPackages()
	}

	batch := changelog.PackageBatch{
		Dir:         g.cfg.PackagesDir,
		MaxParallel: g.cfg.MaxParallel,
		Options:     changelog.Options{Markers: g.cfg.Markers},
	}
	if opts.packagesDir != "" {
		batch.Dir = opts.packagesDir
	}
	if opts.parallel >= 0 {
		batch.MaxParallel = opts.parallel
	}

	results, err := batch.Run(cmd.Context(), uniqueStrings(packages))
	if err != nil {
		if errors.Is(err, changelog.ErrInvalidPackageName) {
			return clierrors.WrapWithMessage(err, clierrors.Argument,
				"extracting package notes",
				"Package names must be plain directory names under packages_dir",
				"Remove the offending <package>:<bump> label from the pull request",
			)
		}
		if errors.Is(err, fs.ErrNotExist) {
			return clierrors.WrapWithMessage(err, clierrors.Prerequisite,
				"extracting package notes",
				fmt.Sprintf("Each package needs %s/<package>/%s", batch.Dir, changelog.DefaultChangelogFile),
				"Set packages_dir or --packages-dir to the directory holding the packages",
			)
		}
		return clierrors.WrapWithMessage(err, clierrors.Runtime, "extracting package notes")
	}

	for _, r := range results {
		if !r.Notes.Found {
			output.PrintWarning(cmd.OutOrStdout(), fmt.Sprintf("%s: no upcoming section in %s", r.Package, r.Changelog))
			continue
		}
		output.PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("%s: %d line(s) -> %s", r.Package, len(r.Notes.Lines), r.OutputPath))
	}
	return nil
}

// uniqueStrings drops repeated values, keeping the first occurrence.
// A matrix may list a package twice, and two jobs must not write the same file.
func uniqueStrings(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
