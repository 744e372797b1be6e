package cli

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/ariel-frischer/releasekit/internal/changelog"
	clierrors "github.com/ariel-frischer/releasekit/internal/errors"
	"github.com/ariel-frischer/releasekit/internal/git"
	"github.com/ariel-frischer/releasekit/internal/output"
	"github.com/spf13/cobra"
)

type notesOptions struct {
	output string
	stdout bool
	watch  bool
}

func newNotesCmd(g *globalOptions) *cobra.Command {
	opts := &notesOptions{}

	cmd := &cobra.Command{
		Use:   "notes [changelog]",
		Short: "Extract the upcoming changelog section into release notes",
		Long: `Extract the upcoming section of a changelog into release notes.

The upcoming section starts after the first "## [TBD]" or "## [UPCOMING]"
heading (see markers) and ends at the next "## [" heading. Each line is
trimmed and the lines are joined with two trailing spaces so Markdown keeps
the line breaks. A leading <!-- ... --> template block is skipped.

Without an argument the configured changelog (CHANGELOG.md) is resolved
against the root of the enclosing git repository.

The notes are written to release-notes.txt (see notes_output), replacing any
previous content. A changelog without an upcoming section produces an empty
file; a missing changelog is an error and leaves the output untouched.`,
		Example: `  releasekit notes CHANGELOG.md
  releasekit notes modules/client/CHANGELOG.md -o client-notes.txt
  releasekit notes --stdout
  releasekit notes --watch          # re-extract on every save`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNotes(cmd, g, opts, args)
		},
	}
	cmd.GroupID = GroupRelease

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file (default from notes_output: release-notes.txt)")
	cmd.Flags().BoolVar(&opts.stdout, "stdout", false, "Print the notes instead of writing the output file")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "Re-extract whenever the changelog changes")

	return cmd
}

func runNotes(cmd *cobra.Command, g *globalOptions, opts *notesOptions, args []string) error {
	path, err := changelogPath(g, args)
	if err != nil {
		return err
	}

	outputPath := opts.output
	if outputPath == "" {
		outputPath = g.cfg.NotesOutput
	}

	extractOpts := changelog.Options{Markers: g.cfg.Markers}

	extract := func() error {
		notes, err := changelog.ExtractFile(path, extractOpts)
		if err != nil {
			return changelogError(path, err)
		}
		switch {
		case !notes.Found:
			g.logger.Warn("no upcoming section found", "changelog", path, "headings", extractOpts.UpcomingHeadings())
		case notes.IsEmpty():
			g.logger.Warn("upcoming section is empty", "changelog", path)
		}

		if opts.stdout {
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), notes.String()); err != nil {
				return clierrors.NewRuntimeError("cannot print release notes", err,
					"Check that stdout is not closed, or write to a file with --output")
			}
			return nil
		}

		if err := changelog.WriteFile(outputPath, notes); err != nil {
			return clierrors.NotesNotWritable(outputPath, err)
		}
		g.logger.Info("release notes written", "changelog", path, "output", outputPath, "lines", len(notes.Lines))
		return nil
	}

	if !opts.watch {
		return extract()
	}

	if err := extract(); err != nil {
		reportError(cmd.ErrOrStderr(), err)
	} else if !opts.stdout {
		output.PrintSuccess(cmd.ErrOrStderr(), fmt.Sprintf("wrote %s", outputPath))
	}

	return changelog.Watch(cmd.Context(), path, func() error {
		if err := extract(); err != nil {
			return err
		}
		if !opts.stdout {
			output.PrintSuccess(cmd.ErrOrStderr(), fmt.Sprintf("updated %s", outputPath))
		}
		return nil
	}, func(err error) {
		reportError(cmd.ErrOrStderr(), err)
	})
}

// changelogPath returns the changelog named on the command line, or the
// configured default resolved against the repository root.
func changelogPath(g *globalOptions, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	path, err := git.ResolvePath(g.cfg.Changelog)
	if err != nil {
		return "", clierrors.WrapWithMessage(err, clierrors.Prerequisite,
			"locating repository root",
			"Pass the changelog path explicitly: releasekit notes path/to/CHANGELOG.md",
		)
	}
	g.logger.Debug("using default changelog", "path", path)
	return path, nil
}

// changelogError classifies a changelog read failure.
func changelogError(path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return clierrors.ChangelogNotFound(path, err)
	}
	return clierrors.ChangelogUnreadable(path, err)
}
