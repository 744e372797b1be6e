// Package cli implements the releasekit command line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ariel-frischer/releasekit/internal/changelog"
	"github.com/ariel-frischer/releasekit/internal/config"
	clierrors "github.com/ariel-frischer/releasekit/internal/errors"
	"github.com/ariel-frischer/releasekit/internal/git"
	"github.com/ariel-frischer/releasekit/internal/labels"
	"github.com/ariel-frischer/releasekit/internal/version"
	"github.com/spf13/cobra"
)

// Command groups shown in help output.
const (
	GroupRelease       = "release"
	GroupConfiguration = "configuration"
	GroupInternal      = "internal"
)

// annotationNoConfig marks commands that must run even when the project
// configuration does not load, such as the ones that repair it.
const annotationNoConfig = "releasekit/no-config"

// globalOptions holds the persistent flags and the state derived from them.
type globalOptions struct {
	configPath string
	debug      bool
	logLevel   string

	cfg    *config.Configuration
	logger *slog.Logger
}

// NewRootCmd builds the releasekit command tree.
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "releasekit",
		Short: "Release automation helpers for CI pipelines",
		Long: `releasekit turns pull-request labels into a CI build matrix and extracts
the upcoming section of a changelog into release notes.

Both commands are meant to run as steps of a release workflow: the matrix
drives one release job per labelled package, and the notes become the body
of the published release.`,
		Example: `  # Build the release matrix from the pull request labels
  PULL_LABELS='[{"name":"core:minor"}]' releasekit matrix

  # Write the upcoming changelog section to release-notes.txt
  releasekit notes CHANGELOG.md

  # Extract notes for every package in the matrix
  releasekit matrix | releasekit package-notes --from-matrix`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations[annotationNoConfig] == "true" {
				return opts.setupLogger(cmd.ErrOrStderr(), "")
			}
			return opts.setup(cmd.ErrOrStderr())
		},
	}

	cmd.AddGroup(
		&cobra.Group{ID: GroupRelease, Title: "Release Commands:"},
		&cobra.Group{ID: GroupConfiguration, Title: "Configuration Commands:"},
		&cobra.Group{ID: GroupInternal, Title: "Other Commands:"},
	)
	cmd.SetHelpCommandGroupID(GroupInternal)
	cmd.SetCompletionCommandGroupID(GroupInternal)

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to config file (default: .releasekit.yml)")
	cmd.PersistentFlags().BoolVarP(&opts.debug, "debug", "d", false, "Enable debug logging (same as --log-level debug)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return &clierrors.CLIError{
			Category:    clierrors.Argument,
			Message:     err.Error(),
			Usage:       c.UseLine(),
			Remediation: []string{fmt.Sprintf("Run '%s --help' for usage", c.CommandPath())},
			Cause:       err,
		}
	})

	cmd.AddCommand(
		newMatrixCmd(opts),
		newNotesCmd(opts),
		newPackageNotesCmd(opts),
		newConfigCmd(opts),
		newVersionCmd(),
	)

	return cmd
}

// setup loads configuration and wires the logger into the library packages.
func (o *globalOptions) setup(stderr io.Writer) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return clierrors.ConfigInvalid(err)
	}
	o.cfg = cfg

	if err := o.setupLogger(stderr, cfg.LogLevel); err != nil {
		return err
	}
	o.logger.Debug("configuration loaded", "version", version.String(),
		"labels_env", cfg.LabelsEnv, "changelog", cfg.Changelog, "notes_output", cfg.NotesOutput)
	return nil
}

// setupLogger builds the logger from the flags, falling back to
// configuredLevel, and wires it into the library packages.
func (o *globalOptions) setupLogger(stderr io.Writer, configuredLevel string) error {
	level := configuredLevel
	if o.logLevel != "" {
		level = o.logLevel
	}
	if o.debug {
		level = "debug"
	}

	logger, err := newLogger(stderr, level)
	if err != nil {
		return err
	}
	o.logger = logger

	labels.SetLogger(logger)
	changelog.SetLogger(logger)
	if logger.Enabled(context.Background(), slog.LevelDebug) {
		git.SetDebugLogger(func(format string, args ...any) {
			logger.Debug(fmt.Sprintf(format, args...))
		})
	} else {
		git.SetDebugLogger(nil)
	}
	return nil
}

// Execute runs the root command and returns the process exit code.
// Errors are reported on stderr here, in one place, so that commands only
// need to return them.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return run(ctx, NewRootCmd(), os.Stderr)
}

func run(ctx context.Context, cmd *cobra.Command, stderr io.Writer) int {
	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return ExitSuccess
	}
	reportError(stderr, err)
	return ExitCode(err)
}

// reportError prints err to w, formatted when it carries remediation steps.
func reportError(w io.Writer, err error) {
	if cliErr := clierrors.AsCLIError(err); cliErr != nil {
		clierrors.FprintError(w, cliErr)
		return
	}
	clierrors.FprintSimpleError(w, err, clierrors.Runtime)
}
