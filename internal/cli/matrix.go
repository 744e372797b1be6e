package cli

import (
	"fmt"
	"os"

	clierrors "github.com/ariel-frischer/releasekit/internal/errors"
	"github.com/ariel-frischer/releasekit/internal/labels"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

type matrixOptions struct {
	githubOutput bool
	envFile      string
}

func newMatrixCmd(g *globalOptions) *cobra.Command {
	opts := &matrixOptions{}

	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "Build a release matrix from pull request labels",
		Long: `Build a CI build matrix from pull request labels.

Labels are read as JSON from the PULL_LABELS environment variable (see
labels_env), typically set with:

  env:
    PULL_LABELS: ${{ toJson(github.event.pull_request.labels) }}

Every label named <package>:<major|minor|patch> becomes one matrix entry, in
label order. Other labels are ignored, and a missing or malformed payload
yields an empty matrix rather than an error.

The matrix is printed as a single JSON line on stdout. With --github-output
the has_labels and matrix step outputs are also appended to $GITHUB_OUTPUT.`,
		Example: `  PULL_LABELS='[{"name":"core:major"},{"name":"ui:patch"}]' releasekit matrix
  # {"include":[{"package":"core","bump":"major"},{"package":"ui","bump":"patch"}]}

  # Reproduce a CI run locally
  releasekit matrix --env-file .env.ci`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMatrix(cmd, g, opts)
		},
	}
	cmd.GroupID = GroupRelease

	cmd.Flags().BoolVar(&opts.githubOutput, "github-output", false, "Append has_labels and matrix outputs to $GITHUB_OUTPUT")
	cmd.Flags().StringVar(&opts.envFile, "env-file", "", "Load environment variables from a dotenv file first (existing variables win)")

	return cmd
}

func runMatrix(cmd *cobra.Command, g *globalOptions, opts *matrixOptions) error {
	if opts.envFile != "" {
		if err := godotenv.Load(opts.envFile); err != nil {
			return clierrors.EnvFileNotLoaded(opts.envFile, err)
		}
		g.logger.Debug("loaded env file", "path", opts.envFile)
	}

	var outputPath string
	if opts.githubOutput || g.cfg.GitHubOutput {
		outputPath = os.Getenv(labels.GitHubOutputEnv)
		if outputPath == "" {
			return clierrors.GitHubOutputNotSet()
		}
	}

	raw, ok := os.LookupEnv(g.cfg.LabelsEnv)
	if !ok {
		g.logger.Info("labels variable not set, building empty matrix", "env", g.cfg.LabelsEnv)
	}

	m := labels.BuildFromJSON(raw, labels.Options{Delimiter: g.cfg.Delimiter})
	data, err := m.JSON()
	if err != nil {
		return fmt.Errorf("encoding matrix: %w", err)
	}

	if _, err := fmt.Fprintln(cmd.OutOrStdout(), string(data)); err != nil {
		return fmt.Errorf("writing matrix: %w", err)
	}

	g.logger.Info("matrix built", "entries", len(m.Include), "has_labels", m.HasEntries())

	if outputPath != "" {
		if err := labels.AppendGitHubOutput(outputPath, m); err != nil {
			return clierrors.WrapWithMessage(err, clierrors.Runtime, "writing step outputs")
		}
		g.logger.Debug("step outputs written", "path", outputPath)
	}

	return nil
}
