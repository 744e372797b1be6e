package cli

import (
	"fmt"
	"os"

	"github.com/ariel-frischer/releasekit/internal/config"
	clierrors "github.com/ariel-frischer/releasekit/internal/errors"
	"github.com/ariel-frischer/releasekit/internal/output"
	"github.com/spf13/cobra"
)

func newConfigCmd(g *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and create releasekit configuration",
		Long: `Inspect and create releasekit configuration.

Configuration is loaded with priority:
  1. Environment variables (RELEASEKIT_*)
  2. Project config (.releasekit.yml, .releasekit.yaml or .releasekit.json)
  3. Built-in defaults`,
	}
	cmd.GroupID = GroupConfiguration

	cmd.AddCommand(newConfigKeysCmd(), newConfigShowCmd(g), newConfigInitCmd())
	return cmd
}

func newConfigKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "keys",
		Short:       "List all configuration keys with their defaults",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationNoConfig: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, key := range config.SortedKeys() {
				schema := config.KnownKeys[key]
				output.PrintKeyValue(out, 14, key, schema.Description)
				fmt.Fprintf(out, "%14s type: %s, default: %s, env: %s\n", "",
					schema.Type, schema.DefaultString(), schema.EnvVar())
				if len(schema.AllowedValues) > 0 {
					fmt.Fprintf(out, "%14s values: %v\n", "", schema.AllowedValues)
				}
			}
			return nil
		},
	}
}

func newConfigShowCmd(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := g.cfg
			out := cmd.OutOrStdout()
			values := []struct{ key, value string }{
				{"labels_env", c.LabelsEnv},
				{"delimiter", c.Delimiter},
				{"github_output", fmt.Sprint(c.GitHubOutput)},
				{"changelog", c.Changelog},
				{"notes_output", c.NotesOutput},
				{"markers", fmt.Sprint(c.Markers)},
				{"packages_dir", c.PackagesDir},
				{"max_parallel", fmt.Sprint(c.MaxParallel)},
				{"log_level", c.LogLevel},
			}
			for _, v := range values {
				output.PrintKeyValue(out, 14, v.key, v.value)
			}
			return nil
		},
	}
}

func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Write a commented .releasekit.yml with the default settings",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationNoConfig: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.ProjectConfigPath()
			if _, err := os.Stat(path); err == nil && !force {
				return clierrors.NewArgumentError(
					fmt.Sprintf("%s already exists", path),
					"Use --force to overwrite it",
				)
			}
			if err := os.WriteFile(path, []byte(config.GetDefaultConfigTemplate()), 0o644); err != nil {
				return clierrors.WrapWithMessage(err, clierrors.Runtime, "writing config file")
			}
			output.PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("created %s", path))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing config file")
	return cmd
}
