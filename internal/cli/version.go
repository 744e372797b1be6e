package cli

import (
	"fmt"
	"runtime"

	"github.com/ariel-frischer/releasekit/internal/version"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// SourceURL is the project source URL
const SourceURL = "https://github.com/ariel-frischer/releasekit"

func newVersionCmd() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:     "version",
		Aliases: []string{"v"},
		Short:   "Display version information (v)",
		Long:    "Display version, commit, build date, and Go version information for releasekit",
		Example: `  # Show version info
  releasekit version

  # Plain output (for scripts)
  releasekit version --plain`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationNoConfig: "true"},
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			if plain {
				fmt.Fprintf(out, "releasekit %s\n", version.Version)
				fmt.Fprintf(out, "commit: %s\n", version.Commit)
				fmt.Fprintf(out, "built: %s\n", version.BuildDate)
				fmt.Fprintf(out, "go: %s\n", runtime.Version())
				fmt.Fprintf(out, "platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
				return
			}

			bold := color.New(color.Bold).SprintFunc()
			dim := color.New(color.Faint).SprintFunc()
			if version.IsDevBuild() {
				fmt.Fprintf(out, "%s %s %s\n", bold("releasekit"), version.Version, dim("(development build)"))
			} else {
				fmt.Fprintf(out, "%s %s\n", bold("releasekit"), version.Version)
			}
			fmt.Fprintf(out, "  %s %s\n", dim("commit:  "), version.Commit)
			fmt.Fprintf(out, "  %s %s\n", dim("built:   "), version.BuildDate)
			fmt.Fprintf(out, "  %s %s %s/%s\n", dim("go:      "), runtime.Version(), runtime.GOOS, runtime.GOARCH)
			fmt.Fprintf(out, "  %s %s\n", dim("source:  "), SourceURL)
		},
	}
	cmd.GroupID = GroupInternal
	cmd.Flags().BoolVar(&plain, "plain", false, "Plain output without formatting")

	return cmd
}
