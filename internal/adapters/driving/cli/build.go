package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/bargo/internal/core/domain"
)

var buildOffline bool

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the current package",
	Long: `Fetches remote dependencies, concatenates src/main.bas with every
dependency in name order, resolves labels and writes <name>.bas with
numbered lines.`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download remote dependencies into src/",
	Args:  cobra.NoArgs,
	RunE:  runFetch,
}

func init() {
	buildCmd.Flags().BoolVar(&buildOffline, "offline", false, "skip fetching remote dependencies")
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(fetchCmd)
}

func runBuild(cmd *cobra.Command, _ []string) error {
	if buildService == nil {
		return errors.New("build service not configured")
	}

	result, err := buildService.Build(cmd.Context(), domain.BuildOptions{Offline: buildOffline})
	if err != nil {
		return err
	}
	printBuild(cmd, result)
	return nil
}

func printBuild(cmd *cobra.Command, result *domain.BuildResult) {
	for _, dep := range result.Fetched {
		status(cmd, "Fetched", "%s to %s", dep.Source, dep.SourcePath())
	}
	status(cmd, "Building", "%s v%s", result.Package, result.Version)

	summary := fmt.Sprintf("%d lines, %d labels", result.Lines, result.Labels)
	switch result.Warnings {
	case 0:
	case 1:
		summary += ", 1 warning"
	default:
		summary += fmt.Sprintf(", %d warnings", result.Warnings)
	}
	status(cmd, "Finished", "%s %s", filepath.Base(result.OutputPath), muted("("+summary+")"))
}

func runFetch(cmd *cobra.Command, _ []string) error {
	if buildService == nil {
		return errors.New("build service not configured")
	}

	fetched, err := buildService.Fetch(cmd.Context())
	if err != nil {
		return err
	}
	if len(fetched) == 0 {
		cmd.Println("\tNo remote dependencies")
		return nil
	}
	for _, dep := range fetched {
		status(cmd, "Fetched", "%s to %s", dep.Source, dep.SourcePath())
	}
	status(cmd, "Finished", "")
	return nil
}
