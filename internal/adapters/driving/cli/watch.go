package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/bargo/internal/core/domain"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Rebuild whenever sources change",
	Long: `Builds once, then rebuilds whenever a file in src/ or Bargo.toml changes.
Remote dependencies are fetched by the first build only. Press Ctrl+C to stop.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	if watchService == nil {
		return errors.New("watch service not configured")
	}

	return watchService.Watch(cmd.Context(), func(result *domain.BuildResult, err error) {
		if err != nil {
			statusWarn(cmd, "Failed", "%v", err)
			return
		}
		printBuild(cmd, result)
	})
}
