// Package cli provides the bargo command line interface built on cobra.
package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/bargo/internal/core/ports/driving"
	"github.com/custodia-labs/bargo/internal/logger"
)

// version is set at build time with -ldflags "-X .../cli.version=...".
var version = "dev"

var verbose bool

// Services used by commands. Set by main before Execute.
var (
	buildService      driving.BuildService
	watchService      driving.WatchService
	dependencyService driving.DependencyService
	projectService    driving.ProjectService
	emulatorService   driving.EmulatorService
)

var rootCmd = &cobra.Command{
	Use:   "bargo",
	Short: "BASIC build system and package manager",
	Long: `bargo assembles a BASIC program from src/main.bas and the dependencies
declared in Bargo.toml, resolves LABEL/GOTO/GOSUB references and writes a
single line-numbered <name>.bas ready for BBC BASIC on the Agon.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print diagnostic output")
}

// SetBuildService configures the service used by build and fetch.
func SetBuildService(s driving.BuildService) {
	buildService = s
}

// SetWatchService configures the service used by watch.
func SetWatchService(s driving.WatchService) {
	watchService = s
}

// SetDependencyService configures the service used by add, remove and deps.
func SetDependencyService(s driving.DependencyService) {
	dependencyService = s
}

// SetProjectService configures the service used by new, init and clean.
func SetProjectService(s driving.ProjectService) {
	projectService = s
}

// SetEmulatorService configures the service used by emu.
func SetEmulatorService(s driving.EmulatorService) {
	emulatorService = s
}

// SetVersion overrides the reported version.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command. Errors are returned for the caller to report.
func Execute(ctx context.Context) error {
	detectStyles()
	rootCmd.SetOut(os.Stdout)
	return rootCmd.ExecuteContext(ctx)
}
