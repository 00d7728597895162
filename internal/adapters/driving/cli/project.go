package cli

import (
	"errors"
	"path/filepath"

	"github.com/spf13/cobra"
)

var newCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Create a new package",
	Long: `Creates <name>/Bargo.toml and <name>/src/main.bas and initialises a git
repository in <name>.`,
	Args: cobra.ExactArgs(1),
	RunE: runNew,
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a new package in the current directory",
	Args:  cobra.NoArgs,
	RunE:  runInit,
}

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove the generated file",
	Args:  cobra.NoArgs,
	RunE:  runClean,
}

func init() {
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(cleanCmd)
}

func runNew(cmd *cobra.Command, args []string) error {
	if projectService == nil {
		return errors.New("project service not configured")
	}

	pkg, err := projectService.New(cmd.Context(), args[0])
	if pkg != nil {
		status(cmd, "Created", "`%s` package", pkg.Name)
	}
	return err
}

func runInit(cmd *cobra.Command, _ []string) error {
	if projectService == nil {
		return errors.New("project service not configured")
	}

	pkg, err := projectService.Init(cmd.Context())
	if pkg != nil {
		status(cmd, "Created", "`%s` package", pkg.Name)
	}
	return err
}

func runClean(cmd *cobra.Command, _ []string) error {
	if projectService == nil {
		return errors.New("project service not configured")
	}

	path, err := projectService.Clean()
	if err != nil {
		return err
	}
	status(cmd, "Removed", "%s", filepath.Base(path))
	return nil
}
