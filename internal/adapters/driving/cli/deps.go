package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var addSource string

var addCmd = &cobra.Command{
	Use:   "add <dep>",
	Short: "Add dependencies to this package",
	Long: `Declares a dependency in Bargo.toml. Without --source the dependency
is read from src/<dep>.bas. A source may be an http(s) URL or
github:owner/repo/path[@ref]; it is downloaded into src/ before each build.`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

var removeCmd = &cobra.Command{
	Use:   "remove <dep>",
	Short: "Remove dependencies from this package",
	Args:  cobra.ExactArgs(1),
	RunE:  runRemove,
}

var depsCmd = &cobra.Command{
	Use:   "deps",
	Short: "List dependencies in build order",
	Args:  cobra.NoArgs,
	RunE:  runDeps,
}

func init() {
	addCmd.Flags().StringVarP(&addSource, "source", "s", "", "URL or github: reference to fetch the dependency from")
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(depsCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	if dependencyService == nil {
		return errors.New("dependency service not configured")
	}

	name := args[0]
	added, err := dependencyService.Add(name, addSource)
	if err != nil {
		return err
	}
	if added {
		status(cmd, "Adding", "%s dependency", name)
	} else {
		status(cmd, "Updating", "%s dependency", name)
	}
	status(cmd, "Finished", "")
	return nil
}

func runRemove(cmd *cobra.Command, args []string) error {
	if dependencyService == nil {
		return errors.New("dependency service not configured")
	}

	name := args[0]
	if err := dependencyService.Remove(name); err != nil {
		return err
	}
	status(cmd, "Removing", "%s dependency", name)
	status(cmd, "Finished", "")
	return nil
}

func runDeps(cmd *cobra.Command, _ []string) error {
	if dependencyService == nil {
		return errors.New("dependency service not configured")
	}

	deps, err := dependencyService.List()
	if err != nil {
		return err
	}
	if len(deps) == 0 {
		cmd.Println("No dependencies")
		return nil
	}
	for _, dep := range deps {
		if dep.IsRemote() {
			cmd.Printf("%s\t%s\n", dep.Name, muted(dep.Source))
		} else {
			cmd.Printf("%s\t%s\n", dep.Name, muted(dep.SourcePath()))
		}
	}
	return nil
}
