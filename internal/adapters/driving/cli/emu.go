package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var emuCmd = &cobra.Command{
	Use:     "emu",
	Aliases: []string{"emulator"},
	Short:   "Run the generated file in the emulator",
	Long: `Copies <name>.bas to the emulator's sdcard, writes an autoexec.txt that
loads it and starts fab-agon-emulator from the folder set by emu_path in
Bargo.toml. Run bargo build first.`,
	Args: cobra.NoArgs,
	RunE: runEmu,
}

func init() {
	rootCmd.AddCommand(emuCmd)
}

func runEmu(cmd *cobra.Command, _ []string) error {
	if emulatorService == nil {
		return errors.New("emulator service not configured")
	}
	return emulatorService.Run(cmd.Context())
}
