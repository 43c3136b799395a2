package main

import (
	"os"

	"github.com/drossy/stars/internal/cli"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the game",
	Long:  `Builds the application for the selected side, enters its initial state and runs the update loop until quit or interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return cli.RunSession(cmd.Context(), cli.RunOptions{
			Config: cfg,
			Stdin:  os.Stdin,
			Stdout: cmd.OutOrStdout(),
			Stderr: cmd.ErrOrStderr(),
		})
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().String("http-addr", "", "Serve the state API and metrics on this address")
	runCmd.Flags().String("initial-state", "", "State to enter on start instead of the side default")
	runCmd.Flags().String("locale", "", "Locale for menu captions")

	// 'run' is the default command.
	rootCmd.RunE = runCmd.RunE
	rootCmd.Flags().AddFlagSet(runCmd.Flags())
}
