package main

import (
	"fmt"
	"io"

	"github.com/drossy/stars/internal/cli"
	"github.com/drossy/stars/internal/logging"
	"github.com/drossy/stars/internal/presentation/graph"
	"github.com/spf13/cobra"
)

var statesCmd = &cobra.Command{
	Use:   "states",
	Short: "List the game states registered for the selected side",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		// Listing needs no persistence.
		cfg.Redis.Addr = ""

		w, err := cli.Build(cmd.Context(), cfg, logging.NewNop(), io.Discard, "notty")
		if err != nil {
			return err
		}
		defer w.Close()

		out := cmd.OutOrStdout()
		if mermaid, _ := cmd.Flags().GetBool("mermaid"); mermaid {
			fmt.Fprint(out, graph.GenerateMermaid(w.App.Available(), w.App.DefaultState(), nil))
			return nil
		}

		fmt.Fprintf(out, "%s states (default %q):\n", w.App.Side(), w.App.DefaultState())
		for _, name := range w.App.Available() {
			fmt.Fprintf(out, "  %s\n", name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statesCmd)
	statesCmd.Flags().Bool("mermaid", false, "Print a Mermaid flowchart instead of a list")
}
