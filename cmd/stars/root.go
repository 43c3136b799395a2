package main

import (
	"fmt"
	"os"

	"github.com/drossy/stars/internal/config"
	"github.com/drossy/stars/pkg/domain"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "stars",
	Short: "Drossy Stars game client and dedicated server",
	Long: `Starts Drossy Stars as a client (main menu) or as a headless dedicated server.
The side is taken from --side, then from the config file, and defaults to client.`,
	SilenceUsage: true,
}

var (
	sideFlag   domain.Side
	configPath string
)

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Var(&sideFlag, "side", `Side to run as ("server" or "client")`)
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "stars.yaml", "Config file (.yaml or .toml)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
}

// loadConfig reads the config file and applies the flags set on cmd.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("side") {
		cfg.Side = sideFlag
	}
	if flags.Changed("debug") {
		cfg.Debug, _ = flags.GetBool("debug")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if f := flags.Lookup("http-addr"); f != nil && f.Changed {
		cfg.HTTPAddr = f.Value.String()
	}
	if f := flags.Lookup("initial-state"); f != nil && f.Changed {
		cfg.InitialState = f.Value.String()
	}
	if f := flags.Lookup("locale"); f != nil && f.Changed {
		cfg.Locale = f.Value.String()
	}
	cfg.Side = domain.ResolveSide(cfg.Side)
	return cfg, nil
}
