// Package cmd implements the CLI commands for mtg-price-tracker.
package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/mtg-price-tracker/internal/config"
)

const defaultConfigFile = "config.yaml"

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "mtg-price-tracker",
	Short: "Track Magic: The Gathering card prices across vendors",
	Long: "Periodically scrapes TCGplayer, Mana Pool, Card Kingdom, Star City Games, " +
		"CoolStuffInc and Scryfall for every printing on the watchlist, stores " +
		"append-only price snapshots and refreshes a Discord dashboard.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", defaultConfigFile, "config file path")
	rootCmd.AddCommand(versionCommand())
}

// Root returns the root cobra command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig reads the config file. A missing default config file falls
// back to built-in defaults; an explicitly named one must exist.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err == nil {
		return cfg, nil
	}
	if errors.Is(err, fs.ErrNotExist) && !cmd.Flags().Changed("config") {
		fmt.Fprintf(os.Stderr, "%s not found, using defaults\n", cfgFile)
		return config.Default(), nil
	}
	return nil, fmt.Errorf("loading config: %w", err)
}
