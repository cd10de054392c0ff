package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/mtg-price-tracker/pkg/logger"
)

func init() {
	var save bool

	scrapeCmd := &cobra.Command{
		Use:   "scrape <scryfall-id>",
		Short: "Price one printing across every enabled vendor and print the result",
		Long: "Runs the vendor adapters for a single printing in-process, without the " +
			"API server. With --save the result is appended to price history.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a, err := newApp(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer a.Close()

			result, err := a.watcher.ScrapeOnce(ctx, args[0], save)
			if result != nil {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if encErr := enc.Encode(result); encErr != nil {
					return fmt.Errorf("encoding result: %w", encErr)
				}
			}
			return err
		},
	}
	scrapeCmd.Flags().BoolVar(&save, "save", false, "append the result to price history")

	rootCmd.AddCommand(scrapeCmd)
}
