package cmd

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/mtg-price-tracker/internal/api/client"
)

const clearScreen = "\033[H\033[2J"

func statusCmd() *cobra.Command {
	var (
		watch    bool
		interval time.Duration
	)

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show watcher progress",
		Long: "Show the watcher's current phase, the card being scraped, progress\n" +
			"through the watchlist, and the estimated time remaining.",
		Example: `  mpt status
  mpt status --watch --interval 5s
  mpt status --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := newClient()
			out := cmd.OutOrStdout()
			ctx := cmd.Context()

			for {
				s, err := c.WatcherStatus(ctx)
				if err != nil {
					return err
				}
				if jsonOutput() {
					if err := outputJSON(out, s); err != nil {
						return err
					}
				} else {
					if watch {
						fmt.Fprint(out, clearScreen)
					}
					if err := printStatus(out, s); err != nil {
						return err
					}
				}
				if !watch {
					return nil
				}

				select {
				case <-ctx.Done():
					return nil
				case <-time.After(interval):
				}
			}
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "keep polling until interrupted")
	cmd.Flags().DurationVar(&interval, "interval", 2*time.Second, "poll interval with --watch")

	return cmd
}

func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Start a watcher cycle now",
		Long: "Ask the server to start a watcher cycle immediately. A cycle that\n" +
			"is already in progress is left alone.",
		Example: `  mpt run`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := newClient()
			err := c.RunWatcher(cmd.Context())
			if apiclient.IsStatus(err, http.StatusConflict) {
				fmt.Fprintln(cmd.OutOrStdout(), "A watcher cycle is already running.")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Watcher cycle started.")
			return nil
		},
	}
}
