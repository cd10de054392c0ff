package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func watchlistCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "watchlist",
		Aliases: []string{"wl"},
		Short:   "Manage the watchlist",
		Long: "Manage the printings tracked by the watcher. Entries are keyed by\n" +
			"Scryfall id and removed by card name.",
	}

	root.AddCommand(
		watchlistListCmd(),
		watchlistAddCmd(),
		watchlistRemoveCmd(),
	)

	return root
}

func watchlistListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tracked printings",
		Example: `  mpt watchlist list
  mpt watchlist list --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := newClient()
			entries, err := c.ListWatchlist(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, entries)
			}
			if len(entries) == 0 {
				fmt.Fprintln(out, "The watchlist is empty.")
				return nil
			}
			return printWatchlistTable(out, entries)
		},
	}
}

func watchlistAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <scryfall-id>",
		Short: "Track a printing",
		Example: `  mpt watchlist add e3285e6b-3e79-4d7c-bf96-d920f973b80d
  mpt printings "Lightning Bolt"   # find the id first`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient()
			msg, err := c.AddToWatchlist(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}
}

func watchlistRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <card name>",
		Aliases: []string{"rm"},
		Short:   "Stop tracking every printing of a card",
		Example: `  mpt watchlist remove Lightning Bolt
  mpt watchlist rm "Black Lotus"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient()
			msg, err := c.RemoveFromWatchlist(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}
}
