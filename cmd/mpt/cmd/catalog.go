package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func historyCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history <scryfall-id>",
		Short: "Show price history for a printing",
		Example: `  mpt history e3285e6b-3e79-4d7c-bf96-d920f973b80d
  mpt history e3285e6b-3e79-4d7c-bf96-d920f973b80d --limit 10`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient()
			points, err := c.PriceHistory(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if limit > 0 && len(points) > limit {
				points = points[len(points)-limit:]
			}
			out := cmd.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, points)
			}
			if len(points) == 0 {
				fmt.Fprintln(out, "No price history recorded.")
				return nil
			}
			return printHistoryTable(out, points)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "show only the most recent N points (0 for all)")

	return cmd
}

func printingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "printings <card name>",
		Short: "List every printing of a card",
		Example: `  mpt printings Lightning Bolt
  mpt printings "Sol Ring" --output json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient()
			printings, err := c.Printings(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, printings)
			}
			if len(printings) == 0 {
				fmt.Fprintln(out, "No printings found.")
				return nil
			}
			return printPrintingsTable(out, printings)
		},
	}
}

func scrapeCmd() *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:   "scrape <scryfall-id>",
		Short: "Scrape every vendor for one printing",
		Long: "Run a one-off scrape through the server. Results are shown but not\n" +
			"stored unless --save is given.",
		Example: `  mpt scrape e3285e6b-3e79-4d7c-bf96-d920f973b80d
  mpt scrape e3285e6b-3e79-4d7c-bf96-d920f973b80d --save`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient()
			result, err := c.Scrape(cmd.Context(), args[0], save)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, result)
			}
			return printAnalysis(out, result)
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "persist the result to price history")

	return cmd
}
