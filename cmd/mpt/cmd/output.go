package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/donaldgifford/mtg-price-tracker/internal/api/handlers"
	domain "github.com/donaldgifford/mtg-price-tracker/pkg/types"
)

const timeLayout = "2006-01-02 15:04"

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printStatus(w io.Writer, s *handlers.WatcherStatusBody) error {
	tw := newTabWriter(w)
	tw.writef("Status:\t%s\n", s.Phase)
	if s.CurrentItem != "" {
		tw.writef("Current card:\t%s\n", s.CurrentItem)
	}
	if s.ItemsTotal > 0 {
		tw.writef("Progress:\t%s %d/%d\n", progressBar(s.ItemsCompleted, s.ItemsTotal, 20), s.ItemsCompleted, s.ItemsTotal)
	}
	if s.AverageItemSeconds > 0 {
		tw.writef("Average per card:\t%.1fs\n", s.AverageItemSeconds)
	}
	if s.EstimatedTimeRemaining != "" {
		tw.writef("Time left:\t%s\n", s.EstimatedTimeRemaining)
	}
	if s.NextRun != nil {
		tw.writef("Next run:\t%s\n", s.NextRun.Local().Format(timeLayout))
	}
	return tw.finish()
}

// progressBar renders done/total as a fixed-width bar.
func progressBar(done, total, width int) string {
	if total <= 0 {
		return "[" + strings.Repeat(".", width) + "]"
	}
	filled := min(done*width/total, width)
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", width-filled) + "]"
}

func printWatchlistTable(w io.Writer, entries []domain.WatchlistEntry) error {
	tw := newTabWriter(w)
	tw.writef("EXTERNAL ID\tCARD\tSET\t#\tLAST SCRAPED\n")
	for i := range entries {
		e := &entries[i]
		last := "-"
		if e.LastScrapedAt != nil {
			last = e.LastScrapedAt.Local().Format(timeLayout)
		}
		tw.writef("%s\t%s\t%s\t%s\t%s\n",
			e.ExternalID,
			truncate(e.CardName, 32),
			truncate(e.SetName, 28),
			e.CollectorNumber,
			last,
		)
	}
	return tw.finish()
}

func printHistoryTable(w io.Writer, points []domain.PriceHistoryPoint) error {
	tw := newTabWriter(w)
	tw.writef("TIMESTAMP")
	for _, v := range domain.ListingVendors {
		tw.writef("\t%s NM", strings.ToUpper(v.DisplayName()))
	}
	tw.writef("\tSCRYFALL\tLAST SOLD\n")

	for i := range points {
		p := &points[i]
		tw.writef("%s", p.Timestamp.Local().Format(timeLayout))
		for _, v := range domain.ListingVendors {
			price, ok := p.Price(v, domain.ConditionNM)
			tw.writef("\t%s", moneyOrDash(price, ok))
		}
		tw.writef("\t%s\t%s\n", moneyPtr(p.ReferencePrice), moneyPtr(p.LastSoldPrice))
	}
	return tw.finish()
}

func printPrintingsTable(w io.Writer, printings []handlers.PrintingSummary) error {
	tw := newTabWriter(w)
	tw.writef("EXTERNAL ID\tSET\tCODE\t#\tRELEASED\tUSD\tSCRAPABLE\n")
	for i := range printings {
		p := &printings[i]
		usd := "-"
		if p.USD != "" {
			usd = "$" + p.USD
		}
		tw.writef("%s\t%s\t%s\t%s\t%s\t%s\t%v\n",
			p.ExternalID,
			truncate(p.SetName, 32),
			p.SetCode,
			p.CollectorNumber,
			p.ReleasedAt,
			usd,
			p.HasProductID,
		)
	}
	return tw.finish()
}

func printAnalysis(w io.Writer, r *domain.AnalysisResult) error {
	tw := newTabWriter(w)
	tw.writef("%s\n\n", r.Card.Label())
	if r.Error != "" {
		tw.writef("Error:\t%s\n", r.Error)
		return tw.finish()
	}

	tw.writef("VENDOR")
	for _, c := range domain.Conditions {
		tw.writef("\t%s", c)
	}
	tw.writef("\tNOTE\n")

	vendors := append([]domain.Vendor{domain.VendorScryfall}, domain.ListingVendors...)
	for _, v := range vendors {
		q := r.Quote(v)
		if q == nil {
			continue
		}
		tw.writef("%s", v.DisplayName())
		for _, c := range domain.Conditions {
			price, ok := q.Price(c)
			tw.writef("\t%s", moneyOrDash(price, ok))
		}
		tw.writef("\t%s\n", quoteNote(q))
	}
	return tw.finish()
}

func quoteNote(q *domain.PriceQuote) string {
	switch {
	case q.Failed():
		return "failed: " + truncate(q.Error, 40)
	case len(q.LowestPriceByCondition) == 0:
		return "no listings"
	case q.Vendor == domain.VendorTCGPlayer && q.LastSoldPrice != nil:
		return fmt.Sprintf("last sold %s, %d listed", money(*q.LastSoldPrice), q.CurrentListingCount)
	default:
		return ""
	}
}

func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

func moneyOrDash(d decimal.Decimal, ok bool) string {
	if !ok {
		return "-"
	}
	return money(d)
}

func moneyPtr(d *decimal.Decimal) string {
	if d == nil {
		return "-"
	}
	return money(*d)
}

func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
