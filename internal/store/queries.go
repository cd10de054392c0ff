package store

import (
	"strings"

	domain "github.com/donaldgifford/mtg-price-tracker/pkg/types"
)

// SQL is written with ? placeholders and rebound per dialect.

// Watchlist queries.
const (
	queryGetWatchlist = `
		SELECT external_id, card_name, set_name, collector_number,
			reference_url, image_url, last_scraped_at, dashboard_message_ref
		FROM watchlist
		ORDER BY id`

	queryGetWatchlistEntry = `
		SELECT external_id, card_name, set_name, collector_number,
			reference_url, image_url, last_scraped_at, dashboard_message_ref
		FROM watchlist
		WHERE external_id = ?`

	queryInsertWatchlist = `
		INSERT INTO watchlist (
			external_id, card_name, set_name, collector_number,
			reference_url, image_url, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (external_id) DO NOTHING`

	queryWatchlistNames = `
		SELECT external_id, card_name FROM watchlist`

	queryDeleteWatchlistEntry = `
		DELETE FROM watchlist WHERE external_id = ?`

	queryMarkScraped = `
		UPDATE watchlist SET last_scraped_at = ? WHERE external_id = ?`

	querySetDashboardMessageRef = `
		UPDATE watchlist SET dashboard_message_ref = ? WHERE external_id = ?`
)

// Price history column layout. Listing prices are one column per
// (vendor, condition), named <prefix>_<condition>.
var vendorColumnPrefix = map[domain.Vendor]string{
	domain.VendorTCGPlayer:     "tcg",
	domain.VendorManaPool:      "mana",
	domain.VendorCardKingdom:   "ck",
	domain.VendorStarCityGames: "scg",
	domain.VendorCoolStuffInc:  "csi",
}

type priceColumn struct {
	vendor    domain.Vendor
	condition domain.Condition
	name      string
}

var priceColumns = buildPriceColumns()

func buildPriceColumns() []priceColumn {
	cols := make([]priceColumn, 0, len(domain.ListingVendors)*len(domain.Conditions))
	for _, v := range domain.ListingVendors {
		for _, c := range domain.Conditions {
			cols = append(cols, priceColumn{
				vendor:    v,
				condition: c,
				name:      vendorColumnPrefix[v] + "_" + strings.ToLower(string(c)),
			})
		}
	}
	return cols
}

// Columns after the listing prices, in scan order.
var historyTailColumns = []string{
	"scryfall_usd",
	"tcg_last_sold",
	"tcg_total_sold",
	"tcg_listings",
	"tcg_volatility",
}

func historyColumns() []string {
	cols := []string{"external_id", "timestamp"}
	for _, pc := range priceColumns {
		cols = append(cols, pc.name)
	}
	return append(cols, historyTailColumns...)
}

var (
	queryInsertHistory = buildInsertHistory()

	queryGetPriceHistory = `
		SELECT ` + strings.Join(historyColumns(), ", ") + `
		FROM price_history
		WHERE external_id = ?
		ORDER BY timestamp ASC`
)

func buildInsertHistory() string {
	cols := historyColumns()
	marks := strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ")
	return "INSERT INTO price_history (" + strings.Join(cols, ", ") + ") VALUES (" + marks + ")"
}
