// Package domain defines the core business types for the MTG price tracker.
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Condition is a normalized card condition bucket.
type Condition string

// Condition constants.
const (
	ConditionNM  Condition = "NM"
	ConditionLP  Condition = "LP"
	ConditionMP  Condition = "MP"
	ConditionHP  Condition = "HP"
	ConditionDMG Condition = "DMG"
)

// Conditions lists every condition in canonical order, best first.
var Conditions = []Condition{
	ConditionNM,
	ConditionLP,
	ConditionMP,
	ConditionHP,
	ConditionDMG,
}

// Valid reports whether c is one of the known condition codes.
func (c Condition) Valid() bool {
	switch c {
	case ConditionNM, ConditionLP, ConditionMP, ConditionHP, ConditionDMG:
		return true
	default:
		return false
	}
}

// Vendor identifies a price source.
type Vendor string

// Vendor constants.
const (
	VendorScryfall      Vendor = "scryfall"
	VendorTCGPlayer     Vendor = "tcgplayer"
	VendorManaPool      Vendor = "manapool"
	VendorCardKingdom   Vendor = "cardkingdom"
	VendorStarCityGames Vendor = "starcitygames"
	VendorCoolStuffInc  Vendor = "coolstuffinc"
)

// DisplayName returns the vendor's storefront name.
func (v Vendor) DisplayName() string {
	switch v {
	case VendorScryfall:
		return "Scryfall"
	case VendorTCGPlayer:
		return "TCGplayer"
	case VendorManaPool:
		return "Mana Pool"
	case VendorCardKingdom:
		return "Card Kingdom"
	case VendorStarCityGames:
		return "Star City Games"
	case VendorCoolStuffInc:
		return "CoolStuffInc"
	default:
		return string(v)
	}
}

// ListingVendors are the vendors whose listing pages are scraped, in
// storage column order.
var ListingVendors = []Vendor{
	VendorTCGPlayer,
	VendorManaPool,
	VendorCardKingdom,
	VendorStarCityGames,
	VendorCoolStuffInc,
}

// URLHints carries printing identifiers used by vendors that key their
// URLs on set code and collector number.
type URLHints struct {
	SetCode         string `json:"set_code,omitempty"`
	CollectorNumber string `json:"collector_number,omitempty"`
}

// CardDescriptor identifies one printing for a single scrape attempt. It is
// rebuilt from the reference catalog every cycle.
type CardDescriptor struct {
	ExternalID        string   `json:"external_id"`
	CardName          string   `json:"card_name"`
	SetName           string   `json:"set_name"`
	ExternalProductID string   `json:"external_product_id,omitempty"`
	URLHints          URLHints `json:"url_hints"`
}

// Label returns the "Name (Set)" form used in logs and messages.
func (d *CardDescriptor) Label() string {
	return d.CardName + " (" + d.SetName + ")"
}

// PriceQuote is one vendor's price summary for one printing.
//
// A quote with Error set failed to load. A quote with an empty
// LowestPriceByCondition and no Error loaded but found no qualifying
// listings.
type PriceQuote struct {
	Vendor                 Vendor                        `json:"vendor"`
	LowestPriceByCondition map[Condition]decimal.Decimal `json:"lowest_price_by_condition"`

	// TCGplayer market signals.
	LastSoldPrice       *decimal.Decimal `json:"last_sold_price,omitempty"`
	TotalSold           int              `json:"total_sold,omitempty"`
	CurrentListingCount int              `json:"current_listing_count,omitempty"`
	VolatilityLabel     string           `json:"volatility_label,omitempty"`

	Error string `json:"error,omitempty"`
}

// NewPriceQuote returns an empty, valid quote for vendor v.
func NewPriceQuote(v Vendor) *PriceQuote {
	return &PriceQuote{
		Vendor:                 v,
		LowestPriceByCondition: map[Condition]decimal.Decimal{},
	}
}

// FailedQuote returns a quote carrying err as its failure marker.
func FailedQuote(v Vendor, err error) PriceQuote {
	return PriceQuote{
		Vendor:                 v,
		LowestPriceByCondition: map[Condition]decimal.Decimal{},
		Error:                  err.Error(),
	}
}

// Failed reports whether the quote represents a navigation or extraction
// failure rather than a (possibly empty) set of prices.
func (q *PriceQuote) Failed() bool {
	return q.Error != ""
}

// Price returns the lowest price for cond, if present and the quote did
// not fail.
func (q *PriceQuote) Price(cond Condition) (decimal.Decimal, bool) {
	if q.Failed() {
		return decimal.Decimal{}, false
	}
	p, ok := q.LowestPriceByCondition[cond]
	return p, ok
}

// AnalysisResult aggregates every vendor quote for one printing.
type AnalysisResult struct {
	Card   CardDescriptor        `json:"card"`
	Quotes map[Vendor]PriceQuote `json:"quotes"`

	// Error is set only for descriptor-level precondition failures.
	Error string `json:"error,omitempty"`
}

// Quote returns the quote for v, or nil if v was not attempted.
func (r *AnalysisResult) Quote(v Vendor) *PriceQuote {
	q, ok := r.Quotes[v]
	if !ok {
		return nil
	}
	return &q
}

// WatchlistEntry is a persisted printing under price tracking.
type WatchlistEntry struct {
	ExternalID          string     `json:"external_id"`
	CardName            string     `json:"card_name"`
	SetName             string     `json:"set_name"`
	CollectorNumber     string     `json:"collector_number,omitempty"`
	ReferenceURL        string     `json:"reference_url,omitempty"`
	ImageURL            string     `json:"image_url,omitempty"`
	LastScrapedAt       *time.Time `json:"last_scraped_at,omitempty"`
	DashboardMessageRef string     `json:"dashboard_message_ref,omitempty"`
}

// Label returns the "Name (Set)" form used in logs and messages.
func (e *WatchlistEntry) Label() string {
	return e.CardName + " (" + e.SetName + ")"
}

// PriceHistoryPoint is one append-only price snapshot for a printing.
// Nil values were not observed and are stored as NULL.
type PriceHistoryPoint struct {
	ExternalID     string                                   `json:"external_id"`
	Timestamp      time.Time                                `json:"timestamp"`
	Prices         map[Vendor]map[Condition]decimal.Decimal `json:"prices"`
	ReferencePrice *decimal.Decimal                         `json:"reference_price,omitempty"`

	LastSoldPrice *decimal.Decimal `json:"last_sold_price,omitempty"`
	TotalSold     *int             `json:"total_sold,omitempty"`
	ListingCount  *int             `json:"listing_count,omitempty"`
	Volatility    *string          `json:"volatility,omitempty"`
}

// Price returns the stored price for (v, cond).
func (p *PriceHistoryPoint) Price(v Vendor, cond Condition) (decimal.Decimal, bool) {
	byCond, ok := p.Prices[v]
	if !ok {
		return decimal.Decimal{}, false
	}
	price, ok := byCond[cond]
	return price, ok
}

// Watcher phases.
const (
	PhaseIdle         = "Idle"
	PhaseInitializing = "Initializing"
	PhaseRunning      = "Running"
	PhasePresenting   = "Updating dashboards"
)

// WatcherRunStatus is a point-in-time copy of the watcher's progress.
type WatcherRunStatus struct {
	IsRunning              bool    `json:"is_running"`
	Phase                  string  `json:"phase"`
	CurrentItem            string  `json:"current_item,omitempty"`
	ItemsCompleted         int     `json:"items_completed"`
	ItemsTotal             int     `json:"items_total"`
	AverageItemSeconds     float64 `json:"average_item_seconds"`
	ETASeconds             int     `json:"eta_seconds"`
	EstimatedTimeRemaining string  `json:"estimated_time_remaining,omitempty"`
}

// IdleStatus returns the default status reported between cycles.
func IdleStatus() WatcherRunStatus {
	return WatcherRunStatus{Phase: PhaseIdle}
}
