package scryfall

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	domain "github.com/donaldgifford/mtg-price-tracker/pkg/types"
)

// Printing is the subset of a Scryfall card object the tracker reads.
type Printing struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	SetName         string     `json:"set_name"`
	SetCode         string     `json:"set"`
	CollectorNumber string     `json:"collector_number"`
	TCGPlayerID     int        `json:"tcgplayer_id,omitempty"`
	ScryfallURI     string     `json:"scryfall_uri"`
	ReleasedAt      string     `json:"released_at"`
	Prices          Prices     `json:"prices"`
	ImageURIs       *ImageURIs `json:"image_uris,omitempty"`
	CardFaces       []CardFace `json:"card_faces,omitempty"`
}

// Prices holds Scryfall's daily price snapshot. Values are decimal strings
// or null.
type Prices struct {
	USD     *string `json:"usd"`
	USDFoil *string `json:"usd_foil"`
}

// ImageURIs holds image links for a printing or face.
type ImageURIs struct {
	Small  string `json:"small,omitempty"`
	Normal string `json:"normal,omitempty"`
	Large  string `json:"large,omitempty"`
}

// CardFace is one face of a multi-faced printing.
type CardFace struct {
	Name      string     `json:"name"`
	ImageURIs *ImageURIs `json:"image_uris,omitempty"`
}

// USD returns the nonfoil USD price, if Scryfall has one.
func (p *Printing) USD() (decimal.Decimal, bool) {
	if p.Prices.USD == nil || *p.Prices.USD == "" {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(*p.Prices.USD)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

// ImageURL returns the normal-size image, falling back to the front face
// for double-faced printings.
func (p *Printing) ImageURL() string {
	if p.ImageURIs != nil && p.ImageURIs.Normal != "" {
		return p.ImageURIs.Normal
	}
	for _, f := range p.CardFaces {
		if f.ImageURIs != nil && f.ImageURIs.Normal != "" {
			return f.ImageURIs.Normal
		}
	}
	return ""
}

// Released parses ReleasedAt. The zero time is returned when absent.
func (p *Printing) Released() time.Time {
	t, err := time.Parse(time.DateOnly, p.ReleasedAt)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Descriptor builds the per-cycle card descriptor for this printing.
func (p *Printing) Descriptor() *domain.CardDescriptor {
	d := &domain.CardDescriptor{
		ExternalID: p.ID,
		CardName:   p.Name,
		SetName:    p.SetName,
		URLHints: domain.URLHints{
			SetCode:         p.SetCode,
			CollectorNumber: p.CollectorNumber,
		},
	}
	if p.TCGPlayerID > 0 {
		d.ExternalProductID = strconv.Itoa(p.TCGPlayerID)
	}
	return d
}

// WatchlistEntry builds a new watchlist entry for this printing.
func (p *Printing) WatchlistEntry() *domain.WatchlistEntry {
	return &domain.WatchlistEntry{
		ExternalID:      p.ID,
		CardName:        p.Name,
		SetName:         p.SetName,
		CollectorNumber: p.CollectorNumber,
		ReferenceURL:    p.ScryfallURI,
		ImageURL:        p.ImageURL(),
	}
}

type searchPage struct {
	Data     []Printing `json:"data"`
	HasMore  bool       `json:"has_more"`
	NextPage string     `json:"next_page,omitempty"`
}

type apiError struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Details string `json:"details"`
}
