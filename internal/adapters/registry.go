package adapters

import (
	"fmt"
	"log/slog"

	domain "github.com/donaldgifford/mtg-price-tracker/pkg/types"
)

// Build returns adapters for the enabled vendors, in the given order.
func Build(enabled []domain.Vendor, ref CardFetcher, opts ...Option) ([]Adapter, error) {
	b := base{log: slog.Default()}
	for _, opt := range opts {
		opt(&b)
	}

	out := make([]Adapter, 0, len(enabled))
	for _, v := range enabled {
		switch v {
		case domain.VendorScryfall:
			if ref == nil {
				return nil, fmt.Errorf("vendor %q needs a card fetcher", v)
			}
			out = append(out, NewReference(ref, b.log))
		case domain.VendorTCGPlayer:
			out = append(out, NewTCGPlayer(opts...))
		case domain.VendorManaPool:
			out = append(out, NewManaPool(opts...))
		case domain.VendorCardKingdom:
			out = append(out, NewCardKingdom(opts...))
		case domain.VendorStarCityGames:
			out = append(out, NewStarCityGames(opts...))
		case domain.VendorCoolStuffInc:
			out = append(out, NewCoolStuffInc(opts...))
		default:
			return nil, fmt.Errorf("unknown vendor %q", v)
		}
	}

	return out, nil
}
