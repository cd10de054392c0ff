package pricing

import (
	"strings"

	domain "github.com/donaldgifford/mtg-price-tracker/pkg/types"
)

// ConditionTable maps one vendor's printed condition labels onto the
// normalized condition codes. Labels are matched case-insensitively after
// trimming.
type ConditionTable map[string]domain.Condition

// Lookup returns the condition for raw. Unmapped labels report false and
// must be dropped by the caller.
func (t ConditionTable) Lookup(raw string) (domain.Condition, bool) {
	c, ok := t[strings.ToLower(strings.TrimSpace(raw))]
	return c, ok
}

// Vendor condition tables.
var (
	TCGPlayerConditions = ConditionTable{
		"near mint":         domain.ConditionNM,
		"lightly played":    domain.ConditionLP,
		"moderately played": domain.ConditionMP,
		"heavily played":    domain.ConditionHP,
		"damaged":           domain.ConditionDMG,
	}

	// ManaPool prints the codes themselves as listing badges.
	ManaPoolConditions = ConditionTable{
		"nm":  domain.ConditionNM,
		"lp":  domain.ConditionLP,
		"mp":  domain.ConditionMP,
		"hp":  domain.ConditionHP,
		"dmg": domain.ConditionDMG,
	}

	CardKingdomConditions = ConditionTable{
		"nm":        domain.ConditionNM,
		"near mint": domain.ConditionNM,
		"ex":        domain.ConditionLP,
		"excellent": domain.ConditionLP,
		"vg":        domain.ConditionMP,
		"very good": domain.ConditionMP,
		"g":         domain.ConditionHP,
		"good":      domain.ConditionHP,
	}

	// StarCityGames and CoolStuffInc print three tiers; "Played" is the
	// middle one.
	StarCityGamesConditions = ConditionTable{
		"near mint":      domain.ConditionNM,
		"played":         domain.ConditionMP,
		"heavily played": domain.ConditionHP,
	}

	CoolStuffIncConditions = ConditionTable{
		"near mint":      domain.ConditionNM,
		"played":         domain.ConditionMP,
		"heavily played": domain.ConditionHP,
	}
)
