package pricing

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrNoPrice is returned when a price string holds no number.
var ErrNoPrice = errors.New("no price")

// ParsePrice parses vendor price text such as "$1,234.56" or " 0.25 ".
// Currency symbols, thousands separators and surrounding text are ignored.
func ParsePrice(raw string) (decimal.Decimal, error) {
	cleaned := numericRun(raw, true)
	if cleaned == "" {
		return decimal.Decimal{}, fmt.Errorf("parsing %q: %w", raw, ErrNoPrice)
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parsing %q: %w", raw, err)
	}
	return d, nil
}

// ParseCount parses integer text such as "1,024" or "12 listings".
func ParseCount(raw string) (int, error) {
	cleaned := numericRun(raw, false)
	if cleaned == "" {
		return 0, fmt.Errorf("parsing %q: no digits", raw)
	}

	n, err := strconv.Atoi(cleaned)
	if err != nil {
		return 0, fmt.Errorf("parsing %q: %w", raw, err)
	}

	return n, nil
}

// numericRun returns the first run of digits in s, with commas dropped and,
// when allowDot is set, at most one decimal point kept. A leading point
// followed by a digit starts the run as "0.".
func numericRun(s string, allowDot bool) string {
	var b strings.Builder
	seenDot := false
	runes := []rune(s)

	for i, r := range runes {
		switch {
		case isDigit(r):
			b.WriteRune(r)
		case r == ',' && b.Len() > 0:
		case r == '.' && allowDot && !seenDot && b.Len() > 0:
			seenDot = true
			b.WriteRune(r)
		case r == '.' && allowDot && b.Len() == 0 && i+1 < len(runes) && isDigit(runes[i+1]):
			seenDot = true
			b.WriteString("0.")
		default:
			if b.Len() > 0 {
				return strings.TrimSuffix(b.String(), ".")
			}
		}
	}

	return strings.TrimSuffix(b.String(), ".")
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }
