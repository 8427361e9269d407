// Package format renders numeric magnitudes into human-readable abbreviated strings.
package format

import (
	"fmt"
	"math"
)

// Number abbreviates a value with K/M/B suffixes. The suffix is chosen by
// absolute magnitude so the sign carries through unchanged.
func Number(v float64, precision int) string {
	abs := math.Abs(v)
	switch {
	case abs >= 1_000_000_000:
		return fmt.Sprintf("%.*fB", precision, v/1_000_000_000)
	case abs >= 1_000_000:
		return fmt.Sprintf("%.*fM", precision, v/1_000_000)
	case abs >= 1_000:
		return fmt.Sprintf("%.*fK", precision, v/1_000)
	default:
		return fmt.Sprintf("%.*f", precision, v)
	}
}

// Nullable formats an optional value, rendering nil as "N/A" so unknown
// values stay distinguishable from zero.
func Nullable(v *float64, precision int) string {
	if v == nil {
		return "N/A"
	}
	return Number(*v, precision)
}

// USD prefixes a formatted number with a dollar sign.
func USD(v float64, precision int) string {
	return "$" + Number(v, precision)
}

// Percent formats a signed percentage with an explicit sign, e.g. "+5.67%".
func Percent(v float64, precision int) string {
	return fmt.Sprintf("%+.*f%%", precision, v)
}
