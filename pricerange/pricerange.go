package pricerange

import (
	"fmt"
	"math"
)

// DefaultTickInterval is the default spacing between slider tick labels
const DefaultTickInterval = 20

// CurrencyGlyph prefixes every tick label
const CurrencyGlyph = "₹"

// Tick is one labeled mark on the price filter slider
type Tick struct {
	Value float64 `json:"value"`
	Label string  `json:"label"` // e.g. "₹40"
}

// Ticks generates slider tick marks every interval units across [min, max],
// starting at the first whole multiple at or above min. The tick labels carry
// the currency glyph. An inverted or empty range yields no ticks.
func Ticks(min, max float64, interval int) []Tick {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	if max <= min {
		return nil
	}

	step := float64(interval)
	start := math.Ceil(min/step) * step

	var ticks []Tick
	for v := start; v <= max; v += step {
		ticks = append(ticks, Tick{
			Value: v,
			Label: fmt.Sprintf("%s%d", CurrencyGlyph, int(v)),
		})
	}
	return ticks
}
