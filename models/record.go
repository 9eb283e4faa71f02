package models

// PriceRecord represents one vegetable price entry scraped from the source page
type PriceRecord struct {
	Name     string  `json:"name"`      // Vegetable name, never empty
	RawRange string  `json:"raw_range"` // Price range text as displayed, e.g. "₹40-50 per kg"
	MinPrice float64 `json:"min_price"` // Lower bound parsed from RawRange
}

// Dataset is the ordered collection of records from one scrape.
// It is built once at startup and never mutated afterwards.
type Dataset []PriceRecord

// Bounds returns the minimum and maximum MinPrice across the dataset.
// ok is false when the dataset is empty and the bounds are undefined.
func (d Dataset) Bounds() (min, max float64, ok bool) {
	if len(d) == 0 {
		return 0, 0, false
	}
	min, max = d[0].MinPrice, d[0].MinPrice
	for _, r := range d[1:] {
		if r.MinPrice < min {
			min = r.MinPrice
		}
		if r.MinPrice > max {
			max = r.MinPrice
		}
	}
	return min, max, true
}

// FilterRange is the inclusive [Low, High] price bound selected by the user
type FilterRange struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// Contains reports whether price falls within the range, inclusive on both ends
func (fr FilterRange) Contains(price float64) bool {
	return price >= fr.Low && price <= fr.High
}
