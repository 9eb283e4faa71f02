package models

// BarPoint represents a single bar in the price chart
type BarPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Color string  `json:"color"`
}

// BarChart represents data for the per-vegetable price chart
type BarChart struct {
	Title  string     `json:"title"`
	Points []BarPoint `json:"points"`
}

// HistogramBin represents one bin of the price distribution
type HistogramBin struct {
	Low   float64 `json:"low"`
	High  float64 `json:"high"`
	Count int     `json:"count"`
}

// Histogram represents the binned price distribution chart
type Histogram struct {
	Title string         `json:"title"`
	Bins  []HistogramBin `json:"bins"`
}

// ViewModel is the result of one filter update: the records for the table
// plus both chart payloads. Derived from the dataset, never persisted.
type ViewModel struct {
	Records   []PriceRecord `json:"records"`
	Bar       BarChart      `json:"bar"`
	Histogram Histogram     `json:"histogram"`
}
