package charts

import (
	"veggie-dashboard/models"
)

// DefaultBins is the fixed bin count for the price distribution histogram
const DefaultBins = 20

// viridisRamp is the continuous color scale applied to bar values,
// sampled from low to high.
var viridisRamp = []string{
	"#440154", "#46327e", "#365c8d", "#277f8e",
	"#1fa187", "#4ac16d", "#a0da39", "#fde725",
}

// colorFor maps a value's position within [min, max] onto the ramp
func colorFor(value, min, max float64) string {
	if max <= min {
		return viridisRamp[len(viridisRamp)/2]
	}
	t := (value - min) / (max - min)
	idx := int(t * float64(len(viridisRamp)-1))
	if idx < 0 {
		idx = 0
	}
	if idx > len(viridisRamp)-1 {
		idx = len(viridisRamp) - 1
	}
	return viridisRamp[idx]
}

// BuildBar builds the per-vegetable bar chart, one bar per record in input
// order, colored by price on the continuous scale.
func BuildBar(records []models.PriceRecord) models.BarChart {
	chart := models.BarChart{Title: "Vegetable Prices"}
	if len(records) == 0 {
		return chart
	}

	min, max, _ := models.Dataset(records).Bounds()
	chart.Points = make([]models.BarPoint, 0, len(records))
	for _, r := range records {
		chart.Points = append(chart.Points, models.BarPoint{
			Label: r.Name,
			Value: r.MinPrice,
			Color: colorFor(r.MinPrice, min, max),
		})
	}
	return chart
}

// BuildHistogram bins the record prices into bins equal-width buckets
// spanning the min..max of the input. All records with the same price
// collapse into a single bin; an empty input yields no bins.
func BuildHistogram(records []models.PriceRecord, bins int) models.Histogram {
	hist := models.Histogram{Title: "Price Distribution"}
	if len(records) == 0 {
		return hist
	}
	if bins <= 0 {
		bins = DefaultBins
	}

	min, max, _ := models.Dataset(records).Bounds()
	if max == min {
		hist.Bins = []models.HistogramBin{{Low: min, High: max, Count: len(records)}}
		return hist
	}

	width := (max - min) / float64(bins)
	hist.Bins = make([]models.HistogramBin, bins)
	for i := range hist.Bins {
		hist.Bins[i].Low = min + float64(i)*width
		hist.Bins[i].High = min + float64(i+1)*width
	}
	// Keep the last edge exact
	hist.Bins[bins-1].High = max

	for _, r := range records {
		idx := int((r.MinPrice - min) / width)
		if idx >= bins {
			idx = bins - 1 // max value lands in the last bin
		}
		hist.Bins[idx].Count++
	}
	return hist
}
