package filter

import (
	"veggie-dashboard/charts"
	"veggie-dashboard/models"
)

// Filter computes the dashboard view for a selected price range
type Filter struct {
	bins int
}

// NewFilter creates a new Filter instance. bins is the histogram bin count;
// non-positive values fall back to charts.DefaultBins.
func NewFilter(bins int) *Filter {
	if bins <= 0 {
		bins = charts.DefaultBins
	}
	return &Filter{bins: bins}
}

// View computes the filtered records and both chart payloads for the given
// range. It is a pure function of its inputs: the dataset is never mutated
// and the result is fully re-derivable, so repeated calls with the same
// arguments return the same view.
func (f *Filter) View(ds models.Dataset, fr models.FilterRange) models.ViewModel {
	filtered := make([]models.PriceRecord, 0, len(ds))
	for _, r := range ds {
		if fr.Contains(r.MinPrice) {
			filtered = append(filtered, r)
		}
	}

	return models.ViewModel{
		Records:   filtered,
		Bar:       charts.BuildBar(filtered),
		Histogram: charts.BuildHistogram(filtered, f.bins),
	}
}
