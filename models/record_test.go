package models

import "testing"

func TestDatasetBounds(t *testing.T) {
	ds := Dataset{
		{Name: "Tomato", MinPrice: 40},
		{Name: "Onion", MinPrice: 35},
		{Name: "Carrot", MinPrice: 60},
	}

	min, max, ok := ds.Bounds()
	if !ok {
		t.Fatal("Bounds() ok = false for non-empty dataset")
	}
	if min != 35 || max != 60 {
		t.Errorf("Bounds() = (%v, %v), want (35, 60)", min, max)
	}
}

func TestDatasetBounds_Empty(t *testing.T) {
	if _, _, ok := (Dataset{}).Bounds(); ok {
		t.Error("Bounds() ok = true for empty dataset")
	}
}

func TestFilterRangeContains(t *testing.T) {
	fr := FilterRange{Low: 35, High: 60}

	for _, price := range []float64{35, 40, 60} {
		if !fr.Contains(price) {
			t.Errorf("Contains(%v) = false, want true", price)
		}
	}
	for _, price := range []float64{34.9, 60.1} {
		if fr.Contains(price) {
			t.Errorf("Contains(%v) = true, want false", price)
		}
	}
}
