package scraper

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"veggie-dashboard/fetcher"
	"veggie-dashboard/parser"
)

const fixtureHTML = `
<html><body>
<table class="table table-bordered table-striped gold-rates">
<tr><th colspan="3">Vegetable Prices</th></tr>
<tr><th>No</th><th>Vegetable</th><th>Price</th></tr>
<tr><td>1</td><td>Tomato</td><td>₹40-50 per kg</td></tr>
<tr><td>2</td><td>Onion</td><td>₹35 per kg</td></tr>
<tr><td>3</td><td>Carrot</td><td>₹60-80 per kg</td></tr>
<tr><td>4</td><td>Beans</td><td>out of stock</td></tr>
</table>
</body></html>`

func newService(url string) *Service {
	return NewService(fetcher.NewCollyFetcher(), parser.NewParser(""), url)
}

func TestScrape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(fixtureHTML))
	}))
	defer srv.Close()

	ds, err := newService(srv.URL).Scrape()
	if err != nil {
		t.Fatalf("Scrape() error = %v", err)
	}

	// Three parseable rows; the malformed Beans row is dropped
	if len(ds) != 3 {
		t.Fatalf("Scrape() returned %d records, want 3", len(ds))
	}
	if ds[0].Name != "Tomato" || ds[0].MinPrice != 40 {
		t.Errorf("first record = %+v, want Tomato at 40", ds[0])
	}
}

func TestScrape_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	if _, err := newService(srv.URL).Scrape(); err == nil {
		t.Fatal("Scrape() expected error for unreachable server, got nil")
	}
}

func TestScrape_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusInternalServerError)
	}))
	defer srv.Close()

	if _, err := newService(srv.URL).Scrape(); err == nil {
		t.Fatal("Scrape() expected error for 500 response, got nil")
	}
}

func TestScrape_MissingTable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><p>maintenance</p></body></html>`))
	}))
	defer srv.Close()

	if _, err := newService(srv.URL).Scrape(); err == nil {
		t.Fatal("Scrape() expected error for missing price table, got nil")
	}
}

func TestScrape_AllRowsUnparseable(t *testing.T) {
	html := `
<table class="table table-bordered table-striped gold-rates">
<tr><th colspan="3">Vegetable Prices</th></tr>
<tr><th>No</th><th>Vegetable</th><th>Price</th></tr>
<tr><td>1</td><td>Tomato</td><td>seasonal</td></tr>
</table>`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(html))
	}))
	defer srv.Close()

	ds, err := newService(srv.URL).Scrape()
	if err != nil {
		t.Fatalf("Scrape() error = %v", err)
	}
	if len(ds) != 0 {
		t.Errorf("Scrape() returned %d records, want 0", len(ds))
	}
}
