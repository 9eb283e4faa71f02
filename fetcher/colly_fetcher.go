package fetcher

import (
	"fmt"
	"log"

	"github.com/gocolly/colly/v2"
)

// CollyFetcher implements the Fetcher interface using colly
type CollyFetcher struct {
	collector *colly.Collector
}

// NewCollyFetcher creates a new CollyFetcher instance
func NewCollyFetcher() *CollyFetcher {
	c := colly.NewCollector(
		colly.UserAgent("Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"),
	)

	return &CollyFetcher{
		collector: c,
	}
}

// Fetch implements the Fetcher interface. It performs a single GET request
// with no retries; one failed attempt is a failed fetch.
func (cf *CollyFetcher) Fetch(url string) (string, error) {
	var htmlContent string

	// Clone so callbacks registered here do not accumulate across calls
	c := cf.collector.Clone()

	c.OnResponse(func(r *colly.Response) {
		htmlContent = string(r.Body)
	})

	c.OnError(func(r *colly.Response, err error) {
		log.Printf("Error fetching %s: %v\n", r.Request.URL, err)
	})

	if err := c.Visit(url); err != nil {
		return "", fmt.Errorf("failed to visit URL: %w", err)
	}
	c.Wait()

	if htmlContent == "" {
		return "", fmt.Errorf("no content received from %s", url)
	}

	return htmlContent, nil
}
