package scraper

import (
	"fmt"

	"veggie-dashboard/fetcher"
	"veggie-dashboard/models"
	"veggie-dashboard/parser"
)

// Service runs the scrape pipeline: fetch the source page, extract the price
// table, and build the dataset.
type Service struct {
	fetcher   fetcher.Fetcher
	parser    *parser.Parser
	sourceURL string
}

// NewService creates a new scrape Service
func NewService(f fetcher.Fetcher, p *parser.Parser, sourceURL string) *Service {
	return &Service{
		fetcher:   f,
		parser:    p,
		sourceURL: sourceURL,
	}
}

// Scrape fetches the price page once and returns all parseable records.
// The error preserves the failure reason (transport vs. missing table);
// callers that only need best-effort data collapse it to an empty dataset.
func (s *Service) Scrape() (models.Dataset, error) {
	htmlContent, err := s.fetcher.Fetch(s.sourceURL)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", s.sourceURL, err)
	}

	records, err := s.parser.ParseTable(htmlContent)
	if err != nil {
		return nil, fmt.Errorf("parse price table: %w", err)
	}

	return models.Dataset(records), nil
}
