package parser

import (
	"fmt"
	"strconv"
	"strings"

	"veggie-dashboard/models"

	"github.com/PuerkitoBio/goquery"
)

// DefaultTableSelector matches the price table on the source page
const DefaultTableSelector = "table.table.table-bordered.table-striped.gold-rates"

// headerRows is the number of leading rows to skip in the price table
const headerRows = 2

// Parser extracts price records from HTML
type Parser struct {
	tableSelector string
}

// NewParser creates a new Parser instance. An empty selector falls back to
// DefaultTableSelector.
func NewParser(tableSelector string) *Parser {
	if tableSelector == "" {
		tableSelector = DefaultTableSelector
	}
	return &Parser{tableSelector: tableSelector}
}

// ParsePrice extracts the minimum price from a displayed price string such as
// "₹40-50 per kg" or "₹45 per kg". For a range, the value before the first
// hyphen is taken as-is, so "₹30-20 per kg" yields 30. A string with more
// than one hyphen is considered malformed.
func ParsePrice(text string) (float64, error) {
	cleaned := strings.ReplaceAll(text, "₹", "")
	cleaned = strings.ReplaceAll(cleaned, "per kg", "")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return 0, fmt.Errorf("empty price text %q", text)
	}

	parts := strings.Split(cleaned, "-")
	if len(parts) > 2 {
		return 0, fmt.Errorf("malformed price range %q", text)
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, fmt.Errorf("unparseable price %q: %w", text, err)
	}
	return price, nil
}

// ParseTable extracts price records from the HTML of the source page.
// It returns an error when the price table itself is missing; rows with a
// missing name or an unparseable price are skipped silently.
func (p *Parser) ParseTable(htmlContent string) ([]models.PriceRecord, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	table := doc.Find(p.tableSelector).First()
	if table.Length() == 0 {
		return nil, fmt.Errorf("price table not found (selector %q)", p.tableSelector)
	}

	var records []models.PriceRecord
	table.Find("tr").Each(func(i int, row *goquery.Selection) {
		if i < headerRows {
			return
		}

		cells := row.Find("td")
		if cells.Length() < 3 {
			return
		}

		name := strings.TrimSpace(cells.Eq(1).Text())
		rawRange := strings.TrimSpace(cells.Eq(2).Text())
		if name == "" {
			return
		}

		price, err := ParsePrice(rawRange)
		if err != nil {
			return
		}

		records = append(records, models.PriceRecord{
			Name:     name,
			RawRange: rawRange,
			MinPrice: price,
		})
	})

	return records, nil
}
