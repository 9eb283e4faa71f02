package fetcher

// Fetcher defines the contract for retrieving the raw HTML of one page
type Fetcher interface {
	// Fetch retrieves the HTML document at the given URL
	Fetch(url string) (string, error)
}
