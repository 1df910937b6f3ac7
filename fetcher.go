package javadts

import (
	"context"
	"time"
)

// Fetcher retrieves HTML from URLs.
type Fetcher interface {
	// Fetch retrieves the page at url and returns its HTML.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

// CachedPage is a fetched page stored in a PageCache.
type CachedPage struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	HTML        string    `json:"html"`
	ContentHash string    `json:"contentHash"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Validate returns an error if the cached page contains invalid fields.
func (p *CachedPage) Validate() error {
	if p.URL == "" {
		return Errorf(EINVALID, "cached page URL required")
	}
	if p.HTML == "" {
		return Errorf(EINVALID, "cached page HTML required")
	}
	return nil
}

// PageCache stores fetched pages so repeated conversions skip the network.
type PageCache interface {
	// Get returns the cached page for url.
	// Returns ENOTFOUND if the page is absent or older than the cache's max age.
	Get(ctx context.Context, url string) (*CachedPage, error)

	// Put stores or replaces the page for its URL.
	Put(ctx context.Context, page *CachedPage) error
}
