package batch

import (
	"context"
	"log/slog"

	"github.com/fwojciec/javadts"
)

// Ensure CachingFetcher implements javadts.Fetcher at compile time.
var _ javadts.Fetcher = (*CachingFetcher)(nil)

// CachingFetcher serves pages from a PageCache and fetches only on a miss.
// Fetched pages are written back to the cache. A failed cache write does
// not fail the fetch and is logged as a warning.
type CachingFetcher struct {
	next   javadts.Fetcher
	cache  javadts.PageCache
	logger *slog.Logger
}

// CacheOption configures a CachingFetcher.
type CacheOption func(*CachingFetcher)

// WithCacheLogger sets the logger that receives cache write failures.
func WithCacheLogger(logger *slog.Logger) CacheOption {
	return func(f *CachingFetcher) {
		f.logger = logger
	}
}

// NewCachingFetcher creates a new CachingFetcher.
func NewCachingFetcher(next javadts.Fetcher, cache javadts.PageCache, opts ...CacheOption) *CachingFetcher {
	f := &CachingFetcher{next: next, cache: cache, logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch returns the cached HTML for url or fetches and caches it.
func (f *CachingFetcher) Fetch(ctx context.Context, url string) (string, error) {
	if page, err := f.cache.Get(ctx, url); err == nil {
		return page.HTML, nil
	}

	html, err := f.next.Fetch(ctx, url)
	if err != nil {
		return "", err
	}

	if html != "" {
		if err := f.cache.Put(ctx, &javadts.CachedPage{URL: url, HTML: html}); err != nil {
			f.logger.Warn("cache write failed", "url", url, "err", err)
		}
	}
	return html, nil
}

// Close closes the wrapped fetcher.
func (f *CachingFetcher) Close() error {
	return f.next.Close()
}
