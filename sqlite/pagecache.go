package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/fwojciec/javadts"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ javadts.PageCache = (*PageCache)(nil)

// PageCache implements javadts.PageCache using SQLite.
// Pages older than the max age are reported as missing.
type PageCache struct {
	db     *DB
	maxAge time.Duration
	now    func() time.Time
}

// CacheOption configures a PageCache.
type CacheOption func(*PageCache)

// WithMaxAge expires cached pages after d. Zero keeps pages forever.
func WithMaxAge(d time.Duration) CacheOption {
	return func(c *PageCache) {
		c.maxAge = d
	}
}

// WithClock replaces the time source, for tests.
func WithClock(now func() time.Time) CacheOption {
	return func(c *PageCache) {
		c.now = now
	}
}

// NewPageCache creates a new PageCache.
func NewPageCache(db *DB, opts ...CacheOption) *PageCache {
	c := &PageCache{db: db, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the cached page for url.
func (c *PageCache) Get(ctx context.Context, url string) (*javadts.CachedPage, error) {
	var page javadts.CachedPage
	var fetchedAt string

	err := c.db.QueryRowContext(ctx, `
		SELECT id, url, html, content_hash, fetched_at
		FROM pages
		WHERE url = ?
	`, url).Scan(&page.ID, &page.URL, &page.HTML, &page.ContentHash, &fetchedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, javadts.Errorf(javadts.ENOTFOUND, "page not cached: %s", url)
	}
	if err != nil {
		return nil, err
	}

	page.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at")
	if err != nil {
		return nil, err
	}

	if c.maxAge > 0 && c.now().Sub(page.FetchedAt) > c.maxAge {
		return nil, javadts.Errorf(javadts.ENOTFOUND, "cached page expired: %s", url)
	}

	return &page, nil
}

// Put stores page, replacing any earlier entry for the same URL.
// ID, ContentHash and a zero FetchedAt are filled in.
func (c *PageCache) Put(ctx context.Context, page *javadts.CachedPage) error {
	if err := page.Validate(); err != nil {
		return err
	}

	if page.ID == "" {
		page.ID = uuid.New().String()
	}
	if page.FetchedAt.IsZero() {
		page.FetchedAt = c.now().UTC()
	}
	page.ContentHash = hashContent(page.HTML)

	// An existing row keeps its ID.
	return c.db.QueryRowContext(ctx, `
		INSERT INTO pages (id, url, html, content_hash, fetched_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET
			html = excluded.html,
			content_hash = excluded.content_hash,
			fetched_at = excluded.fetched_at
		RETURNING id
	`, page.ID, page.URL, page.HTML, page.ContentHash, page.FetchedAt.UTC().Format(time.RFC3339)).Scan(&page.ID)
}

// Purge deletes pages fetched before the max age and returns how many
// were removed. It is a no-op when no max age is set.
func (c *PageCache) Purge(ctx context.Context) (int64, error) {
	if c.maxAge <= 0 {
		return 0, nil
	}
	cutoff := c.now().Add(-c.maxAge).UTC().Format(time.RFC3339)

	res, err := c.db.ExecContext(ctx, `DELETE FROM pages WHERE fetched_at < ?`, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
