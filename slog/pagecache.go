package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/javadts"
)

// Ensure LoggingPageCache implements javadts.PageCache.
var _ javadts.PageCache = (*LoggingPageCache)(nil)

// LoggingPageCache wraps a PageCache with debug logging.
type LoggingPageCache struct {
	next   javadts.PageCache
	logger *slog.Logger
}

// NewLoggingPageCache creates a new LoggingPageCache.
func NewLoggingPageCache(next javadts.PageCache, logger *slog.Logger) *LoggingPageCache {
	return &LoggingPageCache{next: next, logger: logger}
}

// Get logs whether the lookup hit and delegates to the wrapped cache.
// A miss is logged without an error.
func (c *LoggingPageCache) Get(ctx context.Context, url string) (page *javadts.CachedPage, err error) {
	defer func(begin time.Time) {
		logErr := err
		if javadts.ErrorCode(err) == javadts.ENOTFOUND {
			logErr = nil
		}
		c.logger.Info("cache get",
			"url", url,
			"hit", page != nil,
			"duration", time.Since(begin),
			"err", logErr,
		)
	}(time.Now())
	return c.next.Get(ctx, url)
}

// Put delegates to the wrapped cache and logs the stored size.
func (c *LoggingPageCache) Put(ctx context.Context, page *javadts.CachedPage) (err error) {
	defer func(begin time.Time) {
		c.logger.Info("cache put",
			"url", page.URL,
			"bytes", len(page.HTML),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Put(ctx, page)
}
