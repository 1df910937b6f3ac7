package mock

import (
	"context"

	"github.com/fwojciec/javadts"
)

var _ javadts.PageCache = (*PageCache)(nil)

// PageCache is a mock implementation of javadts.PageCache.
type PageCache struct {
	GetFn func(ctx context.Context, url string) (*javadts.CachedPage, error)
	PutFn func(ctx context.Context, page *javadts.CachedPage) error
}

func (c *PageCache) Get(ctx context.Context, url string) (*javadts.CachedPage, error) {
	return c.GetFn(ctx, url)
}

func (c *PageCache) Put(ctx context.Context, page *javadts.CachedPage) error {
	return c.PutFn(ctx, page)
}
