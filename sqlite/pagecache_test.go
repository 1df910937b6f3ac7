package sqlite_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/javadts"
	"github.com/fwojciec/javadts/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageCache_Put(t *testing.T) {
	t.Parallel()

	t.Run("fills in ID, hash and timestamp", func(t *testing.T) {
		t.Parallel()

		cache := sqlite.NewPageCache(setupTestDB(t))
		page := &javadts.CachedPage{URL: "https://example.com/Art.html", HTML: "<html>art</html>"}

		err := cache.Put(context.Background(), page)

		require.NoError(t, err)
		assert.NotEmpty(t, page.ID)
		assert.Len(t, page.ContentHash, 16)
		assert.False(t, page.FetchedAt.IsZero())
	})

	t.Run("replaces entry for same URL and keeps its ID", func(t *testing.T) {
		t.Parallel()

		cache := sqlite.NewPageCache(setupTestDB(t))
		ctx := context.Background()
		first := &javadts.CachedPage{URL: "https://example.com/Art.html", HTML: "old"}
		require.NoError(t, cache.Put(ctx, first))

		second := &javadts.CachedPage{URL: "https://example.com/Art.html", HTML: "new"}
		require.NoError(t, cache.Put(ctx, second))

		got, err := cache.Get(ctx, "https://example.com/Art.html")
		require.NoError(t, err)
		assert.Equal(t, "new", got.HTML)
		assert.Equal(t, first.ID, got.ID)
		assert.Equal(t, first.ID, second.ID)
		assert.NotEqual(t, first.ContentHash, got.ContentHash)
	})

	t.Run("returns error for invalid page", func(t *testing.T) {
		t.Parallel()

		cache := sqlite.NewPageCache(setupTestDB(t))

		err := cache.Put(context.Background(), &javadts.CachedPage{URL: "https://example.com/"})

		require.Error(t, err)
		assert.Equal(t, javadts.EINVALID, javadts.ErrorCode(err))
	})
}

func TestPageCache_Get(t *testing.T) {
	t.Parallel()

	t.Run("returns stored page", func(t *testing.T) {
		t.Parallel()

		cache := sqlite.NewPageCache(setupTestDB(t))
		ctx := context.Background()
		require.NoError(t, cache.Put(ctx, &javadts.CachedPage{URL: "https://example.com/A.html", HTML: "<p>a</p>"}))

		got, err := cache.Get(ctx, "https://example.com/A.html")

		require.NoError(t, err)
		assert.Equal(t, "https://example.com/A.html", got.URL)
		assert.Equal(t, "<p>a</p>", got.HTML)
	})

	t.Run("returns not found for missing page", func(t *testing.T) {
		t.Parallel()

		cache := sqlite.NewPageCache(setupTestDB(t))

		_, err := cache.Get(context.Background(), "https://example.com/missing.html")

		require.Error(t, err)
		assert.Equal(t, javadts.ENOTFOUND, javadts.ErrorCode(err))
	})

	t.Run("returns not found for expired page", func(t *testing.T) {
		t.Parallel()

		now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
		clock := func() time.Time { return now }
		cache := sqlite.NewPageCache(setupTestDB(t), sqlite.WithMaxAge(time.Hour), sqlite.WithClock(clock))
		ctx := context.Background()
		require.NoError(t, cache.Put(ctx, &javadts.CachedPage{
			URL:       "https://example.com/A.html",
			HTML:      "<p>a</p>",
			FetchedAt: now.Add(-2 * time.Hour),
		}))

		_, err := cache.Get(ctx, "https://example.com/A.html")

		require.Error(t, err)
		assert.Equal(t, javadts.ENOTFOUND, javadts.ErrorCode(err))
	})

	t.Run("returns fresh page within max age", func(t *testing.T) {
		t.Parallel()

		now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
		clock := func() time.Time { return now }
		cache := sqlite.NewPageCache(setupTestDB(t), sqlite.WithMaxAge(time.Hour), sqlite.WithClock(clock))
		ctx := context.Background()
		require.NoError(t, cache.Put(ctx, &javadts.CachedPage{
			URL:       "https://example.com/A.html",
			HTML:      "<p>a</p>",
			FetchedAt: now.Add(-30 * time.Minute),
		}))

		got, err := cache.Get(ctx, "https://example.com/A.html")

		require.NoError(t, err)
		assert.Equal(t, now.Add(-30*time.Minute), got.FetchedAt.UTC())
	})
}

func TestPageCache_Purge(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	cache := sqlite.NewPageCache(setupTestDB(t), sqlite.WithMaxAge(time.Hour), sqlite.WithClock(clock))
	ctx := context.Background()
	require.NoError(t, cache.Put(ctx, &javadts.CachedPage{URL: "https://example.com/old.html", HTML: "old", FetchedAt: now.Add(-3 * time.Hour)}))
	require.NoError(t, cache.Put(ctx, &javadts.CachedPage{URL: "https://example.com/new.html", HTML: "new", FetchedAt: now}))

	n, err := cache.Purge(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	_, err = cache.Get(ctx, "https://example.com/new.html")
	require.NoError(t, err)
}

func BenchmarkPageCache_Put(b *testing.B) {
	db := sqlite.NewDB(b.TempDir() + "/bench.db")
	require.NoError(b, db.Open())
	defer db.Close()

	cache := sqlite.NewPageCache(db)
	ctx := context.Background()
	html := strings.Repeat("<tr>row</tr>", 4096)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		page := &javadts.CachedPage{URL: "https://example.com/page.html", HTML: html}
		require.NoError(b, cache.Put(ctx, page))
	}
}
