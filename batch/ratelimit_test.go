package batch_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/javadts"
	"github.com/fwojciec/javadts/batch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainLimiter(t *testing.T) {
	t.Parallel()

	t.Run("implements javadts.DomainLimiter interface", func(t *testing.T) {
		t.Parallel()
		var _ javadts.DomainLimiter = batch.NewDomainLimiter(1)
	})

	t.Run("allows immediate request when under limit", func(t *testing.T) {
		t.Parallel()

		limiter := batch.NewDomainLimiter(10)

		start := time.Now()
		err := limiter.Wait(context.Background(), "hub.spigotmc.org")
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.Less(t, elapsed, 50*time.Millisecond, "first request should be immediate")
	})

	t.Run("rate limits requests to same domain", func(t *testing.T) {
		t.Parallel()

		limiter := batch.NewDomainLimiter(10)

		require.NoError(t, limiter.Wait(context.Background(), "hub.spigotmc.org"))

		start := time.Now()
		err := limiter.Wait(context.Background(), "hub.spigotmc.org")
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.GreaterOrEqual(t, elapsed, 80*time.Millisecond, "should wait for rate limit")
	})

	t.Run("different domains have independent limits", func(t *testing.T) {
		t.Parallel()

		limiter := batch.NewDomainLimiter(10)

		require.NoError(t, limiter.Wait(context.Background(), "hub.spigotmc.org"))

		start := time.Now()
		err := limiter.Wait(context.Background(), "docs.oracle.com")
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.Less(t, elapsed, 50*time.Millisecond, "different domain should not wait")
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		limiter := batch.NewDomainLimiter(1)
		require.NoError(t, limiter.Wait(context.Background(), "hub.spigotmc.org"))

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		err := limiter.Wait(ctx, "hub.spigotmc.org")

		require.Error(t, err)
	})

	t.Run("does not limit when rate is zero", func(t *testing.T) {
		t.Parallel()

		limiter := batch.NewDomainLimiter(0)

		start := time.Now()
		for range 5 {
			require.NoError(t, limiter.Wait(context.Background(), "hub.spigotmc.org"))
		}

		assert.Less(t, time.Since(start), 50*time.Millisecond)
	})
}
