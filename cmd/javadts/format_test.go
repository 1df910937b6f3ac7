package main_test

import (
	"testing"

	main "github.com/fwojciec/javadts/cmd/javadts"
	"github.com/stretchr/testify/assert"
)

func TestTruncateURL(t *testing.T) {
	t.Parallel()

	t.Run("returns URL unchanged when shorter than max", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "https://x.com", main.TruncateURL("https://x.com", 50))
	})

	t.Run("keeps the end of long URLs", func(t *testing.T) {
		t.Parallel()
		url := "https://hub.spigotmc.org/javadocs/spigot/org/bukkit/Material.html"
		result := main.TruncateURL(url, 20)
		assert.Equal(t, "...kit/Material.html", result)
		assert.Len(t, result, 20)
	})

	t.Run("returns empty string when maxLen is not positive", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, main.TruncateURL("https://example.com", 0))
		assert.Empty(t, main.TruncateURL("https://example.com", -1))
	})

	t.Run("returns prefix of URL when maxLen is very small", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "htt", main.TruncateURL("https://example.com", 3))
	})
}
