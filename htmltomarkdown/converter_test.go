package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/javadts"
	"github.com/fwojciec/javadts/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Converter implements javadts.Converter at compile time.
var _ javadts.Converter = (*htmltomarkdown.Converter)(nil)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts description block", func(t *testing.T) {
		t.Parallel()

		html := `<div class="block">Gets the player's current health.</div>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Equal(t, "Gets the player's current health.", md)
	})

	t.Run("converts inline code", func(t *testing.T) {
		t.Parallel()

		html := `<div class="block">Returns <code>null</code> if the block is air.</div>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "`null`")
	})

	t.Run("converts links", func(t *testing.T) {
		t.Parallel()

		html := `<div class="block">See <a href="https://example.com/Material.html">Material</a>.</div>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "[Material](https://example.com/Material.html)")
	})

	t.Run("converts bold and italic", func(t *testing.T) {
		t.Parallel()

		html := `<p><strong>Bold</strong> and <em>italic</em> text.</p>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "**Bold**")
		assert.Contains(t, md, "*italic*")
	})

	t.Run("keeps deprecation note text", func(t *testing.T) {
		t.Parallel()

		html := `<div class="deprecationBlock"><span class="deprecatedLabel">Deprecated.</span>
<div class="deprecationComment">Magic value</div></div>
<div class="block">Gets the block data.</div>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "Deprecated.")
		assert.Contains(t, md, "Magic value")
		assert.Contains(t, md, "Gets the block data.")
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert("\n<div class=\"block\">Padded.</div>\n")

		require.NoError(t, err)
		assert.Equal(t, "Padded.", md)
	})

	t.Run("unwraps description blocks around inline markup", func(t *testing.T) {
		t.Parallel()

		html := `<div class="block">Gets <code>x</code> coordinate.</div>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Equal(t, "Gets `x` coordinate.", md)
	})

	t.Run("keeps only text of relative javadoc links", func(t *testing.T) {
		t.Parallel()

		html := `<div class="block">Sets the <a href="../../../org/bukkit/Material.html" title="enum in org.bukkit"><code>Material</code></a> type.</div>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Equal(t, "Sets the `Material` type.", md)
	})

	t.Run("converts placeholder cell to empty text", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()

		md, err := conv.Convert("&nbsp;")
		require.NoError(t, err)
		assert.Empty(t, md)

		md, err = conv.Convert("<div class=\"block\">\u00a0 </div>")
		require.NoError(t, err)
		assert.Empty(t, md)
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		_, err := conv.Convert("  ")

		require.Error(t, err)
		assert.Equal(t, javadts.EINVALID, javadts.ErrorCode(err))
	})
}
