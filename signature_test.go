package javadts_test

import (
	"testing"

	"github.com/fwojciec/javadts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeMap_NormalizeSignature(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"single parameter", "getItem(int\u00a0slot)", "getItem(slot: number)"},
		{"multiple parameters", "setItem(int\u00a0index, ItemStack\u00a0item)", "setItem(index: number, item: ItemStack)"},
		{"no parameters", "getName()", "getName()"},
		{"zero-width space before parenthesis", "getName\u200b()", "getName()"},
		{"generic parameter with comma", "setData(Map<String, Integer>\u00a0data)", "setData(data: Map<string, number>)"},
		{"container parameter", "addAll(Collection<String>\u00a0names)", "addAll(names: string[])"},
		{"varargs parameter", "format(String\u00a0pattern, Object...\u00a0args)", "format(pattern: string, ...args: Object[])"},
		{"primitive varargs", "sum(int...\u00a0values)", "sum(...values: number[])"},
		{"annotated parameter", "setName(@NotNull String\u00a0name)", "setName(name: string)"},
		{"annotation with non-breaking space", "setName(@NotNull\u00a0String\u00a0name)", "setName(name: string)"},
		{"line break between parameters", "teleport(Location\u00a0location,\nPlayerTeleportEvent.TeleportCause\u00a0cause)", "teleport(location: Location, cause: PlayerTeleportEvent.TeleportCause)"},
		{"array parameter", "setBytes(byte[]\u00a0data)", "setBytes(data: number[])"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := javadts.DefaultTypeMap().NormalizeSignature(tt.raw)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("rejects signature without parameter list", func(t *testing.T) {
		t.Parallel()

		_, err := javadts.DefaultTypeMap().NormalizeSignature("getName")

		require.Error(t, err)
		assert.Equal(t, javadts.EMALFORMED, javadts.ErrorCode(err))
	})

	t.Run("rejects parameter without non-breaking space separator", func(t *testing.T) {
		t.Parallel()

		_, err := javadts.DefaultTypeMap().NormalizeSignature("getItem(int slot)")

		require.Error(t, err)
		assert.Equal(t, javadts.EMALFORMED, javadts.ErrorCode(err))
	})
}

func TestTypeMap_ConstructorSignature(t *testing.T) {
	t.Parallel()

	t.Run("replaces class name with new", func(t *testing.T) {
		t.Parallel()

		got, err := javadts.DefaultTypeMap().ConstructorSignature("Location\u200b(World\u00a0world, double\u00a0x)")

		require.NoError(t, err)
		assert.Equal(t, "new(world: World, x: number)", got)
	})

	t.Run("handles empty parameter list", func(t *testing.T) {
		t.Parallel()

		got, err := javadts.DefaultTypeMap().ConstructorSignature("Vector()")

		require.NoError(t, err)
		assert.Equal(t, "new()", got)
	})

	t.Run("rejects code without parameter list", func(t *testing.T) {
		t.Parallel()

		_, err := javadts.DefaultTypeMap().ConstructorSignature("Vector")

		require.Error(t, err)
		assert.Equal(t, javadts.EMALFORMED, javadts.ErrorCode(err))
	})
}
