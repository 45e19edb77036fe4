package kv

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory(t *testing.T) {
	store := NewMemory()

	_, ok, err := store.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set("key", "value"))
	value, ok, err := store.Get("key")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "value", value)
}

func TestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ratings.json")
	store := NewFile(path)

	t.Run("missing file means no keys", func(t *testing.T) {
		_, ok, err := store.Get("productRatings")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("set then get round-trips", func(t *testing.T) {
		require.NoError(t, store.Set("productRatings", `{"iphone-13":[5,4]}`))
		require.NoError(t, store.Set("userRatedProducts", `["iphone-13"]`))

		value, ok, err := store.Get("productRatings")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, `{"iphone-13":[5,4]}`, value)
	})

	t.Run("values survive a new handle", func(t *testing.T) {
		reopened := NewFile(path)
		value, ok, err := reopened.Get("userRatedProducts")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, `["iphone-13"]`, value)
	})

	t.Run("corrupt file surfaces an error", func(t *testing.T) {
		corruptPath := filepath.Join(t.TempDir(), "corrupt.json")
		require.NoError(t, os.WriteFile(corruptPath, []byte("{broken"), 0666))

		_, _, err := NewFile(corruptPath).Get("productRatings")
		assert.Error(t, err)
	})
}
