package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/pkg/store/domain/model"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	assert.Len(t, c.Products(), 6)
	assert.Len(t, c.Accessories(), 4)
	assert.Len(t, c.All(), 10)

	phones := c.Phones()
	require.Len(t, phones, 5)
	for _, p := range phones {
		assert.True(t, p.IsPhone())
	}
}

func TestFind(t *testing.T) {
	c := Default()

	p, err := c.Find("jbl-charge-5")
	require.NoError(t, err)
	assert.Equal(t, model.CategoryAudio, p.Category)
	assert.Equal(t, int64(85000), p.Price)

	_, err = c.Find("no-such-product")
	assert.ErrorIs(t, err, model.ErrProductNotFound)
}

func TestSearch(t *testing.T) {
	c := Default()

	t.Run("matches names case-insensitively", func(t *testing.T) {
		results := c.Search("IPHONE")
		require.NotEmpty(t, results)
		for _, p := range results {
			assert.Contains(t, p.Name, "iPhone")
		}
	})

	t.Run("matches descriptions", func(t *testing.T) {
		results := c.Search("waterproof")
		require.Len(t, results, 1)
		assert.Equal(t, "jbl-charge-5", results[0].ID)
	})

	t.Run("blank query matches nothing", func(t *testing.T) {
		assert.Empty(t, c.Search("   "))
	})
}

func TestSortedByPopularity(t *testing.T) {
	c := Default()

	sorted := c.SortedByPopularity()
	require.Len(t, sorted, 10)
	assert.Equal(t, "apple-20w-adapter", sorted[0].ID)
	for i := 1; i < len(sorted); i++ {
		assert.GreaterOrEqual(t, sorted[i-1].SalesCount, sorted[i].SalesCount)
	}
	// the catalog itself keeps its original order
	assert.Equal(t, "iphone-15-pro-max", c.Products()[0].ID)
}

func TestLoad(t *testing.T) {
	t.Run("reads an override file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.json")
		require.NoError(t, os.WriteFile(path, []byte(`{
			"products": [
				{"id": "pixel-9", "name": "Pixel 9", "category": "Samsung", "price": 900000,
				 "specs": [{"key": "Display", "value": "6.3-inch OLED"}]}
			],
			"accessories": [
				{"id": "pixel-case", "name": "Pixel Case", "category": "Accessory", "price": 20000}
			]
		}`), 0666))

		c, err := Load(path)
		require.NoError(t, err)
		assert.Len(t, c.Products(), 1)
		assert.Len(t, c.Accessories(), 1)

		p, err := c.Find("pixel-9")
		require.NoError(t, err)
		require.Len(t, p.Specs, 1)
		assert.Equal(t, "Display", p.Specs[0].Key)
	})

	t.Run("rejects a missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
		assert.Error(t, err)
	})

	t.Run("rejects an empty catalog", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"products": []}`), 0666))

		_, err := Load(path)
		assert.Error(t, err)
	})
}

func TestBranches(t *testing.T) {
	branches := Branches()
	require.Len(t, branches, 3)
	assert.Equal(t, "Ikeja Branch", branches[0].Name)
}
