package snapshot_test

import (
	"path/filepath"
	"testing"

	"github.com/niksmo/storefront/internal/adapter/snapshot"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadFixture(t *testing.T) snapshot.Catalog {
	t.Helper()
	c, err := snapshot.Load(filepath.Join("testdata", "products.json"))
	require.NoError(t, err)
	return c
}

func TestLoad(t *testing.T) {
	t.Run("ReadsAllItems", func(t *testing.T) {
		c := loadFixture(t)
		assert.Equal(t, 2, c.Len())
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := snapshot.Load(filepath.Join("testdata", "missing.json"))
		require.Error(t, err)
	})
}

func TestProductBySlug(t *testing.T) {
	c := loadFixture(t)

	t.Run("Found", func(t *testing.T) {
		p, err := c.ProductBySlug("custom-dunk-low-premium")
		require.NoError(t, err)

		assert.Equal(t, "p1", p.ID)
		assert.Equal(t, 4, p.StockQuantity)
		require.Len(t, p.InfoSections, 2)
		assert.Equal(t, "Materials", p.InfoSections[0].Title)

		assert.True(t, p.Price.Display().Equal(
			decimal.NewFromFloat(2499.99)),
		)
	})

	t.Run("DiscountAboveBaseIsIgnored", func(t *testing.T) {
		p, err := c.ProductBySlug("nike-5")
		require.NoError(t, err)
		assert.True(t, p.Price.Display().Equal(
			decimal.NewFromFloat(3999.99)),
		)
	})

	t.Run("UnknownSlug", func(t *testing.T) {
		_, err := c.ProductBySlug("missing-slug")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
