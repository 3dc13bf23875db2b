package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticCatalog(t *testing.T) {
	t.Run("ProductsReferenceExistingCategories", func(t *testing.T) {
		c := NewStaticCatalog()

		slugs := make(map[string]bool)
		for _, cat := range c.Categories() {
			slugs[cat.Slug] = true
		}
		require.NotEmpty(t, slugs)

		for _, p := range c.Products() {
			assert.Truef(t, slugs[p.Category],
				"product %s references unknown category %q",
				p.ProductID, p.Category)
		}
	})

	t.Run("AccessorsReturnCopies", func(t *testing.T) {
		c := NewStaticCatalog()

		ps := c.Products()
		require.NotEmpty(t, ps)
		ps[0].Name = "mutated"
		assert.NotEqual(t, "mutated", c.Products()[0].Name)

		cs := c.Categories()
		require.NotEmpty(t, cs)
		cs[0].Name = "mutated"
		assert.NotEqual(t, "mutated", c.Categories()[0].Name)
	})

	t.Run("ProductsHaveRequiredFields", func(t *testing.T) {
		c := NewStaticCatalog()

		for _, p := range c.Products() {
			assert.NotEmpty(t, p.ProductID)
			assert.NotEmpty(t, p.Name)
			assert.NotEmpty(t, p.PartNumber)
			assert.NotEmpty(t, p.Brand)
			assert.Greater(t, p.Price, 0.0)
		}
	})
}
