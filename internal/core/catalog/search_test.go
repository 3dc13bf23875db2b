package catalog_test

import (
	"testing"

	"github.com/motorline/partstore/internal/core/catalog"
	"github.com/motorline/partstore/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchSearch(t *testing.T) {
	t.Run("EmptyQueryInactive", func(t *testing.T) {
		got := catalog.MatchSearch(testProducts(), "")
		assert.False(t, got.Active)
		assert.Empty(t, got.Results)
	})

	t.Run("WhitespaceQueryInactive", func(t *testing.T) {
		got := catalog.MatchSearch(testProducts(), "   \t ")
		assert.False(t, got.Active)
		assert.Empty(t, got.Results)
	})

	t.Run("NoMatchesStillActive", func(t *testing.T) {
		got := catalog.MatchSearch(testProducts(), "zzz-no-match")
		assert.True(t, got.Active)
		assert.Empty(t, got.Results)
	})

	t.Run("CaseInsensitiveSubstrings", func(t *testing.T) {
		ps := []domain.Product{{ProductID: "p1", Name: "Engine Mount Bushing"}}

		for _, q := range []string{"engine", "BUSHING", "mount"} {
			got := catalog.MatchSearch(ps, q)
			require.True(t, got.Active, q)
			require.Len(t, got.Results, 1, q)
		}
	})

	t.Run("MatchesCompatibilityMake", func(t *testing.T) {
		got := catalog.MatchSearch(testProducts(), "toyota")
		require.True(t, got.Active)
		assert.Equal(t, []string{"p1", "p3"}, ids(got.Results))
	})

	t.Run("MatchesCompatibilityModel", func(t *testing.T) {
		got := catalog.MatchSearch(testProducts(), "civic")
		require.True(t, got.Active)
		assert.Equal(t, []string{"p2"}, ids(got.Results))
	})

	t.Run("MatchesPartAndOEMNumbers", func(t *testing.T) {
		ps := []domain.Product{
			{ProductID: "p1", Name: "Rotor", PartNumber: "BR-4410"},
			{ProductID: "p2", Name: "Pads", OEMNumber: "45022-TR0-A01"},
		}

		got := catalog.MatchSearch(ps, "br-44")
		assert.Equal(t, []string{"p1"}, ids(got.Results))

		got = catalog.MatchSearch(ps, "45022")
		assert.Equal(t, []string{"p2"}, ids(got.Results))
	})

	t.Run("MatchesCategorySlugAndBrand", func(t *testing.T) {
		got := catalog.MatchSearch(testProducts(), "akebono")
		assert.Equal(t, []string{"p2"}, ids(got.Results))

		got = catalog.MatchSearch(testProducts(), "filters")
		assert.Equal(t, []string{"p4"}, ids(got.Results))
	})

	t.Run("ResultOrderEqualsInputOrder", func(t *testing.T) {
		got := catalog.MatchSearch(testProducts(), "brake")
		require.True(t, got.Active)
		assert.Equal(t, []string{"p1", "p2"}, ids(got.Results))
	})
}
