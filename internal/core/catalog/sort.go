package catalog

import (
	"cmp"
	"slices"

	"github.com/motorline/partstore/internal/core/domain"
)

// SortStrategy names a total order over a product list.
type SortStrategy string

const (
	// SortRelevance keeps the original order.
	SortRelevance SortStrategy = "relevance"
	// SortPriceAsc orders by ascending price, ties keep input order.
	SortPriceAsc SortStrategy = "price-asc"
	// SortPriceDesc orders by descending price, ties keep input order.
	SortPriceDesc SortStrategy = "price-desc"
	// SortNewest keeps the original order: no creation timestamp flows
	// into this layer, the store already returns newest first.
	SortNewest SortStrategy = "newest"
)

// SortProducts returns a new slice ordered per the named strategy. The
// sort is stable and the input slice is never reordered in place.
// Unknown strategies behave like SortRelevance.
func SortProducts(ps []domain.Product, strategy SortStrategy) []domain.Product {
	out := slices.Clone(ps)

	switch strategy {
	case SortPriceAsc:
		slices.SortStableFunc(out, func(a, b domain.Product) int {
			return cmp.Compare(a.Price, b.Price)
		})
	case SortPriceDesc:
		slices.SortStableFunc(out, func(a, b domain.Product) int {
			return cmp.Compare(b.Price, a.Price)
		})
	case SortRelevance, SortNewest:
	default:
	}

	return out
}
