// Package catalog implements the pure product-list shaping layer:
// facet composition, sort strategies and free-text search matching.
// Every function is synchronous, performs no I/O and never mutates its
// input slice.
package catalog

import (
	"slices"

	"github.com/motorline/partstore/internal/core/domain"
)

// ComposeFacets narrows ps to the subset satisfying every present facet
// in c. Facets combine by AND across dimensions and OR within a
// multi-select dimension. With no facets set the input is returned
// unchanged, original order preserved.
func ComposeFacets(ps []domain.Product, c domain.FacetCriteria) []domain.Product {
	filtered := ps

	if len(c.Categories) > 0 {
		filtered = keep(filtered, func(p domain.Product) bool {
			return slices.Contains(c.Categories, p.Category)
		})
	}

	if len(c.Brands) > 0 {
		filtered = keep(filtered, func(p domain.Product) bool {
			return slices.Contains(c.Brands, p.Brand)
		})
	}

	if len(c.Makes) > 0 {
		filtered = keep(filtered, func(p domain.Product) bool {
			return matchesMake(p, c.Makes)
		})
	}

	// Both bounds or the price facet is ignored entirely: the facet
	// originates from paired price-band controls.
	if c.MinPrice != nil && c.MaxPrice != nil {
		minPrice, maxPrice := *c.MinPrice, *c.MaxPrice
		filtered = keep(filtered, func(p domain.Product) bool {
			return p.Price >= minPrice && p.Price <= maxPrice
		})
	}

	if c.InStock {
		filtered = keep(filtered, func(p domain.Product) bool {
			return p.InStock
		})
	}

	return filtered
}

func matchesMake(p domain.Product, makes []string) bool {
	for _, comp := range p.Compatibility {
		if slices.Contains(makes, comp.Make) {
			return true
		}
	}
	return false
}

func keep(ps []domain.Product, pred func(domain.Product) bool) []domain.Product {
	out := make([]domain.Product, 0, len(ps))
	for _, p := range ps {
		if pred(p) {
			out = append(out, p)
		}
	}
	return out
}
