package catalog

import (
	"strings"

	"github.com/motorline/partstore/internal/core/domain"
)

// MatchSearch filters ps by case-insensitive substring containment of
// query across name, description, part number, OEM number, brand,
// category slug and every compatibility record's make and model. A
// product matches if any scanned field contains the term. A blank query
// deactivates the matcher: the result carries Active=false so callers
// can render a prompt instead of a zero-matches state. Result order
// equals input order.
func MatchSearch(ps []domain.Product, query string) domain.SearchResult {
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return domain.SearchResult{}
	}

	results := make([]domain.Product, 0, len(ps))
	for _, p := range ps {
		if matchesTerm(p, term) {
			results = append(results, p)
		}
	}
	return domain.SearchResult{Active: true, Results: results}
}

func matchesTerm(p domain.Product, term string) bool {
	if containsFold(p.Name, term) ||
		containsFold(p.Description, term) ||
		containsFold(p.PartNumber, term) ||
		containsFold(p.OEMNumber, term) ||
		containsFold(p.Brand, term) ||
		containsFold(p.Category, term) {
		return true
	}

	for _, comp := range p.Compatibility {
		if containsFold(comp.Make, term) || containsFold(comp.Model, term) {
			return true
		}
	}
	return false
}

// containsFold expects term already lower-cased.
func containsFold(field, term string) bool {
	return strings.Contains(strings.ToLower(field), term)
}
