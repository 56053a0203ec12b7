// ABOUTME: Facet index builder derives the tag values actually present in the loaded dataset
// ABOUTME: Filter controls are populated from it so they never offer values absent from the data

package query

import (
	"sort"

	"arxiv-digest-api/core/domain"
)

// Facets builds the facet index over the given papers: the distinct tag
// values observed per category, sorted ascending. Known categories keep
// their fixed order; extra categories found in the data follow, sorted.
func Facets(papers []domain.Paper) domain.FacetIndex {
	seen := make(map[string]map[string]bool)
	for _, paper := range papers {
		if paper.Summary == nil {
			continue
		}
		for category, values := range paper.Summary.Tags {
			for _, value := range values {
				if value == "" {
					continue
				}
				if seen[category] == nil {
					seen[category] = make(map[string]bool)
				}
				seen[category][value] = true
			}
		}
	}

	index := domain.FacetIndex{Values: make(map[string][]string, len(seen))}
	for _, category := range TagCategories {
		if len(seen[category]) > 0 {
			index.Categories = append(index.Categories, category)
		}
	}
	var extras []string
	for category := range seen {
		if !isKnownCategory(category) {
			extras = append(extras, category)
		}
	}
	sort.Strings(extras)
	index.Categories = append(index.Categories, extras...)

	for _, category := range index.Categories {
		values := make([]string, 0, len(seen[category]))
		for value := range seen[category] {
			values = append(values, value)
		}
		sort.Strings(values)
		index.Values[category] = values
	}
	return index
}

func isKnownCategory(category string) bool {
	for _, known := range TagCategories {
		if known == category {
			return true
		}
	}
	return false
}
