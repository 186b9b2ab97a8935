package services

import "github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/models"

// AggregateFacets folds the sampled rows into per-value counts and the price range.
// An empty sample yields empty maps and models.DefaultPriceRange.
func AggregateFacets(rows []models.FacetRow) models.FilterFacets {
	facets := models.FilterFacets{
		Categories:    map[string]int{},
		Subcategories: map[string]int{},
		Brands:        map[string]int{},
		Colors:        map[string]int{},
		Sizes:         map[string]int{},
		Materials:     map[string]int{},
		PriceRange:    models.DefaultPriceRange,
	}
	if len(rows) == 0 {
		return facets
	}

	facets.PriceRange = models.PriceRange{Min: rows[0].Price, Max: rows[0].Price}
	for _, r := range rows {
		countOne(facets.Categories, r.Category)
		countOne(facets.Brands, r.Brand)
		countOne(facets.Materials, r.Material)
		countAll(facets.Subcategories, r.Subcategories)
		countAll(facets.Colors, r.Colors)
		countAll(facets.Sizes, r.Sizes)

		if r.Price < facets.PriceRange.Min {
			facets.PriceRange.Min = r.Price
		}
		if r.Price > facets.PriceRange.Max {
			facets.PriceRange.Max = r.Price
		}
	}
	return facets
}

func countOne(m map[string]int, v string) {
	if v != "" {
		m[v]++
	}
}

func countAll(m map[string]int, vs []string) {
	for _, v := range vs {
		countOne(m, v)
	}
}
