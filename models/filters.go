package models

import (
	"math"
	"net/url"
	"sort"
	"strconv"
)

type SortOption string

const (
	SortNewest    SortOption = "newest"
	SortPriceAsc  SortOption = "price-asc"
	SortPriceDesc SortOption = "price-desc"
	SortPopular   SortOption = "popular"
)

func (s SortOption) Valid() bool {
	switch s {
	case SortNewest, SortPriceAsc, SortPriceDesc, SortPopular:
		return true
	}
	return false
}

const (
	DefaultListingPage  = 1
	DefaultListingLimit = 12
)

// ProductFilters is the parsed, deduplicated form of the storefront filter query.
// Built once per request and not mutated afterwards.
type ProductFilters struct {
	Category      string     `json:"category,omitempty"`
	Subcategories []string   `json:"subcategories,omitempty"`
	Brands        []string   `json:"brands,omitempty"`
	Colors        []string   `json:"colors,omitempty"`
	Sizes         []string   `json:"sizes,omitempty"`
	Materials     []string   `json:"materials,omitempty"`
	MinPrice      *float64   `json:"minPrice,omitempty"`
	MaxPrice      *float64   `json:"maxPrice,omitempty"`
	InStock       *bool      `json:"inStock,omitempty"`
	Search        string     `json:"search,omitempty"`
	Sort          SortOption `json:"sort"`
	Page          int        `json:"page"`
	Limit         int        `json:"limit"`
	Collection    string     `json:"collection,omitempty"`
	Sale          *bool      `json:"sale,omitempty"`
}

// Offset is (page-1)*limit, saturating at math.MaxInt instead of wrapping
func (f ProductFilters) Offset() int {
	if f.Page <= 1 || f.Limit <= 0 {
		return 0
	}
	if f.Page-1 > math.MaxInt/f.Limit {
		return math.MaxInt
	}
	return (f.Page - 1) * f.Limit
}

// CanonicalKey encodes the filters so that equivalent requests map to the same
// string regardless of parameter or array order.
func (f ProductFilters) CanonicalKey() string {
	v := url.Values{}
	set := func(k, val string) {
		if val != "" {
			v.Set(k, val)
		}
	}
	list := func(k string, vals []string) {
		if len(vals) == 0 {
			return
		}
		sorted := append([]string(nil), vals...)
		sort.Strings(sorted)
		v[k] = sorted
	}

	set("category", f.Category)
	list("subcategory", f.Subcategories)
	list("brand", f.Brands)
	list("color", f.Colors)
	list("size", f.Sizes)
	list("material", f.Materials)
	if f.MinPrice != nil {
		v.Set("minPrice", strconv.FormatFloat(*f.MinPrice, 'f', -1, 64))
	}
	if f.MaxPrice != nil {
		v.Set("maxPrice", strconv.FormatFloat(*f.MaxPrice, 'f', -1, 64))
	}
	if f.InStock != nil {
		v.Set("inStock", strconv.FormatBool(*f.InStock))
	}
	set("search", f.Search)
	set("sort", string(f.Sort))
	v.Set("page", strconv.Itoa(f.Page))
	v.Set("limit", strconv.Itoa(f.Limit))
	set("collection", f.Collection)
	if f.Sale != nil {
		v.Set("sale", strconv.FormatBool(*f.Sale))
	}
	// Encode sorts by key
	return v.Encode()
}

// PriceRange represents min and max price
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// DefaultPriceRange is reported when the facet sample is empty
var DefaultPriceRange = PriceRange{Min: 0, Max: 5000}

// FilterFacets counts each facet value over the sampled rows
type FilterFacets struct {
	Categories    map[string]int `json:"categories"`
	Subcategories map[string]int `json:"subcategories"`
	Brands        map[string]int `json:"brands"`
	Colors        map[string]int `json:"colors"`
	Sizes         map[string]int `json:"sizes"`
	Materials     map[string]int `json:"materials"`
	PriceRange    PriceRange     `json:"priceRange"`
}

type FilterResponse struct {
	Products       []ProductCard  `json:"products"`
	Total          int64          `json:"total"`
	Pages          int64          `json:"pages"`
	Facets         FilterFacets   `json:"facets"`
	AppliedFilters ProductFilters `json:"appliedFilters"`
}

// TotalPages is ceil(total/limit); 0 when there is nothing to page
func TotalPages(total int64, limit int) int64 {
	if total <= 0 || limit <= 0 {
		return 0
	}
	l := int64(limit)
	return (total + l - 1) / l
}
