package services

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/models"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/utils"
)

// ParseProductFilters turns the storefront query string into ProductFilters.
// Absent parameters stay unset; malformed ones are a validation error naming the field.
func ParseProductFilters(q url.Values) (models.ProductFilters, error) {
	f := models.ProductFilters{
		Category:   strings.TrimSpace(q.Get("category")),
		Collection: strings.TrimSpace(q.Get("collection")),
		Sort:       models.SortNewest,
		Page:       models.DefaultListingPage,
		Limit:      models.DefaultListingLimit,
	}

	// subcategory may arrive repeated and/or as a comma separated subcategories list
	subs := append([]string(nil), q["subcategory"]...)
	for _, raw := range q["subcategories"] {
		subs = append(subs, strings.Split(raw, ",")...)
	}
	f.Subcategories = dedupe(subs)
	f.Brands = dedupe(q["brand"])
	f.Colors = dedupe(q["color"])
	f.Sizes = dedupe(q["size"])
	f.Materials = dedupe(q["material"])

	f.Search = strings.TrimSpace(q.Get("search"))
	if f.Search == "" {
		f.Search = strings.TrimSpace(q.Get("q"))
	}

	var err error
	if f.MinPrice, err = parsePrice(q, "minPrice"); err != nil {
		return models.ProductFilters{}, err
	}
	if f.MaxPrice, err = parsePrice(q, "maxPrice"); err != nil {
		return models.ProductFilters{}, err
	}
	if f.MinPrice != nil && f.MaxPrice != nil && *f.MinPrice > *f.MaxPrice {
		return models.ProductFilters{}, utils.NewValidationError("minPrice must not be greater than maxPrice")
	}

	if f.InStock, err = parseBool(q, "inStock"); err != nil {
		return models.ProductFilters{}, err
	}
	if f.Sale, err = parseBool(q, "sale"); err != nil {
		return models.ProductFilters{}, err
	}

	if raw := strings.TrimSpace(q.Get("sort")); raw != "" {
		s := models.SortOption(raw)
		if !s.Valid() {
			return models.ProductFilters{}, utils.NewValidationError(
				fmt.Sprintf("sort must be one of newest, price-asc, price-desc, popular (got %q)", raw))
		}
		f.Sort = s
	}

	if f.Page, err = parsePositive(q, "page", models.DefaultListingPage); err != nil {
		return models.ProductFilters{}, err
	}
	if f.Limit, err = parsePositive(q, "limit", models.DefaultListingLimit); err != nil {
		return models.ProductFilters{}, err
	}
	if f.Page-1 > math.MaxInt/f.Limit {
		return models.ProductFilters{}, utils.NewValidationError("page is out of range for the given limit")
	}

	return f, nil
}

// dedupe trims values, drops empties and keeps the first occurrence of each
func dedupe(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func parsePrice(q url.Values, key string) (*float64, error) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, utils.NewValidationError(fmt.Sprintf("%s must be a number", key))
	}
	if v < 0 {
		return nil, utils.NewValidationError(fmt.Sprintf("%s must not be negative", key))
	}
	return &v, nil
}

func parseBool(q url.Values, key string) (*bool, error) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, utils.NewValidationError(fmt.Sprintf("%s must be true or false", key))
	}
	return &v, nil
}

func parsePositive(q url.Values, key string, def int) (int, error) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return 0, utils.NewValidationError(fmt.Sprintf("%s must be a positive integer", key))
	}
	return v, nil
}
