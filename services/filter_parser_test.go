package services

import (
	"math"
	"net/url"
	"testing"

	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/models"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustQuery(t *testing.T, raw string) url.Values {
	t.Helper()
	q, err := url.ParseQuery(raw)
	require.NoError(t, err)
	return q
}

func TestParseProductFilters_Defaults(t *testing.T) {
	f, err := ParseProductFilters(url.Values{})
	require.NoError(t, err)

	assert.Equal(t, models.SortNewest, f.Sort)
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, 12, f.Limit)
	assert.Nil(t, f.MinPrice)
	assert.Nil(t, f.MaxPrice)
	assert.Nil(t, f.InStock)
	assert.Nil(t, f.Sale)
	assert.Empty(t, f.Brands)
}

func TestParseProductFilters_FullQuery(t *testing.T) {
	q := mustQuery(t, "category=men&brand=Zara&brand=Levis&brand=Zara&color=black&size=M&size=L"+
		"&material=cotton&minPrice=500&maxPrice=1500&inStock=true&search=linen+shirt"+
		"&sort=price-asc&page=2&limit=24&collection=summer&sale=false")

	f, err := ParseProductFilters(q)
	require.NoError(t, err)

	assert.Equal(t, "men", f.Category)
	assert.Equal(t, []string{"Zara", "Levis"}, f.Brands)
	assert.Equal(t, []string{"black"}, f.Colors)
	assert.Equal(t, []string{"M", "L"}, f.Sizes)
	assert.Equal(t, []string{"cotton"}, f.Materials)
	require.NotNil(t, f.MinPrice)
	require.NotNil(t, f.MaxPrice)
	assert.Equal(t, 500.0, *f.MinPrice)
	assert.Equal(t, 1500.0, *f.MaxPrice)
	require.NotNil(t, f.InStock)
	assert.True(t, *f.InStock)
	assert.Equal(t, "linen shirt", f.Search)
	assert.Equal(t, models.SortPriceAsc, f.Sort)
	assert.Equal(t, 2, f.Page)
	assert.Equal(t, 24, f.Limit)
	assert.Equal(t, "summer", f.Collection)
	require.NotNil(t, f.Sale)
	assert.False(t, *f.Sale)
}

func TestParseProductFilters_SubcategoryUnification(t *testing.T) {
	q := mustQuery(t, "subcategory=shirts&subcategory=jeans&subcategories=jeans,+jackets,,shirts")

	f, err := ParseProductFilters(q)
	require.NoError(t, err)
	assert.Equal(t, []string{"shirts", "jeans", "jackets"}, f.Subcategories)
}

func TestParseProductFilters_SearchAlias(t *testing.T) {
	f, err := ParseProductFilters(mustQuery(t, "q=denim"))
	require.NoError(t, err)
	assert.Equal(t, "denim", f.Search)
}

func TestParseProductFilters_EmptyArrayValuesDropped(t *testing.T) {
	f, err := ParseProductFilters(mustQuery(t, "brand=&brand=+&color="))
	require.NoError(t, err)
	assert.Nil(t, f.Brands)
	assert.Nil(t, f.Colors)
}

func TestParseProductFilters_ValidationErrors(t *testing.T) {
	tests := []struct {
		name  string
		query string
		field string
	}{
		{"unparsable min price", "minPrice=abc", "minPrice"},
		{"nan max price", "maxPrice=NaN", "maxPrice"},
		{"negative price", "minPrice=-5", "minPrice"},
		{"inverted range", "minPrice=900&maxPrice=100", "minPrice"},
		{"bad boolean", "inStock=maybe", "inStock"},
		{"bad sale", "sale=2x", "sale"},
		{"unknown sort", "sort=cheapest", "sort"},
		{"zero page", "page=0", "page"},
		{"negative limit", "limit=-1", "limit"},
		{"non numeric page", "page=two", "page"},
		{"offset overflow", "page=4611686018427387905&limit=2", "page"},
		{"page beyond int", "page=99999999999999999999", "page"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseProductFilters(mustQuery(t, tt.query))
			require.Error(t, err)
			assert.Equal(t, 400, utils.StatusCode(err))
			assert.Contains(t, utils.PublicMessage(err, ""), tt.field)
		})
	}
}

func TestParseProductFilters_EqualBoundsAllowed(t *testing.T) {
	f, err := ParseProductFilters(mustQuery(t, "minPrice=999&maxPrice=999"))
	require.NoError(t, err)
	assert.Equal(t, *f.MinPrice, *f.MaxPrice)
}

func TestParseProductFilters_LargestPageKeepsOffsetPositive(t *testing.T) {
	f, err := ParseProductFilters(mustQuery(t, "page=4611686018427387904&limit=2"))
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt-1, f.Offset())
}

func TestParseProductFilters_LargeLimitNotClamped(t *testing.T) {
	f, err := ParseProductFilters(mustQuery(t, "limit=500"))
	require.NoError(t, err)
	assert.Equal(t, 500, f.Limit)
}
