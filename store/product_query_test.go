package store

import (
	"strings"
	"testing"

	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f64(v float64) *float64 { return &v }
func boolPtr(v bool) *bool    { return &v }

func baseFilters() models.ProductFilters {
	return models.ProductFilters{Sort: models.SortNewest, Page: 1, Limit: 12}
}

func TestSearchTokens(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"hi", nil},
		{"Blue T-Shirt!!", []string{"blue", "tshirt"}},
		{"men's jacket", []string{"mens", "jacket"}},
		{"Co-ord set", []string{"coord", "set"}},
		{"t - shirt", []string{"shirt"}},
		{"Kurta\tCafé", []string{"kurta", "café"}},
		{"  oversized   HOODIE hoodie ", []string{"oversized", "hoodie"}},
		{"a b cd", nil},
		{"kurta's", []string{"kurtas"}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, SearchTokens(tt.in))
		})
	}
}

func TestBuildProductListQuery_AlwaysActive(t *testing.T) {
	sql, _, err := BuildProductListQuery(baseFilters(), SubcategoryByTag).ToSQL()
	require.NoError(t, err)
	assert.Contains(t, sql, `"is_active" IS TRUE`)
	assert.Contains(t, sql, `FROM "products"`)
	assert.Contains(t, sql, `ORDER BY "created_at" DESC`)
}

func TestBuildProductListQuery_Filters(t *testing.T) {
	f := baseFilters()
	f.Category = "men"
	f.Brands = []string{"Levis", "Zara"}
	f.Colors = []string{"black", "white"}
	f.Sizes = []string{"M"}
	f.Materials = []string{"cotton"}
	f.MinPrice = f64(500)
	f.MaxPrice = f64(1500)
	f.InStock = boolPtr(true)
	f.Collection = "summer-24"
	f.Sale = boolPtr(true)

	sql, args, err := BuildProductListQuery(f, SubcategoryByTag).ToSQL()
	require.NoError(t, err)

	assert.Contains(t, sql, `"category" ILIKE $`)
	assert.Contains(t, sql, `"brand" IN ($`)
	assert.Contains(t, sql, `"colors" && ARRAY[$`)
	assert.Contains(t, sql, `"sizes" && ARRAY[$`)
	assert.Contains(t, sql, `"material" IN ($`)
	assert.Contains(t, sql, `"price" >= $`)
	assert.Contains(t, sql, `"price" <= $`)
	assert.Contains(t, sql, `"stock_quantity" > $`)
	assert.Contains(t, sql, `"collections" @> ARRAY[$`)
	assert.Contains(t, sql, `"compare_at_price" > "price"`)

	assert.Contains(t, args, "%men%")
	assert.Contains(t, args, "Levis")
	assert.Contains(t, args, "black")
	assert.Contains(t, args, "summer-24")
	assert.Contains(t, args, 500.0)
	assert.Contains(t, args, 1500.0)
}

func TestBuildProductListQuery_InStockFalseAndSaleFalseAddNothing(t *testing.T) {
	f := baseFilters()
	f.InStock = boolPtr(false)
	f.Sale = boolPtr(false)

	sql, _, err := BuildProductListQuery(f, SubcategoryByTag).ToSQL()
	require.NoError(t, err)
	assert.NotContains(t, sql, "stock_quantity\" >")
	assert.NotContains(t, sql, "compare_at_price\" >")
}

func TestBuildProductListQuery_SubcategoryPathsAreExclusive(t *testing.T) {
	f := baseFilters()
	f.Category = "men"
	f.Subcategories = []string{"shirts", "polos"}

	tagged, taggedArgs, err := BuildProductListQuery(f, SubcategoryByTag).ToSQL()
	require.NoError(t, err)
	assert.Contains(t, tagged, `"subcategories" && ARRAY[`)
	assert.NotContains(t, tagged, `"name" ILIKE`)
	assert.Contains(t, taggedArgs, "shirts")

	byName, nameArgs, err := BuildProductListQuery(f, SubcategoryByName).ToSQL()
	require.NoError(t, err)
	assert.NotContains(t, byName, `"subcategories"`)
	assert.Equal(t, 2, strings.Count(byName, `"name" ILIKE`))
	assert.Contains(t, nameArgs, "%shirts%")
	assert.Contains(t, nameArgs, "%polos%")
}

func TestBuildProductListQuery_Search(t *testing.T) {
	f := baseFilters()
	f.Search = "linen shirt"

	sql, args, err := BuildProductListQuery(f, SubcategoryByTag).ToSQL()
	require.NoError(t, err)

	// six patterns per token
	assert.Equal(t, 12, strings.Count(sql, " ILIKE "))
	assert.Contains(t, sql, " OR ")
	for _, want := range []string{"linen%", "% linen%", "shirt%", "% shirt%"} {
		assert.Contains(t, args, want)
	}
}

func TestBuildProductListQuery_ShortTokensIgnored(t *testing.T) {
	withShort := baseFilters()
	withShort.Search = "hi"
	empty := baseFilters()

	a, aArgs, err := BuildProductListQuery(withShort, SubcategoryByTag).ToSQL()
	require.NoError(t, err)
	b, bArgs, err := BuildProductListQuery(empty, SubcategoryByTag).ToSQL()
	require.NoError(t, err)

	assert.Equal(t, b, a)
	assert.Equal(t, bArgs, aArgs)

	mixed := baseFilters()
	mixed.Search = "hi denim"
	sql, _, err := BuildProductListQuery(mixed, SubcategoryByTag).ToSQL()
	require.NoError(t, err)
	assert.Equal(t, 6, strings.Count(sql, " ILIKE "))
}

func TestBuildProductListQuery_LikeInputEscaped(t *testing.T) {
	f := baseFilters()
	f.Category = "50%_off"

	_, args, err := BuildProductListQuery(f, SubcategoryByTag).ToSQL()
	require.NoError(t, err)
	assert.Contains(t, args, `%50\%\_off%`)
}

func TestBuildProductListQuery_Sort(t *testing.T) {
	tests := []struct {
		sort models.SortOption
		want string
	}{
		{models.SortNewest, `ORDER BY "created_at" DESC`},
		{models.SortPopular, `ORDER BY "created_at" DESC`},
		{models.SortPriceAsc, `ORDER BY "price" ASC, "created_at" DESC`},
		{models.SortPriceDesc, `ORDER BY "price" DESC, "created_at" DESC`},
	}
	for _, tt := range tests {
		t.Run(string(tt.sort), func(t *testing.T) {
			f := baseFilters()
			f.Sort = tt.sort
			sql, _, err := BuildProductListQuery(f, SubcategoryByTag).ToSQL()
			require.NoError(t, err)
			assert.Contains(t, sql, tt.want)
		})
	}
}

func TestBuildProductListQuery_Pagination(t *testing.T) {
	f := baseFilters()
	f.Page = 3
	f.Limit = 10

	sql, _, err := BuildProductListQuery(f, SubcategoryByTag).ToSQL()
	require.NoError(t, err)
	assert.Contains(t, sql, "LIMIT")
	assert.Contains(t, sql, "OFFSET")

	first := baseFilters()
	sql, _, err = BuildProductListQuery(first, SubcategoryByTag).ToSQL()
	require.NoError(t, err)
	assert.NotContains(t, sql, "OFFSET")

	huge := baseFilters()
	huge.Page = 4611686018427387905
	huge.Limit = 2
	sql, _, err = BuildProductListQuery(huge, SubcategoryByTag).ToSQL()
	require.NoError(t, err)
	assert.Contains(t, sql, "OFFSET")
}

func TestBuildProductCountQuery_SameWhereNoPaging(t *testing.T) {
	f := baseFilters()
	f.Category = "women"
	f.Page = 2
	f.Sort = models.SortPriceAsc

	sql, args, err := BuildProductCountQuery(f, SubcategoryByTag).ToSQL()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(sql, "SELECT COUNT(*)"), sql)
	assert.Contains(t, sql, `"category" ILIKE $1`)
	assert.NotContains(t, sql, "ORDER BY")
	assert.NotContains(t, sql, "LIMIT")
	assert.Equal(t, []interface{}{"%women%"}, args)
}

func TestBuildSubcategoryProbeQuery(t *testing.T) {
	sql, args, err := BuildSubcategoryProbeQuery("men", []string{"shirts"}).ToSQL()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(sql, "SELECT 1 FROM"), sql)
	assert.Contains(t, sql, `"subcategories" && ARRAY[$`)
	assert.Contains(t, sql, "LIMIT")
	assert.Contains(t, args, "shirts")
	assert.Contains(t, args, "%men%")
}

func TestBuildFacetSampleQuery(t *testing.T) {
	sql, args, err := BuildFacetSampleQuery("men").ToSQL()
	require.NoError(t, err)
	assert.Contains(t, sql, `"subcategories"`)
	assert.Contains(t, sql, `"material"`)
	assert.Contains(t, sql, `"price"::float8 AS "price"`)
	assert.Contains(t, sql, `"category" ILIKE $1`)
	assert.Contains(t, args, "%men%")

	_, allArgs, err := BuildFacetSampleQuery("").ToSQL()
	require.NoError(t, err)
	assert.NotContains(t, allArgs, "%%")
}

func TestBuildSuggestQueries(t *testing.T) {
	sql, args := BuildSuggestFunctionQuery(StrategyTrigram, "shirt", 6)
	assert.Contains(t, sql, "FROM suggest_products_trgm($1, $2)")
	assert.Equal(t, []interface{}{"shirt", 6}, args)

	prefix, prefixArgs, err := BuildSuggestInlineQuery(StrategyPrefix, "shi", 6).ToSQL()
	require.NoError(t, err)
	assert.Contains(t, prefix, `"name" ILIKE $`)
	assert.Contains(t, prefixArgs, "shi%")

	fts, ftsArgs, err := BuildSuggestInlineQuery(StrategyFullText, "linen shirt", 6).ToSQL()
	require.NoError(t, err)
	assert.Contains(t, fts, "plainto_tsquery")
	assert.Contains(t, ftsArgs, "linen shirt")

	popular, _, err := BuildPopularSuggestionsQuery(4).ToSQL()
	require.NoError(t, err)
	assert.Contains(t, popular, `ORDER BY "stock_quantity" DESC, "created_at" DESC`)
	assert.Contains(t, popular, `"name" AS "title"`)
}
