package store

import (
	"strings"
	"unicode"

	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/models"
	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/doug-martin/goqu/v9/exp"
)

var pg = goqu.Dialect("postgres")

const (
	productsTable = "products"

	// FacetSampleLimit bounds the rows folded into facet counts
	FacetSampleLimit = 1000

	minSearchTokenLen = 3
)

// SubcategoryMode picks how a subcategory filter is matched
type SubcategoryMode int

const (
	// SubcategoryByTag matches the subcategories text[] column
	SubcategoryByTag SubcategoryMode = iota
	// SubcategoryByName matches the product name, for catalogs whose tags are not populated
	SubcategoryByName
)

// columnCasts normalizes column types for pgx scanning into plain Go types
var columnCasts = map[string]string{
	"id":               "text",
	"price":            "float8",
	"compare_at_price": "float8",
}

func selectColumns(cols []string) []interface{} {
	out := make([]interface{}, 0, len(cols))
	for _, c := range cols {
		if cast, ok := columnCasts[c]; ok {
			out = append(out, goqu.L("?::"+cast, goqu.C(c)).As(c))
			continue
		}
		out = append(out, goqu.C(c))
	}
	return out
}

// textArray renders ARRAY[$1,$2,...]::text[] with one placeholder per value
func textArray(vals []string) exp.LiteralExpression {
	args := make([]interface{}, len(vals))
	for i, v := range vals {
		args[i] = v
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(vals)), ",")
	return goqu.L("ARRAY["+placeholders+"]::text[]", args...)
}

func overlaps(col string, vals []string) exp.Expression {
	return goqu.L("? && ?", goqu.C(col), textArray(vals))
}

func contains(col string, vals []string) exp.Expression {
	return goqu.L("? @> ?", goqu.C(col), textArray(vals))
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// SearchTokens lowercases q, drops anything that is not a letter, digit or
// whitespace, and keeps the tokens of at least three characters. Letters are
// matched in any script so non-Latin product names stay searchable.
func SearchTokens(q string) []string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			return unicode.ToLower(r)
		case unicode.IsSpace(r):
			return ' '
		}
		return -1
	}, q)

	var tokens []string
	seen := map[string]struct{}{}
	for _, tok := range strings.Fields(cleaned) {
		if len([]rune(tok)) < minSearchTokenLen {
			continue
		}
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		tokens = append(tokens, tok)
	}
	return tokens
}

// searchCondition ORs six patterns per token: a word starting the field and a
// word starting after a space, over name, description and brand.
func searchCondition(tokens []string) exp.Expression {
	if len(tokens) == 0 {
		return nil
	}
	clauses := make([]exp.Expression, 0, len(tokens)*6)
	for _, tok := range tokens {
		t := escapeLike(tok)
		for _, col := range []string{"name", "description", "brand"} {
			clauses = append(clauses,
				goqu.C(col).ILike(t+"%"),
				goqu.C(col).ILike("% "+t+"%"),
			)
		}
	}
	return goqu.Or(clauses...)
}

func categoryCondition(category string) exp.Expression {
	return goqu.C("category").ILike("%" + escapeLike(category) + "%")
}

func subcategoryCondition(subs []string, mode SubcategoryMode) exp.Expression {
	if mode == SubcategoryByTag {
		return overlaps("subcategories", subs)
	}
	names := make([]exp.Expression, 0, len(subs))
	for _, s := range subs {
		names = append(names, goqu.C("name").ILike("%"+escapeLike(s)+"%"))
	}
	return goqu.Or(names...)
}

// productConditions turns the filters into AND-ed conditions
func productConditions(f models.ProductFilters, mode SubcategoryMode) []exp.Expression {
	conds := []exp.Expression{goqu.Ex{"is_active": true}}

	if f.Category != "" {
		conds = append(conds, categoryCondition(f.Category))
	}
	if len(f.Subcategories) > 0 {
		conds = append(conds, subcategoryCondition(f.Subcategories, mode))
	}
	if len(f.Brands) > 0 {
		conds = append(conds, goqu.C("brand").In(f.Brands))
	}
	if len(f.Colors) > 0 {
		conds = append(conds, overlaps("colors", f.Colors))
	}
	if len(f.Sizes) > 0 {
		conds = append(conds, overlaps("sizes", f.Sizes))
	}
	if len(f.Materials) > 0 {
		conds = append(conds, goqu.C("material").In(f.Materials))
	}
	if f.MinPrice != nil {
		conds = append(conds, goqu.C("price").Gte(*f.MinPrice))
	}
	if f.MaxPrice != nil {
		conds = append(conds, goqu.C("price").Lte(*f.MaxPrice))
	}
	if f.InStock != nil && *f.InStock {
		conds = append(conds, goqu.C("stock_quantity").Gt(0))
	}
	if f.Collection != "" {
		conds = append(conds, contains("collections", []string{f.Collection}))
	}
	if f.Sale != nil && *f.Sale {
		conds = append(conds, goqu.C("compare_at_price").Gt(goqu.C("price")))
	}
	if search := searchCondition(SearchTokens(f.Search)); search != nil {
		conds = append(conds, search)
	}
	return conds
}

func orderFor(sort models.SortOption) []exp.OrderedExpression {
	switch sort {
	case models.SortPriceAsc:
		return []exp.OrderedExpression{goqu.C("price").Asc(), goqu.C("created_at").Desc()}
	case models.SortPriceDesc:
		return []exp.OrderedExpression{goqu.C("price").Desc(), goqu.C("created_at").Desc()}
	default:
		// TODO: order "popular" by sales once order_items volume is aggregated per product
		return []exp.OrderedExpression{goqu.C("created_at").Desc()}
	}
}

func filteredProducts(f models.ProductFilters, mode SubcategoryMode) *goqu.SelectDataset {
	return pg.From(productsTable).Prepared(true).Where(productConditions(f, mode)...)
}

// BuildProductListQuery is the page query for the storefront listing
func BuildProductListQuery(f models.ProductFilters, mode SubcategoryMode) *goqu.SelectDataset {
	ds := filteredProducts(f, mode).
		Select(selectColumns(models.ProductCardColumns)...).
		Order(orderFor(f.Sort)...)
	if f.Limit > 0 {
		ds = ds.Limit(uint(f.Limit))
	}
	if off := f.Offset(); off > 0 {
		ds = ds.Offset(uint(off))
	}
	return ds
}

// BuildProductCountQuery counts every row the list query would page over
func BuildProductCountQuery(f models.ProductFilters, mode SubcategoryMode) *goqu.SelectDataset {
	return filteredProducts(f, mode).Select(goqu.COUNT(goqu.Star()))
}

// BuildSubcategoryProbeQuery checks whether any active product in the category
// is tagged with one of subs.
func BuildSubcategoryProbeQuery(category string, subs []string) *goqu.SelectDataset {
	conds := []exp.Expression{goqu.Ex{"is_active": true}, overlaps("subcategories", subs)}
	if category != "" {
		conds = append(conds, categoryCondition(category))
	}
	return pg.From(productsTable).Prepared(true).
		Select(goqu.L("1")).
		Where(conds...).
		Limit(1)
}

// BuildFacetSampleQuery narrows by category only
func BuildFacetSampleQuery(category string) *goqu.SelectDataset {
	conds := []exp.Expression{goqu.Ex{"is_active": true}}
	if category != "" {
		conds = append(conds, categoryCondition(category))
	}
	return pg.From(productsTable).Prepared(true).
		Select(selectColumns(models.FacetRowColumns)...).
		Where(conds...).
		Limit(FacetSampleLimit)
}
