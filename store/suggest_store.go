package store

import (
	"context"
	"fmt"

	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/models"
	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/jackc/pgx/v5"
)

// SuggestStrategy names one retrieval tier of the autocomplete
type SuggestStrategy string

const (
	StrategyPrefix   SuggestStrategy = "prefix"
	StrategyTrigram  SuggestStrategy = "trgm"
	StrategyFullText SuggestStrategy = "fts"
)

// SuggestTiers is the order strategies are tried in on a cache miss
var SuggestTiers = []SuggestStrategy{StrategyPrefix, StrategyTrigram, StrategyFullText}

var suggestionColumns = []interface{}{
	goqu.L(`"id"::text`).As("id"),
	goqu.C("name").As("title"),
	goqu.C("slug"),
	goqu.L(`"price"::float8`).As("price"),
	goqu.C("thumbnail_url"),
}

// BuildSuggestFunctionQuery calls the database-side suggest_products_<strategy>(q, limit)
func BuildSuggestFunctionQuery(strategy SuggestStrategy, q string, limit int) (string, []interface{}) {
	return fmt.Sprintf(
		`SELECT id::text AS id, title, slug, price::float8 AS price, coalesce(thumbnail_url, '') AS thumbnail_url FROM suggest_products_%s($1, $2)`,
		strategy,
	), []interface{}{q, limit}
}

// BuildSuggestInlineQuery is the plain-table fallback for a strategy whose
// database function is missing or failing.
func BuildSuggestInlineQuery(strategy SuggestStrategy, q string, limit int) *goqu.SelectDataset {
	var match exp.Expression
	order := []exp.OrderedExpression{goqu.C("stock_quantity").Desc(), goqu.C("created_at").Desc()}

	switch strategy {
	case StrategyPrefix:
		match = goqu.C("name").ILike(escapeLike(q) + "%")
		order = append([]exp.OrderedExpression{goqu.L("length(?)", goqu.C("name")).Asc()}, order...)
	case StrategyTrigram:
		match = goqu.C("name").ILike("%" + escapeLike(q) + "%")
	default:
		match = goqu.L(
			"to_tsvector('simple', ? || ' ' || coalesce(?, '')) @@ plainto_tsquery('simple', ?)",
			goqu.C("name"), goqu.C("description"), q,
		)
	}

	return pg.From(productsTable).Prepared(true).
		Select(suggestionColumns...).
		Where(goqu.Ex{"is_active": true}, match).
		Order(order...).
		Limit(uint(limit))
}

// BuildPopularSuggestionsQuery backs the empty-query path
func BuildPopularSuggestionsQuery(limit int) *goqu.SelectDataset {
	return pg.From(productsTable).Prepared(true).
		Select(suggestionColumns...).
		Where(goqu.Ex{"is_active": true}).
		Order(goqu.C("stock_quantity").Desc(), goqu.C("created_at").Desc()).
		Limit(uint(limit))
}

func (s *ProductStore) collectSuggestions(ctx context.Context, query string, args []interface{}) ([]models.Suggestion, error) {
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[models.Suggestion])
}

func (s *ProductStore) PopularSuggestions(ctx context.Context, limit int) ([]models.Suggestion, error) {
	query, args, err := toSQL(BuildPopularSuggestionsQuery(limit))
	if err != nil {
		return nil, err
	}
	out, err := s.collectSuggestions(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("popular suggestions: %w", err)
	}
	return out, nil
}

func (s *ProductStore) SuggestViaFunction(ctx context.Context, strategy SuggestStrategy, q string, limit int) ([]models.Suggestion, error) {
	query, args := BuildSuggestFunctionQuery(strategy, q, limit)
	out, err := s.collectSuggestions(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("suggest_products_%s: %w", strategy, err)
	}
	return out, nil
}

func (s *ProductStore) SuggestInline(ctx context.Context, strategy SuggestStrategy, q string, limit int) ([]models.Suggestion, error) {
	query, args, err := toSQL(BuildSuggestInlineQuery(strategy, q, limit))
	if err != nil {
		return nil, err
	}
	out, err := s.collectSuggestions(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("inline %s suggestions: %w", strategy, err)
	}
	return out, nil
}
