package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/models"
	"github.com/doug-martin/goqu/v9"
	"github.com/jackc/pgx/v5"
)

// DBTX is the subset of *pgxpool.Pool the read path uses
type DBTX interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ProductStore runs the storefront read queries over pgx
type ProductStore struct {
	db DBTX
}

func NewProductStore(db DBTX) *ProductStore {
	return &ProductStore{db: db}
}

func toSQL(ds *goqu.SelectDataset) (string, []interface{}, error) {
	query, args, err := ds.ToSQL()
	if err != nil {
		return "", nil, fmt.Errorf("build query: %w", err)
	}
	return query, args, nil
}

// HasTaggedSubcategories reports whether the subcategories column can serve
// the filter, i.e. at least one active product carries one of subs.
func (s *ProductStore) HasTaggedSubcategories(ctx context.Context, category string, subs []string) (bool, error) {
	if len(subs) == 0 {
		return false, nil
	}
	query, args, err := toSQL(BuildSubcategoryProbeQuery(category, subs))
	if err != nil {
		return false, err
	}

	var one int
	err = s.db.QueryRow(ctx, query, args...).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("subcategory probe: %w", err)
	}
	return true, nil
}

// ListProducts returns one page of products and the exact total for the filters
func (s *ProductStore) ListProducts(ctx context.Context, f models.ProductFilters, mode SubcategoryMode) ([]models.ProductCard, int64, error) {
	countSQL, countArgs, err := toSQL(BuildProductCountQuery(f, mode))
	if err != nil {
		return nil, 0, err
	}
	var total int64
	if err := s.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}
	if total == 0 || f.Offset() >= int(total) {
		return []models.ProductCard{}, total, nil
	}

	listSQL, listArgs, err := toSQL(BuildProductListQuery(f, mode))
	if err != nil {
		return nil, 0, err
	}
	rows, err := s.db.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	products, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.ProductCard])
	if err != nil {
		return nil, 0, fmt.Errorf("scan products: %w", err)
	}
	return products, total, nil
}

// FacetSample returns up to FacetSampleLimit active rows in the category
func (s *ProductStore) FacetSample(ctx context.Context, category string) ([]models.FacetRow, error) {
	query, args, err := toSQL(BuildFacetSampleQuery(category))
	if err != nil {
		return nil, err
	}
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("facet sample: %w", err)
	}
	sample, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.FacetRow])
	if err != nil {
		return nil, fmt.Errorf("scan facet sample: %w", err)
	}
	return sample, nil
}
