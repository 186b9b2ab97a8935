package services

import (
	"context"
	"errors"
	"net/url"
	"slices"
	"sort"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/cache"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/models"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/store"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProduct struct {
	card          models.ProductCard
	subcategories []string
	active        bool
}

// fakeCatalog evaluates the filters in memory the way the SQL builder does
type fakeCatalog struct {
	products  []fakeProduct
	listErr   error
	listCalls atomic.Int32
	modes     []store.SubcategoryMode
}

func (c *fakeCatalog) HasTaggedSubcategories(_ context.Context, category string, subs []string) (bool, error) {
	for _, p := range c.products {
		if p.active && strings.Contains(strings.ToLower(p.card.Category), strings.ToLower(category)) {
			for _, s := range p.subcategories {
				if slices.Contains(subs, s) {
					return true, nil
				}
			}
		}
	}
	return false, nil
}

func (c *fakeCatalog) matches(p fakeProduct, f models.ProductFilters, mode store.SubcategoryMode) bool {
	if !p.active {
		return false
	}
	if f.Category != "" && !strings.Contains(strings.ToLower(p.card.Category), strings.ToLower(f.Category)) {
		return false
	}
	if len(f.Subcategories) > 0 {
		hit := false
		for _, s := range f.Subcategories {
			if mode == store.SubcategoryByTag && slices.Contains(p.subcategories, s) {
				hit = true
			}
			if mode == store.SubcategoryByName && strings.Contains(strings.ToLower(p.card.Name), strings.ToLower(s)) {
				hit = true
			}
		}
		if !hit {
			return false
		}
	}
	if f.MinPrice != nil && p.card.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.card.Price > *f.MaxPrice {
		return false
	}
	return true
}

func (c *fakeCatalog) ListProducts(_ context.Context, f models.ProductFilters, mode store.SubcategoryMode) ([]models.ProductCard, int64, error) {
	c.listCalls.Add(1)
	c.modes = append(c.modes, mode)
	if c.listErr != nil {
		return nil, 0, c.listErr
	}
	var hits []models.ProductCard
	for _, p := range c.products {
		if c.matches(p, f, mode) {
			hits = append(hits, p.card)
		}
	}
	sort.SliceStable(hits, func(i, j int) bool {
		switch f.Sort {
		case models.SortPriceAsc:
			return hits[i].Price < hits[j].Price
		case models.SortPriceDesc:
			return hits[i].Price > hits[j].Price
		default:
			return hits[i].CreatedAt.After(hits[j].CreatedAt)
		}
	})
	total := int64(len(hits))
	start := min(f.Offset(), len(hits))
	end := min(start+f.Limit, len(hits))
	return hits[start:end], total, nil
}

func (c *fakeCatalog) FacetSample(_ context.Context, category string) ([]models.FacetRow, error) {
	var rows []models.FacetRow
	for _, p := range c.products {
		if p.active && strings.Contains(strings.ToLower(p.card.Category), strings.ToLower(category)) {
			rows = append(rows, models.FacetRow{Category: p.card.Category, Brand: p.card.Brand, Price: p.card.Price, Subcategories: p.subcategories})
		}
	}
	return rows, nil
}

func menCatalog() *fakeCatalog {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c := &fakeCatalog{}
	for i, price := range []float64{400, 600, 900, 1200, 2000} {
		c.products = append(c.products, fakeProduct{
			card: models.ProductCard{
				ID:        string(rune('a' + i)),
				Name:      "Oxford Shirt",
				Category:  "men",
				Brand:     "Strevo",
				Price:     price,
				CreatedAt: base.Add(time.Duration(i) * time.Hour),
			},
			active: true,
		})
	}
	c.products = append(c.products, fakeProduct{
		card:   models.ProductCard{ID: "z", Name: "Hidden", Category: "men", Price: 700, CreatedAt: base},
		active: false,
	})
	return c
}

func prices(cards []models.ProductCard) []float64 {
	out := make([]float64, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.Price)
	}
	return out
}

func TestProductFilterService_PriceRangeExample(t *testing.T) {
	svc := NewProductFilterService(menCatalog(), nil)
	q, _ := url.ParseQuery("category=men&minPrice=500&maxPrice=1500&sort=price-asc&page=1&limit=2")
	f, err := ParseProductFilters(q)
	require.NoError(t, err)

	resp, err := svc.Filter(context.Background(), f, nil)
	require.NoError(t, err)

	assert.Equal(t, []float64{600, 900}, prices(resp.Products))
	assert.EqualValues(t, 3, resp.Total)
	assert.EqualValues(t, 2, resp.Pages)
	assert.Equal(t, f, resp.AppliedFilters)
	assert.Equal(t, 5, resp.Facets.Categories["men"])
	assert.Equal(t, models.PriceRange{Min: 400, Max: 2000}, resp.Facets.PriceRange)
}

func TestProductFilterService_InclusiveBounds(t *testing.T) {
	svc := NewProductFilterService(menCatalog(), nil)
	minP, maxP := 600.0, 1200.0
	f := models.ProductFilters{Category: "men", MinPrice: &minP, MaxPrice: &maxP, Sort: models.SortPriceAsc, Page: 1, Limit: 12}

	resp, err := svc.Filter(context.Background(), f, nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{600, 900, 1200}, prices(resp.Products))
}

func TestProductFilterService_PagesInvariant(t *testing.T) {
	svc := NewProductFilterService(menCatalog(), nil)

	for limit := 1; limit <= 6; limit++ {
		for page := 1; page <= 6; page++ {
			f := models.ProductFilters{Category: "men", Sort: models.SortNewest, Page: page, Limit: limit}
			resp, err := svc.Filter(context.Background(), f, nil)
			require.NoError(t, err)
			assert.LessOrEqual(t, len(resp.Products), limit)
			assert.Equal(t, models.TotalPages(resp.Total, limit), resp.Pages)
			assert.NotNil(t, resp.Products)
		}
	}
}

func TestProductFilterService_SubcategoryModeFromProbe(t *testing.T) {
	t.Run("tagged catalog uses the tag column", func(t *testing.T) {
		c := menCatalog()
		c.products[1].subcategories = []string{"shirts"}
		svc := NewProductFilterService(c, nil)

		f := models.ProductFilters{Category: "men", Subcategories: []string{"shirts"}, Page: 1, Limit: 12}
		resp, err := svc.Filter(context.Background(), f, nil)
		require.NoError(t, err)
		assert.EqualValues(t, 1, resp.Total)
		assert.Equal(t, []store.SubcategoryMode{store.SubcategoryByTag}, c.modes)
	})

	t.Run("untagged catalog falls back to the name", func(t *testing.T) {
		c := menCatalog()
		svc := NewProductFilterService(c, nil)

		f := models.ProductFilters{Category: "men", Subcategories: []string{"shirt"}, Page: 1, Limit: 12}
		resp, err := svc.Filter(context.Background(), f, nil)
		require.NoError(t, err)
		assert.EqualValues(t, 5, resp.Total)
		assert.Equal(t, []store.SubcategoryMode{store.SubcategoryByName}, c.modes)
	})
}

func TestProductFilterService_Idempotent(t *testing.T) {
	svc := NewProductFilterService(menCatalog(), nil)
	f := models.ProductFilters{Category: "men", Page: 1, Limit: 2, Sort: models.SortNewest}

	first, err := svc.Filter(context.Background(), f, nil)
	require.NoError(t, err)
	second, err := svc.Filter(context.Background(), f, nil)
	require.NoError(t, err)
	assert.Equal(t, first.Total, second.Total)
}

func TestProductFilterService_ListFailureIsInternal(t *testing.T) {
	c := menCatalog()
	c.listErr = errors.New("connection reset")
	svc := NewProductFilterService(c, nil)

	_, err := svc.Filter(context.Background(), models.ProductFilters{Page: 1, Limit: 12}, nil)
	require.Error(t, err)
	assert.Equal(t, 500, utils.StatusCode(err))
	assert.Equal(t, "fallback", utils.PublicMessage(err, "fallback"))
}

func TestProductFilterService_RecordsStages(t *testing.T) {
	svc := NewProductFilterService(menCatalog(), nil)
	timer := utils.NewStageTimer()
	f := models.ProductFilters{Category: "men", Subcategories: []string{"shirt"}, Page: 1, Limit: 12}

	_, err := svc.Filter(context.Background(), f, timer)
	require.NoError(t, err)

	header := timer.Header()
	for _, stage := range []string{"probe;dur=", "list;dur=", "facets;dur=", "total;dur="} {
		assert.Contains(t, header, stage)
	}
}

func TestProductFilterService_Prefetch(t *testing.T) {
	c := menCatalog()
	svc := NewProductFilterService(c, cache.NewPrefetchCache(8, time.Minute))
	f := models.ProductFilters{Category: "men", Brands: []string{"Strevo"}, Page: 1, Limit: 12, Sort: models.SortNewest}

	_, ok := svc.Prefetched(f)
	assert.False(t, ok)

	require.NoError(t, svc.Prefetch(context.Background(), f))
	require.NoError(t, svc.Prefetch(context.Background(), f))
	assert.EqualValues(t, 1, c.listCalls.Load())

	got, ok := svc.Prefetched(f)
	require.True(t, ok)
	assert.EqualValues(t, 5, got.Total)

	svc.InvalidatePrefetch()
	_, ok = svc.Prefetched(f)
	assert.False(t, ok)
}
