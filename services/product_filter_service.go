package services

import (
	"context"

	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/cache"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/models"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/store"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/utils"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// ProductReader is the read side of the catalog used by the filter endpoint
type ProductReader interface {
	HasTaggedSubcategories(ctx context.Context, category string, subs []string) (bool, error)
	ListProducts(ctx context.Context, f models.ProductFilters, mode store.SubcategoryMode) ([]models.ProductCard, int64, error)
	FacetSample(ctx context.Context, category string) ([]models.FacetRow, error)
}

// ProductFilterService assembles the filtered listing: one page of products,
// the exact total, and facets sampled from the category.
type ProductFilterService struct {
	products ProductReader
	prefetch *cache.PrefetchCache
}

func NewProductFilterService(products ProductReader, prefetch *cache.PrefetchCache) *ProductFilterService {
	if prefetch == nil {
		prefetch = cache.NewPrefetchCache(0, 0)
	}
	return &ProductFilterService{products: products, prefetch: prefetch}
}

// Filter runs the probe, then the listing and the facet sample concurrently.
// Stage durations are recorded on timer when it is non-nil.
func (s *ProductFilterService) Filter(ctx context.Context, f models.ProductFilters, timer *utils.StageTimer) (models.FilterResponse, error) {
	if timer == nil {
		timer = utils.NewStageTimer()
	}

	mode := store.SubcategoryByName
	if len(f.Subcategories) > 0 {
		err := timer.Track("probe", func() error {
			tagged, err := s.products.HasTaggedSubcategories(ctx, f.Category, f.Subcategories)
			if tagged {
				mode = store.SubcategoryByTag
			}
			return err
		})
		if err != nil {
			return models.FilterResponse{}, utils.NewInternalError("failed to probe subcategories", err)
		}
	}

	var (
		products []models.ProductCard
		total    int64
		sample   []models.FacetRow
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return timer.Track("list", func() error {
			var err error
			products, total, err = s.products.ListProducts(gctx, f, mode)
			return err
		})
	})
	g.Go(func() error {
		return timer.Track("facets", func() error {
			var err error
			sample, err = s.products.FacetSample(gctx, f.Category)
			return err
		})
	})
	if err := g.Wait(); err != nil {
		return models.FilterResponse{}, utils.NewInternalError("failed to fetch products", err)
	}

	if products == nil {
		products = []models.ProductCard{}
	}
	return models.FilterResponse{
		Products:       products,
		Total:          total,
		Pages:          models.TotalPages(total, f.Limit),
		Facets:         AggregateFacets(sample),
		AppliedFilters: f,
	}, nil
}

// Prefetched returns a response warmed by Prefetch for equivalent filters
func (s *ProductFilterService) Prefetched(f models.ProductFilters) (models.FilterResponse, bool) {
	return s.prefetch.Get(f.CanonicalKey())
}

// Prefetch computes the response for f and keeps it for the prefetch TTL
func (s *ProductFilterService) Prefetch(ctx context.Context, f models.ProductFilters) error {
	key := f.CanonicalKey()
	if _, ok := s.prefetch.Get(key); ok {
		return nil
	}
	resp, err := s.Filter(ctx, f, nil)
	if err != nil {
		return err
	}
	s.prefetch.Set(key, resp)
	log.Debug().Str("component", "prefetch").Str("key", key).Int64("total", resp.Total).Msg("prefetch stored")
	return nil
}

// InvalidatePrefetch drops all warmed responses after a catalog write
func (s *ProductFilterService) InvalidatePrefetch() {
	s.prefetch.Invalidate()
}
