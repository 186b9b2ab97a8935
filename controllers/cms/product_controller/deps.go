package product_controller

import (
	"context"

	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/models"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/services"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/store"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type ProductRepository interface {
	AdminList(ctx context.Context, q store.AdminProductQuery) ([]models.Product, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (models.Product, error)
	Create(ctx context.Context, p *models.Product) error
	Update(ctx context.Context, id uuid.UUID, updates map[string]any) (models.Product, error)
	Delete(ctx context.Context, id uuid.UUID) (models.Product, error)
	BulkUpdate(ctx context.Context, ids []uuid.UUID, updates map[string]any) (int64, error)
	BulkDelete(ctx context.Context, ids []uuid.UUID) (int64, error)
	Duplicate(ctx context.Context, ids []uuid.UUID) ([]models.Product, error)
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Product, error)
}

var (
	catalog       ProductRepository
	images        services.ImageStorage
	filterService *services.ProductFilterService
	suggest       *services.SuggestService
)

// Init wires the handler dependencies. filter and suggestions may be nil.
func Init(repo ProductRepository, storage services.ImageStorage, filter *services.ProductFilterService, suggestions *services.SuggestService) {
	catalog = repo
	images = storage
	filterService = filter
	suggest = suggestions
}

// invalidateCatalogCaches drops the warmed listings and cached suggestions
// after any product write.
func invalidateCatalogCaches(ctx context.Context) {
	if filterService != nil {
		filterService.InvalidatePrefetch()
	}
	if suggest != nil {
		suggest.InvalidateCache(ctx)
	}
}

// removeImages deletes product image folders; failures only leave orphans behind
func removeImages(ctx context.Context, ids ...uuid.UUID) {
	if images == nil {
		return
	}
	for _, id := range ids {
		folder := services.ProductImageFolder(id.String())
		if err := images.DeleteFolder(ctx, folder); err != nil {
			log.Warn().Err(err).Str("component", "admin-product").Str("folder", folder).Msg("failed to delete images")
		}
	}
}
