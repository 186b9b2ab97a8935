package product_controller

import (
	"context"

	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/models"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/services"
	"github.com/google/uuid"
)

type ProductLookup interface {
	GetActiveBySlug(ctx context.Context, slug string) (models.Product, error)
}

type ReviewRepository interface {
	ListApproved(ctx context.Context, productID uuid.UUID, page, limit int) ([]models.Review, int64, error)
	Summary(ctx context.Context, productID uuid.UUID) (models.ReviewSummary, error)
	Create(ctx context.Context, r *models.Review) error
}

var (
	filterService *services.ProductFilterService
	products      ProductLookup
	reviews       ReviewRepository
)

// Init wires the handler dependencies; called once from the route setup
func Init(filter *services.ProductFilterService, lookup ProductLookup, reviewRepo ReviewRepository) {
	filterService = filter
	products = lookup
	reviews = reviewRepo
}
