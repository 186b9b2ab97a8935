package order_controller

import (
	"context"

	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/models"
	"github.com/google/uuid"
)

type OrderRepository interface {
	AdminList(ctx context.Context, q models.AdminOrderListQuery) ([]models.Order, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (models.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, next models.OrderStatus, adminNotes *string) (models.Order, error)
}

var (
	orders   OrderRepository
	shopName string
)

func Init(repo OrderRepository, shop string) {
	orders = repo
	shopName = shop
}
