package order_controller

import (
	"context"

	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/models"
	"github.com/google/uuid"
)

type Checkouter interface {
	Checkout(ctx context.Context, who models.Identity, req models.CreateOrderRequest) (models.Order, error)
}

type OrderReader interface {
	ListForUser(ctx context.Context, userID uuid.UUID, page, limit int) ([]models.Order, int64, error)
	GetForUser(ctx context.Context, userID, orderID uuid.UUID) (models.Order, error)
	Track(ctx context.Context, orderNumber, email string) (models.Order, error)
}

var (
	checkout Checkouter
	orders   OrderReader
)

func Init(c Checkouter, o OrderReader) {
	checkout = c
	orders = o
}
