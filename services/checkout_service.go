package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"slices"
	"time"

	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/config"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/models"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/store"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/utils"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CartLine pairs a requested item with the product as currently stored
type CartLine struct {
	Product  models.Product
	Quantity int
}

type CartTotals struct {
	Subtotal float64
	Discount float64
	Shipping float64
	Total    float64
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// PriceCart computes the order totals from stored prices. Shipping is free once
// the discounted subtotal reaches the shop's threshold.
func PriceCart(lines []CartLine, discount *models.Discount, shop config.ShopConfig, now time.Time) (CartTotals, error) {
	var t CartTotals
	for _, l := range lines {
		t.Subtotal += l.Product.Price * float64(l.Quantity)
	}
	t.Subtotal = round2(t.Subtotal)

	if discount != nil {
		off, err := discount.Apply(t.Subtotal, now)
		if err != nil {
			return CartTotals{}, err
		}
		t.Discount = off
	}

	afterDiscount := round2(t.Subtotal - t.Discount)
	if afterDiscount < shop.FreeShippingThreshold {
		t.Shipping = shop.ShippingFee
	}
	t.Total = round2(afterDiscount + t.Shipping)
	return t, nil
}

// CheckoutService turns a cart into an order in one transaction: prices are
// re-read, stock is taken and the discount redemption is counted.
type CheckoutService struct {
	db   *gorm.DB
	shop config.ShopConfig
	now  func() time.Time
}

func NewCheckoutService(db *gorm.DB, shop config.ShopConfig) *CheckoutService {
	return &CheckoutService{db: db, shop: shop, now: time.Now}
}

func (s *CheckoutService) Checkout(ctx context.Context, who models.Identity, req models.CreateOrderRequest) (models.Order, error) {
	if len(req.Items) == 0 {
		return models.Order{}, utils.NewValidationError("cart cannot be empty")
	}

	var order models.Order
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		products, err := lockProducts(tx, req.Items)
		if err != nil {
			return err
		}

		lines := make([]CartLine, 0, len(req.Items))
		items := make([]models.OrderItem, 0, len(req.Items))
		for _, in := range req.Items {
			p := products[in.ProductID]
			if err := checkVariant(p, in); err != nil {
				return err
			}
			lines = append(lines, CartLine{Product: p, Quantity: in.Quantity})
			items = append(items, models.OrderItem{
				ProductID:   p.ID,
				ProductName: p.Name,
				ImageURL:    p.ThumbnailURL,
				Size:        in.Size,
				Color:       in.Color,
				UnitPrice:   p.Price,
				Quantity:    in.Quantity,
				LineTotal:   round2(p.Price * float64(in.Quantity)),
			})
		}

		var discount *models.Discount
		if code := models.NormalizeDiscountCode(req.DiscountCode); code != "" {
			var d models.Discount
			if err := tx.Where("code = ?", code).First(&d).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return utils.NewValidationError("invalid discount code")
				}
				return err
			}
			discount = &d
		}

		totals, err := PriceCart(lines, discount, s.shop, s.now())
		if err != nil {
			return err
		}

		order = models.Order{
			UserID:           who.UserID,
			Email:            who.Email,
			Status:           models.OrderPending,
			Subtotal:         totals.Subtotal,
			DiscountAmount:   totals.Discount,
			ShippingCost:     totals.Shipping,
			TotalAmount:      totals.Total,
			Currency:         s.shop.Currency,
			ShippingAddress:  datatypes.NewJSONType(req.ShippingAddress),
			PaymentReference: req.PaymentReference,
			CustomerNotes:    req.CustomerNotes,
			Items:            items,
		}
		if discount != nil {
			order.DiscountCode = &discount.Code
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for id, qty := range quantitiesByProduct(req.Items) {
			if err := store.DecrementStock(tx, id, qty); err != nil {
				if utils.StatusCode(err) == http.StatusBadRequest {
					return utils.NewValidationError(fmt.Sprintf("insufficient stock for %s", products[id].Name))
				}
				return err
			}
		}
		if discount != nil {
			if err := store.IncrementUsage(tx, discount.ID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		var appErr *utils.AppError
		if errors.As(err, &appErr) {
			return models.Order{}, err
		}
		return models.Order{}, utils.NewInternalError("failed to create order", err)
	}

	log.Info().Str("component", "checkout").Str("order_number", order.OrderNumber).
		Float64("total", order.TotalAmount).Msg("order created")
	return order, nil
}

// lockProducts loads the active products in the cart with FOR UPDATE
func lockProducts(tx *gorm.DB, items []models.OrderItemInput) (map[uuid.UUID]models.Product, error) {
	ids := make([]uuid.UUID, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ProductID)
	}

	var found []models.Product
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id IN ? AND is_active = ?", ids, true).
		Find(&found).Error; err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]models.Product, len(found))
	for _, p := range found {
		byID[p.ID] = p
	}
	for _, id := range ids {
		if _, ok := byID[id]; !ok {
			return nil, utils.NewValidationError(fmt.Sprintf("product %s is not available", id))
		}
	}
	return byID, nil
}

func checkVariant(p models.Product, in models.OrderItemInput) error {
	if in.Size != nil && len(p.Sizes) > 0 && !slices.Contains(p.Sizes, *in.Size) {
		return utils.NewValidationError(fmt.Sprintf("size %s is not offered for %s", *in.Size, p.Name))
	}
	if in.Color != nil && len(p.Colors) > 0 && !slices.Contains(p.Colors, *in.Color) {
		return utils.NewValidationError(fmt.Sprintf("color %s is not offered for %s", *in.Color, p.Name))
	}
	return nil
}

func quantitiesByProduct(items []models.OrderItemInput) map[uuid.UUID]int {
	out := make(map[uuid.UUID]int, len(items))
	for _, it := range items {
		out[it.ProductID] += it.Quantity
	}
	return out
}
