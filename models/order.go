package models

import (
	"fmt"
	"time"

	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/utils"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderConfirmed  OrderStatus = "confirmed"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
	OrderRefunded   OrderStatus = "refunded"
)

// orderTransitions lists the statuses an order may move to from each status
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:    {OrderConfirmed, OrderCancelled},
	OrderConfirmed:  {OrderProcessing, OrderCancelled},
	OrderProcessing: {OrderShipped, OrderCancelled},
	OrderShipped:    {OrderDelivered},
	OrderDelivered:  {OrderRefunded},
}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderProcessing, OrderShipped,
		OrderDelivered, OrderCancelled, OrderRefunded:
		return true
	}
	return false
}

func CanTransition(from, to OrderStatus) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ShippingAddress is snapshotted into the order at checkout
type ShippingAddress struct {
	FullName   string `json:"full_name" binding:"required"`
	Phone      string `json:"phone" binding:"required"`
	Line1      string `json:"line1" binding:"required"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city" binding:"required"`
	State      string `json:"state" binding:"required"`
	PostalCode string `json:"postal_code" binding:"required"`
	Country    string `json:"country" binding:"required"`
}

type Order struct {
	ID               uuid.UUID                           `json:"id" gorm:"type:uuid;primaryKey"`
	OrderNumber      string                              `json:"order_number" gorm:"not null;uniqueIndex"`
	UserID           uuid.UUID                           `json:"user_id" gorm:"type:uuid;not null;index"`
	Email            string                              `json:"email" gorm:"not null;index"`
	Status           OrderStatus                         `json:"status" gorm:"type:text;not null;default:'pending';index"`
	Subtotal         float64                             `json:"subtotal" gorm:"type:numeric(12,2);not null"`
	DiscountCode     *string                             `json:"discount_code,omitempty"`
	DiscountAmount   float64                             `json:"discount_amount" gorm:"type:numeric(12,2);not null;default:0"`
	ShippingCost     float64                             `json:"shipping_cost" gorm:"type:numeric(12,2);not null;default:0"`
	TotalAmount      float64                             `json:"total_amount" gorm:"type:numeric(12,2);not null"`
	Currency         string                              `json:"currency" gorm:"not null"`
	ShippingAddress  datatypes.JSONType[ShippingAddress] `json:"shipping_address" gorm:"type:jsonb;not null"`
	PaymentReference string                              `json:"payment_reference,omitempty"`
	CustomerNotes    *string                             `json:"customer_notes,omitempty"`
	AdminNotes       *string                             `json:"admin_notes,omitempty"`
	Items            []OrderItem                         `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt        time.Time                           `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt        time.Time                           `json:"updated_at" gorm:"autoUpdateTime"`
	ConfirmedAt      *time.Time                          `json:"confirmed_at,omitempty"`
	ShippedAt        *time.Time                          `json:"shipped_at,omitempty"`
	DeliveredAt      *time.Time                          `json:"delivered_at,omitempty"`
	CancelledAt      *time.Time                          `json:"cancelled_at,omitempty"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.Must(uuid.NewV7())
	}
	if o.OrderNumber == "" {
		o.OrderNumber = NewOrderNumber(time.Now())
	}
	return nil
}

func (Order) TableName() string {
	return "orders"
}

// NewOrderNumber renders e.g. STR-20261019-9F3A1C
func NewOrderNumber(now time.Time) string {
	id := uuid.Must(uuid.NewV7())
	return fmt.Sprintf("STR-%s-%X", now.UTC().Format("20060102"), id[len(id)-3:])
}

// ApplyStatus moves the order to next, stamping the matching timestamp.
// Cancelling requires admin notes.
func (o *Order) ApplyStatus(next OrderStatus, adminNotes *string, now time.Time) error {
	if !next.Valid() {
		return utils.NewValidationError(fmt.Sprintf("unknown status %q", next))
	}
	if !CanTransition(o.Status, next) {
		return utils.NewValidationError(fmt.Sprintf("cannot change order status from %s to %s", o.Status, next))
	}
	if next == OrderCancelled && (adminNotes == nil || *adminNotes == "") {
		return utils.NewValidationError("admin_notes is required when cancelling an order")
	}

	switch next {
	case OrderConfirmed:
		o.ConfirmedAt = &now
	case OrderShipped:
		o.ShippedAt = &now
	case OrderDelivered:
		o.DeliveredAt = &now
	case OrderCancelled:
		o.CancelledAt = &now
	}
	if adminNotes != nil && *adminNotes != "" {
		o.AdminNotes = adminNotes
	}
	o.Status = next
	return nil
}

type OrderItem struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `json:"order_id" gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID `json:"product_id" gorm:"type:uuid;not null;index"`
	ProductName string    `json:"product_name" gorm:"not null"`
	ImageURL    string    `json:"image_url,omitempty"`
	Size        *string   `json:"size,omitempty"`
	Color       *string   `json:"color,omitempty"`
	UnitPrice   float64   `json:"unit_price" gorm:"type:numeric(12,2);not null"`
	Quantity    int       `json:"quantity" gorm:"not null"`
	LineTotal   float64   `json:"line_total" gorm:"type:numeric(12,2);not null"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (OrderItem) TableName() string {
	return "order_items"
}

// ═══════════════════════════════════════════════════════════
// Requests
// ═══════════════════════════════════════════════════════════

// CreateOrderRequest for checkout
type CreateOrderRequest struct {
	Items            []OrderItemInput `json:"items" binding:"required,min=1,dive"`
	ShippingAddress  ShippingAddress  `json:"shipping_address" binding:"required"`
	DiscountCode     string           `json:"discount_code"`
	PaymentReference string           `json:"payment_reference" binding:"required"`
	CustomerNotes    *string          `json:"customer_notes,omitempty"`
}

// OrderItemInput for cart items
type OrderItemInput struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1,max=20"`
	Size      *string   `json:"size,omitempty"`
	Color     *string   `json:"color,omitempty"`
}

type UpdateOrderStatusRequest struct {
	Status     OrderStatus `json:"status" binding:"required"`
	AdminNotes *string     `json:"admin_notes,omitempty"`
}

type AdminOrderListQuery struct {
	Status string `form:"status"`
	Q      string `form:"q"`
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
}

type TrackOrderQuery struct {
	OrderNumber string `form:"order_number" binding:"required"`
	Email       string `form:"email" binding:"required,email"`
}

// OrderTracking is the public view returned by the tracking endpoint
type OrderTracking struct {
	OrderNumber string      `json:"order_number"`
	Status      OrderStatus `json:"status"`
	ItemCount   int         `json:"item_count"`
	TotalAmount float64     `json:"total_amount"`
	Currency    string      `json:"currency"`
	CreatedAt   time.Time   `json:"created_at"`
	ConfirmedAt *time.Time  `json:"confirmed_at,omitempty"`
	ShippedAt   *time.Time  `json:"shipped_at,omitempty"`
	DeliveredAt *time.Time  `json:"delivered_at,omitempty"`
	CancelledAt *time.Time  `json:"cancelled_at,omitempty"`
}

func (o Order) Tracking() OrderTracking {
	count := 0
	for _, it := range o.Items {
		count += it.Quantity
	}
	return OrderTracking{
		OrderNumber: o.OrderNumber,
		Status:      o.Status,
		ItemCount:   count,
		TotalAmount: o.TotalAmount,
		Currency:    o.Currency,
		CreatedAt:   o.CreatedAt,
		ConfirmedAt: o.ConfirmedAt,
		ShippedAt:   o.ShippedAt,
		DeliveredAt: o.DeliveredAt,
		CancelledAt: o.CancelledAt,
	}
}
