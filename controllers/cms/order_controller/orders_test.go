package order_controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/models"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// memOrders applies status changes the way the store does, without a database
type memOrders struct {
	byID     map[uuid.UUID]models.Order
	lastList models.AdminOrderListQuery
}

func (m *memOrders) AdminList(_ context.Context, q models.AdminOrderListQuery) ([]models.Order, int64, error) {
	m.lastList = q
	var out []models.Order
	for _, o := range m.byID {
		if q.Status == "" || string(o.Status) == q.Status {
			out = append(out, o)
		}
	}
	return out, int64(len(out)), nil
}

func (m *memOrders) GetByID(_ context.Context, id uuid.UUID) (models.Order, error) {
	o, ok := m.byID[id]
	if !ok {
		return models.Order{}, utils.NewNotFoundError("Order not found")
	}
	return o, nil
}

func (m *memOrders) UpdateStatus(ctx context.Context, id uuid.UUID, next models.OrderStatus, adminNotes *string) (models.Order, error) {
	o, err := m.GetByID(ctx, id)
	if err != nil {
		return o, err
	}
	if err := o.ApplyStatus(next, adminNotes, time.Now()); err != nil {
		return models.Order{}, err
	}
	m.byID[id] = o
	return o, nil
}

func sampleOrder(status models.OrderStatus) models.Order {
	return models.Order{
		ID:          uuid.New(),
		OrderNumber: "STR-20261019-0A1B2C",
		Email:       "asha@example.com",
		Status:      status,
		Subtotal:    1299,
		TotalAmount: 1299,
		Currency:    "INR",
		ShippingAddress: datatypes.NewJSONType(models.ShippingAddress{
			FullName: "Asha Rao", Phone: "9000000000", Line1: "12 MG Road",
			City: "Bengaluru", State: "KA", PostalCode: "560001", Country: "IN",
		}),
		Items:     []models.OrderItem{{ProductName: "Oxford Shirt", UnitPrice: 1299, Quantity: 1, LineTotal: 1299}},
		CreatedAt: time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC),
	}
}

func setupRouter(repo *memOrders) *gin.Engine {
	Init(repo, "Strevo")
	r := gin.New()
	r.GET("/orders", GetOrders)
	r.GET("/orders/:id", GetOrderByID)
	r.PATCH("/orders/:id/status", UpdateOrderStatus)
	r.GET("/orders/:id/invoice", DownloadOrderInvoicePDF)
	return r
}

func patchStatus(r *gin.Engine, id uuid.UUID, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, "/orders/"+id.String()+"/status", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetOrders(t *testing.T) {
	pending, shipped := sampleOrder(models.OrderPending), sampleOrder(models.OrderShipped)
	repo := &memOrders{byID: map[uuid.UUID]models.Order{pending.ID: pending, shipped.ID: shipped}}
	r := setupRouter(repo)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/orders?status=Shipped&limit=5", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "shipped", repo.lastList.Status)
	assert.Equal(t, 5, repo.lastList.Limit)

	var body models.ApiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.EqualValues(t, 1, body.Meta.Total)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/orders?status=lost", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateOrderStatus(t *testing.T) {
	order := sampleOrder(models.OrderPending)
	repo := &memOrders{byID: map[uuid.UUID]models.Order{order.ID: order}}
	r := setupRouter(repo)

	w := patchStatus(r, order.ID, `{"status": " Confirmed "}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, models.OrderConfirmed, repo.byID[order.ID].Status)
	assert.NotNil(t, repo.byID[order.ID].ConfirmedAt)

	w = patchStatus(r, order.ID, `{"status": "delivered"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "cannot change order status from confirmed to delivered")

	w = patchStatus(r, order.ID, `{"status": "cancelled", "admin_notes": "   "}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "admin_notes is required")

	w = patchStatus(r, order.ID, `{"status": "cancelled", "admin_notes": "customer request"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "customer request", *repo.byID[order.ID].AdminNotes)

	w = patchStatus(r, order.ID, `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "status is required")

	assert.Equal(t, http.StatusNotFound, patchStatus(r, uuid.New(), `{"status": "confirmed"}`).Code)
}

func TestDownloadOrderInvoicePDF(t *testing.T) {
	order := sampleOrder(models.OrderConfirmed)
	repo := &memOrders{byID: map[uuid.UUID]models.Order{order.ID: order}}
	r := setupRouter(repo)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/orders/"+order.ID.String()+"/invoice", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="invoice-STR-20261019-0A1B2C.pdf"`, w.Header().Get("Content-Disposition"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF-")))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/orders/"+uuid.NewString()+"/invoice", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
