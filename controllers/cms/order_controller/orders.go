package order_controller

import (
	"net/http"
	"strings"

	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/controllers"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/middleware"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/models"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/services"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/utils"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// GetOrders godoc
// @Summary List orders (CMS)
// @Tags Admin - Orders
// @Produce json
// @Security BearerAuth
// @Param status query string false "Order status"
// @Param q query string false "Order number or email"
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} models.ApiResponse{data=[]models.Order}
// @Failure 400 {object} models.ApiResponse "Invalid status"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /admin/orders [get]
func GetOrders(c *gin.Context) {
	var q models.AdminOrderListQuery
	_ = c.ShouldBindQuery(&q)
	q.Status = strings.ToLower(strings.TrimSpace(q.Status))
	if q.Status != "" && !models.OrderStatus(q.Status).Valid() {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid status filter"))
		return
	}
	q.Page, q.Limit = controllers.Pagination(c, 20, 100)

	list, total, err := orders.AdminList(c.Request.Context(), q)
	if err != nil {
		controllers.RespondError(c, "admin-order", err, "Failed to fetch orders")
		return
	}
	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Orders retrieved successfully", list,
		models.NewPagination(q.Page, q.Limit, total)))
}

// GetOrderByID godoc
// @Summary Get order with items (CMS)
// @Tags Admin - Orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID (UUID)"
// @Success 200 {object} models.ApiResponse{data=models.Order}
// @Failure 400 {object} models.ApiResponse "Invalid order ID"
// @Failure 404 {object} models.ApiResponse "Order not found"
// @Router /admin/orders/{id} [get]
func GetOrderByID(c *gin.Context) {
	id, ok := controllers.ParseIDParam(c, "id")
	if !ok {
		return
	}
	order, err := orders.GetByID(c.Request.Context(), id)
	if err != nil {
		controllers.RespondError(c, "admin-order", err, "Failed to fetch order")
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order retrieved successfully", order))
}

// UpdateOrderStatus godoc
// @Summary Update order status (CMS)
// @Description Moves the order along pending → confirmed → processing → shipped → delivered → refunded. Cancelling is allowed until shipped and requires admin_notes.
// @Tags Admin - Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID (UUID)"
// @Param payload body models.UpdateOrderStatusRequest true "Update payload"
// @Success 200 {object} models.ApiResponse{data=models.Order}
// @Failure 400 {object} models.ApiResponse "Bad request"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 404 {object} models.ApiResponse "Order not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /admin/orders/{id}/status [patch]
func UpdateOrderStatus(c *gin.Context) {
	id, ok := controllers.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, utils.BindingMessage(err)))
		return
	}
	req.Status = models.OrderStatus(strings.ToLower(strings.TrimSpace(string(req.Status))))
	if req.AdminNotes != nil {
		trimmed := strings.TrimSpace(*req.AdminNotes)
		req.AdminNotes = &trimmed
	}

	order, err := orders.UpdateStatus(c.Request.Context(), id, req.Status, req.AdminNotes)
	if err != nil {
		controllers.RespondError(c, "admin-order", err, "Failed to update order status")
		return
	}

	c.Set(middleware.ActivityPayloadKey, gin.H{"status": order.Status, "order_number": order.OrderNumber})
	log.Info().Str("component", "admin-order").Str("order_number", order.OrderNumber).Str("status", string(order.Status)).Msg("order status updated")
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order status updated successfully", order))
}

// DownloadOrderInvoicePDF godoc
// @Summary Download order invoice (CMS)
// @Tags Admin - Orders
// @Produce application/pdf
// @Security BearerAuth
// @Param id path string true "Order ID (UUID)"
// @Success 200 {file} file "PDF"
// @Failure 400 {object} models.ApiResponse "Invalid order ID"
// @Failure 404 {object} models.ApiResponse "Order not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /admin/orders/{id}/invoice [get]
func DownloadOrderInvoicePDF(c *gin.Context) {
	id, ok := controllers.ParseIDParam(c, "id")
	if !ok {
		return
	}
	order, err := orders.GetByID(c.Request.Context(), id)
	if err != nil {
		controllers.RespondError(c, "admin-order", err, "Failed to fetch order")
		return
	}

	pdf, err := services.RenderInvoicePDF(shopName, order)
	if err != nil {
		controllers.RespondError(c, "admin-order", err, "Failed to render invoice")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="invoice-`+order.OrderNumber+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
