package order_controller

import (
	"net/http"

	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/controllers"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/middleware"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/models"
	"github.com/gin-gonic/gin"
)

// GetMyOrders godoc
// @Summary List my orders
// @Tags Storefront - Orders
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} models.ApiResponse{data=[]models.Order}
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /orders [get]
func GetMyOrders(c *gin.Context) {
	who, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}
	page, limit := controllers.Pagination(c, 10, 50)

	list, total, err := orders.ListForUser(c.Request.Context(), who.UserID, page, limit)
	if err != nil {
		controllers.RespondError(c, "order", err, "Failed to fetch orders")
		return
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Orders retrieved successfully", list,
		models.NewPagination(page, limit, total)))
}

// GetMyOrder godoc
// @Summary Get one of my orders
// @Tags Storefront - Orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID (UUID)"
// @Success 200 {object} models.ApiResponse{data=models.Order}
// @Failure 400 {object} models.ApiResponse "Invalid order ID"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 404 {object} models.ApiResponse "Order not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /orders/{id} [get]
func GetMyOrder(c *gin.Context) {
	who, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}
	orderID, ok := controllers.ParseIDParam(c, "id")
	if !ok {
		return
	}

	order, err := orders.GetForUser(c.Request.Context(), who.UserID, orderID)
	if err != nil {
		controllers.RespondError(c, "order", err, "Failed to fetch order")
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order retrieved successfully", order))
}

// TrackOrder godoc
// @Summary Track an order
// @Description Public status view; the email must match the one the order was placed with
// @Tags Storefront - Orders
// @Produce json
// @Param order_number query string true "Order number"
// @Param email query string true "Email used at checkout"
// @Success 200 {object} models.ApiResponse{data=models.OrderTracking}
// @Failure 400 {object} models.ApiResponse "Bad request"
// @Failure 404 {object} models.ApiResponse "Order not found"
// @Router /orders/track [get]
func TrackOrder(c *gin.Context) {
	var q models.TrackOrderQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "order_number and a valid email are required"))
		return
	}

	order, err := orders.Track(c.Request.Context(), q.OrderNumber, q.Email)
	if err != nil {
		controllers.RespondError(c, "order", err, "Failed to track order")
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order found", order.Tracking()))
}
