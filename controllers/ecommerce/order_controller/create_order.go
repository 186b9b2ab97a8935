package order_controller

import (
	"net/http"

	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/controllers"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/middleware"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/models"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/utils"
	"github.com/gin-gonic/gin"
)

// CreateOrder godoc
// @Summary Place an order
// @Description Checks stock, re-reads prices and applies the discount code inside one transaction. Payment is captured by the external processor; its reference is stored on the order.
// @Tags Storefront - Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.CreateOrderRequest true "Cart and shipping address"
// @Success 201 {object} models.ApiResponse{data=models.Order}
// @Failure 400 {object} models.ApiResponse "Invalid cart, stock or discount"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /orders [post]
func CreateOrder(c *gin.Context) {
	who, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, utils.BindingMessage(err)))
		return
	}

	order, err := checkout.Checkout(c.Request.Context(), who, req)
	if err != nil {
		controllers.RespondError(c, "checkout", err, "Failed to create order")
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Order placed successfully", order))
}
