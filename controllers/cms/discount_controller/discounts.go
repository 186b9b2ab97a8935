package discount_controller

import (
	"context"
	"net/http"

	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/controllers"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/middleware"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/models"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DiscountRepository interface {
	List(ctx context.Context) ([]models.Discount, error)
	Get(ctx context.Context, id uuid.UUID) (models.Discount, error)
	Create(ctx context.Context, d *models.Discount) error
	Replace(ctx context.Context, id uuid.UUID, d models.Discount) (models.Discount, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

var discounts DiscountRepository

func Init(repo DiscountRepository) {
	discounts = repo
}

// GetDiscounts godoc
// @Summary List discount codes (CMS)
// @Tags Admin - Discounts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=[]models.Discount}
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /admin/discounts [get]
func GetDiscounts(c *gin.Context) {
	list, err := discounts.List(c.Request.Context())
	if err != nil {
		controllers.RespondError(c, "admin-discount", err, "Failed to fetch discounts")
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Discounts retrieved successfully", list))
}

// GetDiscount godoc
// @Summary Get discount code (CMS)
// @Tags Admin - Discounts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Discount ID (UUID)"
// @Success 200 {object} models.ApiResponse{data=models.Discount}
// @Failure 404 {object} models.ApiResponse "Discount not found"
// @Router /admin/discounts/{id} [get]
func GetDiscount(c *gin.Context) {
	id, ok := controllers.ParseIDParam(c, "id")
	if !ok {
		return
	}
	d, err := discounts.Get(c.Request.Context(), id)
	if err != nil {
		controllers.RespondError(c, "admin-discount", err, "Failed to fetch discount")
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Discount retrieved successfully", d))
}

// CreateDiscount godoc
// @Summary Create discount code (CMS)
// @Description Codes are stored upper-cased and must be unique
// @Tags Admin - Discounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.DiscountRequest true "Discount"
// @Success 201 {object} models.ApiResponse{data=models.Discount}
// @Failure 400 {object} models.ApiResponse "Bad request"
// @Failure 409 {object} models.ApiResponse "Code already exists"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /admin/discounts [post]
func CreateDiscount(c *gin.Context) {
	var req models.DiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, utils.BindingMessage(err)))
		return
	}
	d, err := req.ToModel()
	if err != nil {
		controllers.RespondError(c, "admin-discount", err, "Invalid discount")
		return
	}
	if err := discounts.Create(c.Request.Context(), &d); err != nil {
		controllers.RespondError(c, "admin-discount", err, "Failed to create discount")
		return
	}

	c.Set(middleware.ActivityResourceIDKey, d.ID.String())
	c.Set(middleware.ActivityPayloadKey, gin.H{"code": d.Code, "type": d.Type, "value": d.Value})
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Discount created successfully", d))
}

// UpdateDiscount godoc
// @Summary Replace discount code (CMS)
// @Tags Admin - Discounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Discount ID (UUID)"
// @Param payload body models.DiscountRequest true "Discount"
// @Success 200 {object} models.ApiResponse{data=models.Discount}
// @Failure 400 {object} models.ApiResponse "Bad request"
// @Failure 404 {object} models.ApiResponse "Discount not found"
// @Failure 409 {object} models.ApiResponse "Code already exists"
// @Router /admin/discounts/{id} [put]
func UpdateDiscount(c *gin.Context) {
	id, ok := controllers.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req models.DiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, utils.BindingMessage(err)))
		return
	}
	d, err := req.ToModel()
	if err != nil {
		controllers.RespondError(c, "admin-discount", err, "Invalid discount")
		return
	}

	updated, err := discounts.Replace(c.Request.Context(), id, d)
	if err != nil {
		controllers.RespondError(c, "admin-discount", err, "Failed to update discount")
		return
	}
	c.Set(middleware.ActivityPayloadKey, gin.H{"code": updated.Code, "is_active": updated.IsActive})
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Discount updated successfully", updated))
}

// DeleteDiscount godoc
// @Summary Delete discount code (CMS)
// @Tags Admin - Discounts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Discount ID (UUID)"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Discount not found"
// @Router /admin/discounts/{id} [delete]
func DeleteDiscount(c *gin.Context) {
	id, ok := controllers.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := discounts.Delete(c.Request.Context(), id); err != nil {
		controllers.RespondError(c, "admin-discount", err, "Failed to delete discount")
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Discount deleted successfully", gin.H{"id": id}))
}
