package product_controller

import (
	"net/http"
	"strings"

	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/controllers"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/middleware"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/models"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/utils"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// GetProductReviews godoc
// @Summary List approved reviews of a product
// @Tags Storefront - Reviews
// @Produce json
// @Param slug path string true "Product slug"
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} models.ApiResponse{data=[]models.Review}
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /products/{slug}/reviews [get]
func GetProductReviews(c *gin.Context) {
	ctx := c.Request.Context()
	page, limit := controllers.Pagination(c, 10, 50)

	product, err := products.GetActiveBySlug(ctx, strings.TrimSpace(c.Param("slug")))
	if err != nil {
		controllers.RespondError(c, "review", err, "Failed to fetch reviews")
		return
	}

	list, total, err := reviews.ListApproved(ctx, product.ID, page, limit)
	if err != nil {
		controllers.RespondError(c, "review", err, "Failed to fetch reviews")
		return
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Reviews retrieved successfully", list,
		models.NewPagination(page, limit, total)))
}

// CreateProductReview godoc
// @Summary Review a product
// @Description The review is stored as pending until an admin approves it
// @Tags Storefront - Reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Product slug"
// @Param payload body models.CreateReviewRequest true "Review"
// @Success 201 {object} models.ApiResponse{data=models.Review}
// @Failure 400 {object} models.ApiResponse "Invalid request body"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /products/{slug}/reviews [post]
func CreateProductReview(c *gin.Context) {
	who, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	var req models.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, utils.BindingMessage(err)))
		return
	}

	ctx := c.Request.Context()
	product, err := products.GetActiveBySlug(ctx, strings.TrimSpace(c.Param("slug")))
	if err != nil {
		controllers.RespondError(c, "review", err, "Failed to submit review")
		return
	}

	review := models.Review{
		ProductID:  product.ID,
		UserID:     who.UserID,
		AuthorName: who.Name,
		Rating:     req.Rating,
		Title:      strings.TrimSpace(req.Title),
		Body:       strings.TrimSpace(req.Body),
		Status:     models.ReviewPending,
	}
	if err := reviews.Create(ctx, &review); err != nil {
		controllers.RespondError(c, "review", err, "Failed to submit review")
		return
	}

	log.Info().Str("component", "review").Str("product", product.Slug).Int("rating", review.Rating).Msg("review submitted")
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Review submitted for moderation", review))
}
