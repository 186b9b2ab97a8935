package product_controller

import (
	"net/http"
	"strings"

	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/controllers"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/models"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// GetProductBySlug godoc
// @Summary Get a product (storefront)
// @Description Active product by slug with its approved review summary
// @Tags Storefront - Products
// @Produce json
// @Param slug path string true "Product slug"
// @Success 200 {object} models.ApiResponse{data=models.ProductDetail}
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /products/{slug} [get]
func GetProductBySlug(c *gin.Context) {
	slug := strings.TrimSpace(c.Param("slug"))
	ctx := c.Request.Context()

	product, err := products.GetActiveBySlug(ctx, slug)
	if err != nil {
		controllers.RespondError(c, "product", err, "Failed to fetch product")
		return
	}

	detail := models.ProductDetail{Product: product}
	summary, err := reviews.Summary(ctx, product.ID)
	if err != nil {
		// the page still renders without ratings
		log.Warn().Err(err).Str("component", "product").Str("slug", slug).Msg("review summary unavailable")
	} else {
		detail.ReviewCount = summary.Count
		detail.AverageRating = summary.Average
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product retrieved successfully", detail))
}
