package product_controller

import (
	"net/http"

	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/controllers"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/middleware"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/models"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/store"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/utils"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// GetProducts godoc
// @Summary List products (CMS)
// @Description Paginated product list including inactive products
// @Tags Admin - Products
// @Produce json
// @Security BearerAuth
// @Param q query string false "Search name, brand or slug"
// @Param category query string false "Category"
// @Param status query string false "active | inactive"
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} models.ApiResponse{data=[]models.Product}
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /admin/products [get]
func GetProducts(c *gin.Context) {
	var q store.AdminProductQuery
	_ = c.ShouldBindQuery(&q)
	q.Page, q.Limit = controllers.Pagination(c, 20, 100)

	list, total, err := catalog.AdminList(c.Request.Context(), q)
	if err != nil {
		controllers.RespondError(c, "admin-product", err, "Failed to fetch products")
		return
	}
	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Products retrieved successfully", list,
		models.NewPagination(q.Page, q.Limit, total)))
}

// GetProductByID godoc
// @Summary Get product (CMS)
// @Tags Admin - Products
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID (UUID)"
// @Success 200 {object} models.ApiResponse{data=models.Product}
// @Failure 400 {object} models.ApiResponse "Invalid product ID"
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Router /admin/products/{id} [get]
func GetProductByID(c *gin.Context) {
	id, ok := controllers.ParseIDParam(c, "id")
	if !ok {
		return
	}
	product, err := catalog.GetByID(c.Request.Context(), id)
	if err != nil {
		controllers.RespondError(c, "admin-product", err, "Failed to fetch product")
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product retrieved successfully", product))
}

// UpdateProduct godoc
// @Summary Update product (CMS)
// @Description Partial update; only the fields present are changed. compare_at_price 0 clears the sale price.
// @Tags Admin - Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID (UUID)"
// @Param payload body models.UpdateProductRequest true "Changes"
// @Success 200 {object} models.ApiResponse{data=models.Product}
// @Failure 400 {object} models.ApiResponse "Bad request"
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /admin/products/{id} [patch]
func UpdateProduct(c *gin.Context) {
	id, ok := controllers.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req models.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, utils.BindingMessage(err)))
		return
	}

	ctx := c.Request.Context()
	updates := req.Updates()
	product, err := catalog.Update(ctx, id, updates)
	if err != nil {
		controllers.RespondError(c, "admin-product", err, "Failed to update product")
		return
	}

	c.Set(middleware.ActivityPayloadKey, updates)
	invalidateCatalogCaches(ctx)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product updated successfully", product))
}

// DeleteProduct godoc
// @Summary Delete product (CMS)
// @Description Deletes the product and its image folder
// @Tags Admin - Products
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID (UUID)"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid product ID"
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /admin/products/{id} [delete]
func DeleteProduct(c *gin.Context) {
	id, ok := controllers.ParseIDParam(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	product, err := catalog.Delete(ctx, id)
	if err != nil {
		controllers.RespondError(c, "admin-product", err, "Failed to delete product")
		return
	}
	if len(product.ImageURLs) > 0 {
		removeImages(ctx, id)
	}

	c.Set(middleware.ActivityPayloadKey, gin.H{"name": product.Name, "slug": product.Slug})
	invalidateCatalogCaches(ctx)

	log.Info().Str("component", "admin-product").Str("id", id.String()).Msg("product deleted")
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product deleted successfully", gin.H{"id": id}))
}
