package product_controller

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/controllers"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/middleware"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/models"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/services"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BulkEditProducts godoc
// @Summary Bulk edit products (CMS)
// @Description Applies the same partial update to every listed product
// @Tags Admin - Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.BulkEditRequest true "IDs and changes"
// @Success 200 {object} models.ApiResponse{data=models.BulkResult}
// @Failure 400 {object} models.ApiResponse "Bad request"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /admin/products/bulk/edit [post]
func BulkEditProducts(c *gin.Context) {
	var req models.BulkEditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, utils.BindingMessage(err)))
		return
	}

	ctx := c.Request.Context()
	updates := req.Changes.Updates()
	// image lists are per product
	delete(updates, "image_urls")
	delete(updates, "thumbnail_url")

	affected, err := catalog.BulkUpdate(ctx, req.IDs, updates)
	if err != nil {
		controllers.RespondError(c, "admin-product", err, "Failed to update products")
		return
	}

	c.Set(middleware.ActivityPayloadKey, gin.H{"ids": req.IDs, "changes": updates, "affected": affected})
	invalidateCatalogCaches(ctx)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Products updated successfully", models.BulkResult{Affected: affected}))
}

// BulkDeleteProducts godoc
// @Summary Bulk delete products (CMS)
// @Tags Admin - Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.BulkIDsRequest true "IDs"
// @Success 200 {object} models.ApiResponse{data=models.BulkResult}
// @Failure 400 {object} models.ApiResponse "Bad request"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /admin/products/bulk/delete [post]
func BulkDeleteProducts(c *gin.Context) {
	var req models.BulkIDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, utils.BindingMessage(err)))
		return
	}

	ctx := c.Request.Context()
	affected, err := catalog.BulkDelete(ctx, req.IDs)
	if err != nil {
		controllers.RespondError(c, "admin-product", err, "Failed to delete products")
		return
	}
	removeImages(ctx, req.IDs...)

	c.Set(middleware.ActivityPayloadKey, gin.H{"ids": req.IDs, "affected": affected})
	invalidateCatalogCaches(ctx)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Products deleted successfully", models.BulkResult{Affected: affected}))
}

// BulkDuplicateProducts godoc
// @Summary Duplicate products (CMS)
// @Description Copies get a new id and slug and start inactive
// @Tags Admin - Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.BulkIDsRequest true "IDs"
// @Success 201 {object} models.ApiResponse{data=models.BulkResult}
// @Failure 400 {object} models.ApiResponse "Bad request"
// @Failure 404 {object} models.ApiResponse "No products found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /admin/products/bulk/duplicate [post]
func BulkDuplicateProducts(c *gin.Context) {
	var req models.BulkIDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, utils.BindingMessage(err)))
		return
	}

	ctx := c.Request.Context()
	copies, err := catalog.Duplicate(ctx, req.IDs)
	if err != nil {
		controllers.RespondError(c, "admin-product", err, "Failed to duplicate products")
		return
	}

	result := models.BulkResult{Affected: int64(len(copies))}
	for _, p := range copies {
		result.IDs = append(result.IDs, p.ID.String())
	}
	c.Set(middleware.ActivityPayloadKey, gin.H{"source_ids": req.IDs, "copies": result.IDs})
	invalidateCatalogCaches(ctx)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Products duplicated successfully", result))
}

// ExportProducts godoc
// @Summary Export products as CSV (CMS)
// @Description Exports the listed products, or the whole catalog when ids is empty
// @Tags Admin - Products
// @Produce text/csv
// @Security BearerAuth
// @Param ids query string false "Comma separated product IDs"
// @Success 200 {file} file "CSV"
// @Failure 400 {object} models.ApiResponse "Invalid product ID"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /admin/products/bulk/export [get]
func ExportProducts(c *gin.Context) {
	var ids []uuid.UUID
	for _, raw := range strings.Split(c.Query("ids"), ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID: "+raw))
			return
		}
		ids = append(ids, id)
	}

	products, err := catalog.ListByIDs(c.Request.Context(), ids)
	if err != nil {
		controllers.RespondError(c, "admin-product", err, "Failed to export products")
		return
	}
	data, err := services.ExportProductsCSV(products)
	if err != nil {
		controllers.RespondError(c, "admin-product", err, "Failed to export products")
		return
	}

	filename := fmt.Sprintf("products-%s.csv", time.Now().UTC().Format("20060102-150405"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}
