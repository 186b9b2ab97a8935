package product_controller

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/controllers"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/middleware"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/models"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/services"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	maxProductImages = 8
	maxImageSize     = 5 << 20
)

// CreateProduct godoc
// @Summary Create product (CMS)
// @Description Multipart form. Images are uploaded to products/{id}; the first one becomes the thumbnail. Array fields may be repeated or comma separated.
// @Tags Admin - Products
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param name formData string true "Name"
// @Param description formData string true "Description"
// @Param price formData number true "Price"
// @Param compare_at_price formData number false "Price before discount"
// @Param category formData string true "Category"
// @Param brand formData string true "Brand"
// @Param stock_quantity formData int true "Stock"
// @Param material formData string false "Material"
// @Param subcategories formData []string false "Subcategories" collectionFormat(multi)
// @Param colors formData []string false "Colors" collectionFormat(multi)
// @Param sizes formData []string false "Sizes" collectionFormat(multi)
// @Param collections formData []string false "Collections" collectionFormat(multi)
// @Param is_active formData boolean false "Visible on the storefront" default(true)
// @Param images formData file false "Product images"
// @Success 201 {object} models.ApiResponse{data=models.Product}
// @Failure 400 {object} models.ApiResponse "Bad request"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 409 {object} models.ApiResponse "Slug already exists"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /admin/products/create [post]
func CreateProduct(c *gin.Context) {
	var form models.CreateProductForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, utils.BindingMessage(err)))
		return
	}
	name := strings.TrimSpace(form.Name)

	var files []*multipart.FileHeader
	if mf, err := c.MultipartForm(); err == nil && mf != nil {
		files = mf.File["images"]
	}
	if err := validateImages(files); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	ctx := c.Request.Context()
	id := uuid.Must(uuid.NewV7())
	folder := services.ProductImageFolder(id.String())

	var urls []string
	if len(files) > 0 {
		if images == nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Image storage is not configured"))
			return
		}
		var err error
		urls, err = services.UploadProductImages(ctx, images, files, folder)
		if err != nil {
			controllers.RespondError(c, "admin-product", err, "Failed to upload images")
			return
		}
	}

	active := true
	if form.IsActive != nil {
		active = *form.IsActive
	}
	product := models.Product{
		ID:             id,
		Name:           name,
		Slug:           utils.UniqueSlug(name),
		Description:    strings.TrimSpace(form.Description),
		Category:       strings.TrimSpace(form.Category),
		Subcategories:  splitList(form.Subcategories),
		Brand:          strings.TrimSpace(form.Brand),
		Colors:         splitList(form.Colors),
		Sizes:          splitList(form.Sizes),
		Material:       strings.TrimSpace(form.Material),
		Collections:    splitList(form.Collections),
		Price:          form.Price,
		CompareAtPrice: form.CompareAtPrice,
		StockQuantity:  *form.StockQuantity,
		ImageURLs:      pq.StringArray(urls),
		IsActive:       active,
	}
	if len(urls) > 0 {
		product.ThumbnailURL = urls[0]
	}

	if err := catalog.Create(ctx, &product); err != nil {
		if len(urls) > 0 {
			removeImages(ctx, id)
		}
		controllers.RespondError(c, "admin-product", err, "Failed to create product")
		return
	}

	c.Set(middleware.ActivityResourceIDKey, id.String())
	c.Set(middleware.ActivityPayloadKey, gin.H{"name": product.Name, "slug": product.Slug, "images": len(urls)})
	invalidateCatalogCaches(ctx)

	log.Info().Str("component", "admin-product").Str("id", id.String()).Str("slug", product.Slug).Msg("product created")
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Product created successfully", product))
}

func validateImages(files []*multipart.FileHeader) error {
	if len(files) > maxProductImages {
		return fmt.Errorf("at most %d images are allowed", maxProductImages)
	}
	for _, fh := range files {
		if fh.Size > maxImageSize {
			return fmt.Errorf("image %s exceeds 5MB", fh.Filename)
		}
		if ct := fh.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "image/") {
			return fmt.Errorf("file %s is not an image", fh.Filename)
		}
	}
	return nil
}

// splitList accepts repeated and comma separated values, trims and dedupes them
func splitList(values []string) pq.StringArray {
	out := pq.StringArray{}
	seen := map[string]struct{}{}
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if _, dup := seen[part]; dup {
				continue
			}
			seen[part] = struct{}{}
			out = append(out, part)
		}
	}
	return out
}
