package product_controller

import (
	"net/http"

	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/controllers"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/services"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/utils"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const filterCacheControl = "public, s-maxage=60, stale-while-revalidate=120"

// FilterProducts godoc
// @Summary Filter storefront products
// @Description One page of active products matching the filters, the exact total, and facets counted over the category.
// @Tags Storefront - Products
// @Produce json
// @Param category query string false "Category"
// @Param subcategory query []string false "Subcategory (repeatable)" collectionFormat(multi)
// @Param subcategories query string false "Comma separated subcategories"
// @Param brand query []string false "Brand (repeatable)" collectionFormat(multi)
// @Param color query []string false "Color (repeatable)" collectionFormat(multi)
// @Param size query []string false "Size (repeatable)" collectionFormat(multi)
// @Param material query []string false "Material (repeatable)" collectionFormat(multi)
// @Param minPrice query number false "Minimum price (inclusive)"
// @Param maxPrice query number false "Maximum price (inclusive)"
// @Param inStock query boolean false "Only products with stock"
// @Param search query string false "Search text"
// @Param sort query string false "newest | price-asc | price-desc | popular"
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(12)
// @Param collection query string false "Collection"
// @Param sale query boolean false "Only discounted products"
// @Success 200 {object} models.FilterResponse
// @Failure 400 {object} models.ApiResponse "Invalid filter parameters"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /products/filter [get]
func FilterProducts(c *gin.Context) {
	timer := utils.NewStageTimer()

	filters, err := services.ParseProductFilters(c.Request.URL.Query())
	if err != nil {
		controllers.RespondError(c, "filter", err, "Invalid filter parameters")
		return
	}

	c.Header("Cache-Control", filterCacheControl)

	if resp, ok := filterService.Prefetched(filters); ok {
		c.Header("X-Prefetch-Cache", "HIT")
		c.Header("Server-Timing", timer.Header())
		c.JSON(http.StatusOK, resp)
		return
	}
	c.Header("X-Prefetch-Cache", "MISS")

	resp, err := filterService.Filter(c.Request.Context(), filters, timer)
	c.Header("Server-Timing", timer.Header())
	if err != nil {
		c.Header("Cache-Control", "no-store")
		controllers.RespondError(c, "filter", err, "Failed to fetch products")
		return
	}

	log.Debug().Str("component", "filter").
		Str("category", filters.Category).
		Int64("total", resp.Total).
		Int64("ms", timer.ElapsedMs()).
		Msg("products filtered")

	c.JSON(http.StatusOK, resp)
}

// PrefetchNav godoc
// @Summary Warm the listing for a navigation target
// @Description Computes the filter response for the given parameters so the following /products/filter request is served from memory.
// @Tags Storefront - Products
// @Param category query string false "Category"
// @Param subcategories query string false "Comma separated subcategories"
// @Success 204 "Prefetched"
// @Failure 400 {object} models.ApiResponse "Invalid filter parameters"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /nav/prefetch [get]
func PrefetchNav(c *gin.Context) {
	filters, err := services.ParseProductFilters(c.Request.URL.Query())
	if err != nil {
		controllers.RespondError(c, "prefetch", err, "Invalid filter parameters")
		return
	}
	if err := filterService.Prefetch(c.Request.Context(), filters); err != nil {
		controllers.RespondError(c, "prefetch", err, "Failed to prefetch products")
		return
	}
	c.Status(http.StatusNoContent)
}
