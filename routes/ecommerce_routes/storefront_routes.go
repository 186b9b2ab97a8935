package ecommerce_routes

import (
	store_order "github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/controllers/ecommerce/order_controller"
	store_product "github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/controllers/ecommerce/product_controller"
	store_search "github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/controllers/ecommerce/search_controller"
	"github.com/gin-gonic/gin"
)

// SetupStorefrontRoutes registers the public catalog routes. Routes that need
// a signed-in shopper use auth.
func SetupStorefrontRoutes(router *gin.RouterGroup, auth gin.HandlerFunc) {
	products := router.Group("/products")
	{
		products.GET("/filter", store_product.FilterProducts)
		products.GET("/:slug", store_product.GetProductBySlug)
		products.GET("/:slug/reviews", store_product.GetProductReviews)
		products.POST("/:slug/reviews", auth, store_product.CreateProductReview)
	}

	router.GET("/nav/prefetch", store_product.PrefetchNav)
	router.GET("/search/suggest", store_search.Suggest)
}

func SetupOrderRoutes(router *gin.RouterGroup, auth gin.HandlerFunc) {
	orders := router.Group("/orders")

	// public, the email acts as the secret
	orders.GET("/track", store_order.TrackOrder)

	mine := orders.Group("")
	mine.Use(auth)
	{
		mine.POST("", store_order.CreateOrder)
		mine.GET("", store_order.GetMyOrders)
		mine.GET("/:id", store_order.GetMyOrder)
	}
}

