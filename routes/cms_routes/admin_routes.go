package cms_routes

import (
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/controllers/cms/activity_controller"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/controllers/cms/discount_controller"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/controllers/cms/order_controller"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/controllers/cms/product_controller"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/controllers/cms/review_controller"
	"github.com/gin-gonic/gin"
)

// The admin group passed in already carries the rate limiter, admin auth and
// activity logging middleware.

func SetupProductRoutes(admin *gin.RouterGroup) {
	product := admin.Group("/products")
	{
		product.GET("", product_controller.GetProducts)
		product.POST("/create", product_controller.CreateProduct)

		product.POST("/bulk/edit", product_controller.BulkEditProducts)
		product.POST("/bulk/delete", product_controller.BulkDeleteProducts)
		product.POST("/bulk/duplicate", product_controller.BulkDuplicateProducts)
		product.GET("/bulk/export", product_controller.ExportProducts)

		product.GET("/:id", product_controller.GetProductByID)
		product.PATCH("/:id", product_controller.UpdateProduct)
		product.DELETE("/:id", product_controller.DeleteProduct)
	}
}

func SetupOrderRoutes(admin *gin.RouterGroup) {
	order := admin.Group("/orders")
	{
		order.GET("", order_controller.GetOrders)
		order.GET("/:id", order_controller.GetOrderByID)
		order.PATCH("/:id/status", order_controller.UpdateOrderStatus)
		order.GET("/:id/invoice", order_controller.DownloadOrderInvoicePDF)
	}
}

func SetupDiscountRoutes(admin *gin.RouterGroup) {
	discount := admin.Group("/discounts")
	{
		discount.GET("", discount_controller.GetDiscounts)
		discount.POST("", discount_controller.CreateDiscount)
		discount.GET("/:id", discount_controller.GetDiscount)
		discount.PUT("/:id", discount_controller.UpdateDiscount)
		discount.DELETE("/:id", discount_controller.DeleteDiscount)
	}
}

func SetupReviewRoutes(admin *gin.RouterGroup) {
	review := admin.Group("/reviews")
	{
		review.GET("", review_controller.GetReviews)
		review.PATCH("/:id", review_controller.ModerateReview)
		review.DELETE("/:id", review_controller.DeleteReview)
	}
}

func SetupActivityRoutes(admin *gin.RouterGroup) {
	admin.GET("/activity", activity_controller.GetActivityLogs)
}
