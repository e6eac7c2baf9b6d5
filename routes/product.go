package routes

import (
	"github.com/gin-gonic/gin"
	productcontroller "github.com/nihalikakumari/ShopEZ-E-commerce-Application/controllers/product"
	"github.com/nihalikakumari/ShopEZ-E-commerce-Application/middleware"
	"gorm.io/gorm"
)

// SetupProductRoutes registers the "/products/*" endpoints. Browsing is
// public; reviews need a token; catalog management is admin-only.
func SetupProductRoutes(r *gin.Engine, db *gorm.DB) {
	products := r.Group("/products")
	{
		products.GET("", productcontroller.GetProducts(db))
		products.GET("/top", productcontroller.GetTopProducts(db))
		products.GET("/:id", productcontroller.GetProductByID(db))

		products.POST("/:id/reviews", middleware.ValidateToken, productcontroller.CreateProductReview(db))

		admin := products.Group("", middleware.ValidateToken, middleware.RequireAdmin(db))
		{
			admin.POST("", productcontroller.CreateProduct(db))
			admin.PUT("/:id", productcontroller.UpdateProduct(db))
			admin.DELETE("/:id", productcontroller.DeleteProduct(db))
			admin.GET("/export", productcontroller.ExportProducts(db))
		}
	}
}
