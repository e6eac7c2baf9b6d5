package routes

import (
	"github.com/gin-gonic/gin"
	adminControllers "github.com/nihalikakumari/ShopEZ-E-commerce-Application/controllers/admin"
	"github.com/nihalikakumari/ShopEZ-E-commerce-Application/middleware"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers the "/admin/*" endpoints: categories, banners
// and site settings. Reads of categories and banners are public so the
// storefront can render navigation and hero sections; everything else
// requires the admin role.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	{
		adminGroup.GET("/categories", adminControllers.GetCategories(db))
		adminGroup.GET("/banners", adminControllers.GetBanners(db))

		protected := adminGroup.Group("", middleware.ValidateToken, middleware.RequireAdmin(db))
		{
			protected.POST("/categories", adminControllers.CreateCategory(db))
			protected.PUT("/categories/:id", adminControllers.UpdateCategory(db))
			protected.DELETE("/categories/:id", adminControllers.DeleteCategory(db))

			protected.POST("/banners", adminControllers.CreateBanner(db))
			protected.PUT("/banners/:id", adminControllers.UpdateBanner(db))
			protected.DELETE("/banners/:id", adminControllers.DeleteBanner(db))

			protected.GET("/settings", adminControllers.GetSettings(db))
			protected.PUT("/settings", adminControllers.UpdateSettings(db))
		}
	}
}
