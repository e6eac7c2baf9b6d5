package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/nihalikakumari/ShopEZ-E-commerce-Application/config"
	cartControllers "github.com/nihalikakumari/ShopEZ-E-commerce-Application/controllers/cart"
	"github.com/nihalikakumari/ShopEZ-E-commerce-Application/middleware"
	"gorm.io/gorm"
)

// SetupCartRoutes registers the "/cart/*" endpoints. All of them operate on
// the authenticated user's own cart.
func SetupCartRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	cart := r.Group("/cart")
	cart.Use(middleware.ValidateToken)
	{
		cart.GET("", cartControllers.GetCart(db, cfg))
		cart.POST("", cartControllers.AddCartItem(db, cfg))
		cart.PUT("/:itemId", cartControllers.UpdateCartItem(db, cfg))
		cart.DELETE("/:itemId", cartControllers.DeleteCartItem(db, cfg))
		cart.DELETE("", cartControllers.ClearCart(db))
	}
}
