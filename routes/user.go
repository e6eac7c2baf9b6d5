package routes

import (
	"github.com/gin-gonic/gin"
	userControllers "github.com/nihalikakumari/ShopEZ-E-commerce-Application/controllers/user"
	"github.com/nihalikakumari/ShopEZ-E-commerce-Application/middleware"
	"gorm.io/gorm"
)

// SetupUserRoutes registers the "/users/*" endpoints. Registration is public;
// profile updates need a token; listing and deletion are admin-only.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	users := r.Group("/users")
	{
		users.POST("", userControllers.Register(db))
		users.PUT("/profile", middleware.ValidateToken, userControllers.UpdateProfile(db))
		users.GET("", middleware.ValidateToken, middleware.RequireAdmin(db), userControllers.GetAllUsers(db))
		users.DELETE("/:id", middleware.ValidateToken, middleware.RequireAdmin(db), userControllers.DeleteUser(db))
	}
}
