package routes

import (
	"github.com/gin-gonic/gin"
	authControllers "github.com/nihalikakumari/ShopEZ-E-commerce-Application/controllers/auth"
	"github.com/nihalikakumari/ShopEZ-E-commerce-Application/middleware"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers the "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", authControllers.Login(db))
		authGroup.GET("/profile", middleware.ValidateToken, authControllers.GetProfile(db))
	}
}
