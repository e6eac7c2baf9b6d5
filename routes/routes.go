package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/nihalikakumari/ShopEZ-E-commerce-Application/config"
	"github.com/nihalikakumari/ShopEZ-E-commerce-Application/events"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry point that wires up every route group.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, pub *events.Publisher) {
	SetupAuthRoutes(r, db)
	SetupUserRoutes(r, db)
	SetupProductRoutes(r, db)
	SetupCartRoutes(r, db, cfg)
	SetupCheckoutRoutes(r, db, cfg, pub)
	SetupOrderRoutes(r, db, cfg, pub)
	SetupAdminRoutes(r, db)
}
