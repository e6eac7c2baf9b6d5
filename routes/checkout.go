package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/nihalikakumari/ShopEZ-E-commerce-Application/config"
	checkoutControllers "github.com/nihalikakumari/ShopEZ-E-commerce-Application/controllers/checkout"
	"github.com/nihalikakumari/ShopEZ-E-commerce-Application/events"
	"github.com/nihalikakumari/ShopEZ-E-commerce-Application/middleware"
	"gorm.io/gorm"
)

// SetupCheckoutRoutes registers the "/checkout/*" endpoints driving the
// shipping → payment → review → placed flow.
func SetupCheckoutRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, pub *events.Publisher) {
	checkout := r.Group("/checkout")
	checkout.Use(middleware.ValidateToken)
	{
		checkout.GET("", checkoutControllers.GetSession(db))
		checkout.POST("/shipping", checkoutControllers.SubmitShipping(db))
		checkout.POST("/payment", checkoutControllers.SubmitPayment(db))
		checkout.POST("/back", checkoutControllers.StepBack(db))
		checkout.POST("/place", checkoutControllers.PlaceOrder(db, cfg, pub))
	}
}
