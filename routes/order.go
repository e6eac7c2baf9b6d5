package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/nihalikakumari/ShopEZ-E-commerce-Application/config"
	orderControllers "github.com/nihalikakumari/ShopEZ-E-commerce-Application/controllers/order"
	"github.com/nihalikakumari/ShopEZ-E-commerce-Application/events"
	"github.com/nihalikakumari/ShopEZ-E-commerce-Application/middleware"
	"gorm.io/gorm"
)

// SetupOrderRoutes registers the "/orders/*" endpoints.
func SetupOrderRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, pub *events.Publisher) {
	orders := r.Group("/orders")
	orders.Use(middleware.ValidateToken)
	{
		orders.POST("", orderControllers.CreateOrderHandler(db, cfg, pub))
		orders.GET("/myorders", orderControllers.GetMyOrdersHandler(db))
		orders.GET("/:id", orderControllers.GetOrderByIDHandler(db))
		orders.PUT("/:id/pay", orderControllers.MarkPaidHandler(db))

		admin := orders.Group("", middleware.RequireAdmin(db))
		{
			admin.GET("", orderControllers.GetAllOrdersHandler(db))
			admin.PUT("/:id/deliver", orderControllers.MarkDeliveredHandler(db))
			admin.PUT("/:id/status", orderControllers.UpdateOrderStatusHandler(db))
		}
	}
}
