package orderControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nihalikakumari/ShopEZ-E-commerce-Application/models"
	"gorm.io/gorm"
)

// PUT /orders/:id/pay
// Payment confirmation by the order's owner. Marks the order paid and, when
// it is still Pending, moves it to Processing.
func MarkPaidHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, _ := c.Get("user_id")

		order, ok := loadOrder(c, db)
		if !ok {
			return
		}
		if order.UserID != userIDVal.(string) && !isAdmin(db, userIDVal.(string)) {
			c.JSON(http.StatusForbidden, gin.H{"message": "Not your order"})
			return
		}
		if order.Status == models.OrderStatusCancelled {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Order is cancelled"})
			return
		}

		now := time.Now()
		order.IsPaid = true
		order.PaidAt = &now
		if order.Status == models.OrderStatusPending {
			order.Status = models.OrderStatusProcessing
		}

		if err := db.Save(order).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update order"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// PUT /orders/:id/deliver (admin)
// Delivery confirmation. Sets the Delivered status alongside the flag and
// timestamp.
func MarkDeliveredHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, ok := loadOrder(c, db)
		if !ok {
			return
		}
		if order.Status == models.OrderStatusCancelled {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Order is cancelled"})
			return
		}

		now := time.Now()
		order.IsDelivered = true
		order.DeliveredAt = &now
		order.Status = models.OrderStatusDelivered

		if err := db.Save(order).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update order"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// PUT /orders/:id/status (admin)
// Explicit status change, validated against the fulfillment lifecycle.
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}

		newStatus, err := models.ParseOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		order, ok := loadOrder(c, db)
		if !ok {
			return
		}

		if !order.Status.CanTransition(newStatus) {
			c.JSON(http.StatusBadRequest, gin.H{
				"message": "Cannot change status from " + string(order.Status) + " to " + string(newStatus),
			})
			return
		}

		order.Status = newStatus
		if newStatus == models.OrderStatusDelivered {
			now := time.Now()
			order.IsDelivered = true
			order.DeliveredAt = &now
		}

		if err := db.Save(order).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update order status"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}
