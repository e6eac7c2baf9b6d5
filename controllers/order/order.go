package orderControllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nihalikakumari/ShopEZ-E-commerce-Application/config"
	"github.com/nihalikakumari/ShopEZ-E-commerce-Application/events"
	"github.com/nihalikakumari/ShopEZ-E-commerce-Application/models"
	"github.com/nihalikakumari/ShopEZ-E-commerce-Application/pricing"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// -------- Request Structs --------

type OrderItemInput struct {
	ProductID uint    `json:"productId" binding:"required"`
	Name      string  `json:"name"`
	Image     string  `json:"image"`
	Price     float64 `json:"price" binding:"gte=0"`
	Quantity  int     `json:"quantity" binding:"required,min=1"`
	Size      string  `json:"size"`
	Color     string  `json:"color"`
}

type CreateOrderRequest struct {
	OrderItems      []OrderItemInput `json:"orderItems" binding:"required"`
	ShippingAddress models.Address   `json:"shippingAddress" binding:"required"`
	PaymentMethod   string           `json:"paymentMethod" binding:"required"`
	// Client-computed prices are accepted for wire compatibility but the
	// breakdown is always recomputed server-side.
	ItemsPrice    float64 `json:"itemsPrice"`
	TaxPrice      float64 `json:"taxPrice"`
	ShippingPrice float64 `json:"shippingPrice"`
	TotalPrice    float64 `json:"totalPrice"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// -------- Core Logic --------

// CreateOrder turns a set of item snapshots into an immutable order. Inside
// one transaction it locks each product row, verifies and decrements stock,
// recomputes the price breakdown, and inserts the order. Item prices are the
// captured snapshots, not the live product prices.
func CreateOrder(db *gorm.DB, cfg *config.Config, userID string, items []models.OrderItem, addr models.Address, paymentMethod string) (*models.Order, error) {
	if len(items) == 0 {
		return nil, models.ErrEmptyCart
	}
	if !addr.Complete() {
		return nil, fmt.Errorf("%w: all shipping address fields are required", models.ErrValidation)
	}
	if paymentMethod == "" {
		return nil, fmt.Errorf("%w: a payment method is required", models.ErrValidation)
	}

	var order models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		for _, item := range items {
			var product models.Product
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&product, item.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("product %d %w", item.ProductID, models.ErrNotFound)
				}
				return err
			}
			if product.CountInStock < item.Quantity {
				return fmt.Errorf("%w for product: %s", models.ErrOutOfStock, product.Name)
			}

			// Deduct stock while the row is locked
			product.CountInStock -= item.Quantity
			if err := tx.Save(&product).Error; err != nil {
				return err
			}
		}

		totals := pricing.ComputeTotals(
			pricing.FromOrderItems(items),
			cfg.TaxRate, cfg.FreeShippingThreshold, cfg.FlatShippingFee,
		).Rounded()

		order = models.Order{
			UserID:          userID,
			OrderItems:      items,
			ShippingAddress: addr,
			PaymentMethod:   paymentMethod,
			ItemsPrice:      totals.Subtotal,
			TaxPrice:        totals.Tax,
			ShippingPrice:   totals.Shipping,
			TotalPrice:      totals.Total,
			Status:          models.OrderStatusPending,
		}
		return tx.Create(&order).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// -------- Handlers --------

// POST /orders
func CreateOrderHandler(db *gorm.DB, cfg *config.Config, pub *events.Publisher) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, _ := c.Get("user_id")
		userID := userIDVal.(string)

		var req CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}

		items := make([]models.OrderItem, 0, len(req.OrderItems))
		for _, in := range req.OrderItems {
			items = append(items, models.OrderItem{
				ProductID: in.ProductID,
				Name:      in.Name,
				Image:     in.Image,
				Price:     in.Price,
				Quantity:  in.Quantity,
				Size:      in.Size,
				Color:     in.Color,
			})
		}

		order, err := CreateOrder(db, cfg, userID, items, req.ShippingAddress, req.PaymentMethod)
		if err != nil {
			respondOrderError(c, err)
			return
		}

		if err := pub.PublishOrderPlaced(*order); err != nil {
			// The order is already committed; fulfillment can re-sync later
			log.Printf("Failed to publish order %d: %v", order.ID, err)
		}

		c.JSON(http.StatusCreated, order)
	}
}

// GET /orders/myorders
func GetMyOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, _ := c.Get("user_id")

		var orders []models.Order
		if err := db.
			Where("user_id = ?", userIDVal).
			Preload("OrderItems").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /orders (admin)
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("OrderItems").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /orders/:id (owner or admin)
func GetOrderByIDHandler(db *gorm.DB) gin.HandlerFunc {
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

		c.JSON(http.StatusOK, order)
	}
}

// -------- Helpers --------

func loadOrder(c *gin.Context, db *gorm.DB) (*models.Order, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order ID"})
		return nil, false
	}

	var order models.Order
	if err := db.Preload("OrderItems").First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch order"})
		}
		return nil, false
	}
	return &order, true
}

func isAdmin(db *gorm.DB, userID string) bool {
	var user models.User
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		return false
	}
	return user.IsAdmin
}

func respondOrderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, gin.H{"message": "No order items"})
	case errors.Is(err, models.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.Is(err, models.ErrOutOfStock):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create order"})
	}
}
