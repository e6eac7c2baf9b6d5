package checkoutControllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nihalikakumari/ShopEZ-E-commerce-Application/config"
	cartControllers "github.com/nihalikakumari/ShopEZ-E-commerce-Application/controllers/cart"
	orderControllers "github.com/nihalikakumari/ShopEZ-E-commerce-Application/controllers/order"
	"github.com/nihalikakumari/ShopEZ-E-commerce-Application/events"
	"github.com/nihalikakumari/ShopEZ-E-commerce-Application/models"
	"gorm.io/gorm"
)

type ShippingInput struct {
	ShippingAddress models.Address `json:"shippingAddress" binding:"required"`
}

type PaymentInput struct {
	PaymentMethod string `json:"paymentMethod" binding:"required"`
}

// getOrCreateSession fetches the user's checkout session, starting a fresh one
// at the shipping step on first use.
func getOrCreateSession(db *gorm.DB, userID string) (*models.CheckoutSession, error) {
	var session models.CheckoutSession
	err := db.Where("user_id = ?", userID).First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		session = models.CheckoutSession{UserID: userID, Step: models.StepShippingEntry}
		if err := db.Create(&session).Error; err != nil {
			return nil, err
		}
		return &session, nil
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// GET /checkout
func GetSession(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, _ := c.Get("user_id")

		session, err := getOrCreateSession(db, userIDVal.(string))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch checkout session"})
			return
		}
		c.JSON(http.StatusOK, session)
	}
}

// POST /checkout/shipping
func SubmitShipping(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, _ := c.Get("user_id")

		var input ShippingInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}

		session, err := getOrCreateSession(db, userIDVal.(string))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch checkout session"})
			return
		}

		if err := session.SubmitShipping(input.ShippingAddress); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		if err := db.Save(session).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to save checkout session"})
			return
		}
		c.JSON(http.StatusOK, session)
	}
}

// POST /checkout/payment
func SubmitPayment(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, _ := c.Get("user_id")

		var input PaymentInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}

		session, err := getOrCreateSession(db, userIDVal.(string))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch checkout session"})
			return
		}

		if err := session.SubmitPayment(input.PaymentMethod); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		if err := db.Save(session).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to save checkout session"})
			return
		}
		c.JSON(http.StatusOK, session)
	}
}

// POST /checkout/back
func StepBack(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, _ := c.Get("user_id")

		session, err := getOrCreateSession(db, userIDVal.(string))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch checkout session"})
			return
		}

		if err := session.Back(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		if err := db.Save(session).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to save checkout session"})
			return
		}
		c.JSON(http.StatusOK, session)
	}
}

// POST /checkout/place
// Creates the order from the live cart, clears the cart, and resets the
// session for the next purchase. On any failure the persisted session stays
// at the review step.
func PlaceOrder(db *gorm.DB, cfg *config.Config, pub *events.Publisher) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, _ := c.Get("user_id")
		userID := userIDVal.(string)

		session, err := getOrCreateSession(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch checkout session"})
			return
		}
		if err := session.Place(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		cart, err := cartControllers.GetOrCreateCart(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch cart"})
			return
		}

		items := make([]models.OrderItem, 0, len(cart.Items))
		for _, item := range cart.Items {
			items = append(items, models.OrderItem{
				ProductID: item.ProductID,
				Name:      item.Name,
				Image:     item.Image,
				Price:     item.Price,
				Quantity:  item.Quantity,
				Size:      item.Size,
				Color:     item.Color,
			})
		}

		order, err := orderControllers.CreateOrder(db, cfg, userID, items, session.ShippingAddress, session.PaymentMethod)
		if err != nil {
			if errors.Is(err, models.ErrEmptyCart) {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Cannot place an order with an empty cart"})
				return
			}
			if errors.Is(err, models.ErrOutOfStock) {
				c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to place order"})
			return
		}

		// Checkout completed: empty the cart and start a fresh session
		if err := db.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error; err != nil {
			log.Printf("Failed to clear cart %d after order %d: %v", cart.CartID, order.ID, err)
		}
		session.Reset()
		if err := db.Save(session).Error; err != nil {
			log.Printf("Failed to reset checkout session for user %s: %v", userID, err)
		}

		if err := pub.PublishOrderPlaced(*order); err != nil {
			log.Printf("Failed to publish order %d: %v", order.ID, err)
		}

		c.JSON(http.StatusCreated, gin.H{"order": order, "step": models.StepPlaced})
	}
}
