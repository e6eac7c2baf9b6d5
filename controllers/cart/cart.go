package cartControllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nihalikakumari/ShopEZ-E-commerce-Application/config"
	"github.com/nihalikakumari/ShopEZ-E-commerce-Application/models"
	"github.com/nihalikakumari/ShopEZ-E-commerce-Application/pricing"
	"gorm.io/gorm"
)

type AddItemInput struct {
	ProductID uint   `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

type UpdateItemInput struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// GetOrCreateCart fetches the user's cart with its items, creating an empty
// one on first use. Carts are never deleted, only emptied.
func GetOrCreateCart(db *gorm.DB, userID string) (*models.Cart, error) {
	var cart models.Cart
	err := db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cart = models.Cart{UserID: userID}
		if err := db.Create(&cart).Error; err != nil {
			return nil, err
		}
		return &cart, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// AddItem reconciles a requested (product, size, color) line into the cart:
// an existing line with the exact variant triple has its quantity incremented,
// otherwise a new line is appended with a price snapshot taken from the
// product's current price.
func AddItem(db *gorm.DB, userID string, input AddItemInput) (*models.Cart, error) {
	var product models.Product
	if err := db.First(&product, input.ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product %w", models.ErrNotFound)
		}
		return nil, err
	}
	if product.CountInStock < input.Quantity {
		return nil, models.ErrOutOfStock
	}

	cart, err := GetOrCreateCart(db, userID)
	if err != nil {
		return nil, err
	}

	if i := matchIndex(cart.Items, input.ProductID, input.Size, input.Color); i >= 0 {
		cart.Items[i].Quantity += input.Quantity
		if err := db.Save(&cart.Items[i]).Error; err != nil {
			return nil, err
		}
		return cart, nil
	}

	item := models.CartItem{
		CartID:    cart.CartID,
		ProductID: product.ID,
		Name:      product.Name,
		Image:     product.Image,
		Price:     product.Price,
		Quantity:  input.Quantity,
		Size:      input.Size,
		Color:     input.Color,
		AddedAt:   time.Now(),
	}
	if err := db.Create(&item).Error; err != nil {
		return nil, err
	}
	cart.Items = append(cart.Items, item)
	return cart, nil
}

// UpdateItemQuantity sets an absolute quantity on an existing line, bounded by
// the product's current stock. The cart is left untouched on failure.
func UpdateItemQuantity(db *gorm.DB, userID string, itemID uint, quantity int) (*models.Cart, error) {
	cart, err := GetOrCreateCart(db, userID)
	if err != nil {
		return nil, err
	}

	i := itemIndex(cart.Items, itemID)
	if i < 0 {
		return nil, fmt.Errorf("cart item %w", models.ErrNotFound)
	}

	var product models.Product
	if err := db.First(&product, cart.Items[i].ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product %w", models.ErrNotFound)
		}
		return nil, err
	}
	if err := applyQuantity(cart.Items, i, quantity, product.CountInStock); err != nil {
		return nil, err
	}

	if err := db.Save(&cart.Items[i]).Error; err != nil {
		return nil, err
	}
	return cart, nil
}

func cartResponse(cart *models.Cart, cfg *config.Config) gin.H {
	totals := pricing.ComputeTotals(
		pricing.FromCartItems(cart.Items),
		cfg.TaxRate, cfg.FreeShippingThreshold, cfg.FlatShippingFee,
	)
	return gin.H{"cart": cart, "totals": totals.Rounded()}
}

// GET /cart
func GetCart(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, _ := c.Get("user_id")

		cart, err := GetOrCreateCart(db, userIDVal.(string))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch cart"})
			return
		}

		c.JSON(http.StatusOK, cartResponse(cart, cfg))
	}
}

// POST /cart
func AddCartItem(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, _ := c.Get("user_id")

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}

		cart, err := AddItem(db, userIDVal.(string), input)
		if err != nil {
			respondCartError(c, err, "Failed to add item to cart")
			return
		}

		c.JSON(http.StatusCreated, cartResponse(cart, cfg))
	}
}

// PUT /cart/:itemId
func UpdateCartItem(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, _ := c.Get("user_id")

		itemID, ok := parseItemID(c)
		if !ok {
			return
		}

		var input UpdateItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}

		cart, err := UpdateItemQuantity(db, userIDVal.(string), itemID, input.Quantity)
		if err != nil {
			respondCartError(c, err, "Failed to update cart item")
			return
		}

		c.JSON(http.StatusOK, cartResponse(cart, cfg))
	}
}

// DELETE /cart/:itemId
func DeleteCartItem(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, _ := c.Get("user_id")

		itemID, ok := parseItemID(c)
		if !ok {
			return
		}

		cart, err := GetOrCreateCart(db, userIDVal.(string))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch cart"})
			return
		}

		result := db.Where("cart_id = ? AND id = ?", cart.CartID, itemID).
			Delete(&models.CartItem{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete item"})
			return
		}
		// Removing an id that is not in the cart is a NotFound, not a no-op
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "Cart item not found"})
			return
		}

		kept := cart.Items[:0]
		for _, item := range cart.Items {
			if item.ID != itemID {
				kept = append(kept, item)
			}
		}
		cart.Items = kept

		c.JSON(http.StatusOK, cartResponse(cart, cfg))
	}
}

// DELETE /cart
func ClearCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, _ := c.Get("user_id")

		cart, err := GetOrCreateCart(db, userIDVal.(string))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch cart"})
			return
		}

		if err := db.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to clear cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

func parseItemID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("itemId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid cart item ID"})
		return 0, false
	}
	return uint(id), true
}

func respondCartError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	case errors.Is(err, models.ErrOutOfStock):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": fallback})
	}
}
