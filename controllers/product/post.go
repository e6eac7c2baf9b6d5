package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/nihalikakumari/ShopEZ-E-commerce-Application/models"
	"gorm.io/gorm"
)

type ProductInput struct {
	Name          string   `json:"name" binding:"required"`
	Description   string   `json:"description"`
	Price         float64  `json:"price" binding:"required,gte=0"`
	OriginalPrice float64  `json:"originalPrice" binding:"gte=0"`
	Category      string   `json:"category" binding:"required"`
	Image         string   `json:"image"`
	Images        []string `json:"images"`
	CountInStock  int      `json:"countInStock" binding:"gte=0"`
	Sizes         []string `json:"sizes"`
	Colors        []string `json:"colors"`
	IsNew         bool     `json:"isNew"`
	IsSale        bool     `json:"isSale"`
	Featured      bool     `json:"featured"`
}

// categoryExists checks the category against the categories table so products
// cannot be filed under a name the storefront does not know.
func categoryExists(db *gorm.DB, name string) (bool, error) {
	var category models.Category
	err := db.Where("name = ?", name).First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return err == nil, err
}

// CreateProduct creates a new catalog product.
// POST /products (admin)
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}

		ok, err := categoryExists(db, input.Category)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to validate category"})
			return
		}
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Unknown category: " + input.Category})
			return
		}

		product := models.Product{
			Name:          input.Name,
			Description:   input.Description,
			Price:         input.Price,
			OriginalPrice: input.OriginalPrice,
			Category:      input.Category,
			Image:         input.Image,
			Images:        pq.StringArray(input.Images),
			CountInStock:  input.CountInStock,
			Sizes:         pq.StringArray(input.Sizes),
			Colors:        pq.StringArray(input.Colors),
			IsNew:         input.IsNew,
			IsSale:        input.IsSale,
			Featured:      input.Featured,
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}
