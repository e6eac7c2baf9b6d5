package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/nihalikakumari/ShopEZ-E-commerce-Application/models"
	"gorm.io/gorm"
)

type ProductUpdateInput struct {
	Name          *string   `json:"name"`
	Description   *string   `json:"description"`
	Price         *float64  `json:"price" binding:"omitempty,gte=0"`
	OriginalPrice *float64  `json:"originalPrice" binding:"omitempty,gte=0"`
	Category      *string   `json:"category"`
	Image         *string   `json:"image"`
	Images        *[]string `json:"images"`
	CountInStock  *int      `json:"countInStock" binding:"omitempty,gte=0"`
	Sizes         *[]string `json:"sizes"`
	Colors        *[]string `json:"colors"`
	IsNew         *bool     `json:"isNew"`
	IsSale        *bool     `json:"isSale"`
	Featured      *bool     `json:"featured"`
}

// UpdateProduct applies a partial update to a product; omitted fields keep
// their current values.
// PUT /products/:id (admin)
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve product"})
			}
			return
		}

		var input ProductUpdateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}

		if input.Category != nil {
			ok, err := categoryExists(db, *input.Category)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to validate category"})
				return
			}
			if !ok {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Unknown category: " + *input.Category})
				return
			}
			product.Category = *input.Category
		}
		if input.Name != nil {
			product.Name = *input.Name
		}
		if input.Description != nil {
			product.Description = *input.Description
		}
		if input.Price != nil {
			product.Price = *input.Price
		}
		if input.OriginalPrice != nil {
			product.OriginalPrice = *input.OriginalPrice
		}
		if input.Image != nil {
			product.Image = *input.Image
		}
		if input.Images != nil {
			product.Images = pq.StringArray(*input.Images)
		}
		if input.CountInStock != nil {
			product.CountInStock = *input.CountInStock
		}
		if input.Sizes != nil {
			product.Sizes = pq.StringArray(*input.Sizes)
		}
		if input.Colors != nil {
			product.Colors = pq.StringArray(*input.Colors)
		}
		if input.IsNew != nil {
			product.IsNew = *input.IsNew
		}
		if input.IsSale != nil {
			product.IsSale = *input.IsSale
		}
		if input.Featured != nil {
			product.Featured = *input.Featured
		}

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update product"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}
