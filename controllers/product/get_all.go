package productcontroller

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/nihalikakumari/ShopEZ-E-commerce-Application/models"
	"gorm.io/gorm"
)

const pageSize = 12

// GetProducts lists the catalog with keyword, category, price-range and flag
// filters, paginated 12 per page.
// GET /products?keyword=&pageNumber=&category=&price=min-max&featured=&new=&sale=
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		page := 1
		if p, err := strconv.Atoi(c.Query("pageNumber")); err == nil && p > 0 {
			page = p
		}

		query := db.Model(&models.Product{})

		if keyword := c.Query("keyword"); keyword != "" {
			query = query.Where("name ILIKE ?", "%"+keyword+"%")
		}
		if category := c.Query("category"); category != "" {
			query = query.Where("category = ?", category)
		}
		if priceRange := c.Query("price"); priceRange != "" {
			bounds := strings.SplitN(priceRange, "-", 2)
			if len(bounds) != 2 {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid price range, expected min-max"})
				return
			}
			min, errMin := strconv.ParseFloat(bounds[0], 64)
			max, errMax := strconv.ParseFloat(bounds[1], 64)
			if errMin != nil || errMax != nil {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid price range, expected min-max"})
				return
			}
			query = query.Where("price >= ? AND price <= ?", min, max)
		}
		if c.Query("featured") == "true" {
			query = query.Where("featured = ?", true)
		}
		if c.Query("new") == "true" {
			query = query.Where("is_new = ?", true)
		}
		if c.Query("sale") == "true" {
			query = query.Where("is_sale = ?", true)
		}

		var count int64
		if err := query.Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to count products"})
			return
		}

		var products []models.Product
		if err := query.
			Limit(pageSize).
			Offset(pageSize * (page - 1)).
			Order("created_at DESC").
			Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch products"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"products": products,
			"page":     page,
			"pages":    int(math.Ceil(float64(count) / float64(pageSize))),
			"count":    count,
		})
	}
}

// GetTopProducts returns the five highest-rated products.
// GET /products/top
func GetTopProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Order("rating DESC").Limit(5).Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}
