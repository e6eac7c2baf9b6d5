package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nihalikakumari/ShopEZ-E-commerce-Application/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReviewInput struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"required"`
}

// CreateProductReview adds one review per user per product and recomputes the
// product's rating average and review count in the same transaction.
// POST /products/:id/reviews
func CreateProductReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, _ := c.Get("user_id")
		userID := userIDVal.(string)

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product ID"})
			return
		}

		var input ReviewInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			var product models.Product
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&product, id).Error; err != nil {
				return err
			}

			var existing models.Review
			err := tx.Where("product_id = ? AND user_id = ?", product.ID, userID).
				First(&existing).Error
			if err == nil {
				return models.ErrConflict
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}

			review := models.Review{
				ProductID: product.ID,
				UserID:    userID,
				Name:      user.Username,
				Rating:    input.Rating,
				Comment:   input.Comment,
			}
			if err := tx.Create(&review).Error; err != nil {
				return err
			}

			var aggregates struct {
				Count int64
				Avg   float64
			}
			if err := tx.Model(&models.Review{}).
				Where("product_id = ?", product.ID).
				Select("COUNT(*) AS count, COALESCE(AVG(rating), 0) AS avg").
				Scan(&aggregates).Error; err != nil {
				return err
			}

			product.NumReviews = int(aggregates.Count)
			product.Rating = aggregates.Avg
			return tx.Save(&product).Error
		})

		if err != nil {
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			case errors.Is(err, models.ErrConflict):
				c.JSON(http.StatusConflict, gin.H{"message": "Product already reviewed"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to add review"})
			}
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "Review added"})
	}
}
