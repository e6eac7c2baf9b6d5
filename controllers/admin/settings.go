package adminControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nihalikakumari/ShopEZ-E-commerce-Application/models"
	"gorm.io/gorm"
)

type SettingsInput struct {
	SiteName     *string `json:"siteName"`
	Logo         *string `json:"logo"`
	ContactEmail *string `json:"contactEmail"`
	ContactPhone *string `json:"contactPhone"`
	Facebook     *string `json:"facebook"`
	Instagram    *string `json:"instagram"`
	Twitter      *string `json:"twitter"`
	Pinterest    *string `json:"pinterest"`
}

// getOrCreateSettings returns the singleton settings row, seeding defaults on
// first read.
func getOrCreateSettings(db *gorm.DB) (*models.Setting, error) {
	var settings models.Setting
	err := db.First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = models.Setting{SiteName: "ShopEZ", ContactEmail: "contact@shopez.com"}
		if err := db.Create(&settings).Error; err != nil {
			return nil, err
		}
		return &settings, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// GET /admin/settings
func GetSettings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		settings, err := getOrCreateSettings(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch settings"})
			return
		}
		c.JSON(http.StatusOK, settings)
	}
}

// PUT /admin/settings
// Partial update; omitted fields are left as they are.
func UpdateSettings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		settings, err := getOrCreateSettings(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch settings"})
			return
		}

		var input SettingsInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}

		if input.SiteName != nil {
			settings.SiteName = *input.SiteName
		}
		if input.Logo != nil {
			settings.Logo = *input.Logo
		}
		if input.ContactEmail != nil {
			settings.ContactEmail = *input.ContactEmail
		}
		if input.ContactPhone != nil {
			settings.ContactPhone = *input.ContactPhone
		}
		if input.Facebook != nil {
			settings.Facebook = *input.Facebook
		}
		if input.Instagram != nil {
			settings.Instagram = *input.Instagram
		}
		if input.Twitter != nil {
			settings.Twitter = *input.Twitter
		}
		if input.Pinterest != nil {
			settings.Pinterest = *input.Pinterest
		}

		if err := db.Save(settings).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update settings"})
			return
		}
		c.JSON(http.StatusOK, settings)
	}
}
