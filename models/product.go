package models

import (
	"time"

	"github.com/lib/pq"
)

type Product struct {
	ID            uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string         `gorm:"not null" json:"name"`
	Description   string         `json:"description"`
	Price         float64        `gorm:"not null" json:"price"`
	OriginalPrice float64        `json:"originalPrice"`
	Category      string         `gorm:"not null;index" json:"category"`
	Image         string         `json:"image"`
	Images        pq.StringArray `gorm:"type:text[]" json:"images"`
	CountInStock  int            `gorm:"not null;default:0" json:"countInStock"`
	Rating        float64        `gorm:"not null;default:0" json:"rating"`
	NumReviews    int            `gorm:"not null;default:0" json:"numReviews"`
	Reviews       []Review       `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"reviews,omitempty"`
	Sizes         pq.StringArray `gorm:"type:text[]" json:"sizes"`
	Colors        pq.StringArray `gorm:"type:text[]" json:"colors"`
	IsNew         bool           `gorm:"not null;default:false" json:"isNew"`
	IsSale        bool           `gorm:"not null;default:false" json:"isSale"`
	Featured      bool           `gorm:"not null;default:false" json:"featured"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

// Review is one customer rating on a product. One review per user per product;
// the product's Rating/NumReviews aggregates are recomputed on insert.
type Review struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID uint      `gorm:"not null;uniqueIndex:idx_reviews_product_user" json:"-"`
	UserID    string    `gorm:"not null;uniqueIndex:idx_reviews_product_user" json:"userId"`
	Name      string    `gorm:"not null" json:"name"`
	Rating    int       `gorm:"not null" json:"rating"`
	Comment   string    `gorm:"not null" json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}
