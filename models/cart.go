package models

import "time"

type Cart struct {
	CartID    uint       `gorm:"primaryKey" json:"id"`
	UserID    string     `gorm:"uniqueIndex" json:"userId"` // Enforces ONE cart per user
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"cartItems"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// CartItem is one cart line. Name, Image and Price are snapshots captured when
// the item was added; the live product record is only consulted for stock.
// Size and Color identify the chosen variant, with the empty string meaning
// "no variant" and matching only itself.
type CartItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CartID    uint      `gorm:"index" json:"-"`
	ProductID uint      `gorm:"not null" json:"productId"`
	Name      string    `gorm:"not null" json:"name"`
	Image     string    `json:"image"`
	Price     float64   `gorm:"not null" json:"price"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	Size      string    `json:"size"`
	Color     string    `json:"color"`
	AddedAt   time.Time `json:"addedAt"`
}

// Matches reports whether the line holds the same (product, size, color)
// variant triple. Absent size/color compare as distinct values, not wildcards.
func (ci CartItem) Matches(productID uint, size, color string) bool {
	return ci.ProductID == productID && ci.Size == size && ci.Color == color
}
