package models

import "time"

// Setting is the single-row site configuration record. GetOrCreate semantics
// live in the admin controller; the row is created with defaults on first read.
type Setting struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	SiteName     string    `gorm:"not null;default:'ShopEZ'" json:"siteName"`
	Logo         string    `json:"logo"`
	ContactEmail string    `json:"contactEmail"`
	ContactPhone string    `json:"contactPhone"`
	Facebook     string    `json:"facebook"`
	Instagram    string    `json:"instagram"`
	Twitter      string    `json:"twitter"`
	Pinterest    string    `json:"pinterest"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
