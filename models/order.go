package models

import (
	"fmt"
	"strings"
	"time"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "Pending"    // Order placed, awaiting fulfillment
	OrderStatusProcessing OrderStatus = "Processing" // Payment received, being prepared
	OrderStatusShipped    OrderStatus = "Shipped"    // Out for delivery
	OrderStatusDelivered  OrderStatus = "Delivered"  // Customer received the items
	OrderStatusCancelled  OrderStatus = "Cancelled"  // Cancelled before delivery
)

// ParseOrderStatus maps a request string to an OrderStatus, case-insensitively.
func ParseOrderStatus(s string) (OrderStatus, error) {
	for _, status := range []OrderStatus{
		OrderStatusPending,
		OrderStatusProcessing,
		OrderStatusShipped,
		OrderStatusDelivered,
		OrderStatusCancelled,
	} {
		if strings.EqualFold(s, string(status)) {
			return status, nil
		}
	}
	return "", fmt.Errorf("%w: unknown order status %q", ErrValidation, s)
}

// rank orders the forward fulfillment sequence. Cancelled and Delivered are
// terminal and sit outside the sequence.
var statusRank = map[OrderStatus]int{
	OrderStatusPending:    0,
	OrderStatusProcessing: 1,
	OrderStatusShipped:    2,
	OrderStatusDelivered:  3,
}

// CanTransition reports whether an administrative status change is legal:
// forward along Pending → Processing → Shipped → Delivered, or to Cancelled
// from any non-terminal state. Terminal states accept no further changes.
func (s OrderStatus) CanTransition(to OrderStatus) bool {
	if s == OrderStatusDelivered || s == OrderStatusCancelled {
		return false
	}
	if to == OrderStatusCancelled {
		return true
	}
	from, ok := statusRank[s]
	if !ok {
		return false
	}
	next, ok := statusRank[to]
	if !ok {
		return false
	}
	return next > from
}

type Order struct {
	ID              uint        `gorm:"primaryKey" json:"id"`
	UserID          string      `gorm:"not null;index" json:"userId"`
	User            User        `gorm:"foreignKey:UserID" json:"-"`
	OrderItems      []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"orderItems"`
	ShippingAddress Address     `gorm:"embedded;embeddedPrefix:shipping_" json:"shippingAddress"`
	PaymentMethod   string      `gorm:"not null" json:"paymentMethod"`
	ItemsPrice      float64     `json:"itemsPrice"`
	TaxPrice        float64     `json:"taxPrice"`
	ShippingPrice   float64     `json:"shippingPrice"`
	TotalPrice      float64     `json:"totalPrice"`
	IsPaid          bool        `gorm:"not null;default:false" json:"isPaid"`
	PaidAt          *time.Time  `json:"paidAt,omitempty"`
	IsDelivered     bool        `gorm:"not null;default:false" json:"isDelivered"`
	DeliveredAt     *time.Time  `json:"deliveredAt,omitempty"`
	Status          OrderStatus `gorm:"type:VARCHAR(20);default:'Pending'" json:"status"`
	CreatedAt       time.Time   `json:"createdAt"`
}

// OrderItem is an immutable copy of a cart line taken at checkout. It keeps
// the snapshot fields rather than a live product join so past orders display
// what was actually bought, at the price it was bought for.
type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	OrderID   uint    `gorm:"index" json:"-"`
	ProductID uint    `json:"productId"`
	Name      string  `gorm:"not null" json:"name"`
	Image     string  `json:"image"`
	Price     float64 `gorm:"not null" json:"price"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	Size      string  `json:"size"`
	Color     string  `json:"color"`
}
