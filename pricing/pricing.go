// Package pricing computes the order price breakdown from captured line-item
// snapshots. The same rule serves the cart preview and the checkout flow:
// shipping is free only when the subtotal is strictly greater than the
// threshold, so a subtotal of exactly the threshold still pays the flat fee,
// and an empty cart is priced at the flat fee.
package pricing

import (
	"math"

	"github.com/nihalikakumari/ShopEZ-E-commerce-Application/models"
)

// Line is one priced line: the snapshot price times the quantity.
type Line struct {
	Price    float64
	Quantity int
}

type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Shipping float64 `json:"shipping"`
	Total    float64 `json:"total"`
}

// ComputeTotals prices a set of lines at full float precision. Rounding to
// cents happens only at presentation time, via Rounded.
func ComputeTotals(lines []Line, taxRate, freeShippingThreshold, flatShippingFee float64) Totals {
	var subtotal float64
	for _, line := range lines {
		subtotal += line.Price * float64(line.Quantity)
	}

	shipping := flatShippingFee
	if subtotal > freeShippingThreshold {
		shipping = 0
	}
	tax := subtotal * taxRate

	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Shipping: shipping,
		Total:    subtotal + tax + shipping,
	}
}

// Rounded returns a copy with every amount rounded to 2 decimal places.
func (t Totals) Rounded() Totals {
	return Totals{
		Subtotal: round2(t.Subtotal),
		Tax:      round2(t.Tax),
		Shipping: round2(t.Shipping),
		Total:    round2(t.Total),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func FromCartItems(items []models.CartItem) []Line {
	lines := make([]Line, 0, len(items))
	for _, item := range items {
		lines = append(lines, Line{Price: item.Price, Quantity: item.Quantity})
	}
	return lines
}

func FromOrderItems(items []models.OrderItem) []Line {
	lines := make([]Line, 0, len(items))
	for _, item := range items {
		lines = append(lines, Line{Price: item.Price, Quantity: item.Quantity})
	}
	return lines
}
