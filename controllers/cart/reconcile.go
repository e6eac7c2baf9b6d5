package cartControllers

import "github.com/nihalikakumari/ShopEZ-E-commerce-Application/models"

// matchIndex finds the cart line holding the exact (product, size, color)
// variant triple, or -1 when no line matches. At most one line per triple
// exists in a cart, so the first match is the only match.
func matchIndex(items []models.CartItem, productID uint, size, color string) int {
	for i := range items {
		if items[i].Matches(productID, size, color) {
			return i
		}
	}
	return -1
}

// itemIndex finds the cart line with the given id, or -1.
func itemIndex(items []models.CartItem, itemID uint) int {
	for i := range items {
		if items[i].ID == itemID {
			return i
		}
	}
	return -1
}

// applyQuantity sets an absolute quantity on items[i], refusing a quantity
// the product's current stock cannot cover. The line is untouched on error.
func applyQuantity(items []models.CartItem, i, quantity, countInStock int) error {
	if countInStock < quantity {
		return models.ErrOutOfStock
	}
	items[i].Quantity = quantity
	return nil
}
