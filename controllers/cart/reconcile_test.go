package cartControllers

import (
	"testing"

	"github.com/nihalikakumari/ShopEZ-E-commerce-Application/models"
	"github.com/stretchr/testify/assert"
)

// applyAdd mirrors the reconciliation AddItem performs: increment the
// matching line or append a new one with the given price snapshot.
func applyAdd(items []models.CartItem, productID uint, qty int, size, color string, price float64) []models.CartItem {
	if i := matchIndex(items, productID, size, color); i >= 0 {
		items[i].Quantity += qty
		return items
	}
	return append(items, models.CartItem{
		ProductID: productID,
		Price:     price,
		Quantity:  qty,
		Size:      size,
		Color:     color,
	})
}

func TestDuplicateVariantIncrementsExistingLine(t *testing.T) {
	items := applyAdd(nil, 1, 2, "M", "red", 19.99)
	items = applyAdd(items, 1, 3, "M", "red", 24.99)

	assert.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
	// The original price snapshot is kept; the second add does not reprice
	assert.Equal(t, 19.99, items[0].Price)
}

func TestDifferentVariantsGetSeparateLines(t *testing.T) {
	items := applyAdd(nil, 1, 1, "M", "red", 10)
	items = applyAdd(items, 1, 1, "L", "red", 10)
	items = applyAdd(items, 1, 1, "M", "blue", 10)
	items = applyAdd(items, 2, 1, "M", "red", 10)

	assert.Len(t, items, 4)
	for _, item := range items {
		assert.Equal(t, 1, item.Quantity)
	}
}

func TestAbsentVariantIsDistinctNotWildcard(t *testing.T) {
	items := applyAdd(nil, 1, 1, "", "", 10)
	items = applyAdd(items, 1, 1, "M", "", 10)

	assert.Len(t, items, 2)

	// A second no-variant add still merges into the no-variant line.
	items = applyAdd(items, 1, 4, "", "", 10)
	assert.Len(t, items, 2)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestUpdateQuantityBeyondStockLeavesCartUnchanged(t *testing.T) {
	items := []models.CartItem{
		{ID: 7, ProductID: 1, Quantity: 2},
		{ID: 8, ProductID: 2, Quantity: 1},
	}

	i := itemIndex(items, 7)
	assert.Equal(t, 0, i)

	err := applyQuantity(items, i, 5, 3)
	assert.ErrorIs(t, err, models.ErrOutOfStock)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 1, items[1].Quantity)
}

func TestUpdateQuantityWithinStock(t *testing.T) {
	items := []models.CartItem{{ID: 7, ProductID: 1, Quantity: 2}}

	err := applyQuantity(items, 0, 3, 3)
	assert.NoError(t, err)
	assert.Equal(t, 3, items[0].Quantity)
}

func TestItemIndexAbsent(t *testing.T) {
	items := []models.CartItem{{ID: 7}}

	assert.Equal(t, -1, itemIndex(items, 9))
	assert.Equal(t, -1, itemIndex(nil, 7))
}

func TestMatchIndex(t *testing.T) {
	items := []models.CartItem{
		{ProductID: 1, Size: "M", Color: "red"},
		{ProductID: 2},
	}

	assert.Equal(t, 0, matchIndex(items, 1, "M", "red"))
	assert.Equal(t, 1, matchIndex(items, 2, "", ""))
	assert.Equal(t, -1, matchIndex(items, 1, "", ""))
	assert.Equal(t, -1, matchIndex(nil, 1, "M", "red"))
}
