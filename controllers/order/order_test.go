package orderControllers

import (
	"testing"

	"github.com/nihalikakumari/ShopEZ-E-commerce-Application/config"
	"github.com/nihalikakumari/ShopEZ-E-commerce-Application/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{TaxRate: 0.10, FreeShippingThreshold: 50, FlatShippingFee: 10}
}

func testAddress() models.Address {
	return models.Address{Street: "1 Main St", City: "Springfield", State: "IL", PostalCode: "62701", Country: "US"}
}

// The guards run before the transaction, so a nil *gorm.DB doubles as proof
// that a rejected order never reaches the database.
func TestCreateOrderEmptyCart(t *testing.T) {
	order, err := CreateOrder(nil, testConfig(), "user-1", nil, testAddress(), "card")

	require.ErrorIs(t, err, models.ErrEmptyCart)
	assert.Nil(t, order)
}

func TestCreateOrderIncompleteAddress(t *testing.T) {
	items := []models.OrderItem{{ProductID: 1, Name: "Tee", Price: 12.50, Quantity: 2}}
	addr := testAddress()
	addr.PostalCode = ""

	order, err := CreateOrder(nil, testConfig(), "user-1", items, addr, "card")

	require.ErrorIs(t, err, models.ErrValidation)
	assert.Nil(t, order)
}

func TestCreateOrderMissingPaymentMethod(t *testing.T) {
	items := []models.OrderItem{{ProductID: 1, Name: "Tee", Price: 12.50, Quantity: 2}}

	order, err := CreateOrder(nil, testConfig(), "user-1", items, testAddress(), "")

	require.ErrorIs(t, err, models.ErrValidation)
	assert.Nil(t, order)
}
