package pricing

import (
	"testing"

	"github.com/nihalikakumari/ShopEZ-E-commerce-Application/models"
	"github.com/stretchr/testify/assert"
)

const (
	taxRate   = 0.10
	threshold = 50
	flatFee   = 10
)

func TestComputeTotalsScenario(t *testing.T) {
	// One line at 10.00 x2 and one at 5.00 x1, below the free-shipping
	// threshold.
	lines := []Line{
		{Price: 10.00, Quantity: 2},
		{Price: 5.00, Quantity: 1},
	}

	totals := ComputeTotals(lines, taxRate, threshold, flatFee)
	assert.InDelta(t, 25.00, totals.Subtotal, 1e-9)
	assert.InDelta(t, 2.50, totals.Tax, 1e-9)
	assert.InDelta(t, 10.00, totals.Shipping, 1e-9)
	assert.InDelta(t, 37.50, totals.Total, 1e-9)
}

func TestComputeTotalsIdentity(t *testing.T) {
	lines := []Line{
		{Price: 19.99, Quantity: 3},
		{Price: 0.01, Quantity: 7},
	}
	totals := ComputeTotals(lines, taxRate, threshold, flatFee)
	assert.Equal(t, totals.Subtotal+totals.Tax+totals.Shipping, totals.Total)
}

func TestComputeTotalsEmptyCartStillPaysFlatFee(t *testing.T) {
	totals := ComputeTotals(nil, taxRate, threshold, flatFee)
	assert.Zero(t, totals.Subtotal)
	assert.Zero(t, totals.Tax)
	assert.InDelta(t, flatFee, totals.Shipping, 1e-9)
	assert.InDelta(t, flatFee, totals.Total, 1e-9)
}

func TestComputeTotalsShippingBoundary(t *testing.T) {
	// Exactly at the threshold the comparison is strict: shipping is charged.
	atThreshold := ComputeTotals([]Line{{Price: 50, Quantity: 1}}, taxRate, threshold, flatFee)
	assert.InDelta(t, flatFee, atThreshold.Shipping, 1e-9)

	above := ComputeTotals([]Line{{Price: 50.01, Quantity: 1}}, taxRate, threshold, flatFee)
	assert.Zero(t, above.Shipping)
}

func TestRounded(t *testing.T) {
	totals := ComputeTotals([]Line{{Price: 0.10, Quantity: 3}}, taxRate, threshold, flatFee)
	rounded := totals.Rounded()
	assert.Equal(t, 0.30, rounded.Subtotal)
	assert.Equal(t, 0.03, rounded.Tax)
	assert.Equal(t, 10.33, rounded.Total)
}

func TestLineConversions(t *testing.T) {
	cartLines := FromCartItems([]models.CartItem{{Price: 4.5, Quantity: 2}})
	assert.Equal(t, []Line{{Price: 4.5, Quantity: 2}}, cartLines)

	orderLines := FromOrderItems([]models.OrderItem{{Price: 9, Quantity: 1}})
	assert.Equal(t, []Line{{Price: 9, Quantity: 1}}, orderLines)
}
