package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullAddress() Address {
	return Address{
		Street:     "1 Main St",
		City:       "Springfield",
		State:      "IL",
		PostalCode: "62701",
		Country:    "USA",
	}
}

func TestCheckoutHappyPath(t *testing.T) {
	s := CheckoutSession{Step: StepShippingEntry}

	require.NoError(t, s.SubmitShipping(fullAddress()))
	assert.Equal(t, StepPaymentSelection, s.Step)

	require.NoError(t, s.SubmitPayment("card"))
	assert.Equal(t, StepReview, s.Step)

	require.NoError(t, s.Place())
	assert.Equal(t, StepPlaced, s.Step)
}

func TestCheckoutShippingGuard(t *testing.T) {
	s := CheckoutSession{Step: StepShippingEntry}

	partial := fullAddress()
	partial.PostalCode = ""
	err := s.SubmitShipping(partial)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, StepShippingEntry, s.Step)

	// Address is only accepted at the shipping step.
	s.Step = StepReview
	assert.ErrorIs(t, s.SubmitShipping(fullAddress()), ErrValidation)
}

func TestCheckoutPaymentGuard(t *testing.T) {
	s := CheckoutSession{Step: StepPaymentSelection}

	assert.ErrorIs(t, s.SubmitPayment(""), ErrValidation)
	assert.Equal(t, StepPaymentSelection, s.Step)

	s.Step = StepShippingEntry
	assert.ErrorIs(t, s.SubmitPayment("card"), ErrValidation)
}

func TestCheckoutBackOneStepOnly(t *testing.T) {
	s := CheckoutSession{Step: StepReview}
	require.NoError(t, s.Back())
	assert.Equal(t, StepPaymentSelection, s.Step)
	require.NoError(t, s.Back())
	assert.Equal(t, StepShippingEntry, s.Step)

	assert.ErrorIs(t, s.Back(), ErrValidation)

	s.Step = StepPlaced
	assert.ErrorIs(t, s.Back(), ErrValidation)
}

func TestCheckoutPlaceRequiresReview(t *testing.T) {
	for _, step := range []CheckoutStep{StepShippingEntry, StepPaymentSelection, StepPlaced} {
		s := CheckoutSession{Step: step}
		assert.ErrorIs(t, s.Place(), ErrValidation, "place from %s", step)
	}
}

func TestCheckoutReset(t *testing.T) {
	s := CheckoutSession{
		Step:            StepPlaced,
		ShippingAddress: fullAddress(),
		PaymentMethod:   "card",
	}
	s.Reset()
	assert.Equal(t, StepShippingEntry, s.Step)
	assert.Equal(t, Address{}, s.ShippingAddress)
	assert.Empty(t, s.PaymentMethod)
}
