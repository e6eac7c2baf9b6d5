package models

import (
	"fmt"
	"time"
)

type CheckoutStep string

const (
	StepShippingEntry    CheckoutStep = "shipping"
	StepPaymentSelection CheckoutStep = "payment"
	StepReview           CheckoutStep = "review"
	StepPlaced           CheckoutStep = "placed"
)

// CheckoutSession walks a user's cart through the linear checkout flow:
// ShippingEntry → PaymentSelection → Review → Placed. Backward movement is
// one step at a time; Placed is terminal until the session is reset for the
// next purchase.
type CheckoutSession struct {
	ID              uint         `gorm:"primaryKey" json:"id"`
	UserID          string       `gorm:"uniqueIndex" json:"userId"`
	Step            CheckoutStep `gorm:"type:VARCHAR(20);default:'shipping'" json:"step"`
	ShippingAddress Address      `gorm:"embedded;embeddedPrefix:shipping_" json:"shippingAddress"`
	PaymentMethod   string       `json:"paymentMethod"`
	CreatedAt       time.Time    `json:"createdAt"`
	UpdatedAt       time.Time    `json:"updatedAt"`
}

// SubmitShipping records the address and advances to payment selection.
// Only the shipping step accepts an address; every field is required.
func (s *CheckoutSession) SubmitShipping(addr Address) error {
	if s.Step != StepShippingEntry {
		return fmt.Errorf("%w: shipping can only be entered at the shipping step", ErrValidation)
	}
	if !addr.Complete() {
		return fmt.Errorf("%w: all shipping address fields are required", ErrValidation)
	}
	s.ShippingAddress = addr
	s.Step = StepPaymentSelection
	return nil
}

// SubmitPayment records the payment method and advances to review.
func (s *CheckoutSession) SubmitPayment(method string) error {
	if s.Step != StepPaymentSelection {
		return fmt.Errorf("%w: payment can only be selected at the payment step", ErrValidation)
	}
	if method == "" {
		return fmt.Errorf("%w: a payment method is required", ErrValidation)
	}
	s.PaymentMethod = method
	s.Step = StepReview
	return nil
}

// Back moves one step backward: Review → PaymentSelection or
// PaymentSelection → ShippingEntry. No other backward movement exists.
func (s *CheckoutSession) Back() error {
	switch s.Step {
	case StepReview:
		s.Step = StepPaymentSelection
	case StepPaymentSelection:
		s.Step = StepShippingEntry
	default:
		return fmt.Errorf("%w: cannot go back from the %s step", ErrValidation, s.Step)
	}
	return nil
}

// Place marks the session terminal. The caller is responsible for the order
// creation guard (non-empty cart) before calling.
func (s *CheckoutSession) Place() error {
	if s.Step != StepReview {
		return fmt.Errorf("%w: the order must be reviewed before placing", ErrValidation)
	}
	s.Step = StepPlaced
	return nil
}

// Reset returns a placed session to the start of the flow for the next
// purchase, dropping the captured address and payment method.
func (s *CheckoutSession) Reset() {
	s.Step = StepShippingEntry
	s.ShippingAddress = Address{}
	s.PaymentMethod = ""
}
