package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	order "github.com/sardorbek/bozor/internal/order/domain"
)

func completeAddress() order.ShippingAddress {
	return order.ShippingAddress{
		FullName:   "Madina Karimova",
		Phone:      "+998909876543",
		Email:      "madina@example.com",
		Address:    "Navoiy ko'chasi 7",
		City:       "Samarkand",
		Region:     "Samarkand",
		PostalCode: "140100",
	}
}

func completeCard() CardDetails {
	return CardDetails{
		Number:     "8600123412341234",
		Holder:     "MADINA KARIMOVA",
		ExpiryDate: "12/27",
		CVV:        "123",
	}
}

func TestSessionStartsOnShippingStep(t *testing.T) {
	s := NewSession(1)
	assert.Equal(t, StepShipping, s.Step)
	assert.NotEmpty(t, s.ID)
}

func TestSessionCannotReachPaymentWithIncompleteAddress(t *testing.T) {
	s := NewSession(1)

	address := completeAddress()
	address.Phone = ""
	err := s.SubmitShipping(address, false)
	require.Error(t, err)
	assert.Equal(t, StepShipping, s.Step)
}

func TestSessionAdvancesThroughAllSteps(t *testing.T) {
	s := NewSession(1)

	require.NoError(t, s.SubmitShipping(completeAddress(), true))
	assert.Equal(t, StepPayment, s.Step)

	require.NoError(t, s.SubmitPayment(order.PaymentMethodCard, completeCard()))
	assert.Equal(t, StepReview, s.Step)

	require.NoError(t, s.Complete(42, "ORD-abc12345"))
	assert.Equal(t, StepSuccess, s.Step)
	assert.Equal(t, uint(42), s.OrderID)
	assert.Equal(t, "ORD-abc12345", s.OrderNumber)
}

func TestSessionCardPaymentRequiresFullCardDetails(t *testing.T) {
	s := NewSession(1)
	require.NoError(t, s.SubmitShipping(completeAddress(), false))

	card := completeCard()
	card.CVV = ""
	err := s.SubmitPayment(order.PaymentMethodCard, card)
	require.Error(t, err)
	assert.Equal(t, StepPayment, s.Step)
}

func TestSessionCashPaymentNeedsNoCard(t *testing.T) {
	s := NewSession(1)
	require.NoError(t, s.SubmitShipping(completeAddress(), false))
	require.NoError(t, s.SubmitPayment(order.PaymentMethodCash, CardDetails{}))
	assert.Equal(t, StepReview, s.Step)
}

func TestSessionCannotSkipSteps(t *testing.T) {
	s := NewSession(1)

	err := s.SubmitPayment(order.PaymentMethodCash, CardDetails{})
	require.Error(t, err, "payment before shipping must fail")

	err = s.Complete(1, "ORD-00000000")
	require.Error(t, err, "placing from the shipping step must fail")
}

func TestSessionBack(t *testing.T) {
	s := NewSession(1)

	err := s.Back()
	require.Error(t, err, "no way back from the first step")

	require.NoError(t, s.SubmitShipping(completeAddress(), false))
	require.NoError(t, s.Back())
	assert.Equal(t, StepShipping, s.Step)
}

func TestSessionSuccessIsTerminal(t *testing.T) {
	s := NewSession(1)
	require.NoError(t, s.SubmitShipping(completeAddress(), false))
	require.NoError(t, s.SubmitPayment(order.PaymentMethodCash, CardDetails{}))
	require.NoError(t, s.Complete(7, "ORD-deadbeef"))

	assert.Error(t, s.Back())
	assert.Error(t, s.SubmitShipping(completeAddress(), false))
	assert.Error(t, s.SubmitPayment(order.PaymentMethodCash, CardDetails{}))
	assert.Error(t, s.Complete(8, "ORD-feedface"))
	assert.Equal(t, StepSuccess, s.Step)
}
