package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	order "github.com/sardorbek/bozor/internal/order/domain"
)

// Checkout steps. A session moves forward one step at a time and never
// leaves StepSuccess.
const (
	StepShipping = 1
	StepPayment  = 2
	StepReview   = 3
	StepSuccess  = 4
)

// StepName returns a display name for a checkout step
func StepName(step int) string {
	switch step {
	case StepShipping:
		return "shipping"
	case StepPayment:
		return "payment"
	case StepReview:
		return "review"
	case StepSuccess:
		return "success"
	}
	return "unknown"
}

// CardDetails holds the card fields collected on the payment step. They are
// kept in memory for the lifetime of the session and never persisted.
type CardDetails struct {
	Number     string `json:"number"`
	Holder     string `json:"holder"`
	ExpiryDate string `json:"expiry_date"`
	CVV        string `json:"cvv"`
}

// Validate checks that every card field is filled in
func (c CardDetails) Validate() error {
	fields := map[string]string{
		"card number": c.Number,
		"card holder": c.Holder,
		"expiry date": c.ExpiryDate,
		"cvv":         c.CVV,
	}
	for name, value := range fields {
		if value == "" {
			return fmt.Errorf("%s is required", name)
		}
	}
	return nil
}

// Session is one pass through the checkout wizard
type Session struct {
	ID              string                `json:"id"`
	UserID          uint                  `json:"user_id"`
	Step            int                   `json:"step"`
	ShippingAddress order.ShippingAddress `json:"shipping_address"`
	SaveAddress     bool                  `json:"save_address"`
	PaymentMethod   string                `json:"payment_method"`
	Card            CardDetails           `json:"-"`
	OrderID         uint                  `json:"order_id,omitempty"`
	OrderNumber     string                `json:"order_number,omitempty"`
	CreatedAt       time.Time             `json:"created_at"`
	UpdatedAt       time.Time             `json:"updated_at"`
}

// NewSession starts a fresh session on the shipping step
func NewSession(userID uint) *Session {
	now := time.Now()
	return &Session{
		ID:        uuid.New().String(),
		UserID:    userID,
		Step:      StepShipping,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// SubmitShipping records the shipping address and advances to the payment
// step. The session cannot reach step 2 with an incomplete address.
func (s *Session) SubmitShipping(address order.ShippingAddress, saveAddress bool) error {
	if s.Step == StepSuccess {
		return fmt.Errorf("checkout already completed")
	}
	if s.Step != StepShipping {
		return fmt.Errorf("shipping step already completed, current step is %s", StepName(s.Step))
	}
	if err := address.Validate(); err != nil {
		return err
	}
	s.ShippingAddress = address
	s.SaveAddress = saveAddress
	s.Step = StepPayment
	s.UpdatedAt = time.Now()
	return nil
}

// SubmitPayment records the payment method and advances to the review step.
// Card payments require complete card details.
func (s *Session) SubmitPayment(method string, card CardDetails) error {
	if s.Step == StepSuccess {
		return fmt.Errorf("checkout already completed")
	}
	if s.Step != StepPayment {
		return fmt.Errorf("payment not available, current step is %s", StepName(s.Step))
	}
	if method != order.PaymentMethodCard && method != order.PaymentMethodCash {
		return fmt.Errorf("invalid payment method: %s", method)
	}
	if method == order.PaymentMethodCard {
		if err := card.Validate(); err != nil {
			return err
		}
		s.Card = card
	}
	s.PaymentMethod = method
	s.Step = StepReview
	s.UpdatedAt = time.Now()
	return nil
}

// Back moves one step backwards. The first and last steps have no way back.
func (s *Session) Back() error {
	if s.Step == StepSuccess {
		return fmt.Errorf("checkout already completed")
	}
	if s.Step == StepShipping {
		return fmt.Errorf("already on the first step")
	}
	s.Step--
	s.UpdatedAt = time.Now()
	return nil
}

// Complete marks the session finished after the order is placed. StepSuccess
// is terminal.
func (s *Session) Complete(orderID uint, orderNumber string) error {
	if s.Step != StepReview {
		return fmt.Errorf("order can only be placed from the review step, current step is %s", StepName(s.Step))
	}
	s.OrderID = orderID
	s.OrderNumber = orderNumber
	s.Step = StepSuccess
	s.UpdatedAt = time.Now()
	return nil
}

// SessionStore holds active checkout sessions
type SessionStore interface {
	Put(session *Session)
	Get(id string) (*Session, bool)
	Delete(id string)
}
