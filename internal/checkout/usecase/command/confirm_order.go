package command

import (
	"context"
	"fmt"

	"github.com/sardorbek/bozor/internal/checkout/domain"
	ordercmd "github.com/sardorbek/bozor/internal/order/usecase/command"
)

// ConfirmOrderCommand represents the final order confirmation from the
// review step
type ConfirmOrderCommand struct {
	UserID    uint
	SessionID string
}

// ConfirmOrderHandler places the order for a checkout session
type ConfirmOrderHandler struct {
	sessions   domain.SessionStore
	placeOrder *ordercmd.PlaceOrderHandler
}

// NewConfirmOrderHandler creates a new confirm order handler
func NewConfirmOrderHandler(sessions domain.SessionStore, placeOrder *ordercmd.PlaceOrderHandler) *ConfirmOrderHandler {
	return &ConfirmOrderHandler{sessions: sessions, placeOrder: placeOrder}
}

// Handle places the order collected by the session. The session ID doubles
// as the idempotency key, so confirming the same session twice yields the
// same order.
func (h *ConfirmOrderHandler) Handle(ctx context.Context, cmd ConfirmOrderCommand) (*domain.Session, error) {
	session, err := loadSession(h.sessions, cmd.SessionID, cmd.UserID)
	if err != nil {
		return nil, err
	}
	if session.Step == domain.StepSuccess {
		return session, nil
	}
	if session.Step != domain.StepReview {
		return nil, fmt.Errorf("order can only be placed from the review step, current step is %s", domain.StepName(session.Step))
	}

	order, err := h.placeOrder.Handle(ctx, ordercmd.PlaceOrderCommand{
		UserID:          cmd.UserID,
		IdempotencyKey:  session.ID,
		ShippingAddress: session.ShippingAddress,
		PaymentMethod:   session.PaymentMethod,
		SaveAddress:     session.SaveAddress,
	})
	if err != nil {
		return nil, err
	}

	if err := session.Complete(order.ID, order.Number); err != nil {
		return nil, err
	}
	h.sessions.Put(session)
	return session, nil
}
