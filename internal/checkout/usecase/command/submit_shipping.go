package command

import (
	"github.com/sardorbek/bozor/internal/checkout/domain"
	order "github.com/sardorbek/bozor/internal/order/domain"
)

// SubmitShippingCommand represents the shipping step submission
type SubmitShippingCommand struct {
	UserID      uint
	SessionID   string
	Address     order.ShippingAddress
	SaveAddress bool
}

// SubmitShippingHandler handles the shipping step of checkout
type SubmitShippingHandler struct {
	sessions domain.SessionStore
}

// NewSubmitShippingHandler creates a new submit shipping handler
func NewSubmitShippingHandler(sessions domain.SessionStore) *SubmitShippingHandler {
	return &SubmitShippingHandler{sessions: sessions}
}

// Handle records the shipping address and advances the session
func (h *SubmitShippingHandler) Handle(cmd SubmitShippingCommand) (*domain.Session, error) {
	session, err := loadSession(h.sessions, cmd.SessionID, cmd.UserID)
	if err != nil {
		return nil, err
	}
	if err := session.SubmitShipping(cmd.Address, cmd.SaveAddress); err != nil {
		return nil, err
	}
	h.sessions.Put(session)
	return session, nil
}
