package command

import (
	"github.com/sardorbek/bozor/internal/checkout/domain"
)

// SubmitPaymentCommand represents the payment step submission
type SubmitPaymentCommand struct {
	UserID    uint
	SessionID string
	Method    string
	Card      domain.CardDetails
}

// SubmitPaymentHandler handles the payment step of checkout
type SubmitPaymentHandler struct {
	sessions domain.SessionStore
}

// NewSubmitPaymentHandler creates a new submit payment handler
func NewSubmitPaymentHandler(sessions domain.SessionStore) *SubmitPaymentHandler {
	return &SubmitPaymentHandler{sessions: sessions}
}

// Handle records the payment method and advances the session
func (h *SubmitPaymentHandler) Handle(cmd SubmitPaymentCommand) (*domain.Session, error) {
	session, err := loadSession(h.sessions, cmd.SessionID, cmd.UserID)
	if err != nil {
		return nil, err
	}
	if err := session.SubmitPayment(cmd.Method, cmd.Card); err != nil {
		return nil, err
	}
	h.sessions.Put(session)
	return session, nil
}
