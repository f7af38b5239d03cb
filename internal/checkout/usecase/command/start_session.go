package command

import (
	"fmt"

	cart "github.com/sardorbek/bozor/internal/cart/domain"
	"github.com/sardorbek/bozor/internal/checkout/domain"
)

// StartSessionCommand represents the data needed to start a checkout session
type StartSessionCommand struct {
	UserID uint
}

// StartSessionHandler handles starting checkout sessions
type StartSessionHandler struct {
	sessions domain.SessionStore
	carts    cart.CartRepository
}

// NewStartSessionHandler creates a new start session handler
func NewStartSessionHandler(sessions domain.SessionStore, carts cart.CartRepository) *StartSessionHandler {
	return &StartSessionHandler{sessions: sessions, carts: carts}
}

// Handle starts a checkout session. An empty cart has nothing to check out.
func (h *StartSessionHandler) Handle(cmd StartSessionCommand) (*domain.Session, error) {
	if cmd.UserID == 0 {
		return nil, fmt.Errorf("user id is required")
	}

	count, err := h.carts.CountByUser(cmd.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check cart: %w", err)
	}
	if count == 0 {
		return nil, fmt.Errorf("cart is empty")
	}

	session := domain.NewSession(cmd.UserID)
	h.sessions.Put(session)
	return session, nil
}
