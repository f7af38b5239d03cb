package query

import (
	"fmt"

	"github.com/sardorbek/bozor/internal/checkout/domain"
)

// GetSessionQuery represents the query to fetch a checkout session
type GetSessionQuery struct {
	UserID    uint
	SessionID string
}

// GetSessionHandler handles fetching checkout sessions
type GetSessionHandler struct {
	sessions domain.SessionStore
}

// NewGetSessionHandler creates a new get session handler
func NewGetSessionHandler(sessions domain.SessionStore) *GetSessionHandler {
	return &GetSessionHandler{sessions: sessions}
}

// Handle executes the get session query
func (h *GetSessionHandler) Handle(q GetSessionQuery) (*domain.Session, error) {
	session, ok := h.sessions.Get(q.SessionID)
	if !ok || session.UserID != q.UserID {
		return nil, fmt.Errorf("checkout session not found")
	}
	return session, nil
}
