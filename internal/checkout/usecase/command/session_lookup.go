package command

import (
	"fmt"

	"github.com/sardorbek/bozor/internal/checkout/domain"
)

// loadSession fetches a session and verifies ownership. Sessions of other
// users are reported as not found.
func loadSession(store domain.SessionStore, sessionID string, userID uint) (*domain.Session, error) {
	session, ok := store.Get(sessionID)
	if !ok || session.UserID != userID {
		return nil, fmt.Errorf("checkout session not found")
	}
	return session, nil
}
