package command

import (
	"github.com/sardorbek/bozor/internal/checkout/domain"
)

// StepBackCommand represents moving one step back in checkout
type StepBackCommand struct {
	UserID    uint
	SessionID string
}

// StepBackHandler handles moving backwards in the checkout wizard
type StepBackHandler struct {
	sessions domain.SessionStore
}

// NewStepBackHandler creates a new step back handler
func NewStepBackHandler(sessions domain.SessionStore) *StepBackHandler {
	return &StepBackHandler{sessions: sessions}
}

// Handle moves the session one step back
func (h *StepBackHandler) Handle(cmd StepBackCommand) (*domain.Session, error) {
	session, err := loadSession(h.sessions, cmd.SessionID, cmd.UserID)
	if err != nil {
		return nil, err
	}
	if err := session.Back(); err != nil {
		return nil, err
	}
	h.sessions.Put(session)
	return session, nil
}
