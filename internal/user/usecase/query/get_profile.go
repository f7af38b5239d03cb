package query

import (
	"github.com/sardorbek/bozor/internal/user/domain"
)

// GetProfileQuery represents the query to get a user's profile
type GetProfileQuery struct {
	UserID uint
}

// GetProfileHandler handles getting a user's profile
type GetProfileHandler struct {
	repo domain.UserRepository
}

// NewGetProfileHandler creates a new get profile handler
func NewGetProfileHandler(repo domain.UserRepository) *GetProfileHandler {
	return &GetProfileHandler{repo: repo}
}

// Handle executes the get profile query
func (h *GetProfileHandler) Handle(q GetProfileQuery) (*domain.Profile, error) {
	return h.repo.FindProfile(q.UserID)
}
