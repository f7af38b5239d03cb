package query

import (
	"github.com/sardorbek/bozor/internal/user/domain"
)

// GetUserQuery represents the query to get a user
type GetUserQuery struct {
	UserID uint
}

// GetUserHandler handles getting a user
type GetUserHandler struct {
	repo domain.UserRepository
}

// NewGetUserHandler creates a new get user handler
func NewGetUserHandler(repo domain.UserRepository) *GetUserHandler {
	return &GetUserHandler{repo: repo}
}

// Handle executes the get user query
func (h *GetUserHandler) Handle(q GetUserQuery) (*domain.User, error) {
	return h.repo.FindByID(q.UserID)
}
