package query

import (
	"fmt"

	"github.com/sardorbek/bozor/internal/likes/domain"
)

// ListLikesQuery represents the query for a user's liked products
type ListLikesQuery struct {
	UserID uint
}

// ListLikesHandler handles like listings
type ListLikesHandler struct {
	likes domain.LikeRepository
}

// NewListLikesHandler creates a new list likes handler
func NewListLikesHandler(likes domain.LikeRepository) *ListLikesHandler {
	return &ListLikesHandler{likes: likes}
}

// Handle executes the list likes query
func (h *ListLikesHandler) Handle(q ListLikesQuery) ([]domain.Like, error) {
	if q.UserID == 0 {
		return nil, fmt.Errorf("user_id is required")
	}

	likes, err := h.likes.FindByUser(q.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load likes: %w", err)
	}

	return likes, nil
}
