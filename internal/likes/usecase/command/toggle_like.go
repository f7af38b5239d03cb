package command

import (
	"fmt"
	"time"

	"github.com/sardorbek/bozor/internal/likes/domain"
)

// ToggleLikeCommand represents the command to flip a product's liked state
type ToggleLikeCommand struct {
	UserID    uint
	ProductID uint
}

// ToggleLikeHandler handles like toggling
type ToggleLikeHandler struct {
	likes domain.LikeRepository
}

// NewToggleLikeHandler creates a new toggle like handler
func NewToggleLikeHandler(likes domain.LikeRepository) *ToggleLikeHandler {
	return &ToggleLikeHandler{likes: likes}
}

// Handle flips the like: an existing row is deleted, a missing one is
// inserted. Returns the resulting liked state. Toggling twice restores the
// original membership.
func (h *ToggleLikeHandler) Handle(cmd ToggleLikeCommand) (bool, error) {
	if cmd.UserID == 0 {
		return false, fmt.Errorf("user_id is required")
	}
	if cmd.ProductID == 0 {
		return false, fmt.Errorf("product_id is required")
	}

	if existing, err := h.likes.FindByUserAndProduct(cmd.UserID, cmd.ProductID); err == nil && existing != nil {
		if err := h.likes.Delete(existing.ID); err != nil {
			return true, fmt.Errorf("failed to remove like: %w", err)
		}
		return false, nil
	}

	like := &domain.Like{
		UserID:    cmd.UserID,
		ProductID: cmd.ProductID,
		CreatedAt: time.Now(),
	}
	if err := h.likes.Insert(like); err != nil {
		// A racing toggle may have inserted the row first; the unique
		// (user, product) index rejects the duplicate and the product is
		// liked either way.
		if dup, findErr := h.likes.FindByUserAndProduct(cmd.UserID, cmd.ProductID); findErr == nil && dup != nil {
			return true, nil
		}
		return false, fmt.Errorf("failed to add like: %w", err)
	}

	return true, nil
}
