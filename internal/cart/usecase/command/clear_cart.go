package command

import (
	"fmt"

	"github.com/sardorbek/bozor/internal/cart/domain"
)

// ClearCartCommand represents the command to empty a user's cart
type ClearCartCommand struct {
	UserID uint
}

// ClearCartHandler handles cart clearing
type ClearCartHandler struct {
	carts domain.CartRepository
}

// NewClearCartHandler creates a new clear cart handler
func NewClearCartHandler(carts domain.CartRepository) *ClearCartHandler {
	return &ClearCartHandler{carts: carts}
}

// Handle executes the clear cart command
func (h *ClearCartHandler) Handle(cmd ClearCartCommand) error {
	if cmd.UserID == 0 {
		return fmt.Errorf("user_id is required")
	}

	if err := h.carts.DeleteByUser(cmd.UserID); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}

	return nil
}
