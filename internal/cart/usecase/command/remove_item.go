package command

import (
	"fmt"

	"github.com/sardorbek/bozor/internal/cart/domain"
)

// RemoveItemCommand represents the command to delete a cart line
type RemoveItemCommand struct {
	UserID uint
	ItemID uint
}

// RemoveItemHandler handles cart line removal
type RemoveItemHandler struct {
	carts domain.CartRepository
}

// NewRemoveItemHandler creates a new remove item handler
func NewRemoveItemHandler(carts domain.CartRepository) *RemoveItemHandler {
	return &RemoveItemHandler{carts: carts}
}

// Handle executes the remove item command
func (h *RemoveItemHandler) Handle(cmd RemoveItemCommand) error {
	if cmd.ItemID == 0 {
		return fmt.Errorf("item id is required")
	}

	item, err := h.carts.FindByID(cmd.ItemID)
	if err != nil {
		return fmt.Errorf("cart item not found")
	}
	if item.UserID != cmd.UserID {
		return fmt.Errorf("cart item not found")
	}

	if err := h.carts.Delete(cmd.ItemID); err != nil {
		return fmt.Errorf("failed to remove cart item: %w", err)
	}

	return nil
}
