package command

import (
	"fmt"

	"github.com/sardorbek/bozor/internal/cart/domain"
)

// UpdateQuantityCommand represents the command to set a cart line's quantity
type UpdateQuantityCommand struct {
	UserID   uint // owner, checked against the line
	ItemID   uint
	Quantity int
}

// UpdateQuantityHandler handles cart quantity updates
type UpdateQuantityHandler struct {
	carts domain.CartRepository
}

// NewUpdateQuantityHandler creates a new update quantity handler
func NewUpdateQuantityHandler(carts domain.CartRepository) *UpdateQuantityHandler {
	return &UpdateQuantityHandler{carts: carts}
}

// Handle executes the update quantity command. A quantity of zero or less
// removes the line instead.
func (h *UpdateQuantityHandler) Handle(cmd UpdateQuantityCommand) error {
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

	if cmd.Quantity <= 0 {
		if err := h.carts.Delete(cmd.ItemID); err != nil {
			return fmt.Errorf("failed to remove cart item: %w", err)
		}
		return nil
	}

	if err := h.carts.UpdateQuantity(cmd.ItemID, cmd.Quantity); err != nil {
		return fmt.Errorf("failed to update quantity: %w", err)
	}

	return nil
}
