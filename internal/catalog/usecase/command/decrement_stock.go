package command

import (
	"fmt"

	"github.com/sardorbek/bozor/internal/catalog/domain"
)

// DecrementStockCommand represents the command to decrement product stock
// after an order is placed
type DecrementStockCommand struct {
	ProductID uint
	Quantity  int
}

// DecrementStockHandler handles stock decrements
type DecrementStockHandler struct {
	repo domain.ProductRepository
}

// NewDecrementStockHandler creates a new decrement stock handler
func NewDecrementStockHandler(repo domain.ProductRepository) *DecrementStockHandler {
	return &DecrementStockHandler{repo: repo}
}

// Handle executes the decrement stock command. The subtraction is a single
// atomic statement in the repository, so concurrent decrements never lose
// updates.
func (h *DecrementStockHandler) Handle(cmd DecrementStockCommand) error {
	if cmd.ProductID == 0 {
		return fmt.Errorf("product_id is required")
	}
	if cmd.Quantity <= 0 {
		return fmt.Errorf("quantity must be greater than 0")
	}

	if err := h.repo.DecrementStock(cmd.ProductID, cmd.Quantity); err != nil {
		return fmt.Errorf("failed to decrement stock: %w", err)
	}

	return nil
}
