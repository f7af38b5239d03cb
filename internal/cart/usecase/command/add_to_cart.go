package command

import (
	"fmt"
	"time"

	"github.com/sardorbek/bozor/internal/cart/domain"
	catalog "github.com/sardorbek/bozor/internal/catalog/domain"
)

// AddToCartCommand represents the command to add a product to the cart
type AddToCartCommand struct {
	UserID    uint
	ProductID uint
	Quantity  int // defaults to 1
}

// AddToCartHandler handles cart additions
type AddToCartHandler struct {
	carts    domain.CartRepository
	products catalog.ProductRepository
}

// NewAddToCartHandler creates a new add to cart handler
func NewAddToCartHandler(carts domain.CartRepository, products catalog.ProductRepository) *AddToCartHandler {
	return &AddToCartHandler{carts: carts, products: products}
}

// Handle executes the add to cart command. An existing line for the product
// is incremented atomically in the store; only when no line exists is a new
// row inserted. Two sequential adds of the same product therefore always end
// as one line with the combined quantity.
func (h *AddToCartHandler) Handle(cmd AddToCartCommand) error {
	if cmd.UserID == 0 {
		return fmt.Errorf("user_id is required")
	}
	if cmd.ProductID == 0 {
		return fmt.Errorf("product_id is required")
	}

	qty := cmd.Quantity
	if qty <= 0 {
		qty = 1
	}

	if _, err := h.products.FindByID(cmd.ProductID); err != nil {
		return fmt.Errorf("product not found")
	}

	affected, err := h.carts.IncrementQuantity(cmd.UserID, cmd.ProductID, qty)
	if err != nil {
		return fmt.Errorf("failed to update cart: %w", err)
	}
	if affected > 0 {
		return nil
	}

	item := &domain.CartItem{
		UserID:    cmd.UserID,
		ProductID: cmd.ProductID,
		Quantity:  qty,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := h.carts.Insert(item); err != nil {
		// A concurrent add may have inserted the line between the increment
		// and the insert; the unique (user, product) index rejects the
		// duplicate, so retry as an increment.
		if affected, retryErr := h.carts.IncrementQuantity(cmd.UserID, cmd.ProductID, qty); retryErr == nil && affected > 0 {
			return nil
		}
		return fmt.Errorf("failed to add to cart: %w", err)
	}

	return nil
}
