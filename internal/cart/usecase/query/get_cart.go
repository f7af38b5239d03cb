package query

import (
	"fmt"

	"github.com/sardorbek/bozor/internal/cart/domain"
	"github.com/sardorbek/bozor/internal/pricing"
)

// GetCartQuery represents the query for a user's cart
type GetCartQuery struct {
	UserID uint
}

// CartView is the loaded cart with its priced summary
type CartView struct {
	Items   []domain.CartItem `json:"items"`
	Summary pricing.Quote     `json:"summary"`
}

// GetCartHandler handles cart queries
type GetCartHandler struct {
	carts   domain.CartRepository
	pricing pricing.Config
}

// NewGetCartHandler creates a new get cart handler
func NewGetCartHandler(carts domain.CartRepository, cfg pricing.Config) *GetCartHandler {
	return &GetCartHandler{carts: carts, pricing: cfg}
}

// Handle executes the get cart query. The summary is derived from the loaded
// lines on every call.
func (h *GetCartHandler) Handle(q GetCartQuery) (*CartView, error) {
	if q.UserID == 0 {
		return nil, fmt.Errorf("user_id is required")
	}

	items, err := h.carts.FindByUser(q.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	return &CartView{
		Items:   items,
		Summary: h.pricing.QuoteFor(domain.Subtotal(items)),
	}, nil
}
