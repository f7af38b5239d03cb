package query

import (
	"fmt"

	"github.com/sardorbek/bozor/internal/order/domain"
)

// ListOrdersQuery represents the query to list a user's orders
type ListOrdersQuery struct {
	UserID uint
}

// ListOrdersHandler handles listing orders
type ListOrdersHandler struct {
	orders domain.OrderRepository
}

// NewListOrdersHandler creates a new list orders handler
func NewListOrdersHandler(orders domain.OrderRepository) *ListOrdersHandler {
	return &ListOrdersHandler{orders: orders}
}

// Handle executes the list orders query, newest first
func (h *ListOrdersHandler) Handle(q ListOrdersQuery) ([]domain.Order, error) {
	if q.UserID == 0 {
		return nil, fmt.Errorf("user id is required")
	}
	return h.orders.FindByUser(q.UserID)
}
