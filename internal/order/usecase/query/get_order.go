package query

import (
	"fmt"

	"github.com/sardorbek/bozor/internal/order/domain"
)

// GetOrderQuery represents the query to get a single order
type GetOrderQuery struct {
	OrderID uint
	UserID  uint
}

// GetOrderHandler handles getting a single order
type GetOrderHandler struct {
	orders domain.OrderRepository
}

// NewGetOrderHandler creates a new get order handler
func NewGetOrderHandler(orders domain.OrderRepository) *GetOrderHandler {
	return &GetOrderHandler{orders: orders}
}

// Handle executes the get order query. Orders belonging to other users are
// reported as not found.
func (h *GetOrderHandler) Handle(q GetOrderQuery) (*domain.Order, error) {
	order, err := h.orders.FindByID(q.OrderID)
	if err != nil {
		return nil, err
	}
	if order == nil || order.UserID != q.UserID {
		return nil, fmt.Errorf("order not found")
	}
	return order, nil
}
