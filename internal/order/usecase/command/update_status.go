package command

import (
	"fmt"

	"github.com/sardorbek/bozor/internal/order/domain"
)

// UpdateStatusCommand represents the data needed to update an order status
type UpdateStatusCommand struct {
	OrderID uint
	Status  string
}

// UpdateStatusHandler handles order status updates
type UpdateStatusHandler struct {
	orders domain.OrderRepository
}

// NewUpdateStatusHandler creates a new update status handler
func NewUpdateStatusHandler(orders domain.OrderRepository) *UpdateStatusHandler {
	return &UpdateStatusHandler{orders: orders}
}

// Handle executes the update status command
func (h *UpdateStatusHandler) Handle(cmd UpdateStatusCommand) error {
	if cmd.OrderID == 0 {
		return fmt.Errorf("order id is required")
	}
	if !domain.ValidStatus(cmd.Status) {
		return fmt.Errorf("invalid order status: %s", cmd.Status)
	}
	return h.orders.UpdateStatus(cmd.OrderID, cmd.Status)
}
