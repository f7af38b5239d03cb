package command

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	cart "github.com/sardorbek/bozor/internal/cart/domain"
	"github.com/sardorbek/bozor/internal/order/domain"
	"github.com/sardorbek/bozor/internal/pricing"
	"github.com/sardorbek/bozor/kafka"
	"github.com/sardorbek/bozor/pkg/logger"
)

// PlaceOrderCommand represents the data needed to place an order
type PlaceOrderCommand struct {
	UserID          uint
	IdempotencyKey  string
	ShippingAddress domain.ShippingAddress
	PaymentMethod   string
	SaveAddress     bool
}

// OrderEventPublisher publishes order placement events. A nil publisher
// disables publishing.
type OrderEventPublisher interface {
	PublishOrderPlaced(ctx context.Context, event kafka.OrderPlacedEvent) error
}

// PlaceOrderHandler handles order placement
type PlaceOrderHandler struct {
	orders    domain.OrderRepository
	carts     cart.CartRepository
	pricing   pricing.Config
	publisher OrderEventPublisher

	inFlightMu sync.Mutex
	inFlight   map[uint]struct{}
}

// NewPlaceOrderHandler creates a new place order handler
func NewPlaceOrderHandler(orders domain.OrderRepository, carts cart.CartRepository, cfg pricing.Config, publisher OrderEventPublisher) *PlaceOrderHandler {
	return &PlaceOrderHandler{
		orders:    orders,
		carts:     carts,
		pricing:   cfg,
		publisher: publisher,
		inFlight:  make(map[uint]struct{}),
	}
}

// Handle executes the place order command. The order header and every line
// are written in a single transaction, so the caller either gets a complete
// order or no order at all. Resubmitting the same idempotency key returns
// the already placed order instead of creating a second one.
func (h *PlaceOrderHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*domain.Order, error) {
	if cmd.UserID == 0 {
		return nil, fmt.Errorf("user id is required")
	}
	if cmd.IdempotencyKey == "" {
		return nil, fmt.Errorf("idempotency key is required")
	}
	if cmd.PaymentMethod != domain.PaymentMethodCard && cmd.PaymentMethod != domain.PaymentMethodCash {
		return nil, fmt.Errorf("invalid payment method: %s", cmd.PaymentMethod)
	}
	if err := cmd.ShippingAddress.Validate(); err != nil {
		return nil, err
	}

	if existing, err := h.orders.FindByIdempotencyKey(cmd.IdempotencyKey); err != nil {
		return nil, fmt.Errorf("failed to check idempotency key: %w", err)
	} else if existing != nil {
		return existing, nil
	}

	// One placement at a time per user. A double click on the confirm
	// button hits this before the idempotency key row exists.
	if !h.acquire(cmd.UserID) {
		return nil, fmt.Errorf("order placement already in progress")
	}
	defer h.release(cmd.UserID)

	items, err := h.carts.FindByUser(cmd.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("cart is empty")
	}

	quote := h.pricing.QuoteFor(cart.Subtotal(items))

	addressJSON, err := marshalAddress(cmd.ShippingAddress)
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		Number:          domain.NewOrderNumber(),
		UserID:          cmd.UserID,
		TotalAmount:     quote.Total,
		Status:          domain.StatusPending,
		ShippingAddress: addressJSON,
		PaymentMethod:   cmd.PaymentMethod,
		PaymentStatus:   domain.PaymentStatusFor(cmd.PaymentMethod),
		IdempotencyKey:  cmd.IdempotencyKey,
	}

	lines := make([]domain.OrderItem, 0, len(items))
	for _, item := range items {
		lines = append(lines, domain.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Product.NewPrice,
		})
	}

	if err := h.orders.CreateWithItems(order, lines); err != nil {
		// A concurrent request with the same key may have won the race.
		if isUniqueViolation(err) {
			if existing, ferr := h.orders.FindByIdempotencyKey(cmd.IdempotencyKey); ferr == nil && existing != nil {
				return existing, nil
			}
		}
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	// The order is placed. Everything below is cleanup that must not
	// fail the placement.
	if cmd.SaveAddress {
		record := &domain.ShippingAddressRecord{
			UserID:     cmd.UserID,
			FullName:   cmd.ShippingAddress.FullName,
			Phone:      cmd.ShippingAddress.Phone,
			Email:      cmd.ShippingAddress.Email,
			Address:    cmd.ShippingAddress.Address,
			City:       cmd.ShippingAddress.City,
			Region:     cmd.ShippingAddress.Region,
			PostalCode: cmd.ShippingAddress.PostalCode,
		}
		if err := h.orders.SaveShippingAddress(record); err != nil {
			logger.Logger.Warn().
				Err(err).
				Uint("user_id", cmd.UserID).
				Str("order_number", order.Number).
				Msg("Failed to save shipping address")
		}
	}

	if err := h.carts.DeleteByUser(cmd.UserID); err != nil {
		logger.Logger.Warn().
			Err(err).
			Uint("user_id", cmd.UserID).
			Str("order_number", order.Number).
			Msg("Failed to clear cart after order placement")
	}

	if h.publisher != nil {
		event := kafka.OrderPlacedEvent{
			OrderID:       order.ID,
			OrderNumber:   order.Number,
			UserID:        order.UserID,
			TotalAmount:   order.TotalAmount,
			PaymentMethod: order.PaymentMethod,
		}
		for _, line := range lines {
			event.Lines = append(event.Lines, kafka.OrderPlacedLine{
				ProductID: line.ProductID,
				Quantity:  line.Quantity,
				Price:     line.Price,
			})
		}
		if err := h.publisher.PublishOrderPlaced(ctx, event); err != nil {
			logger.Logger.Warn().
				Err(err).
				Str("order_number", order.Number).
				Msg("Failed to publish order placed event")
		}
	}

	return order, nil
}

func (h *PlaceOrderHandler) acquire(userID uint) bool {
	h.inFlightMu.Lock()
	defer h.inFlightMu.Unlock()
	if _, busy := h.inFlight[userID]; busy {
		return false
	}
	h.inFlight[userID] = struct{}{}
	return true
}

func (h *PlaceOrderHandler) release(userID uint) {
	h.inFlightMu.Lock()
	defer h.inFlightMu.Unlock()
	delete(h.inFlight, userID)
}

func marshalAddress(address domain.ShippingAddress) (string, error) {
	data, err := json.Marshal(address)
	if err != nil {
		return "", fmt.Errorf("failed to encode shipping address: %w", err)
	}
	return string(data), nil
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint")
}
