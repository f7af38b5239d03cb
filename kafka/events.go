package kafka

import "time"

// OrderPlacedLine is a single line of a placed order carried on the event
type OrderPlacedLine struct {
	ProductID uint    `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// OrderPlacedEvent represents an order placement event
type OrderPlacedEvent struct {
	EventID       string            `json:"event_id"`
	EventType     string            `json:"event_type"`
	OrderID       uint              `json:"order_id"`
	OrderNumber   string            `json:"order_number"`
	UserID        uint              `json:"user_id"`
	TotalAmount   float64           `json:"total_amount"`
	PaymentMethod string            `json:"payment_method"`
	Lines         []OrderPlacedLine `json:"lines"`
	Timestamp     time.Time         `json:"timestamp"`
}

// Event types
const (
	EventTypeOrderPlaced = "order.placed"
)

// Kafka topics
const (
	TopicOrderPlaced = "order-placed"
)
