package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	catalog "github.com/sardorbek/bozor/internal/catalog/domain"
)

// Order statuses
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusShipping   = "shipping"
	StatusCompleted  = "completed"
)

// Payment methods
const (
	PaymentMethodCard = "card"
	PaymentMethodCash = "cash"
)

// Payment statuses
const (
	PaymentStatusPaid    = "paid"
	PaymentStatusPending = "pending"
)

// ValidStatus checks whether s is a known order status
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipping, StatusCompleted:
		return true
	}
	return false
}

// Order represents a placed order
type Order struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	Number          string    `json:"number" gorm:"uniqueIndex;not null"`
	UserID          uint      `json:"user_id" gorm:"index;not null"`
	TotalAmount     float64   `json:"total_amount" gorm:"not null"`
	Status          string    `json:"status" gorm:"not null;default:'pending'"`
	ShippingAddress string    `json:"shipping_address" gorm:"type:jsonb"`
	PaymentMethod   string    `json:"payment_method" gorm:"not null"`
	PaymentStatus   string    `json:"payment_status" gorm:"not null"`
	IdempotencyKey  string    `json:"-" gorm:"uniqueIndex;not null"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	Items []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// OrderItem is a line of an order with the price captured at placement time
type OrderItem struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	OrderID   uint    `json:"order_id" gorm:"index;not null"`
	ProductID uint    `json:"product_id" gorm:"not null"`
	Quantity  int     `json:"quantity" gorm:"not null"`
	Price     float64 `json:"price" gorm:"not null"`

	Product catalog.Product `json:"product" gorm:"foreignKey:ProductID"`
}

// TableName returns the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "order_items"
}

// ShippingAddress holds the recipient details collected at checkout
type ShippingAddress struct {
	FullName   string `json:"full_name"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Address    string `json:"address"`
	City       string `json:"city"`
	Region     string `json:"region"`
	PostalCode string `json:"postal_code"`
}

// Validate checks that every address field is filled in
func (a ShippingAddress) Validate() error {
	fields := map[string]string{
		"full_name":   a.FullName,
		"phone":       a.Phone,
		"email":       a.Email,
		"address":     a.Address,
		"city":        a.City,
		"region":      a.Region,
		"postal_code": a.PostalCode,
	}
	for name, value := range fields {
		if value == "" {
			return fmt.Errorf("%s is required", name)
		}
	}
	return nil
}

// ShippingAddressRecord is a saved address for reuse on later orders
type ShippingAddressRecord struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserID     uint      `json:"user_id" gorm:"index;not null"`
	FullName   string    `json:"full_name" gorm:"not null"`
	Phone      string    `json:"phone" gorm:"not null"`
	Email      string    `json:"email" gorm:"not null"`
	Address    string    `json:"address" gorm:"not null"`
	City       string    `json:"city" gorm:"not null"`
	Region     string    `json:"region" gorm:"not null"`
	PostalCode string    `json:"postal_code" gorm:"not null"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName returns the table name for the ShippingAddressRecord model
func (ShippingAddressRecord) TableName() string {
	return "shipping_addresses"
}

// NewOrderNumber generates a short human-readable order number
func NewOrderNumber() string {
	return "ORD-" + uuid.New().String()[:8]
}

// PaymentStatusFor maps a payment method to the initial payment status
func PaymentStatusFor(method string) string {
	if method == PaymentMethodCard {
		return PaymentStatusPaid
	}
	return PaymentStatusPending
}

// OrderRepository defines the interface for order data access
type OrderRepository interface {
	CreateWithItems(order *Order, items []OrderItem) error
	FindByID(id uint) (*Order, error)
	FindByUser(userID uint) ([]Order, error)
	FindByIdempotencyKey(key string) (*Order, error)
	UpdateStatus(id uint, status string) error
	SaveShippingAddress(record *ShippingAddressRecord) error
	Count() (int64, error)
}
