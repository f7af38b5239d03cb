package domain

import (
	"time"

	catalog "github.com/sardorbek/bozor/internal/catalog/domain"
)

// CartItem is one cart line: a user, a product and a quantity. The
// (user_id, product_id) pair is unique, so a product can never occupy two
// lines in the same cart.
type CartItem struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_cart_user_product"`
	ProductID uint      `json:"product_id" gorm:"not null;uniqueIndex:idx_cart_user_product"`
	Quantity  int       `json:"quantity" gorm:"not null;default:1"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Product catalog.Product `json:"product" gorm:"foreignKey:ProductID"`
}

// TableName specifies the table name
func (CartItem) TableName() string {
	return "cart_items"
}

// LineTotal is the line's contribution to the cart subtotal
func (i *CartItem) LineTotal() float64 {
	return i.Product.NewPrice * float64(i.Quantity)
}

// Subtotal sums line totals over the loaded cart. It is always derived from
// the lines, never stored.
func Subtotal(items []CartItem) float64 {
	var sum float64
	for i := range items {
		sum += items[i].LineTotal()
	}
	return sum
}

// CartRepository defines the contract for cart data access
type CartRepository interface {
	FindByUser(userID uint) ([]CartItem, error)
	FindByID(id uint) (*CartItem, error)
	Insert(item *CartItem) error
	// IncrementQuantity atomically adds delta to the (user, product) line and
	// reports how many rows were touched. Zero means the line does not exist.
	IncrementQuantity(userID, productID uint, delta int) (int64, error)
	UpdateQuantity(id uint, quantity int) error
	Delete(id uint) error
	DeleteByUser(userID uint) error
	CountByUser(userID uint) (int64, error)
}
