package domain

import (
	"time"

	catalog "github.com/sardorbek/bozor/internal/catalog/domain"
)

// Like marks a product as a user's favorite. Presence of the row is the
// whole state; the (user_id, product_id) pair is unique so a double-clicked
// toggle can never create two rows.
type Like struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_like_user_product"`
	ProductID uint      `json:"product_id" gorm:"not null;uniqueIndex:idx_like_user_product"`
	CreatedAt time.Time `json:"created_at"`

	Product catalog.Product `json:"product" gorm:"foreignKey:ProductID"`
}

// TableName specifies the table name
func (Like) TableName() string {
	return "user_likes"
}

// LikeRepository defines the contract for like data access
type LikeRepository interface {
	FindByUser(userID uint) ([]Like, error)
	FindByUserAndProduct(userID, productID uint) (*Like, error)
	Insert(like *Like) error
	Delete(id uint) error
}
