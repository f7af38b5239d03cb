package domain

import (
	"time"

	"gorm.io/gorm"
)

// Product represents a storefront product
type Product struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"not null"`
	Brand       string         `json:"brand" gorm:"index"`
	Category    string         `json:"category" gorm:"index"`
	Gender      string         `json:"gender" gorm:"index"`
	Description string         `json:"description"`
	ImageURL    string         `json:"image_url"`
	OldPrice    float64        `json:"old_price"`
	NewPrice    float64        `json:"new_price" gorm:"not null"`
	Quantity    int            `json:"quantity" gorm:"not null;default:0"` // units in stock
	Featured    bool           `json:"featured" gorm:"default:false"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// InStock reports whether the product has units left
func (p *Product) InStock() bool {
	return p.Quantity > 0
}

// Sort orders accepted by ListFilter
const (
	SortByName      = "name"
	SortByPriceAsc  = "price-asc"
	SortByPriceDesc = "price-desc"
	SortByFeatured  = "featured"
)

// ListFilter narrows and orders a product listing
type ListFilter struct {
	Search   string // matches name or brand, case-insensitive
	Category string
	Brand    string
	Gender   string
	SortBy   string
	Limit    int
	Offset   int
}

// Facets are the distinct filter values the listing UI offers
type Facets struct {
	Categories []string `json:"categories"`
	Brands     []string `json:"brands"`
	Genders    []string `json:"genders"`
}

// Stats summarizes the catalog
type Stats struct {
	TotalProducts int64 `json:"total_products"`
	FeaturedCount int64 `json:"featured_count"`
	OutOfStock    int64 `json:"out_of_stock"`
}

// ProductRepository defines the contract for product data access
type ProductRepository interface {
	Create(product *Product) error
	FindByID(id uint) (*Product, error)
	FindAll(filter ListFilter) ([]Product, error)
	FindFeatured(limit int) ([]Product, error)
	FindByCategoryExcluding(category string, excludeID uint, limit int) ([]Product, error)
	FindByBrandExcluding(brand string, excludeID uint, limit int) ([]Product, error)
	FindAnyExcluding(excludeID uint, limit int) ([]Product, error)
	Facets() (*Facets, error)
	Update(product *Product) error
	Delete(id uint) error
	Count() (int64, error)
	Stats() (*Stats, error)
	DecrementStock(id uint, qty int) error
}
