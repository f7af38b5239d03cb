package command

import (
	"fmt"
	"time"

	"github.com/sardorbek/bozor/internal/catalog/domain"
)

// UpdateProductCommand represents the command to update a product
type UpdateProductCommand struct {
	ID          uint
	Name        string
	Brand       string
	Category    string
	Gender      string
	Description string
	ImageURL    string
	OldPrice    float64
	NewPrice    float64
	Quantity    int
	Featured    bool
}

// UpdateProductHandler handles product updates
type UpdateProductHandler struct {
	repo domain.ProductRepository
}

// NewUpdateProductHandler creates a new update product handler
func NewUpdateProductHandler(repo domain.ProductRepository) *UpdateProductHandler {
	return &UpdateProductHandler{repo: repo}
}

// Handle executes the update product command
func (h *UpdateProductHandler) Handle(cmd UpdateProductCommand) (*domain.Product, error) {
	if cmd.ID == 0 {
		return nil, fmt.Errorf("product id is required")
	}
	if cmd.Name == "" {
		return nil, fmt.Errorf("product name is required")
	}
	if cmd.NewPrice < 0 || cmd.OldPrice < 0 {
		return nil, fmt.Errorf("price cannot be negative")
	}
	if cmd.Quantity < 0 {
		return nil, fmt.Errorf("quantity cannot be negative")
	}

	product, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, fmt.Errorf("product not found")
	}

	product.Name = cmd.Name
	product.Brand = cmd.Brand
	product.Category = cmd.Category
	product.Gender = cmd.Gender
	product.Description = cmd.Description
	product.ImageURL = cmd.ImageURL
	product.OldPrice = cmd.OldPrice
	product.NewPrice = cmd.NewPrice
	product.Quantity = cmd.Quantity
	product.Featured = cmd.Featured
	product.UpdatedAt = time.Now()

	if err := h.repo.Update(product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return product, nil
}
