package command

import (
	"fmt"
	"time"

	"github.com/sardorbek/bozor/internal/catalog/domain"
)

// CreateProductCommand represents the command to create a new product
type CreateProductCommand struct {
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

// CreateProductHandler handles product creation
type CreateProductHandler struct {
	repo domain.ProductRepository
}

// NewCreateProductHandler creates a new create product handler
func NewCreateProductHandler(repo domain.ProductRepository) *CreateProductHandler {
	return &CreateProductHandler{repo: repo}
}

// Handle executes the create product command
func (h *CreateProductHandler) Handle(cmd CreateProductCommand) (*domain.Product, error) {
	if cmd.Name == "" {
		return nil, fmt.Errorf("product name is required")
	}
	if cmd.NewPrice < 0 || cmd.OldPrice < 0 {
		return nil, fmt.Errorf("price cannot be negative")
	}
	if cmd.Quantity < 0 {
		return nil, fmt.Errorf("quantity cannot be negative")
	}

	product := &domain.Product{
		Name:        cmd.Name,
		Brand:       cmd.Brand,
		Category:    cmd.Category,
		Gender:      cmd.Gender,
		Description: cmd.Description,
		ImageURL:    cmd.ImageURL,
		OldPrice:    cmd.OldPrice,
		NewPrice:    cmd.NewPrice,
		Quantity:    cmd.Quantity,
		Featured:    cmd.Featured,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := h.repo.Create(product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}
