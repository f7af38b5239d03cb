package query

import (
	"fmt"

	"github.com/sardorbek/bozor/internal/catalog/domain"
)

const relatedProductsLimit = 8

// RelatedProductsQuery represents the query for the related-products carousel
type RelatedProductsQuery struct {
	ProductID uint
}

// RelatedProductsHandler handles related product queries
type RelatedProductsHandler struct {
	repo domain.ProductRepository
}

// NewRelatedProductsHandler creates a new related products handler
func NewRelatedProductsHandler(repo domain.ProductRepository) *RelatedProductsHandler {
	return &RelatedProductsHandler{repo: repo}
}

// Handle fills the carousel up to its cap: same category first, then same
// brand, then anything else, never including the product itself twice.
func (h *RelatedProductsHandler) Handle(q RelatedProductsQuery) ([]domain.Product, error) {
	if q.ProductID == 0 {
		return nil, fmt.Errorf("product id is required")
	}

	product, err := h.repo.FindByID(q.ProductID)
	if err != nil {
		return nil, fmt.Errorf("product not found")
	}

	seen := map[uint]bool{product.ID: true}
	related := make([]domain.Product, 0, relatedProductsLimit)

	appendUnique := func(products []domain.Product) {
		for _, p := range products {
			if len(related) >= relatedProductsLimit || seen[p.ID] {
				continue
			}
			seen[p.ID] = true
			related = append(related, p)
		}
	}

	sameCategory, err := h.repo.FindByCategoryExcluding(product.Category, product.ID, relatedProductsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to find related products: %w", err)
	}
	appendUnique(sameCategory)

	if len(related) < relatedProductsLimit {
		sameBrand, err := h.repo.FindByBrandExcluding(product.Brand, product.ID, relatedProductsLimit-len(related))
		if err != nil {
			return nil, fmt.Errorf("failed to find related products: %w", err)
		}
		appendUnique(sameBrand)
	}

	if len(related) < relatedProductsLimit {
		others, err := h.repo.FindAnyExcluding(product.ID, relatedProductsLimit-len(related))
		if err != nil {
			return nil, fmt.Errorf("failed to find related products: %w", err)
		}
		appendUnique(others)
	}

	return related, nil
}
