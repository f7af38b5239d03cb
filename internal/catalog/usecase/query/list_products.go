package query

import (
	"fmt"

	"github.com/sardorbek/bozor/internal/catalog/domain"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// ListProductsQuery represents the query to list products with filters
type ListProductsQuery struct {
	Search   string
	Category string
	Brand    string
	Gender   string
	SortBy   string
	Limit    int
	Offset   int
}

// ListProductsHandler handles filtered product listings
type ListProductsHandler struct {
	repo domain.ProductRepository
}

// NewListProductsHandler creates a new list products handler
func NewListProductsHandler(repo domain.ProductRepository) *ListProductsHandler {
	return &ListProductsHandler{repo: repo}
}

// Handle executes the list products query
func (h *ListProductsHandler) Handle(q ListProductsQuery) ([]domain.Product, error) {
	switch q.SortBy {
	case "", domain.SortByName, domain.SortByPriceAsc, domain.SortByPriceDesc, domain.SortByFeatured:
	default:
		return nil, fmt.Errorf("unknown sort order: %s", q.SortBy)
	}

	limit := q.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	filter := domain.ListFilter{
		Search:   q.Search,
		Category: q.Category,
		Brand:    q.Brand,
		Gender:   q.Gender,
		SortBy:   q.SortBy,
		Limit:    limit,
		Offset:   q.Offset,
	}

	products, err := h.repo.FindAll(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return products, nil
}
