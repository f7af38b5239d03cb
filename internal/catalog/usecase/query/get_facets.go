package query

import (
	"fmt"

	"github.com/sardorbek/bozor/internal/catalog/domain"
)

// GetFacetsQuery represents the query for filter facets
type GetFacetsQuery struct{}

// GetFacetsHandler returns the distinct categories, brands and genders
// the listing filters offer
type GetFacetsHandler struct {
	repo domain.ProductRepository
}

// NewGetFacetsHandler creates a new get facets handler
func NewGetFacetsHandler(repo domain.ProductRepository) *GetFacetsHandler {
	return &GetFacetsHandler{repo: repo}
}

// Handle executes the facets query
func (h *GetFacetsHandler) Handle(_ GetFacetsQuery) (*domain.Facets, error) {
	facets, err := h.repo.Facets()
	if err != nil {
		return nil, fmt.Errorf("failed to load facets: %w", err)
	}
	return facets, nil
}
