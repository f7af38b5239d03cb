package query

import (
	"fmt"

	"github.com/sardorbek/bozor/internal/catalog/domain"
)

// GetStatsQuery represents the query for catalog statistics
type GetStatsQuery struct{}

// GetStatsHandler handles catalog statistics queries
type GetStatsHandler struct {
	repo domain.ProductRepository
}

// NewGetStatsHandler creates a new get stats handler
func NewGetStatsHandler(repo domain.ProductRepository) *GetStatsHandler {
	return &GetStatsHandler{repo: repo}
}

// Handle executes the stats query
func (h *GetStatsHandler) Handle(_ GetStatsQuery) (*domain.Stats, error) {
	stats, err := h.repo.Stats()
	if err != nil {
		return nil, fmt.Errorf("failed to load stats: %w", err)
	}
	return stats, nil
}
