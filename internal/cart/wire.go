//go:build wireinject
// +build wireinject

package cart

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/sardorbek/bozor/internal/cart/delivery/http"
	"github.com/sardorbek/bozor/internal/cart/domain"
	"github.com/sardorbek/bozor/internal/cart/repository"
	catalog "github.com/sardorbek/bozor/internal/catalog/domain"
	"github.com/sardorbek/bozor/internal/pricing"
)

// ProvideCartRepository provides the cart repository
func ProvideCartRepository(db *gorm.DB) domain.CartRepository {
	return repository.NewGormCartRepository(db)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideCartRepository,
)

// InitializeHTTPHandler initializes the cart HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB, products catalog.ProductRepository, cfg pricing.Config) (*http.CartHandler, error) {
	wire.Build(
		RepositorySet,
		http.NewCartHandler,
	)
	return nil, nil
}
