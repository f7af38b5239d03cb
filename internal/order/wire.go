//go:build wireinject
// +build wireinject

package order

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	cart "github.com/sardorbek/bozor/internal/cart/domain"
	"github.com/sardorbek/bozor/internal/order/delivery/http"
	"github.com/sardorbek/bozor/internal/order/domain"
	"github.com/sardorbek/bozor/internal/order/repository"
	"github.com/sardorbek/bozor/internal/order/usecase/command"
	"github.com/sardorbek/bozor/internal/pricing"
)

// ProvideOrderRepository provides the order repository
func ProvideOrderRepository(db *gorm.DB) domain.OrderRepository {
	return repository.NewGormOrderRepository(db)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideOrderRepository,
)

// InitializeHTTPHandler initializes the order HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB, carts cart.CartRepository, cfg pricing.Config, publisher command.OrderEventPublisher) (*http.OrderHandler, error) {
	wire.Build(
		RepositorySet,
		http.NewOrderHandler,
	)
	return nil, nil
}
