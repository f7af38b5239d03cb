//go:build wireinject
// +build wireinject

package checkout

import (
	"github.com/google/wire"

	cart "github.com/sardorbek/bozor/internal/cart/domain"
	"github.com/sardorbek/bozor/internal/checkout/delivery/http"
	"github.com/sardorbek/bozor/internal/checkout/domain"
	"github.com/sardorbek/bozor/internal/checkout/repository"
	ordercmd "github.com/sardorbek/bozor/internal/order/usecase/command"
)

// ProvideSessionStore provides the in-memory session store
func ProvideSessionStore() domain.SessionStore {
	return repository.NewMemorySessionStore()
}

// Wire sets
var StoreSet = wire.NewSet(
	ProvideSessionStore,
)

// InitializeHTTPHandler initializes the checkout HTTP handler with all dependencies
func InitializeHTTPHandler(carts cart.CartRepository, placeOrder *ordercmd.PlaceOrderHandler) (*http.CheckoutHandler, error) {
	wire.Build(
		StoreSet,
		http.NewCheckoutHandler,
	)
	return nil, nil
}
