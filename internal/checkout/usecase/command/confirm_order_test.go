package command

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cart "github.com/sardorbek/bozor/internal/cart/domain"
	catalog "github.com/sardorbek/bozor/internal/catalog/domain"
	"github.com/sardorbek/bozor/internal/checkout/domain"
	"github.com/sardorbek/bozor/internal/checkout/repository"
	order "github.com/sardorbek/bozor/internal/order/domain"
	ordercmd "github.com/sardorbek/bozor/internal/order/usecase/command"
	"github.com/sardorbek/bozor/internal/pricing"
)

type memOrderRepo struct {
	orders map[uint]*order.Order
	nextID uint
}

func newMemOrderRepo() *memOrderRepo {
	return &memOrderRepo{orders: make(map[uint]*order.Order)}
}

func (r *memOrderRepo) CreateWithItems(o *order.Order, items []order.OrderItem) error {
	for _, existing := range r.orders {
		if existing.IdempotencyKey == o.IdempotencyKey {
			return fmt.Errorf("duplicate key value violates unique constraint")
		}
	}
	r.nextID++
	o.ID = r.nextID
	o.Items = items
	stored := *o
	r.orders[o.ID] = &stored
	return nil
}

func (r *memOrderRepo) FindByID(id uint) (*order.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	return o, nil
}

func (r *memOrderRepo) FindByUser(userID uint) ([]order.Order, error) {
	var out []order.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *memOrderRepo) FindByIdempotencyKey(key string) (*order.Order, error) {
	for _, o := range r.orders {
		if o.IdempotencyKey == key {
			return o, nil
		}
	}
	return nil, nil
}

func (r *memOrderRepo) UpdateStatus(id uint, status string) error { return nil }

func (r *memOrderRepo) SaveShippingAddress(record *order.ShippingAddressRecord) error { return nil }

func (r *memOrderRepo) Count() (int64, error) { return int64(len(r.orders)), nil }

type memCartRepo struct {
	items map[uint]*cart.CartItem
}

func newMemCartRepo() *memCartRepo {
	return &memCartRepo{items: make(map[uint]*cart.CartItem)}
}

func (r *memCartRepo) seed(id, userID, productID uint, quantity int, price float64) {
	r.items[id] = &cart.CartItem{
		ID:        id,
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
		Product:   catalog.Product{ID: productID, NewPrice: price},
	}
}

func (r *memCartRepo) FindByUser(userID uint) ([]cart.CartItem, error) {
	var out []cart.CartItem
	for _, item := range r.items {
		if item.UserID == userID {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (r *memCartRepo) FindByID(id uint) (*cart.CartItem, error) { return r.items[id], nil }

func (r *memCartRepo) Insert(item *cart.CartItem) error { return nil }

func (r *memCartRepo) IncrementQuantity(userID, productID uint, delta int) (int64, error) {
	return 0, nil
}

func (r *memCartRepo) UpdateQuantity(id uint, quantity int) error { return nil }

func (r *memCartRepo) Delete(id uint) error { return nil }

func (r *memCartRepo) DeleteByUser(userID uint) error {
	for id, item := range r.items {
		if item.UserID == userID {
			delete(r.items, id)
		}
	}
	return nil
}

func (r *memCartRepo) CountByUser(userID uint) (int64, error) {
	var count int64
	for _, item := range r.items {
		if item.UserID == userID {
			count++
		}
	}
	return count, nil
}

func checkoutAddress() order.ShippingAddress {
	return order.ShippingAddress{
		FullName:   "Jasur Toshev",
		Phone:      "+998935551122",
		Email:      "jasur@example.com",
		Address:    "Bobur ko'chasi 3",
		City:       "Bukhara",
		Region:     "Bukhara",
		PostalCode: "200100",
	}
}

func setupCheckout(t *testing.T) (*StartSessionHandler, *SubmitShippingHandler, *SubmitPaymentHandler, *ConfirmOrderHandler, *memCartRepo, *memOrderRepo) {
	t.Helper()
	store := repository.NewMemorySessionStore()
	carts := newMemCartRepo()
	orders := newMemOrderRepo()
	placeOrder := ordercmd.NewPlaceOrderHandler(orders, carts, pricing.DefaultConfig(), nil)

	return NewStartSessionHandler(store, carts),
		NewSubmitShippingHandler(store),
		NewSubmitPaymentHandler(store),
		NewConfirmOrderHandler(store, placeOrder),
		carts, orders
}

func TestCheckoutFlowPlacesOrder(t *testing.T) {
	start, shipping, payment, confirm, carts, orders := setupCheckout(t)
	carts.seed(1, 1, 10, 2, 60000)

	session, err := start.Handle(StartSessionCommand{UserID: 1})
	require.NoError(t, err)

	_, err = shipping.Handle(SubmitShippingCommand{
		UserID:    1,
		SessionID: session.ID,
		Address:   checkoutAddress(),
	})
	require.NoError(t, err)

	_, err = payment.Handle(SubmitPaymentCommand{
		UserID:    1,
		SessionID: session.ID,
		Method:    order.PaymentMethodCash,
	})
	require.NoError(t, err)

	done, err := confirm.Handle(context.Background(), ConfirmOrderCommand{UserID: 1, SessionID: session.ID})
	require.NoError(t, err)
	assert.Equal(t, domain.StepSuccess, done.Step)
	assert.NotZero(t, done.OrderID)

	count, err := orders.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	cartCount, err := carts.CountByUser(1)
	require.NoError(t, err)
	assert.Zero(t, cartCount)
}

func TestCheckoutStartRequiresNonEmptyCart(t *testing.T) {
	start, _, _, _, _, _ := setupCheckout(t)

	_, err := start.Handle(StartSessionCommand{UserID: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cart is empty")
}

func TestCheckoutConfirmTwiceReturnsSameOrder(t *testing.T) {
	start, shipping, payment, confirm, carts, orders := setupCheckout(t)
	carts.seed(1, 1, 10, 1, 60000)

	session, err := start.Handle(StartSessionCommand{UserID: 1})
	require.NoError(t, err)
	_, err = shipping.Handle(SubmitShippingCommand{UserID: 1, SessionID: session.ID, Address: checkoutAddress()})
	require.NoError(t, err)
	_, err = payment.Handle(SubmitPaymentCommand{UserID: 1, SessionID: session.ID, Method: order.PaymentMethodCash})
	require.NoError(t, err)

	first, err := confirm.Handle(context.Background(), ConfirmOrderCommand{UserID: 1, SessionID: session.ID})
	require.NoError(t, err)

	second, err := confirm.Handle(context.Background(), ConfirmOrderCommand{UserID: 1, SessionID: session.ID})
	require.NoError(t, err)

	assert.Equal(t, first.OrderID, second.OrderID)
	count, err := orders.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestCheckoutConfirmBeforeReviewFails(t *testing.T) {
	start, _, _, confirm, carts, _ := setupCheckout(t)
	carts.seed(1, 1, 10, 1, 60000)

	session, err := start.Handle(StartSessionCommand{UserID: 1})
	require.NoError(t, err)

	_, err = confirm.Handle(context.Background(), ConfirmOrderCommand{UserID: 1, SessionID: session.ID})
	require.Error(t, err)
}

func TestCheckoutSessionHiddenFromOtherUsers(t *testing.T) {
	start, shipping, _, _, carts, _ := setupCheckout(t)
	carts.seed(1, 1, 10, 1, 60000)

	session, err := start.Handle(StartSessionCommand{UserID: 1})
	require.NoError(t, err)

	_, err = shipping.Handle(SubmitShippingCommand{UserID: 2, SessionID: session.ID, Address: checkoutAddress()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
