package command

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cart "github.com/sardorbek/bozor/internal/cart/domain"
	catalog "github.com/sardorbek/bozor/internal/catalog/domain"
	"github.com/sardorbek/bozor/internal/order/domain"
	"github.com/sardorbek/bozor/internal/pricing"
)

type fakeOrderRepo struct {
	orders      map[uint]*domain.Order
	addresses   []domain.ShippingAddressRecord
	nextID      uint
	failCreate  bool
	failAddress bool
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[uint]*domain.Order)}
}

func (r *fakeOrderRepo) CreateWithItems(order *domain.Order, items []domain.OrderItem) error {
	if r.failCreate {
		return fmt.Errorf("insert failed")
	}
	for _, o := range r.orders {
		if o.IdempotencyKey == order.IdempotencyKey {
			return fmt.Errorf("duplicate key value violates unique constraint")
		}
	}
	r.nextID++
	order.ID = r.nextID
	for i := range items {
		items[i].OrderID = order.ID
	}
	order.Items = items
	stored := *order
	r.orders[order.ID] = &stored
	return nil
}

func (r *fakeOrderRepo) FindByID(id uint) (*domain.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	return order, nil
}

func (r *fakeOrderRepo) FindByUser(userID uint) ([]domain.Order, error) {
	var out []domain.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) FindByIdempotencyKey(key string) (*domain.Order, error) {
	for _, o := range r.orders {
		if o.IdempotencyKey == key {
			return o, nil
		}
	}
	return nil, nil
}

func (r *fakeOrderRepo) UpdateStatus(id uint, status string) error {
	order, ok := r.orders[id]
	if !ok {
		return fmt.Errorf("order not found")
	}
	order.Status = status
	return nil
}

func (r *fakeOrderRepo) SaveShippingAddress(record *domain.ShippingAddressRecord) error {
	if r.failAddress {
		return fmt.Errorf("insert failed")
	}
	r.addresses = append(r.addresses, *record)
	return nil
}

func (r *fakeOrderRepo) Count() (int64, error) {
	return int64(len(r.orders)), nil
}

type fakeCartRepo struct {
	items  map[uint]*cart.CartItem
	nextID uint
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{items: make(map[uint]*cart.CartItem)}
}

func (r *fakeCartRepo) seed(userID, productID uint, quantity int, price float64) {
	r.nextID++
	r.items[r.nextID] = &cart.CartItem{
		ID:        r.nextID,
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
		Product:   catalog.Product{ID: productID, NewPrice: price},
	}
}

func (r *fakeCartRepo) FindByUser(userID uint) ([]cart.CartItem, error) {
	var out []cart.CartItem
	for _, item := range r.items {
		if item.UserID == userID {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (r *fakeCartRepo) FindByID(id uint) (*cart.CartItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return item, nil
}

func (r *fakeCartRepo) Insert(item *cart.CartItem) error {
	r.nextID++
	item.ID = r.nextID
	stored := *item
	r.items[item.ID] = &stored
	return nil
}

func (r *fakeCartRepo) IncrementQuantity(userID, productID uint, delta int) (int64, error) {
	for _, item := range r.items {
		if item.UserID == userID && item.ProductID == productID {
			item.Quantity += delta
			return 1, nil
		}
	}
	return 0, nil
}

func (r *fakeCartRepo) UpdateQuantity(id uint, quantity int) error {
	item, ok := r.items[id]
	if !ok {
		return fmt.Errorf("cart item not found")
	}
	item.Quantity = quantity
	return nil
}

func (r *fakeCartRepo) Delete(id uint) error {
	delete(r.items, id)
	return nil
}

func (r *fakeCartRepo) DeleteByUser(userID uint) error {
	for id, item := range r.items {
		if item.UserID == userID {
			delete(r.items, id)
		}
	}
	return nil
}

func (r *fakeCartRepo) CountByUser(userID uint) (int64, error) {
	var count int64
	for _, item := range r.items {
		if item.UserID == userID {
			count++
		}
	}
	return count, nil
}

func validAddress() domain.ShippingAddress {
	return domain.ShippingAddress{
		FullName:   "Sardor Alimov",
		Phone:      "+998901234567",
		Email:      "sardor@example.com",
		Address:    "Amir Temur ko'chasi 15",
		City:       "Tashkent",
		Region:     "Tashkent",
		PostalCode: "100000",
	}
}

func TestPlaceOrderCreatesOrderAndClearsCart(t *testing.T) {
	orders := newFakeOrderRepo()
	carts := newFakeCartRepo()
	carts.seed(1, 10, 2, 45000)
	carts.seed(1, 11, 1, 120000)

	handler := NewPlaceOrderHandler(orders, carts, pricing.DefaultConfig(), nil)

	order, err := handler.Handle(context.Background(), PlaceOrderCommand{
		UserID:          1,
		IdempotencyKey:  "key-1",
		ShippingAddress: validAddress(),
		PaymentMethod:   domain.PaymentMethodCard,
	})
	require.NoError(t, err)
	require.NotNil(t, order)

	// Subtotal 210000 is over the free shipping threshold.
	assert.InDelta(t, 210000*1.12, order.TotalAmount, 0.001)
	assert.Equal(t, domain.StatusPending, order.Status)
	assert.Equal(t, domain.PaymentStatusPaid, order.PaymentStatus)
	assert.Len(t, order.Items, 2)
	assert.Contains(t, order.Number, "ORD-")

	count, err := carts.CountByUser(1)
	require.NoError(t, err)
	assert.Zero(t, count, "cart should be cleared after placement")
}

func TestPlaceOrderSnapshotsPrices(t *testing.T) {
	orders := newFakeOrderRepo()
	carts := newFakeCartRepo()
	carts.seed(1, 10, 3, 45000)

	handler := NewPlaceOrderHandler(orders, carts, pricing.DefaultConfig(), nil)

	order, err := handler.Handle(context.Background(), PlaceOrderCommand{
		UserID:          1,
		IdempotencyKey:  "key-1",
		ShippingAddress: validAddress(),
		PaymentMethod:   domain.PaymentMethodCash,
	})
	require.NoError(t, err)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 45000.0, order.Items[0].Price)
	assert.Equal(t, 3, order.Items[0].Quantity)
	assert.Equal(t, domain.PaymentStatusPending, order.PaymentStatus)
}

func TestPlaceOrderReplaysSameIdempotencyKey(t *testing.T) {
	orders := newFakeOrderRepo()
	carts := newFakeCartRepo()
	carts.seed(1, 10, 1, 50000)

	handler := NewPlaceOrderHandler(orders, carts, pricing.DefaultConfig(), nil)

	first, err := handler.Handle(context.Background(), PlaceOrderCommand{
		UserID:          1,
		IdempotencyKey:  "key-1",
		ShippingAddress: validAddress(),
		PaymentMethod:   domain.PaymentMethodCard,
	})
	require.NoError(t, err)

	second, err := handler.Handle(context.Background(), PlaceOrderCommand{
		UserID:          1,
		IdempotencyKey:  "key-1",
		ShippingAddress: validAddress(),
		PaymentMethod:   domain.PaymentMethodCard,
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)

	count, err := orders.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestPlaceOrderWithEmptyCartFails(t *testing.T) {
	handler := NewPlaceOrderHandler(newFakeOrderRepo(), newFakeCartRepo(), pricing.DefaultConfig(), nil)

	_, err := handler.Handle(context.Background(), PlaceOrderCommand{
		UserID:          1,
		IdempotencyKey:  "key-1",
		ShippingAddress: validAddress(),
		PaymentMethod:   domain.PaymentMethodCard,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cart is empty")
}

func TestPlaceOrderFailedInsertLeavesNothingBehind(t *testing.T) {
	orders := newFakeOrderRepo()
	orders.failCreate = true
	carts := newFakeCartRepo()
	carts.seed(1, 10, 1, 50000)

	handler := NewPlaceOrderHandler(orders, carts, pricing.DefaultConfig(), nil)

	_, err := handler.Handle(context.Background(), PlaceOrderCommand{
		UserID:          1,
		IdempotencyKey:  "key-1",
		ShippingAddress: validAddress(),
		PaymentMethod:   domain.PaymentMethodCard,
	})
	require.Error(t, err)

	count, err := orders.Count()
	require.NoError(t, err)
	assert.Zero(t, count)

	cartCount, err := carts.CountByUser(1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), cartCount, "cart must survive a failed placement")
}

func TestPlaceOrderAddressSaveFailureDoesNotFailOrder(t *testing.T) {
	orders := newFakeOrderRepo()
	orders.failAddress = true
	carts := newFakeCartRepo()
	carts.seed(1, 10, 1, 50000)

	handler := NewPlaceOrderHandler(orders, carts, pricing.DefaultConfig(), nil)

	order, err := handler.Handle(context.Background(), PlaceOrderCommand{
		UserID:          1,
		IdempotencyKey:  "key-1",
		ShippingAddress: validAddress(),
		PaymentMethod:   domain.PaymentMethodCard,
		SaveAddress:     true,
	})
	require.NoError(t, err)
	assert.NotNil(t, order)
}

func TestPlaceOrderValidation(t *testing.T) {
	handler := NewPlaceOrderHandler(newFakeOrderRepo(), newFakeCartRepo(), pricing.DefaultConfig(), nil)

	_, err := handler.Handle(context.Background(), PlaceOrderCommand{
		UserID:          1,
		IdempotencyKey:  "key-1",
		ShippingAddress: validAddress(),
		PaymentMethod:   "crypto",
	})
	assert.Error(t, err)

	incomplete := validAddress()
	incomplete.City = ""
	_, err = handler.Handle(context.Background(), PlaceOrderCommand{
		UserID:          1,
		IdempotencyKey:  "key-1",
		ShippingAddress: incomplete,
		PaymentMethod:   domain.PaymentMethodCard,
	})
	assert.Error(t, err)

	_, err = handler.Handle(context.Background(), PlaceOrderCommand{
		UserID:          1,
		ShippingAddress: validAddress(),
		PaymentMethod:   domain.PaymentMethodCard,
	})
	assert.Error(t, err, "missing idempotency key must be rejected")
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	orders := newFakeOrderRepo()
	handler := NewUpdateStatusHandler(orders)

	err := handler.Handle(UpdateStatusCommand{OrderID: 1, Status: "lost"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid order status")
}
