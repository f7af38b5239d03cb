package command

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sardorbek/bozor/internal/cart/domain"
	catalog "github.com/sardorbek/bozor/internal/catalog/domain"
)

// fakeCartRepo is an in-memory CartRepository for tests
type fakeCartRepo struct {
	items  map[uint]*domain.CartItem
	nextID uint
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{items: make(map[uint]*domain.CartItem), nextID: 1}
}

func (f *fakeCartRepo) FindByUser(userID uint) ([]domain.CartItem, error) {
	var out []domain.CartItem
	for _, item := range f.items {
		if item.UserID == userID {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (f *fakeCartRepo) FindByID(id uint) (*domain.CartItem, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, fmt.Errorf("record not found")
	}
	copied := *item
	return &copied, nil
}

func (f *fakeCartRepo) Insert(item *domain.CartItem) error {
	for _, existing := range f.items {
		if existing.UserID == item.UserID && existing.ProductID == item.ProductID {
			return fmt.Errorf("duplicate key value violates unique constraint")
		}
	}
	item.ID = f.nextID
	f.nextID++
	copied := *item
	f.items[item.ID] = &copied
	return nil
}

func (f *fakeCartRepo) IncrementQuantity(userID, productID uint, delta int) (int64, error) {
	for _, item := range f.items {
		if item.UserID == userID && item.ProductID == productID {
			item.Quantity += delta
			item.UpdatedAt = time.Now()
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeCartRepo) UpdateQuantity(id uint, quantity int) error {
	item, ok := f.items[id]
	if !ok {
		return fmt.Errorf("record not found")
	}
	item.Quantity = quantity
	return nil
}

func (f *fakeCartRepo) Delete(id uint) error {
	delete(f.items, id)
	return nil
}

func (f *fakeCartRepo) DeleteByUser(userID uint) error {
	for id, item := range f.items {
		if item.UserID == userID {
			delete(f.items, id)
		}
	}
	return nil
}

func (f *fakeCartRepo) CountByUser(userID uint) (int64, error) {
	var count int64
	for _, item := range f.items {
		if item.UserID == userID {
			count++
		}
	}
	return count, nil
}

// fakeProductRepo serves FindByID from a fixed map; the cart commands use
// nothing else
type fakeProductRepo struct {
	products map[uint]*catalog.Product
}

func (f *fakeProductRepo) FindByID(id uint) (*catalog.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, fmt.Errorf("record not found")
	}
	return p, nil
}

func (f *fakeProductRepo) Create(*catalog.Product) error { return nil }
func (f *fakeProductRepo) FindAll(catalog.ListFilter) ([]catalog.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) FindFeatured(int) ([]catalog.Product, error) { return nil, nil }
func (f *fakeProductRepo) FindByCategoryExcluding(string, uint, int) ([]catalog.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) FindByBrandExcluding(string, uint, int) ([]catalog.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) FindAnyExcluding(uint, int) ([]catalog.Product, error) { return nil, nil }
func (f *fakeProductRepo) Facets() (*catalog.Facets, error)                      { return nil, nil }
func (f *fakeProductRepo) Update(*catalog.Product) error                         { return nil }
func (f *fakeProductRepo) Delete(uint) error                                     { return nil }
func (f *fakeProductRepo) Count() (int64, error)                                 { return 0, nil }
func (f *fakeProductRepo) Stats() (*catalog.Stats, error)                        { return nil, nil }
func (f *fakeProductRepo) DecrementStock(uint, int) error                        { return nil }

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[uint]*catalog.Product{
		1: {ID: 1, Name: "Atlas ko'ylak", Brand: "Zarina", NewPrice: 45000, Quantity: 10},
		2: {ID: 2, Name: "Chopon", Brand: "Ideal", NewPrice: 120000, Quantity: 3},
	}}
}

func TestAddToCartTwiceMergesIntoOneLine(t *testing.T) {
	carts := newFakeCartRepo()
	handler := NewAddToCartHandler(carts, newFakeProductRepo())

	require.NoError(t, handler.Handle(AddToCartCommand{UserID: 7, ProductID: 1, Quantity: 1}))
	require.NoError(t, handler.Handle(AddToCartCommand{UserID: 7, ProductID: 1, Quantity: 1}))

	items, err := carts.FindByUser(7)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestAddToCartDefaultsQuantityToOne(t *testing.T) {
	carts := newFakeCartRepo()
	handler := NewAddToCartHandler(carts, newFakeProductRepo())

	require.NoError(t, handler.Handle(AddToCartCommand{UserID: 7, ProductID: 2}))

	items, _ := carts.FindByUser(7)
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestAddToCartRejectsUnknownProduct(t *testing.T) {
	handler := NewAddToCartHandler(newFakeCartRepo(), newFakeProductRepo())

	err := handler.Handle(AddToCartCommand{UserID: 7, ProductID: 99})
	assert.ErrorContains(t, err, "product not found")
}

func TestAddToCartKeepsUsersSeparate(t *testing.T) {
	carts := newFakeCartRepo()
	handler := NewAddToCartHandler(carts, newFakeProductRepo())

	require.NoError(t, handler.Handle(AddToCartCommand{UserID: 7, ProductID: 1}))
	require.NoError(t, handler.Handle(AddToCartCommand{UserID: 8, ProductID: 1}))

	sevens, _ := carts.FindByUser(7)
	eights, _ := carts.FindByUser(8)
	assert.Len(t, sevens, 1)
	assert.Len(t, eights, 1)
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	carts := newFakeCartRepo()
	add := NewAddToCartHandler(carts, newFakeProductRepo())
	update := NewUpdateQuantityHandler(carts)

	require.NoError(t, add.Handle(AddToCartCommand{UserID: 7, ProductID: 1, Quantity: 3}))
	items, _ := carts.FindByUser(7)
	require.Len(t, items, 1)

	require.NoError(t, update.Handle(UpdateQuantityCommand{UserID: 7, ItemID: items[0].ID, Quantity: 0}))

	items, _ = carts.FindByUser(7)
	assert.Empty(t, items)
}

func TestUpdateQuantitySetsNewValue(t *testing.T) {
	carts := newFakeCartRepo()
	add := NewAddToCartHandler(carts, newFakeProductRepo())
	update := NewUpdateQuantityHandler(carts)

	require.NoError(t, add.Handle(AddToCartCommand{UserID: 7, ProductID: 1}))
	items, _ := carts.FindByUser(7)
	require.Len(t, items, 1)

	require.NoError(t, update.Handle(UpdateQuantityCommand{UserID: 7, ItemID: items[0].ID, Quantity: 5}))

	items, _ = carts.FindByUser(7)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestUpdateQuantityChecksOwnership(t *testing.T) {
	carts := newFakeCartRepo()
	add := NewAddToCartHandler(carts, newFakeProductRepo())
	update := NewUpdateQuantityHandler(carts)

	require.NoError(t, add.Handle(AddToCartCommand{UserID: 7, ProductID: 1}))
	items, _ := carts.FindByUser(7)
	require.Len(t, items, 1)

	err := update.Handle(UpdateQuantityCommand{UserID: 8, ItemID: items[0].ID, Quantity: 5})
	assert.ErrorContains(t, err, "not found")
}

func TestClearCartRemovesAllLines(t *testing.T) {
	carts := newFakeCartRepo()
	add := NewAddToCartHandler(carts, newFakeProductRepo())
	clearCart := NewClearCartHandler(carts)

	require.NoError(t, add.Handle(AddToCartCommand{UserID: 7, ProductID: 1}))
	require.NoError(t, add.Handle(AddToCartCommand{UserID: 7, ProductID: 2}))

	require.NoError(t, clearCart.Handle(ClearCartCommand{UserID: 7}))

	count, _ := carts.CountByUser(7)
	assert.Equal(t, int64(0), count)
}
