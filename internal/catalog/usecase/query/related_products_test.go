package query

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sardorbek/bozor/internal/catalog/domain"
)

type stubProductRepo struct {
	products   map[uint]*domain.Product
	lastFilter domain.ListFilter
}

func newStubProductRepo(products ...domain.Product) *stubProductRepo {
	repo := &stubProductRepo{products: make(map[uint]*domain.Product)}
	for i := range products {
		p := products[i]
		repo.products[p.ID] = &p
	}
	return repo
}

func (r *stubProductRepo) Create(product *domain.Product) error {
	r.products[product.ID] = product
	return nil
}

func (r *stubProductRepo) FindByID(id uint) (*domain.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, fmt.Errorf("product not found")
	}
	return p, nil
}

func (r *stubProductRepo) FindAll(filter domain.ListFilter) ([]domain.Product, error) {
	r.lastFilter = filter
	var out []domain.Product
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProductRepo) FindFeatured(limit int) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range r.products {
		if p.Featured && len(out) < limit {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProductRepo) FindByCategoryExcluding(category string, excludeID uint, limit int) ([]domain.Product, error) {
	var out []domain.Product
	for id := uint(1); id <= uint(len(r.products))+10; id++ {
		p, ok := r.products[id]
		if !ok || p.ID == excludeID || p.Category != category {
			continue
		}
		if len(out) >= limit {
			break
		}
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProductRepo) FindByBrandExcluding(brand string, excludeID uint, limit int) ([]domain.Product, error) {
	var out []domain.Product
	for id := uint(1); id <= uint(len(r.products))+10; id++ {
		p, ok := r.products[id]
		if !ok || p.ID == excludeID || p.Brand != brand {
			continue
		}
		if len(out) >= limit {
			break
		}
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProductRepo) FindAnyExcluding(excludeID uint, limit int) ([]domain.Product, error) {
	var out []domain.Product
	for id := uint(1); id <= uint(len(r.products))+10; id++ {
		p, ok := r.products[id]
		if !ok || p.ID == excludeID {
			continue
		}
		if len(out) >= limit {
			break
		}
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProductRepo) Facets() (*domain.Facets, error) { return &domain.Facets{}, nil }

func (r *stubProductRepo) Update(product *domain.Product) error { return nil }

func (r *stubProductRepo) Delete(id uint) error { return nil }

func (r *stubProductRepo) Count() (int64, error) { return int64(len(r.products)), nil }

func (r *stubProductRepo) Stats() (*domain.Stats, error) { return &domain.Stats{}, nil }

func (r *stubProductRepo) DecrementStock(id uint, qty int) error { return nil }

func product(id uint, category, brand string) domain.Product {
	return domain.Product{
		ID:       id,
		Name:     fmt.Sprintf("Mahsulot %d", id),
		Category: category,
		Brand:    brand,
		NewPrice: 10000,
		Quantity: 5,
	}
}

func TestRelatedPrefersSameCategory(t *testing.T) {
	repo := newStubProductRepo(
		product(1, "shoes", "Ideal"),
		product(2, "shoes", "Zarina"),
		product(3, "shoes", "Zarina"),
		product(4, "shirts", "Ideal"),
	)
	handler := NewRelatedProductsHandler(repo)

	related, err := handler.Handle(RelatedProductsQuery{ProductID: 1})
	require.NoError(t, err)

	require.Len(t, related, 3)
	assert.Equal(t, uint(2), related[0].ID)
	assert.Equal(t, uint(3), related[1].ID)
	assert.Equal(t, uint(4), related[2].ID, "brand match fills after category runs out")
}

func TestRelatedNeverIncludesTheProductItself(t *testing.T) {
	repo := newStubProductRepo(
		product(1, "shoes", "Ideal"),
		product(2, "shoes", "Ideal"),
	)
	handler := NewRelatedProductsHandler(repo)

	related, err := handler.Handle(RelatedProductsQuery{ProductID: 1})
	require.NoError(t, err)

	for _, p := range related {
		assert.NotEqual(t, uint(1), p.ID)
	}
}

func TestRelatedCapsAtEight(t *testing.T) {
	products := make([]domain.Product, 0, 12)
	for id := uint(1); id <= 12; id++ {
		products = append(products, product(id, "shoes", "Ideal"))
	}
	repo := newStubProductRepo(products...)
	handler := NewRelatedProductsHandler(repo)

	related, err := handler.Handle(RelatedProductsQuery{ProductID: 1})
	require.NoError(t, err)
	assert.Len(t, related, 8)
}

func TestRelatedDeduplicatesAcrossTiers(t *testing.T) {
	// Product 2 matches both category and brand of product 1.
	repo := newStubProductRepo(
		product(1, "shoes", "Ideal"),
		product(2, "shoes", "Ideal"),
		product(3, "shirts", "Ideal"),
	)
	handler := NewRelatedProductsHandler(repo)

	related, err := handler.Handle(RelatedProductsQuery{ProductID: 1})
	require.NoError(t, err)

	seen := make(map[uint]int)
	for _, p := range related {
		seen[p.ID]++
	}
	for id, count := range seen {
		assert.Equal(t, 1, count, "product %d appears more than once", id)
	}
}

func TestRelatedUnknownProductFails(t *testing.T) {
	handler := NewRelatedProductsHandler(newStubProductRepo())

	_, err := handler.Handle(RelatedProductsQuery{ProductID: 99})
	require.Error(t, err)
}

func TestListProductsValidatesAndClampsInput(t *testing.T) {
	repo := newStubProductRepo(product(1, "shoes", "Ideal"))
	handler := NewListProductsHandler(repo)

	_, err := handler.Handle(ListProductsQuery{SortBy: "rating"})
	require.Error(t, err)

	_, err = handler.Handle(ListProductsQuery{SortBy: domain.SortByPriceAsc})
	require.NoError(t, err)
	assert.Equal(t, defaultListLimit, repo.lastFilter.Limit)

	_, err = handler.Handle(ListProductsQuery{Limit: 5000})
	require.NoError(t, err)
	assert.Equal(t, maxListLimit, repo.lastFilter.Limit)
}
