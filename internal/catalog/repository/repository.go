package repository

import (
	"github.com/sardorbek/bozor/internal/catalog/domain"
	"gorm.io/gorm"
)

type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Product{})
}

func (r *GormProductRepository) Create(product *domain.Product) error {
	return r.db.Create(product).Error
}

func (r *GormProductRepository) FindByID(id uint) (*domain.Product, error) {
	var product domain.Product
	err := r.db.First(&product, id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormProductRepository) FindAll(filter domain.ListFilter) ([]domain.Product, error) {
	var products []domain.Product

	q := r.db.Model(&domain.Product{})
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where("name ILIKE ? OR brand ILIKE ?", pattern, pattern)
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.Brand != "" {
		q = q.Where("brand = ?", filter.Brand)
	}
	if filter.Gender != "" {
		q = q.Where("gender = ?", filter.Gender)
	}

	switch filter.SortBy {
	case domain.SortByPriceAsc:
		q = q.Order("new_price ASC")
	case domain.SortByPriceDesc:
		q = q.Order("new_price DESC")
	case domain.SortByFeatured:
		q = q.Order("featured DESC").Order("name ASC")
	default:
		q = q.Order("name ASC")
	}

	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}

	err := q.Find(&products).Error
	return products, err
}

func (r *GormProductRepository) FindFeatured(limit int) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.Where("featured = ?", true).Limit(limit).Find(&products).Error
	return products, err
}

func (r *GormProductRepository) FindByCategoryExcluding(category string, excludeID uint, limit int) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.Where("category = ? AND id <> ?", category, excludeID).
		Limit(limit).Find(&products).Error
	return products, err
}

func (r *GormProductRepository) FindByBrandExcluding(brand string, excludeID uint, limit int) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.Where("brand = ? AND id <> ?", brand, excludeID).
		Limit(limit).Find(&products).Error
	return products, err
}

func (r *GormProductRepository) FindAnyExcluding(excludeID uint, limit int) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.Where("id <> ?", excludeID).Limit(limit).Find(&products).Error
	return products, err
}

func (r *GormProductRepository) Facets() (*domain.Facets, error) {
	facets := &domain.Facets{}

	if err := r.db.Model(&domain.Product{}).Distinct("category").
		Where("category <> ''").Order("category").Pluck("category", &facets.Categories).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&domain.Product{}).Distinct("brand").
		Where("brand <> ''").Order("brand").Pluck("brand", &facets.Brands).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&domain.Product{}).Distinct("gender").
		Where("gender <> ''").Order("gender").Pluck("gender", &facets.Genders).Error; err != nil {
		return nil, err
	}

	return facets, nil
}

func (r *GormProductRepository) Update(product *domain.Product) error {
	return r.db.Save(product).Error
}

func (r *GormProductRepository) Delete(id uint) error {
	return r.db.Delete(&domain.Product{}, id).Error
}

func (r *GormProductRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&domain.Product{}).Count(&count).Error
	return count, err
}

func (r *GormProductRepository) Stats() (*domain.Stats, error) {
	stats := &domain.Stats{}

	if err := r.db.Model(&domain.Product{}).Count(&stats.TotalProducts).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&domain.Product{}).Where("featured = ?", true).
		Count(&stats.FeaturedCount).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&domain.Product{}).Where("quantity = 0").
		Count(&stats.OutOfStock).Error; err != nil {
		return nil, err
	}

	return stats, nil
}

// DecrementStock atomically subtracts qty from the product's stock,
// flooring at zero. The decrement happens in the database, not via
// read-then-write.
func (r *GormProductRepository) DecrementStock(id uint, qty int) error {
	return r.db.Model(&domain.Product{}).Where("id = ?", id).
		Update("quantity", gorm.Expr("GREATEST(quantity - ?, 0)", qty)).Error
}
