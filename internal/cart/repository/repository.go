package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/sardorbek/bozor/internal/cart/domain"
)

type GormCartRepository struct {
	db *gorm.DB
}

func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

func (r *GormCartRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.CartItem{})
}

// FindByUser returns the user's cart lines newest-first with the product
// snapshot preloaded
func (r *GormCartRepository) FindByUser(userID uint) ([]domain.CartItem, error) {
	var items []domain.CartItem
	err := r.db.Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

func (r *GormCartRepository) FindByID(id uint) (*domain.CartItem, error) {
	var item domain.CartItem
	err := r.db.Preload("Product").First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GormCartRepository) Insert(item *domain.CartItem) error {
	return r.db.Create(item).Error
}

// IncrementQuantity adds delta to the existing line in a single UPDATE, so
// two concurrent adds both land instead of one overwriting the other.
func (r *GormCartRepository) IncrementQuantity(userID, productID uint, delta int) (int64, error) {
	result := r.db.Model(&domain.CartItem{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Updates(map[string]interface{}{
			"quantity":   gorm.Expr("quantity + ?", delta),
			"updated_at": time.Now(),
		})
	return result.RowsAffected, result.Error
}

func (r *GormCartRepository) UpdateQuantity(id uint, quantity int) error {
	return r.db.Model(&domain.CartItem{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"quantity":   quantity,
			"updated_at": time.Now(),
		}).Error
}

func (r *GormCartRepository) Delete(id uint) error {
	return r.db.Delete(&domain.CartItem{}, id).Error
}

func (r *GormCartRepository) DeleteByUser(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&domain.CartItem{}).Error
}

func (r *GormCartRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&domain.CartItem{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
