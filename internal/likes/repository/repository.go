package repository

import (
	"gorm.io/gorm"

	"github.com/sardorbek/bozor/internal/likes/domain"
)

type GormLikeRepository struct {
	db *gorm.DB
}

func NewGormLikeRepository(db *gorm.DB) *GormLikeRepository {
	return &GormLikeRepository{db: db}
}

func (r *GormLikeRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Like{})
}

func (r *GormLikeRepository) FindByUser(userID uint) ([]domain.Like, error) {
	var likes []domain.Like
	err := r.db.Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&likes).Error
	return likes, err
}

func (r *GormLikeRepository) FindByUserAndProduct(userID, productID uint) (*domain.Like, error) {
	var like domain.Like
	err := r.db.Where("user_id = ? AND product_id = ?", userID, productID).First(&like).Error
	if err != nil {
		return nil, err
	}
	return &like, nil
}

func (r *GormLikeRepository) Insert(like *domain.Like) error {
	return r.db.Create(like).Error
}

func (r *GormLikeRepository) Delete(id uint) error {
	return r.db.Delete(&domain.Like{}, id).Error
}
