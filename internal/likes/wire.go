//go:build wireinject
// +build wireinject

package likes

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/sardorbek/bozor/internal/likes/delivery/http"
	"github.com/sardorbek/bozor/internal/likes/domain"
	"github.com/sardorbek/bozor/internal/likes/repository"
)

// ProvideLikeRepository provides the like repository
func ProvideLikeRepository(db *gorm.DB) domain.LikeRepository {
	return repository.NewGormLikeRepository(db)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideLikeRepository,
)

// InitializeHTTPHandler initializes the likes HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB) (*http.LikeHandler, error) {
	wire.Build(
		RepositorySet,
		http.NewLikeHandler,
	)
	return nil, nil
}
