package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/sardorbek/bozor/internal/catalog/domain"
)

var tracer = otel.Tracer("catalog-repository")

// GormProductRepositoryWithTracing wraps GormProductRepository with tracing
type GormProductRepositoryWithTracing struct {
	*GormProductRepository
}

// NewGormProductRepositoryWithTracing creates a new repository with tracing
func NewGormProductRepositoryWithTracing(db *gorm.DB) *GormProductRepositoryWithTracing {
	return &GormProductRepositoryWithTracing{
		GormProductRepository: NewGormProductRepository(db),
	}
}

// FindByIDWithContext traces a product lookup
func (r *GormProductRepositoryWithTracing) FindByIDWithContext(ctx context.Context, id uint) (*domain.Product, error) {
	_, span := tracer.Start(ctx, "repository.FindByID",
		trace.WithAttributes(
			attribute.Int("product.id", int(id)),
		),
	)
	defer span.End()

	product, err := r.GormProductRepository.FindByID(id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.String("product.name", product.Name),
		attribute.String("product.brand", product.Brand),
		attribute.Bool("product.in_stock", product.InStock()),
	)
	return product, nil
}

// FindAllWithContext traces a filtered listing
func (r *GormProductRepositoryWithTracing) FindAllWithContext(ctx context.Context, filter domain.ListFilter) ([]domain.Product, error) {
	_, span := tracer.Start(ctx, "repository.FindAll",
		trace.WithAttributes(
			attribute.String("filter.search", filter.Search),
			attribute.String("filter.category", filter.Category),
			attribute.String("filter.brand", filter.Brand),
			attribute.String("filter.gender", filter.Gender),
			attribute.String("filter.sort_by", filter.SortBy),
			attribute.Int("filter.limit", filter.Limit),
			attribute.Int("filter.offset", filter.Offset),
		),
	)
	defer span.End()

	products, err := r.GormProductRepository.FindAll(filter)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(products)))
	return products, nil
}

// DecrementStockWithContext traces an atomic stock decrement
func (r *GormProductRepositoryWithTracing) DecrementStockWithContext(ctx context.Context, id uint, qty int) error {
	_, span := tracer.Start(ctx, "repository.DecrementStock",
		trace.WithAttributes(
			attribute.Int("product.id", int(id)),
			attribute.Int("decrement.qty", qty),
		),
	)
	defer span.End()

	if err := r.GormProductRepository.DecrementStock(id, qty); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}
