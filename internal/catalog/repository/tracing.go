package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/ispanshop/catalog-service/internal/catalog/domain"
)

var tracer = otel.Tracer("catalog-repository")

// GormCatalogRepositoryWithTracing wraps GormCatalogRepository with spans
// around the store operations the moderation and search cores call.
type GormCatalogRepositoryWithTracing struct {
	*GormCatalogRepository
}

// NewGormCatalogRepositoryWithTracing creates a new repository with tracing
func NewGormCatalogRepositoryWithTracing(db *gorm.DB) *GormCatalogRepositoryWithTracing {
	return &GormCatalogRepositoryWithTracing{
		GormCatalogRepository: NewGormCatalogRepository(db),
	}
}

// FindProductByIDWithContext traces a single product lookup
func (r *GormCatalogRepositoryWithTracing) FindProductByIDWithContext(ctx context.Context, id uint) (*domain.Product, error) {
	_, span := tracer.Start(ctx, "repository.FindProductByID",
		trace.WithAttributes(attribute.Int("product.id", int(id))),
	)
	defer span.End()

	product, err := r.GormCatalogRepository.FindProductByID(id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.String("product.name", product.Name),
		attribute.String("product.status", product.Status.String()),
	)
	return product, nil
}

// ListFilteredWithContext traces a faceted search
func (r *GormCatalogRepositoryWithTracing) ListFilteredWithContext(ctx context.Context, criteria domain.SearchCriteria) ([]domain.Product, int64, error) {
	_, span := tracer.Start(ctx, "repository.ListFiltered",
		trace.WithAttributes(
			attribute.Int("query.page", criteria.PageNumber),
			attribute.Int("query.page_size", criteria.PageSize),
			attribute.String("query.keyword", criteria.Keyword),
		),
	)
	defer span.End()

	products, totalCount, err := r.GormCatalogRepository.ListFiltered(criteria)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, 0, err
	}

	span.SetAttributes(
		attribute.Int("result.count", len(products)),
		attribute.Int64("result.total", totalCount),
	)
	return products, totalCount, nil
}

// InsertProductWithContext traces a product creation
func (r *GormCatalogRepositoryWithTracing) InsertProductWithContext(ctx context.Context, product *domain.Product) error {
	_, span := tracer.Start(ctx, "repository.InsertProduct",
		trace.WithAttributes(
			attribute.String("product.name", product.Name),
			attribute.Int("product.variants", len(product.Variants)),
			attribute.Int("product.images", len(product.Images)),
		),
	)
	defer span.End()

	err := r.GormCatalogRepository.InsertProduct(product)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(attribute.Int("product.id", int(product.ID)))
	return nil
}

// UpdateStatusWithContext traces a single status transition
func (r *GormCatalogRepositoryWithTracing) UpdateStatusWithContext(ctx context.Context, id uint, status domain.ProductStatus, reason *string) (int64, error) {
	_, span := tracer.Start(ctx, "repository.UpdateStatus",
		trace.WithAttributes(
			attribute.Int("product.id", int(id)),
			attribute.String("product.status", status.String()),
		),
	)
	defer span.End()

	affected, err := r.GormCatalogRepository.UpdateStatus(id, status, reason)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}

	span.SetAttributes(attribute.Int64("result.rows_affected", affected))
	return affected, nil
}

// UpdateStatusBatchWithContext traces a bulk status transition
func (r *GormCatalogRepositoryWithTracing) UpdateStatusBatchWithContext(ctx context.Context, ids []uint, status domain.ProductStatus) (int64, error) {
	_, span := tracer.Start(ctx, "repository.UpdateStatusBatch",
		trace.WithAttributes(
			attribute.Int("query.id_count", len(ids)),
			attribute.String("product.status", status.String()),
		),
	)
	defer span.End()

	affected, err := r.GormCatalogRepository.UpdateStatusBatch(ids, status)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}

	span.SetAttributes(attribute.Int64("result.rows_affected", affected))
	return affected, nil
}
