//go:build wireinject
// +build wireinject

package catalog

import (
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/ispanshop/catalog-service/internal/catalog/delivery/http"
	"github.com/ispanshop/catalog-service/internal/catalog/domain"
	"github.com/ispanshop/catalog-service/internal/catalog/repository"
	"github.com/ispanshop/catalog-service/internal/catalog/sku"
	"github.com/ispanshop/catalog-service/internal/catalog/usecase/command"
	"github.com/ispanshop/catalog-service/internal/catalog/usecase/query"
	"github.com/ispanshop/catalog-service/kafka"
)

// ProvideCatalogRepository provides the catalog repository: a traced gorm
// store with the taxonomy cache layered on top. A nil redis client disables
// caching.
func ProvideCatalogRepository(db *gorm.DB, redisClient *redis.Client) domain.CatalogRepository {
	return repository.NewCachedCatalogRepository(repository.NewGormCatalogRepositoryWithTracing(db), redisClient)
}

// ProvideSkuGenerator provides the default SKU generator
func ProvideSkuGenerator() sku.Generator {
	return sku.NewGenerator()
}

// Command Handlers Providers
func ProvideCreateProductHandler(repo domain.CatalogRepository, skuGen sku.Generator) *command.CreateProductHandler {
	return command.NewCreateProductHandler(repo, skuGen)
}

func ProvideApproveProductHandler(repo domain.CatalogRepository) *command.ApproveProductHandler {
	return command.NewApproveProductHandler(repo)
}

func ProvideRejectProductHandler(repo domain.CatalogRepository) *command.RejectProductHandler {
	return command.NewRejectProductHandler(repo)
}

func ProvideBatchUpdateStatusHandler(repo domain.CatalogRepository) *command.BatchUpdateStatusHandler {
	return command.NewBatchUpdateStatusHandler(repo)
}

// Query Handlers Providers
func ProvideSearchProductsHandler(repo domain.CatalogRepository) *query.SearchProductsHandler {
	return query.NewSearchProductsHandler(repo)
}

func ProvideGetProductDetailHandler(repo domain.CatalogRepository) *query.GetProductDetailHandler {
	return query.NewGetProductDetailHandler(repo)
}

func ProvideListPendingReviewHandler(repo domain.CatalogRepository) *query.ListPendingReviewHandler {
	return query.NewListPendingReviewHandler(repo)
}

func ProvideListRecentlyRejectedHandler(repo domain.CatalogRepository) *query.ListRecentlyRejectedHandler {
	return query.NewListRecentlyRejectedHandler(repo)
}

func ProvideListTaxonomyHandler(repo domain.CatalogRepository) *query.ListTaxonomyHandler {
	return query.NewListTaxonomyHandler(repo)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideCatalogRepository,
	ProvideSkuGenerator,
)

var CommandHandlerSet = wire.NewSet(
	ProvideCreateProductHandler,
	ProvideApproveProductHandler,
	ProvideRejectProductHandler,
	ProvideBatchUpdateStatusHandler,
)

var QueryHandlerSet = wire.NewSet(
	ProvideSearchProductsHandler,
	ProvideGetProductDetailHandler,
	ProvideListPendingReviewHandler,
	ProvideListRecentlyRejectedHandler,
	ProvideListTaxonomyHandler,
)

var AllHandlersSet = wire.NewSet(
	RepositorySet,
	CommandHandlerSet,
	QueryHandlerSet,
)

// InitializeHandler initializes the catalog HTTP handler with all dependencies
func InitializeHandler(db *gorm.DB, redisClient *redis.Client, publisher *kafka.Publisher) (*http.CatalogHandler, error) {
	wire.Build(
		AllHandlersSet,
		http.NewCatalogHandler,
	)
	return nil, nil
}
