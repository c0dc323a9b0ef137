package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ispanshop/catalog-service/internal/catalog/domain"
	"github.com/ispanshop/catalog-service/pkg/logger"
)

// taxonomyTTL bounds staleness of the category/brand/store dropdown data
const taxonomyTTL = 5 * time.Minute

// CachedCatalogRepository decorates a CatalogRepository with a Redis
// read-through cache for the taxonomy listings. Product reads and all writes
// pass through untouched. A nil client disables caching entirely.
type CachedCatalogRepository struct {
	domain.CatalogRepository
	client *redis.Client
}

func NewCachedCatalogRepository(inner domain.CatalogRepository, client *redis.Client) *CachedCatalogRepository {
	return &CachedCatalogRepository{CatalogRepository: inner, client: client}
}

func (r *CachedCatalogRepository) ListCategories() ([]domain.Category, error) {
	return readThrough(r.client, "catalog:categories", func() ([]domain.Category, error) {
		return r.CatalogRepository.ListCategories()
	})
}

func (r *CachedCatalogRepository) ListBrands(activeOnly bool) ([]domain.Brand, error) {
	key := fmt.Sprintf("catalog:brands:%t", activeOnly)
	return readThrough(r.client, key, func() ([]domain.Brand, error) {
		return r.CatalogRepository.ListBrands(activeOnly)
	})
}

func (r *CachedCatalogRepository) ListStores() ([]domain.Store, error) {
	return readThrough(r.client, "catalog:stores", func() ([]domain.Store, error) {
		return r.CatalogRepository.ListStores()
	})
}

// readThrough serves from cache when possible, otherwise loads and caches.
// Cache failures degrade to the underlying store, never to the caller.
func readThrough[T any](client *redis.Client, key string, load func() ([]T, error)) ([]T, error) {
	if client == nil {
		return load()
	}

	ctx := context.Background()

	cached, err := client.Get(ctx, key).Bytes()
	if err == nil && len(cached) > 0 {
		var values []T
		if err := json.Unmarshal(cached, &values); err == nil {
			logger.Logger.Debug().Str("cache_key", key).Msg("Cache hit")
			return values, nil
		}
	}

	values, err := load()
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(values); err == nil {
		if err := client.Set(ctx, key, payload, taxonomyTTL).Err(); err != nil {
			logger.Logger.Warn().
				Err(err).
				Str("cache_key", key).
				Msg("Failed to cache taxonomy listing")
		}
	}

	return values, nil
}
