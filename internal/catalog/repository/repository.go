package repository

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/ispanshop/catalog-service/internal/catalog/domain"
)

// GormCatalogRepository is the GORM implementation of domain.CatalogRepository
type GormCatalogRepository struct {
	db *gorm.DB
}

func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

// DB exposes the underlying connection for migrations and seeding
func (r *GormCatalogRepository) DB() *gorm.DB {
	return r.db
}

func (r *GormCatalogRepository) AutoMigrate() error {
	return r.db.AutoMigrate(
		&domain.Store{},
		&domain.Category{},
		&domain.Brand{},
		&domain.Product{},
		&domain.ProductVariant{},
		&domain.ProductImage{},
	)
}

func (r *GormCatalogRepository) FindProductByID(id uint) (*domain.Product, error) {
	var product domain.Product
	err := r.db.
		Preload("Store").
		Preload("Category").
		Preload("Brand").
		Preload("Variants", "is_deleted = ?", false).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order, id")
		}).
		First(&product, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

// ListFiltered applies the criteria's conjunctive predicates, counts the
// filtered set, then fetches one page.
func (r *GormCatalogRepository) ListFiltered(criteria domain.SearchCriteria) ([]domain.Product, int64, error) {
	criteria.Normalize()

	query := r.db.Model(&domain.Product{})

	// Child category wins over parent category when both are set
	if criteria.CategoryID != nil {
		query = query.Where("category_id = ?", *criteria.CategoryID)
	} else if criteria.ParentCategoryID != nil {
		subQuery := r.db.Model(&domain.Category{}).
			Select("id").
			Where("parent_id = ?", *criteria.ParentCategoryID)
		query = query.Where("category_id IN (?)", subQuery)
	}

	if keyword := strings.TrimSpace(criteria.Keyword); keyword != "" {
		pattern := "%" + strings.ToLower(keyword) + "%"
		// A NULL description never matches a non-empty keyword
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}

	if criteria.StoreID != nil {
		query = query.Where("store_id = ?", *criteria.StoreID)
	}
	if criteria.BrandID != nil {
		query = query.Where("brand_id = ?", *criteria.BrandID)
	}
	if criteria.Status != nil {
		query = query.Where("status = ?", *criteria.Status)
	}

	if criteria.StartDate != nil {
		query = query.Where("created_at >= ?", startOfDay(*criteria.StartDate))
	}
	if criteria.EndDate != nil {
		// Inclusive through the entire end day
		end := startOfDay(*criteria.EndDate).AddDate(0, 0, 1).Add(-time.Nanosecond)
		query = query.Where("created_at <= ?", end)
	}

	// Total count is computed on the filtered predicate before paging
	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	var products []domain.Product
	err := query.
		Preload("Store").
		Preload("Category").
		Preload("Brand").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order, id")
		}).
		Offset(criteria.Offset()).
		Limit(criteria.PageSize).
		Find(&products).Error
	if err != nil {
		return nil, 0, err
	}

	return products, totalCount, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// InsertProduct writes the product with its variants and images in one
// transaction via GORM association tracking.
func (r *GormCatalogRepository) InsertProduct(product *domain.Product) error {
	return r.db.Create(product).Error
}

func (r *GormCatalogRepository) UpdateStatus(id uint, status domain.ProductStatus, reason *string) (int64, error) {
	updates := map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	}
	if status == domain.StatusRejected {
		updates["reject_reason"] = reason
	} else {
		// Reject reason is only meaningful in the rejected state
		updates["reject_reason"] = nil
	}

	result := r.db.Model(&domain.Product{}).Where("id = ?", id).Updates(updates)
	return result.RowsAffected, result.Error
}

func (r *GormCatalogRepository) UpdateStatusBatch(ids []uint, status domain.ProductStatus) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	result := r.db.Model(&domain.Product{}).
		Where("id IN ?", ids).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})
	return result.RowsAffected, result.Error
}

func (r *GormCatalogRepository) SkuExists(code string) (bool, error) {
	var count int64
	err := r.db.Model(&domain.ProductVariant{}).
		Where("sku_code = ?", code).
		Count(&count).Error
	return count > 0, err
}

func (r *GormCatalogRepository) ListByStatus(status domain.ProductStatus, orderByUpdatedDesc bool, limit int) ([]domain.Product, error) {
	query := r.db.
		Preload("Store").
		Preload("Category").
		Preload("Brand").
		Where("status = ?", status)

	if orderByUpdatedDesc {
		query = query.Order("updated_at DESC")
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var products []domain.Product
	err := query.Find(&products).Error
	return products, err
}

func (r *GormCatalogRepository) ListCategories() ([]domain.Category, error) {
	var categories []domain.Category
	err := r.db.Order("id").Find(&categories).Error
	return categories, err
}

func (r *GormCatalogRepository) ListBrands(activeOnly bool) ([]domain.Brand, error) {
	query := r.db.Order("name")
	if activeOnly {
		query = query.Where("is_deleted = ?", false)
	}

	var brands []domain.Brand
	err := query.Find(&brands).Error
	return brands, err
}

func (r *GormCatalogRepository) ListBrandsForCategory(categoryID *uint) ([]domain.Brand, error) {
	if categoryID == nil {
		return r.ListBrands(true)
	}

	var brands []domain.Brand
	err := r.db.Model(&domain.Brand{}).
		Distinct("brands.*").
		Joins("JOIN products ON products.brand_id = brands.id").
		Where("products.category_id = ?", *categoryID).
		Where("brands.is_deleted = ?", false).
		Order("brands.name").
		Find(&brands).Error
	return brands, err
}

func (r *GormCatalogRepository) ListStores() ([]domain.Store, error) {
	var stores []domain.Store
	err := r.db.Order("id").Find(&stores).Error
	return stores, err
}
