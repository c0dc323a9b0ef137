package repository

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/ispanshop/catalog-service/internal/order/domain"
)

// GormOrderRepository is the GORM implementation of domain.OrderRepository
type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// DB exposes the underlying connection for migrations and seeding
func (r *GormOrderRepository) DB() *gorm.DB {
	return r.db
}

func (r *GormOrderRepository) AutoMigrate() error {
	return r.db.AutoMigrate(
		&domain.Order{},
		&domain.OrderItem{},
	)
}

func (r *GormOrderRepository) FindByID(id uint) (*domain.Order, error) {
	var order domain.Order
	err := r.db.
		Preload("Items").
		First(&order, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

// ListFiltered counts the filtered set, then fetches one page ordered by
// creation time, newest first.
func (r *GormOrderRepository) ListFiltered(criteria domain.OrderSearchCriteria) ([]domain.Order, int64, error) {
	criteria.Normalize()

	query := r.db.Model(&domain.Order{})

	if keyword := strings.TrimSpace(criteria.Keyword); keyword != "" {
		pattern := "%" + strings.ToLower(keyword) + "%"
		query = query.Where("LOWER(order_number) LIKE ?", pattern)
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

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	var orders []domain.Order
	err := query.
		Order("created_at DESC").
		Offset(criteria.Offset()).
		Limit(criteria.PageSize).
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}

	return orders, totalCount, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Create writes the order with its items in one transaction
func (r *GormOrderRepository) Create(order *domain.Order) error {
	return r.db.Create(order).Error
}

func (r *GormOrderRepository) UpdateStatus(id uint, status domain.OrderStatus) (int64, error) {
	result := r.db.Model(&domain.Order{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})
	return result.RowsAffected, result.Error
}
