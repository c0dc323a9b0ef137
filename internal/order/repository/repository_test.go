package repository_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/ispanshop/catalog-service/internal/order/domain"
	"github.com/ispanshop/catalog-service/internal/order/repository"
)

func openTestRepo(t *testing.T) *repository.GormOrderRepository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	repo := repository.NewGormOrderRepository(db)
	require.NoError(t, repo.AutoMigrate())
	return repo
}

func seedOrders(t *testing.T, repo *repository.GormOrderRepository) {
	t.Helper()

	orders := []domain.Order{
		{ID: 1, OrderNumber: "ORD-20260301-0001", UserID: 1, Status: domain.OrderStatusPaid,
			TotalAmount: 350, CreatedAt: date(2026, 3, 1)},
		{ID: 2, OrderNumber: "ORD-20260305-0002", UserID: 2, Status: domain.OrderStatusCreated,
			TotalAmount: 120, CreatedAt: date(2026, 3, 5)},
		{ID: 3, OrderNumber: "ORD-20260310-0003", UserID: 1, Status: domain.OrderStatusPaid,
			TotalAmount: 980, CreatedAt: date(2026, 3, 10)},
	}
	for i := range orders {
		require.NoError(t, repo.DB().Create(&orders[i]).Error)
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func statusPtr(s domain.OrderStatus) *domain.OrderStatus { return &s }

func TestListFiltered_KeywordMatchesOrderNumber(t *testing.T) {
	repo := openTestRepo(t)
	seedOrders(t, repo)

	orders, total, err := repo.ListFiltered(domain.OrderSearchCriteria{Keyword: "20260305"})

	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, orders, 1)
	assert.Equal(t, "ORD-20260305-0002", orders[0].OrderNumber)
}

func TestListFiltered_NewestFirstAndCountBeforePaging(t *testing.T) {
	repo := openTestRepo(t)
	seedOrders(t, repo)

	orders, total, err := repo.ListFiltered(domain.OrderSearchCriteria{
		PageNumber: 1,
		PageSize:   2,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, orders, 2)
	assert.Equal(t, uint(3), orders[0].ID)
	assert.Equal(t, uint(1), orders[1].ID)

	orders, _, err = repo.ListFiltered(domain.OrderSearchCriteria{
		PageNumber: 2,
		PageSize:   2,
	})
	assert.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, uint(1), orders[0].ID)
}

func TestListFiltered_StatusAndDateRange(t *testing.T) {
	repo := openTestRepo(t)
	seedOrders(t, repo)

	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)

	// Order 2 was created at noon on the end date and must be included
	orders, total, err := repo.ListFiltered(domain.OrderSearchCriteria{
		StartDate: &start,
		EndDate:   &end,
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, orders, 2)

	orders, total, err = repo.ListFiltered(domain.OrderSearchCriteria{
		Status: statusPtr(domain.OrderStatusPaid),
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(2), total)
	for _, o := range orders {
		assert.Equal(t, domain.OrderStatusPaid, o.Status)
	}
}

func TestFindByID_PreloadsItems(t *testing.T) {
	repo := openTestRepo(t)
	seedOrders(t, repo)

	require.NoError(t, repo.DB().Create(&domain.OrderItem{
		OrderID: 1, ProductID: 7, SkuCode: "AAAABBBB-1700000000",
		ProductName: "純棉T恤", UnitPrice: 100, Quantity: 2,
	}).Error)

	order, err := repo.FindByID(1)

	require.NoError(t, err)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "純棉T恤", order.Items[0].ProductName)
}

func TestFindByID_NotFound(t *testing.T) {
	repo := openTestRepo(t)

	_, err := repo.FindByID(999)

	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestUpdateStatus(t *testing.T) {
	repo := openTestRepo(t)
	seedOrders(t, repo)

	affected, err := repo.UpdateStatus(2, domain.OrderStatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	order, err := repo.FindByID(2)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCancelled, order.Status)

	affected, err = repo.UpdateStatus(999, domain.OrderStatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)
}
