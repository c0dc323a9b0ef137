package command_test

import (
	"github.com/stretchr/testify/mock"

	"github.com/ispanshop/catalog-service/internal/catalog/domain"
)

// MockCatalogRepository is a mock implementation of domain.CatalogRepository
type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) FindProductByID(id uint) (*domain.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockCatalogRepository) ListFiltered(criteria domain.SearchCriteria) ([]domain.Product, int64, error) {
	args := m.Called(criteria)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.Product), args.Get(1).(int64), args.Error(2)
}

func (m *MockCatalogRepository) InsertProduct(product *domain.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockCatalogRepository) UpdateStatus(id uint, status domain.ProductStatus, reason *string) (int64, error) {
	args := m.Called(id, status, reason)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCatalogRepository) UpdateStatusBatch(ids []uint, status domain.ProductStatus) (int64, error) {
	args := m.Called(ids, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCatalogRepository) SkuExists(code string) (bool, error) {
	args := m.Called(code)
	return args.Bool(0), args.Error(1)
}

func (m *MockCatalogRepository) ListByStatus(status domain.ProductStatus, orderByUpdatedDesc bool, limit int) ([]domain.Product, error) {
	args := m.Called(status, orderByUpdatedDesc, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockCatalogRepository) ListCategories() ([]domain.Category, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCatalogRepository) ListBrands(activeOnly bool) ([]domain.Brand, error) {
	args := m.Called(activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Brand), args.Error(1)
}

func (m *MockCatalogRepository) ListBrandsForCategory(categoryID *uint) ([]domain.Brand, error) {
	args := m.Called(categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Brand), args.Error(1)
}

func (m *MockCatalogRepository) ListStores() ([]domain.Store, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Store), args.Error(1)
}
