package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ispanshop/catalog-service/internal/order/domain"
	"github.com/ispanshop/catalog-service/internal/order/usecase/query"
)

// MockOrderRepository is a mock implementation of domain.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindByID(id uint) (*domain.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) ListFiltered(criteria domain.OrderSearchCriteria) ([]domain.Order, int64, error) {
	args := m.Called(criteria)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.Order), args.Get(1).(int64), args.Error(2)
}

func (m *MockOrderRepository) Create(order *domain.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateStatus(id uint, status domain.OrderStatus) (int64, error) {
	args := m.Called(id, status)
	return args.Get(0).(int64), args.Error(1)
}

func TestListOrdersHandler_WrapsPage(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	handler := query.NewListOrdersHandler(mockRepo)

	mockRepo.On("ListFiltered", mock.MatchedBy(func(c domain.OrderSearchCriteria) bool {
		return c.PageNumber == 1 && c.PageSize == 10
	})).Return([]domain.Order{
		{ID: 1, OrderNumber: "ORD-20260301-0001", TotalAmount: 350},
	}, int64(21), nil).Once()

	result, err := handler.Handle(query.ListOrdersQuery{})

	assert.NoError(t, err)
	assert.Len(t, result.Data, 1)
	assert.Equal(t, int64(21), result.TotalCount)
	assert.Equal(t, 3, result.TotalPages)
	mockRepo.AssertExpectations(t)
}

func TestGetOrderDetailHandler_ComputesSubtotals(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	handler := query.NewGetOrderDetailHandler(mockRepo)

	mockRepo.On("FindByID", uint(1)).Return(&domain.Order{
		ID:          1,
		OrderNumber: "ORD-20260301-0001",
		TotalAmount: 200,
		Items: []domain.OrderItem{
			{ProductName: "純棉T恤", UnitPrice: 100, Quantity: 2},
		},
	}, nil).Once()

	detail, err := handler.Handle(query.GetOrderDetailQuery{ID: 1})

	assert.NoError(t, err)
	assert.Len(t, detail.Items, 1)
	assert.Equal(t, 200.0, detail.Items[0].Subtotal)
}

func TestGetOrderDetailHandler_NotFound(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	handler := query.NewGetOrderDetailHandler(mockRepo)

	mockRepo.On("FindByID", uint(999)).Return(nil, domain.ErrOrderNotFound).Once()

	_, err := handler.Handle(query.GetOrderDetailQuery{ID: 999})

	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}
