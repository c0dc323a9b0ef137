package query_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ispanshop/catalog-service/internal/catalog/domain"
	"github.com/ispanshop/catalog-service/internal/catalog/usecase/query"
)

func floatPtr(f float64) *float64 { return &f }

func TestSearchProductsHandler_MapsRowsToListItems(t *testing.T) {
	mockRepo := new(MockCatalogRepository)
	handler := query.NewSearchProductsHandler(mockRepo)

	products := []domain.Product{
		{
			ID:       1,
			Name:     "純棉T恤",
			MinPrice: floatPtr(100),
			MaxPrice: floatPtr(250),
			Status:   domain.StatusPublished,
			Store:    &domain.Store{StoreName: "好物商店"},
			Category: &domain.Category{Name: "上衣"},
			Brand:    &domain.Brand{Name: "無印"},
			Images: []domain.ProductImage{
				{ImageURL: "https://cdn.example.com/2.jpg", IsMain: false},
				{ImageURL: "https://cdn.example.com/1.jpg", IsMain: true},
			},
		},
	}
	mockRepo.On("ListFiltered", mock.AnythingOfType("domain.SearchCriteria")).
		Return(products, int64(1), nil).Once()

	result, err := handler.Handle(query.SearchProductsQuery{})

	assert.NoError(t, err)
	assert.Len(t, result.Data, 1)
	item := result.Data[0]
	assert.Equal(t, "好物商店", item.StoreName)
	assert.Equal(t, "上衣", item.CategoryName)
	assert.Equal(t, "無印", item.BrandName)
	assert.Equal(t, "https://cdn.example.com/1.jpg", item.MainImageURL)
	assert.Equal(t, int64(1), result.TotalCount)
	assert.Equal(t, 1, result.TotalPages)
}

func TestSearchProductsHandler_FallbackLabels(t *testing.T) {
	mockRepo := new(MockCatalogRepository)
	handler := query.NewSearchProductsHandler(mockRepo)

	// No references loaded, no images
	mockRepo.On("ListFiltered", mock.AnythingOfType("domain.SearchCriteria")).
		Return([]domain.Product{{ID: 2, Name: "無名商品"}}, int64(1), nil).Once()

	result, err := handler.Handle(query.SearchProductsQuery{})

	assert.NoError(t, err)
	item := result.Data[0]
	assert.Equal(t, "未知商店", item.StoreName)
	assert.Equal(t, "未分類", item.CategoryName)
	assert.Equal(t, "未設定", item.BrandName)
	assert.Equal(t, domain.PlaceholderImageURL, item.MainImageURL)
}

func TestSearchProductsHandler_NormalizesPagination(t *testing.T) {
	mockRepo := new(MockCatalogRepository)
	handler := query.NewSearchProductsHandler(mockRepo)

	mockRepo.On("ListFiltered", mock.MatchedBy(func(c domain.SearchCriteria) bool {
		return c.PageNumber == 1 && c.PageSize == 10
	})).Return([]domain.Product{}, int64(0), nil).Once()

	result, err := handler.Handle(query.SearchProductsQuery{
		Criteria: domain.SearchCriteria{PageNumber: -3, PageSize: 0},
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, result.CurrentPage)
	assert.Equal(t, 10, result.PageSize)
	assert.NotNil(t, result.Data)
	assert.Empty(t, result.Data)
	mockRepo.AssertExpectations(t)
}

func TestSearchProductsHandler_TotalPagesCeiling(t *testing.T) {
	mockRepo := new(MockCatalogRepository)
	handler := query.NewSearchProductsHandler(mockRepo)

	// 25 rows at page size 10 is three pages
	mockRepo.On("ListFiltered", mock.AnythingOfType("domain.SearchCriteria")).
		Return([]domain.Product{}, int64(25), nil).Once()

	result, err := handler.Handle(query.SearchProductsQuery{
		Criteria: domain.SearchCriteria{PageNumber: 3, PageSize: 10},
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, result.TotalPages)
	assert.Equal(t, int64(25), result.TotalCount)
}

func TestSearchProductsHandler_RepositoryError(t *testing.T) {
	mockRepo := new(MockCatalogRepository)
	handler := query.NewSearchProductsHandler(mockRepo)

	mockRepo.On("ListFiltered", mock.AnythingOfType("domain.SearchCriteria")).
		Return(nil, int64(0), errors.New("connection reset")).Once()

	_, err := handler.Handle(query.SearchProductsQuery{})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to search products")
}
