package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ispanshop/catalog-service/internal/catalog/domain"
	"github.com/ispanshop/catalog-service/internal/catalog/usecase/query"
)

func TestListPendingReviewHandler_ReturnsQueue(t *testing.T) {
	mockRepo := new(MockCatalogRepository)
	handler := query.NewListPendingReviewHandler(mockRepo)

	products := []domain.Product{
		{ID: 1, Name: "待審商品", Status: domain.StatusPendingReview, Category: &domain.Category{Name: "上衣"}},
		{ID: 2, Name: "另一件待審商品", Status: domain.StatusPendingReview},
	}
	mockRepo.On("ListByStatus", domain.StatusPendingReview, false, 0).
		Return(products, nil).Once()

	items, err := handler.Handle()

	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, "上衣", items[0].CategoryName)
	assert.Equal(t, "未分類", items[1].CategoryName)
	mockRepo.AssertExpectations(t)
}

func TestListRecentlyRejectedHandler_DefaultLimit(t *testing.T) {
	mockRepo := new(MockCatalogRepository)
	handler := query.NewListRecentlyRejectedHandler(mockRepo)

	mockRepo.On("ListByStatus", domain.StatusRejected, true, 10).
		Return([]domain.Product{}, nil).Once()

	items, err := handler.Handle(query.ListRecentlyRejectedQuery{})

	assert.NoError(t, err)
	assert.Empty(t, items)
	mockRepo.AssertExpectations(t)
}

func TestListRecentlyRejectedHandler_ExplicitLimit(t *testing.T) {
	mockRepo := new(MockCatalogRepository)
	handler := query.NewListRecentlyRejectedHandler(mockRepo)

	reason := "瑕疵"
	mockRepo.On("ListByStatus", domain.StatusRejected, true, 3).
		Return([]domain.Product{
			{ID: 9, Name: "被退回的商品", Status: domain.StatusRejected, RejectReason: &reason},
		}, nil).Once()

	items, err := handler.Handle(query.ListRecentlyRejectedQuery{Limit: 3})

	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, "瑕疵", *items[0].RejectReason)
}

func TestListRecentlyRejectedHandler_NegativeLimit(t *testing.T) {
	mockRepo := new(MockCatalogRepository)
	handler := query.NewListRecentlyRejectedHandler(mockRepo)

	_, err := handler.Handle(query.ListRecentlyRejectedQuery{Limit: -1})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "limit cannot be negative")
	mockRepo.AssertNotCalled(t, "ListByStatus")
}

func TestListTaxonomyHandler_BrandsForCategoryFallsBackToAll(t *testing.T) {
	mockRepo := new(MockCatalogRepository)
	handler := query.NewListTaxonomyHandler(mockRepo)

	mockRepo.On("ListBrandsForCategory", (*uint)(nil)).
		Return([]domain.Brand{{Name: "無印"}}, nil).Once()

	items, err := handler.BrandsForCategory(nil)

	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, "無印", items[0].Name)
}

func TestListTaxonomyHandler_Categories(t *testing.T) {
	mockRepo := new(MockCatalogRepository)
	handler := query.NewListTaxonomyHandler(mockRepo)

	parentID := uint(1)
	mockRepo.On("ListCategories").Return([]domain.Category{
		{Name: "服飾"},
		{Name: "上衣", ParentID: &parentID},
	}, nil).Once()

	items, err := handler.Categories()

	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Nil(t, items[0].ParentID)
	assert.Equal(t, uint(1), *items[1].ParentID)
}
