package query

import (
	"fmt"

	"github.com/ispanshop/catalog-service/internal/catalog/domain"
)

// Fallback labels for list rows whose references are not loaded
const (
	unknownStore    = "未知商店"
	unknownCategory = "未分類"
	unknownBrand    = "未設定"
)

// ProductListItem is the list-view DTO; storage entities never leave the
// usecase layer.
type ProductListItem struct {
	ID           uint                 `json:"id"`
	StoreName    string               `json:"store_name"`
	CategoryName string               `json:"category_name"`
	BrandName    string               `json:"brand_name"`
	Name         string               `json:"name"`
	MinPrice     *float64             `json:"min_price"`
	MaxPrice     *float64             `json:"max_price"`
	Status       domain.ProductStatus `json:"status"`
	MainImageURL string               `json:"main_image_url"`
}

// SearchProductsQuery represents a faceted catalog search
type SearchProductsQuery struct {
	Criteria domain.SearchCriteria
}

// SearchProductsHandler handles faceted, paginated catalog searches
type SearchProductsHandler struct {
	repo domain.CatalogRepository
}

// NewSearchProductsHandler creates a new search handler
func NewSearchProductsHandler(repo domain.CatalogRepository) *SearchProductsHandler {
	return &SearchProductsHandler{repo: repo}
}

// Handle executes the search and wraps the result in a page envelope
func (h *SearchProductsHandler) Handle(q SearchProductsQuery) (domain.PagedResult[ProductListItem], error) {
	q.Criteria.Normalize()

	products, totalCount, err := h.repo.ListFiltered(q.Criteria)
	if err != nil {
		return domain.PagedResult[ProductListItem]{}, fmt.Errorf("failed to search products: %w", err)
	}

	items := make([]ProductListItem, 0, len(products))
	for i := range products {
		items = append(items, toListItem(&products[i]))
	}

	return domain.NewPagedResult(items, totalCount, q.Criteria.PageNumber, q.Criteria.PageSize), nil
}

func toListItem(p *domain.Product) ProductListItem {
	item := ProductListItem{
		ID:           p.ID,
		StoreName:    unknownStore,
		CategoryName: unknownCategory,
		BrandName:    unknownBrand,
		Name:         p.Name,
		MinPrice:     p.MinPrice,
		MaxPrice:     p.MaxPrice,
		Status:       p.Status,
		MainImageURL: p.MainImageURL(),
	}
	if p.Store != nil {
		item.StoreName = p.Store.StoreName
	}
	if p.Category != nil {
		item.CategoryName = p.Category.Name
	}
	if p.Brand != nil {
		item.BrandName = p.Brand.Name
	}
	return item
}
