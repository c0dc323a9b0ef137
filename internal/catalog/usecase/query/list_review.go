package query

import (
	"fmt"
	"time"

	"github.com/ispanshop/catalog-service/internal/catalog/domain"
)

// DefaultRejectedLimit caps the recently-rejected view when no limit is given
const DefaultRejectedLimit = 10

// ProductReviewItem is the moderation queue DTO
type ProductReviewItem struct {
	ID           uint                 `json:"id"`
	StoreID      uint                 `json:"store_id"`
	CategoryName string               `json:"category_name"`
	BrandName    string               `json:"brand_name"`
	Name         string               `json:"name"`
	Status       domain.ProductStatus `json:"status"`
	RejectReason *string              `json:"reject_reason,omitempty"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
}

// ListPendingReviewHandler lists products awaiting human review
type ListPendingReviewHandler struct {
	repo domain.CatalogRepository
}

// NewListPendingReviewHandler creates a new pending review handler
func NewListPendingReviewHandler(repo domain.CatalogRepository) *ListPendingReviewHandler {
	return &ListPendingReviewHandler{repo: repo}
}

// Handle executes the pending review query
func (h *ListPendingReviewHandler) Handle() ([]ProductReviewItem, error) {
	products, err := h.repo.ListByStatus(domain.StatusPendingReview, false, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending products: %w", err)
	}
	return toReviewItems(products), nil
}

// ListRecentlyRejectedQuery limits the rejected-list view
type ListRecentlyRejectedQuery struct {
	Limit int
}

// ListRecentlyRejectedHandler lists the latest rejections, newest first
type ListRecentlyRejectedHandler struct {
	repo domain.CatalogRepository
}

// NewListRecentlyRejectedHandler creates a new recently rejected handler
func NewListRecentlyRejectedHandler(repo domain.CatalogRepository) *ListRecentlyRejectedHandler {
	return &ListRecentlyRejectedHandler{repo: repo}
}

// Handle executes the recently rejected query, ordered by UpdatedAt desc
func (h *ListRecentlyRejectedHandler) Handle(q ListRecentlyRejectedQuery) ([]ProductReviewItem, error) {
	if q.Limit < 0 {
		return nil, fmt.Errorf("limit cannot be negative, got %d", q.Limit)
	}
	if q.Limit == 0 {
		q.Limit = DefaultRejectedLimit
	}

	products, err := h.repo.ListByStatus(domain.StatusRejected, true, q.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list rejected products: %w", err)
	}
	return toReviewItems(products), nil
}

func toReviewItems(products []domain.Product) []ProductReviewItem {
	items := make([]ProductReviewItem, 0, len(products))
	for i := range products {
		p := &products[i]
		item := ProductReviewItem{
			ID:           p.ID,
			StoreID:      p.StoreID,
			CategoryName: unknownCategory,
			BrandName:    unknownBrand,
			Name:         p.Name,
			Status:       p.Status,
			RejectReason: p.RejectReason,
			CreatedAt:    p.CreatedAt,
			UpdatedAt:    p.UpdatedAt,
		}
		if p.Category != nil {
			item.CategoryName = p.Category.Name
		}
		if p.Brand != nil {
			item.BrandName = p.Brand.Name
		}
		items = append(items, item)
	}
	return items
}
