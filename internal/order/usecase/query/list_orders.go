package query

import (
	"fmt"
	"time"

	"github.com/ispanshop/catalog-service/internal/order/domain"
)

// OrderListItem is the admin list-view DTO
type OrderListItem struct {
	ID           uint               `json:"id"`
	OrderNumber  string             `json:"order_number"`
	UserID       uint               `json:"user_id"`
	Status       domain.OrderStatus `json:"status"`
	TotalAmount  float64            `json:"total_amount"`
	ReceiverName string             `json:"receiver_name"`
	CreatedAt    time.Time          `json:"created_at"`
}

// ListOrdersQuery represents an admin order search
type ListOrdersQuery struct {
	Criteria domain.OrderSearchCriteria
}

// ListOrdersHandler handles paginated admin order searches
type ListOrdersHandler struct {
	repo domain.OrderRepository
}

// NewListOrdersHandler creates a new list orders handler
func NewListOrdersHandler(repo domain.OrderRepository) *ListOrdersHandler {
	return &ListOrdersHandler{repo: repo}
}

// Handle executes the search and wraps the result in a page envelope
func (h *ListOrdersHandler) Handle(q ListOrdersQuery) (domain.PagedResult[OrderListItem], error) {
	q.Criteria.Normalize()

	orders, totalCount, err := h.repo.ListFiltered(q.Criteria)
	if err != nil {
		return domain.PagedResult[OrderListItem]{}, fmt.Errorf("failed to list orders: %w", err)
	}

	items := make([]OrderListItem, 0, len(orders))
	for i := range orders {
		o := &orders[i]
		items = append(items, OrderListItem{
			ID:           o.ID,
			OrderNumber:  o.OrderNumber,
			UserID:       o.UserID,
			Status:       o.Status,
			TotalAmount:  o.TotalAmount,
			ReceiverName: o.ReceiverName,
			CreatedAt:    o.CreatedAt,
		})
	}

	return domain.NewPagedResult(items, totalCount, q.Criteria.PageNumber, q.Criteria.PageSize), nil
}
