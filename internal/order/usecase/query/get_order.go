package query

import (
	"errors"
	"fmt"
	"time"

	"github.com/ispanshop/catalog-service/internal/order/domain"
)

// OrderItemDetail is one purchased line of the detail view
type OrderItemDetail struct {
	ProductID   uint    `json:"product_id"`
	SkuCode     string  `json:"sku_code"`
	ProductName string  `json:"product_name"`
	UnitPrice   float64 `json:"unit_price"`
	Quantity    int     `json:"quantity"`
	Subtotal    float64 `json:"subtotal"`
}

// OrderDetail is the admin detail-view DTO
type OrderDetail struct {
	ID              uint               `json:"id"`
	OrderNumber     string             `json:"order_number"`
	UserID          uint               `json:"user_id"`
	Status          domain.OrderStatus `json:"status"`
	TotalAmount     float64            `json:"total_amount"`
	ReceiverName    string             `json:"receiver_name"`
	ReceiverPhone   string             `json:"receiver_phone"`
	ReceiverAddress string             `json:"receiver_address"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
	Items           []OrderItemDetail  `json:"items"`
}

// GetOrderDetailQuery represents a detail lookup by id
type GetOrderDetailQuery struct {
	ID uint
}

// GetOrderDetailHandler handles order detail lookups
type GetOrderDetailHandler struct {
	repo domain.OrderRepository
}

// NewGetOrderDetailHandler creates a new order detail handler
func NewGetOrderDetailHandler(repo domain.OrderRepository) *GetOrderDetailHandler {
	return &GetOrderDetailHandler{repo: repo}
}

// Handle returns domain.ErrOrderNotFound when the id does not exist
func (h *GetOrderDetailHandler) Handle(q GetOrderDetailQuery) (*OrderDetail, error) {
	order, err := h.repo.FindByID(q.ID)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get order detail: %w", err)
	}

	detail := &OrderDetail{
		ID:              order.ID,
		OrderNumber:     order.OrderNumber,
		UserID:          order.UserID,
		Status:          order.Status,
		TotalAmount:     order.TotalAmount,
		ReceiverName:    order.ReceiverName,
		ReceiverPhone:   order.ReceiverPhone,
		ReceiverAddress: order.ReceiverAddress,
		CreatedAt:       order.CreatedAt,
		UpdatedAt:       order.UpdatedAt,
		Items:           make([]OrderItemDetail, 0, len(order.Items)),
	}

	for _, item := range order.Items {
		detail.Items = append(detail.Items, OrderItemDetail{
			ProductID:   item.ProductID,
			SkuCode:     item.SkuCode,
			ProductName: item.ProductName,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
			Subtotal:    item.UnitPrice * float64(item.Quantity),
		})
	}

	return detail, nil
}
