package command

import (
	"fmt"

	"github.com/ispanshop/catalog-service/internal/order/domain"
)

// UpdateOrderStatusCommand moves an order to a new lifecycle state
type UpdateOrderStatusCommand struct {
	OrderID uint
	Status  domain.OrderStatus
}

// UpdateOrderStatusHandler handles order status transitions
type UpdateOrderStatusHandler struct {
	repo domain.OrderRepository
}

// NewUpdateOrderStatusHandler creates a new update order status handler
func NewUpdateOrderStatusHandler(repo domain.OrderRepository) *UpdateOrderStatusHandler {
	return &UpdateOrderStatusHandler{repo: repo}
}

// Handle validates the target status and applies the transition. A missing
// order id surfaces as domain.ErrOrderNotFound.
func (h *UpdateOrderStatusHandler) Handle(cmd UpdateOrderStatusCommand) error {
	if !cmd.Status.IsValid() {
		return fmt.Errorf("invalid order status: %d", cmd.Status)
	}

	affected, err := h.repo.UpdateStatus(cmd.OrderID, cmd.Status)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	if affected == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}
