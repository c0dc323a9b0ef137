package command

import (
	"fmt"

	"github.com/ispanshop/catalog-service/internal/catalog/domain"
)

// RejectProductCommand represents the command to reject a product
type RejectProductCommand struct {
	ProductID uint
	Reason    *string
}

// RejectProductHandler handles product rejection
type RejectProductHandler struct {
	repo domain.CatalogRepository
}

// NewRejectProductHandler creates a new reject product handler
func NewRejectProductHandler(repo domain.CatalogRepository) *RejectProductHandler {
	return &RejectProductHandler{repo: repo}
}

// Handle rejects the product, storing the optional reason. A missing id is a
// silent no-op, reported as OutcomeNotFound rather than an error.
func (h *RejectProductHandler) Handle(cmd RejectProductCommand) (Outcome, error) {
	affected, err := h.repo.UpdateStatus(cmd.ProductID, domain.StatusRejected, cmd.Reason)
	if err != nil {
		return OutcomeNotFound, fmt.Errorf("failed to reject product: %w", err)
	}
	if affected == 0 {
		return OutcomeNotFound, nil
	}
	return OutcomeUpdated, nil
}
