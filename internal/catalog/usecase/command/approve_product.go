package command

import (
	"fmt"

	"github.com/ispanshop/catalog-service/internal/catalog/domain"
)

// Outcome names the effect of a single-product status mutation. The HTTP
// layer collapses both outcomes into the same acknowledgement; tests and
// logs can still tell the paths apart.
type Outcome int

const (
	OutcomeUpdated Outcome = iota
	OutcomeNotFound
)

// String returns a human readable outcome name
func (o Outcome) String() string {
	if o == OutcomeUpdated {
		return "updated"
	}
	return "not_found"
}

// ApproveProductCommand represents the command to publish a product
type ApproveProductCommand struct {
	ProductID uint
}

// ApproveProductHandler handles product approval
type ApproveProductHandler struct {
	repo domain.CatalogRepository
}

// NewApproveProductHandler creates a new approve product handler
func NewApproveProductHandler(repo domain.CatalogRepository) *ApproveProductHandler {
	return &ApproveProductHandler{repo: repo}
}

// Handle publishes the product and clears any reject reason. A missing id is
// a silent no-op, reported as OutcomeNotFound rather than an error.
func (h *ApproveProductHandler) Handle(cmd ApproveProductCommand) (Outcome, error) {
	affected, err := h.repo.UpdateStatus(cmd.ProductID, domain.StatusPublished, nil)
	if err != nil {
		return OutcomeNotFound, fmt.Errorf("failed to approve product: %w", err)
	}
	if affected == 0 {
		return OutcomeNotFound, nil
	}
	return OutcomeUpdated, nil
}
