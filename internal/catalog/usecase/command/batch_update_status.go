package command

import (
	"fmt"

	"github.com/ispanshop/catalog-service/internal/catalog/domain"
	"github.com/ispanshop/catalog-service/internal/catalog/moderation"
)

// BatchUpdateStatusCommand applies one status across a set of products.
// Only publish (1) and unlist (0) are permitted bulk targets.
type BatchUpdateStatusCommand struct {
	ProductIDs   []uint
	TargetStatus domain.ProductStatus
}

// BatchUpdateStatusHandler handles bulk status transitions
type BatchUpdateStatusHandler struct {
	repo domain.CatalogRepository
}

// NewBatchUpdateStatusHandler creates a new batch update handler
func NewBatchUpdateStatusHandler(repo domain.CatalogRepository) *BatchUpdateStatusHandler {
	return &BatchUpdateStatusHandler{repo: repo}
}

// Handle returns the number of rows actually affected, which may be lower
// than the id count when some ids do not exist. An empty id set is a no-op
// returning 0.
func (h *BatchUpdateStatusHandler) Handle(cmd BatchUpdateStatusCommand) (int64, error) {
	if !moderation.AllowedBatchTarget(cmd.TargetStatus) {
		return 0, fmt.Errorf("target status must be published (1) or unlisted (0), got %d", cmd.TargetStatus)
	}

	if len(cmd.ProductIDs) == 0 {
		return 0, nil
	}

	affected, err := h.repo.UpdateStatusBatch(cmd.ProductIDs, cmd.TargetStatus)
	if err != nil {
		return 0, fmt.Errorf("failed to batch update status: %w", err)
	}

	return affected, nil
}
