package command_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ispanshop/catalog-service/internal/catalog/domain"
	"github.com/ispanshop/catalog-service/internal/catalog/usecase/command"
)

func TestApproveProductHandler_Updated(t *testing.T) {
	mockRepo := new(MockCatalogRepository)
	handler := command.NewApproveProductHandler(mockRepo)

	mockRepo.On("UpdateStatus", uint(7), domain.StatusPublished, (*string)(nil)).
		Return(int64(1), nil).Once()

	outcome, err := handler.Handle(command.ApproveProductCommand{ProductID: 7})

	assert.NoError(t, err)
	assert.Equal(t, command.OutcomeUpdated, outcome)
	mockRepo.AssertExpectations(t)
}

func TestApproveProductHandler_MissingIDIsSilentNoOp(t *testing.T) {
	mockRepo := new(MockCatalogRepository)
	handler := command.NewApproveProductHandler(mockRepo)

	mockRepo.On("UpdateStatus", uint(999), domain.StatusPublished, (*string)(nil)).
		Return(int64(0), nil).Once()

	outcome, err := handler.Handle(command.ApproveProductCommand{ProductID: 999})

	assert.NoError(t, err)
	assert.Equal(t, command.OutcomeNotFound, outcome)
}

func TestApproveProductHandler_IsIdempotent(t *testing.T) {
	mockRepo := new(MockCatalogRepository)
	handler := command.NewApproveProductHandler(mockRepo)

	// Approving an already published product still touches the row
	mockRepo.On("UpdateStatus", uint(7), domain.StatusPublished, (*string)(nil)).
		Return(int64(1), nil).Times(2)

	for i := 0; i < 2; i++ {
		outcome, err := handler.Handle(command.ApproveProductCommand{ProductID: 7})
		assert.NoError(t, err)
		assert.Equal(t, command.OutcomeUpdated, outcome)
	}
	mockRepo.AssertExpectations(t)
}

func TestApproveProductHandler_RepositoryError(t *testing.T) {
	mockRepo := new(MockCatalogRepository)
	handler := command.NewApproveProductHandler(mockRepo)

	mockRepo.On("UpdateStatus", uint(7), domain.StatusPublished, (*string)(nil)).
		Return(int64(0), errors.New("connection reset")).Once()

	_, err := handler.Handle(command.ApproveProductCommand{ProductID: 7})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to approve product")
}

func TestRejectProductHandler_StoresReason(t *testing.T) {
	mockRepo := new(MockCatalogRepository)
	handler := command.NewRejectProductHandler(mockRepo)

	reason := "瑕疵"
	mockRepo.On("UpdateStatus", uint(5), domain.StatusRejected, &reason).
		Return(int64(1), nil).Once()

	outcome, err := handler.Handle(command.RejectProductCommand{ProductID: 5, Reason: &reason})

	assert.NoError(t, err)
	assert.Equal(t, command.OutcomeUpdated, outcome)
	mockRepo.AssertExpectations(t)
}

func TestRejectProductHandler_NilReasonAllowed(t *testing.T) {
	mockRepo := new(MockCatalogRepository)
	handler := command.NewRejectProductHandler(mockRepo)

	mockRepo.On("UpdateStatus", uint(5), domain.StatusRejected, (*string)(nil)).
		Return(int64(1), nil).Once()

	outcome, err := handler.Handle(command.RejectProductCommand{ProductID: 5})

	assert.NoError(t, err)
	assert.Equal(t, command.OutcomeUpdated, outcome)
}

func TestRejectProductHandler_MissingIDIsSilentNoOp(t *testing.T) {
	mockRepo := new(MockCatalogRepository)
	handler := command.NewRejectProductHandler(mockRepo)

	mockRepo.On("UpdateStatus", uint(999), domain.StatusRejected, (*string)(nil)).
		Return(int64(0), nil).Once()

	outcome, err := handler.Handle(command.RejectProductCommand{ProductID: 999})

	assert.NoError(t, err)
	assert.Equal(t, command.OutcomeNotFound, outcome)
}

func TestBatchUpdateStatusHandler_RejectsInvalidTarget(t *testing.T) {
	mockRepo := new(MockCatalogRepository)
	handler := command.NewBatchUpdateStatusHandler(mockRepo)

	for _, target := range []domain.ProductStatus{domain.StatusPendingReview, domain.StatusRejected, domain.ProductStatus(9)} {
		_, err := handler.Handle(command.BatchUpdateStatusCommand{
			ProductIDs:   []uint{1, 2},
			TargetStatus: target,
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "target status must be published (1) or unlisted (0)")
	}
	mockRepo.AssertNotCalled(t, "UpdateStatusBatch")
}

func TestBatchUpdateStatusHandler_EmptyIDsIsNoOp(t *testing.T) {
	mockRepo := new(MockCatalogRepository)
	handler := command.NewBatchUpdateStatusHandler(mockRepo)

	affected, err := handler.Handle(command.BatchUpdateStatusCommand{
		TargetStatus: domain.StatusPublished,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(0), affected)
	mockRepo.AssertNotCalled(t, "UpdateStatusBatch")
}

func TestBatchUpdateStatusHandler_ReportsPartialEffect(t *testing.T) {
	mockRepo := new(MockCatalogRepository)
	handler := command.NewBatchUpdateStatusHandler(mockRepo)

	// One of the three ids does not exist
	mockRepo.On("UpdateStatusBatch", []uint{1, 2, 999}, domain.StatusUnlisted).
		Return(int64(2), nil).Once()

	affected, err := handler.Handle(command.BatchUpdateStatusCommand{
		ProductIDs:   []uint{1, 2, 999},
		TargetStatus: domain.StatusUnlisted,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(2), affected)
	mockRepo.AssertExpectations(t)
}
