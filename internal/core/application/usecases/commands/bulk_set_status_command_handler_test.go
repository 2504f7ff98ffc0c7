package commands_test

import (
	"errors"
	"testing"

	"orderlink/internal/core/application/usecases/commands"
	"orderlink/internal/core/domain/model/kernel"
	"orderlink/internal/core/domain/model/order"
	"orderlink/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBulkSetStatusCommandHandler_Handle_UpdatesEligibleSkipsRest(t *testing.T) {
	ctx := t.Context()
	ownerID := testOwnerID(t)

	eligible := newSubmittedOrder(t, ownerID)

	alreadyAtTarget := newSubmittedOrder(t, ownerID)
	require.NoError(t, alreadyAtTarget.ChangeStatus(order.Processing, alreadyAtTarget.UpdatedAt()))

	canceled := newSubmittedOrder(t, ownerID)
	require.NoError(t, canceled.Cancel(canceled.UpdatedAt()))

	awaitingSubmission := newCreatedOrder(t, ownerID)
	foreign := newSubmittedOrder(t, mustOwnerID(t, "owner-2"))
	missingID := kernel.NewUUID()

	ids := []kernel.UUID{
		eligible.ID(), alreadyAtTarget.ID(), canceled.ID(),
		awaitingSubmission.ID(), foreign.ID(), missingID,
	}
	cmd, err := commands.NewBulkSetStatusCommand(ids, ownerID, order.Processing)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Get", mock.Anything, eligible.ID()).Return(eligible, nil).Once()
	repo.On("Get", mock.Anything, alreadyAtTarget.ID()).Return(alreadyAtTarget, nil).Once()
	repo.On("Get", mock.Anything, canceled.ID()).Return(canceled, nil).Once()
	repo.On("Get", mock.Anything, awaitingSubmission.ID()).Return(awaitingSubmission, nil).Once()
	repo.On("Get", mock.Anything, foreign.ID()).Return(foreign, nil).Once()
	repo.On("Get", mock.Anything, missingID).
		Return(nil, errs.NewObjectNotFoundError("orderID", missingID)).Once()
	repo.On("Update", mock.Anything, eligible).Return(nil).Once()

	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewBulkSetStatusCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, 1, result.UpdatedCount)
	assert.ElementsMatch(t, []kernel.UUID{
		alreadyAtTarget.ID(), canceled.ID(), awaitingSubmission.ID(), foreign.ID(), missingID,
	}, result.SkippedIDs)

	assert.Equal(t, order.Processing, eligible.Status())
	assert.Equal(t, order.Canceled, canceled.Status())
	assert.Equal(t, order.Created, awaitingSubmission.Status())
	assert.Equal(t, order.Pending, foreign.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestBulkSetStatusCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.BulkSetStatusCommand{} // not constructed properly
	factory := new(MockOrderUoWFactory)
	h := commands.NewBulkSetStatusCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestBulkSetStatusCommandHandler_Handle_StorageErrorAbortsBatch(t *testing.T) {
	ctx := t.Context()
	ownerID := testOwnerID(t)
	first := newSubmittedOrder(t, ownerID)
	second := newSubmittedOrder(t, ownerID)
	cmd, err := commands.NewBulkSetStatusCommand([]kernel.UUID{first.ID(), second.ID()}, ownerID, order.Processing)
	require.NoError(t, err)

	storageErr := errs.NewStorageUnavailableError("get order", errors.New("connection refused"))

	repo := new(MockOrderRepository)
	repo.On("Get", mock.Anything, first.ID()).Return(first, nil).Once()
	repo.On("Update", mock.Anything, first).Return(nil).Once()
	repo.On("Get", mock.Anything, second.ID()).Return(nil, storageErr).Once()

	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewBulkSetStatusCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)

	var unavailableErr *errs.StorageUnavailableError
	assert.ErrorAs(t, err, &unavailableErr)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestBulkSetStatusCommandHandler_Handle_AllSkippedStillCommits(t *testing.T) {
	ctx := t.Context()
	ownerID := testOwnerID(t)
	canceled := newSubmittedOrder(t, ownerID)
	require.NoError(t, canceled.Cancel(canceled.UpdatedAt()))
	cmd, err := commands.NewBulkSetStatusCommand([]kernel.UUID{canceled.ID()}, ownerID, order.Shipped)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Get", mock.Anything, canceled.ID()).Return(canceled, nil).Once()

	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewBulkSetStatusCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Zero(t, result.UpdatedCount)
	assert.Equal(t, []kernel.UUID{canceled.ID()}, result.SkippedIDs)
}
