package commands_test

import (
	"testing"

	"orderlink/internal/core/application/usecases/commands"
	"orderlink/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	ownerID := testOwnerID(t)
	submittedOrder := newSubmittedOrder(t, ownerID)
	cmd, err := commands.NewCancelOrderCommand(submittedOrder.ID(), ownerID)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, submittedOrder.ID()).Return(submittedOrder, nil).Once(),
		repo.On("Update", mock.Anything, submittedOrder).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	canceled, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, canceled)
	assert.Equal(t, order.Canceled, canceled.Status())
	assert.True(t, submittedOrder.IsEqual(canceled))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_AlreadyCanceledIsIdempotent(t *testing.T) {
	ctx := t.Context()
	ownerID := testOwnerID(t)
	canceledOrder := newSubmittedOrder(t, ownerID)
	require.NoError(t, canceledOrder.Cancel(canceledOrder.UpdatedAt()))
	cmd, err := commands.NewCancelOrderCommand(canceledOrder.ID(), ownerID)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, canceledOrder.ID()).Return(canceledOrder, nil).Once(),
		repo.On("Update", mock.Anything, canceledOrder).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	canceled, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, canceled)
	assert.Equal(t, order.Canceled, canceled.Status())
}

func TestCancelOrderCommandHandler_Handle_DeliveredOrderCannotBeCanceled(t *testing.T) {
	ctx := t.Context()
	ownerID := testOwnerID(t)
	deliveredOrder := newSubmittedOrder(t, ownerID)
	now := deliveredOrder.UpdatedAt()
	require.NoError(t, deliveredOrder.ChangeStatus(order.Processing, now))
	require.NoError(t, deliveredOrder.ChangeStatus(order.Shipped, now))
	require.NoError(t, deliveredOrder.ChangeStatus(order.Delivered, now))
	cmd, err := commands.NewCancelOrderCommand(deliveredOrder.ID(), ownerID)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, deliveredOrder.ID()).Return(deliveredOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrInvalidTransition)
	assert.Equal(t, order.Delivered, deliveredOrder.Status())
}
