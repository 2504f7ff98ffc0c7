package commands

import (
	"context"
	"time"

	"orderlink/internal/core/domain/model/order"
	"orderlink/internal/pkg/errs"
)

// CancelOrderCommandHandler handles order cancellation.
// Canceling a delivered order fails because "Delivered" is terminal; canceling
// an already canceled order is an idempotent success.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
// Requires an OrderUoWFactory for transactional persistence.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command and returns the order as
// persisted, sparing the caller a follow-up read.
// Orders belonging to a different owner are reported as not found.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	canceledOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if !canceledOrder.OwnerID().IsEqual(cmd.OwnerID()) {
		return nil, errs.NewObjectNotFoundError("orderID", cmd.OrderID())
	}

	if err = canceledOrder.Cancel(time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, canceledOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return canceledOrder, nil
}
