package commands

import (
	"context"
	"time"

	"orderlink/internal/core/domain/model/order"
	"orderlink/internal/pkg/errs"
)

// SetStatusCommandHandler handles owner-driven status changes for one order.
// The state machine in the order aggregate decides whether the move is legal.
type SetStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSetStatusCommandHandler creates a handler for single-order status changes.
// Requires an OrderUoWFactory for transactional persistence.
func NewSetStatusCommandHandler(uowFactory OrderUoWFactory) SetStatusCommandHandler {
	return SetStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change command and returns the order as
// persisted, sparing the caller a follow-up read.
// Orders belonging to a different owner are reported as not found so the
// endpoint does not reveal which identifiers exist.
func (h *SetStatusCommandHandler) Handle(ctx context.Context, cmd SetStatusCommand) (*order.Order, error) {
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
	changedOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if !changedOrder.OwnerID().IsEqual(cmd.OwnerID()) {
		return nil, errs.NewObjectNotFoundError("orderID", cmd.OrderID())
	}

	if err = changedOrder.ChangeStatus(cmd.Target(), time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, changedOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return changedOrder, nil
}
