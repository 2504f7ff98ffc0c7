package commands

import (
	"context"
	"errors"
	"time"

	"orderlink/internal/core/domain/model/kernel"
	"orderlink/internal/core/domain/model/order"
	"orderlink/internal/pkg/errs"
)

// BulkSetStatusResult reports the outcome of a batch status change.
type BulkSetStatusResult struct {
	// UpdatedCount is the number of orders moved to the target status.
	UpdatedCount int

	// SkippedIDs lists the identifiers that were left untouched, either
	// because the order was ineligible for the transition or because it
	// does not exist for this owner.
	SkippedIDs []kernel.UUID
}

// BulkSetStatusCommandHandler applies one status change to a batch of orders
// inside a single transaction: either every eligible order in the batch moves
// or none does.
type BulkSetStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewBulkSetStatusCommandHandler creates a handler for batch status changes.
// Requires an OrderUoWFactory for transactional persistence.
func NewBulkSetStatusCommandHandler(uowFactory OrderUoWFactory) BulkSetStatusCommandHandler {
	return BulkSetStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the batch command. Ineligible orders are collected into
// SkippedIDs rather than failing the batch; infrastructure errors abort the
// whole transaction.
func (h *BulkSetStatusCommandHandler) Handle(
	ctx context.Context,
	cmd BulkSetStatusCommand,
) (BulkSetStatusResult, error) {
	if err := cmd.Validate(); err != nil {
		return BulkSetStatusResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return BulkSetStatusResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	result := BulkSetStatusResult{SkippedIDs: make([]kernel.UUID, 0, len(cmd.OrderIDs()))}
	now := time.Now().UTC()

	for _, orderID := range cmd.OrderIDs() {
		changedOrder, err := orderRepo.Get(ctx, orderID)
		if err != nil {
			var notFoundErr *errs.ObjectNotFoundError
			if errors.As(err, &notFoundErr) {
				result.SkippedIDs = append(result.SkippedIDs, orderID)
				continue
			}
			return BulkSetStatusResult{}, err
		}

		if !changedOrder.OwnerID().IsEqual(cmd.OwnerID()) || !isEligibleForBulkChange(changedOrder, cmd.Target()) {
			result.SkippedIDs = append(result.SkippedIDs, orderID)
			continue
		}

		if err = changedOrder.ChangeStatus(cmd.Target(), now); err != nil {
			return BulkSetStatusResult{}, err
		}

		if err = orderRepo.Update(ctx, changedOrder); err != nil {
			return BulkSetStatusResult{}, err
		}

		result.UpdatedCount++
	}

	if err := uow.Commit(ctx); err != nil {
		return BulkSetStatusResult{}, err
	}

	return result, nil
}

// isEligibleForBulkChange filters the batch down to orders the transition
// applies to. Canceled orders stay canceled, orders still awaiting submission
// keep waiting, orders already at the target need no change, and anything the
// state machine forbids is skipped instead of failing the batch.
func isEligibleForBulkChange(o *order.Order, target order.Status) bool {
	status := o.Status()

	if status == order.Canceled || status == order.Created || status == target {
		return false
	}

	return status.CanTransitionTo(target)
}
