package commands

import (
	"context"
	"errors"
	"time"

	"orderlink/internal/core/domain/model/order"
	"orderlink/internal/pkg/errs"
)

// maxTrackingIDAttempts bounds retries when a freshly generated tracking
// token collides with an existing one. Collisions are vanishingly rare for
// random 48-bit tokens, so a handful of attempts is plenty.
const maxTrackingIDAttempts = 3

// SubmitOrderCommandHandler handles the customer sale-form submission.
// Attaches customer data, generates the public tracking token and moves the
// order from "Created" to "Pending" in one transaction.
//
// The insert can race another submission on the unique tracking token index;
// such collisions abort the transaction, so each retry runs in a fresh unit
// of work with a newly generated token.
type SubmitOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSubmitOrderCommandHandler creates a handler for sale-form submissions.
// Requires an OrderUoWFactory for transactional persistence.
func NewSubmitOrderCommandHandler(uowFactory OrderUoWFactory) SubmitOrderCommandHandler {
	return SubmitOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the submission command and returns the order as persisted,
// tracking token attached, so the customer-facing page needs no follow-up
// read. A repeat submission fails because the order is no longer in "Created"
// status.
func (h *SubmitOrderCommandHandler) Handle(ctx context.Context, cmd SubmitOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := 0; attempt < maxTrackingIDAttempts; attempt++ {
		submittedOrder, err := h.submitOnce(ctx, cmd)
		if err == nil {
			return submittedOrder, nil
		}
		if !errors.Is(err, errs.ErrTrackingIDTaken) {
			return nil, err
		}
		lastErr = err
	}

	return nil, lastErr
}

func (h *SubmitOrderCommandHandler) submitOnce(ctx context.Context, cmd SubmitOrderCommand) (*order.Order, error) {
	trackingID, err := order.NewTrackingID()
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	submittedOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = submittedOrder.Submit(cmd.Customer(), trackingID, time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, submittedOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return submittedOrder, nil
}
