package commands

import (
	"errors"

	"orderlink/internal/core/domain/model/kernel"
	"orderlink/internal/core/domain/model/order"
	"orderlink/internal/pkg/errs"
	"orderlink/internal/pkg/guard"
)

var (
	ErrBulkSetStatusCommandIsNotConstructed = errors.New(
		"BulkSetStatusCommand must be created via NewBulkSetStatusCommand constructor",
	)
)

// BulkSetStatusCommand represents an owner's request to move a batch of
// orders to one target status in a single atomic operation.
//
// Ineligible orders in the batch are skipped, not failed: orders that are
// canceled, still awaiting submission, already at the target, or whose
// current status cannot legally reach the target. The handler reports which
// identifiers were skipped so the caller can surface them.
type BulkSetStatusCommand struct { //nolint:recvcheck //using for validation
	orderIDs []kernel.UUID
	ownerID  kernel.OwnerID
	target   order.Status

	guard guard.ConstructorGuard
}

// NewBulkSetStatusCommand creates a command to change the status of several
// orders at once. Validates that the batch is not empty, every identifier is
// valid, and the target is a known status.
func NewBulkSetStatusCommand(
	orderIDs []kernel.UUID,
	ownerID kernel.OwnerID,
	target order.Status,
) (BulkSetStatusCommand, error) {
	bulkCommand := BulkSetStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		bulkCommand.setOrderIDs(orderIDs),
		bulkCommand.setOwnerID(ownerID),
		bulkCommand.setTarget(target),
	); err != nil {
		return BulkSetStatusCommand{}, err
	}

	return bulkCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrBulkSetStatusCommandIsNotConstructed if validation fails.
func (c BulkSetStatusCommand) Validate() error {
	return c.guard.Validate(ErrBulkSetStatusCommandIsNotConstructed)
}

// OrderIDs returns the identifiers of the orders in the batch.
func (c BulkSetStatusCommand) OrderIDs() []kernel.UUID {
	return c.orderIDs
}

// OwnerID returns the identifier of the owner requesting the change.
func (c BulkSetStatusCommand) OwnerID() kernel.OwnerID {
	return c.ownerID
}

// Target returns the requested status.
func (c BulkSetStatusCommand) Target() order.Status {
	return c.target
}

func (c *BulkSetStatusCommand) setOrderIDs(orderIDs []kernel.UUID) error {
	if len(orderIDs) == 0 {
		return errs.NewValueIsRequiredError("orderIDs")
	}

	for _, orderID := range orderIDs {
		if err := orderID.Validate(); err != nil {
			return err
		}
	}

	c.orderIDs = orderIDs
	return nil
}

func (c *BulkSetStatusCommand) setOwnerID(ownerID kernel.OwnerID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	c.ownerID = ownerID
	return nil
}

func (c *BulkSetStatusCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
