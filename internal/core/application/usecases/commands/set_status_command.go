package commands

import (
	"errors"

	"orderlink/internal/core/domain/model/kernel"
	"orderlink/internal/core/domain/model/order"
	"orderlink/internal/pkg/guard"
)

var (
	ErrSetStatusCommandIsNotConstructed = errors.New(
		"SetStatusCommand must be created via NewSetStatusCommand constructor",
	)
)

// SetStatusCommand represents an owner's request to move one order along the
// fulfillment pipeline, for example from "Processing" to "Shipped".
//
// "Pending" is never a legal target for this command: the move into "Pending"
// carries customer data and a tracking token, which only the sale-form
// submission can supply.
type SetStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	ownerID kernel.OwnerID
	target  order.Status

	guard guard.ConstructorGuard
}

// NewSetStatusCommand creates a command to change the status of a single order.
// Validates the identifiers and that the target is a known status.
func NewSetStatusCommand(orderID kernel.UUID, ownerID kernel.OwnerID, target order.Status) (SetStatusCommand, error) {
	statusCommand := SetStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setOrderID(orderID),
		statusCommand.setOwnerID(ownerID),
		statusCommand.setTarget(target),
	); err != nil {
		return SetStatusCommand{}, err
	}

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSetStatusCommandIsNotConstructed if validation fails.
func (c SetStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being changed.
func (c SetStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OwnerID returns the identifier of the owner requesting the change.
func (c SetStatusCommand) OwnerID() kernel.OwnerID {
	return c.ownerID
}

// Target returns the requested status.
func (c SetStatusCommand) Target() order.Status {
	return c.target
}

func (c *SetStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SetStatusCommand) setOwnerID(ownerID kernel.OwnerID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	c.ownerID = ownerID
	return nil
}

func (c *SetStatusCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
