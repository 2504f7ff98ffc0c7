package commands

import (
	"errors"

	"orderlink/internal/core/domain/model/kernel"
	"orderlink/internal/pkg/guard"
)

var (
	ErrCancelOrderCommandIsNotConstructed = errors.New(
		"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
	)
)

// CancelOrderCommand represents an owner's request to cancel an order.
// Cancellation is allowed from any non-terminal status; canceling an already
// canceled order succeeds without changing anything.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	ownerID kernel.OwnerID

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command to cancel an order.
func NewCancelOrderCommand(orderID kernel.UUID, ownerID kernel.OwnerID) (CancelOrderCommand, error) {
	cancelCommand := CancelOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cancelCommand.setOrderID(orderID),
		cancelCommand.setOwnerID(ownerID),
	); err != nil {
		return CancelOrderCommand{}, err
	}

	return cancelCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCancelOrderCommandIsNotConstructed if validation fails.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being canceled.
func (c CancelOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OwnerID returns the identifier of the owner requesting the cancellation.
func (c CancelOrderCommand) OwnerID() kernel.OwnerID {
	return c.ownerID
}

func (c *CancelOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CancelOrderCommand) setOwnerID(ownerID kernel.OwnerID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	c.ownerID = ownerID
	return nil
}
