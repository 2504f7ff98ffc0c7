package commands

import (
	"errors"

	"orderlink/internal/core/domain/model/kernel"
	"orderlink/internal/core/domain/model/order"
	"orderlink/internal/pkg/guard"
)

var (
	ErrSubmitOrderCommandIsNotConstructed = errors.New(
		"SubmitOrderCommand must be created via NewSubmitOrderCommand constructor",
	)
)

// SubmitOrderCommand represents a customer's one-time sale-form submission.
// Carries the customer data that moves the order from "Created" to "Pending".
// This is the only customer-driven mutation in the system; it arrives through
// the public sale link without authentication.
type SubmitOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	customer order.Customer

	guard guard.ConstructorGuard
}

// NewSubmitOrderCommand creates a command to submit customer data for an order.
// Validates that the order identifier and customer data are valid.
func NewSubmitOrderCommand(orderID kernel.UUID, customer order.Customer) (SubmitOrderCommand, error) {
	submitCommand := SubmitOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		submitCommand.setOrderID(orderID),
		submitCommand.setCustomer(customer),
	); err != nil {
		return SubmitOrderCommand{}, err
	}

	return submitCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSubmitOrderCommandIsNotConstructed if validation fails.
func (c SubmitOrderCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being submitted.
func (c SubmitOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Customer returns the submitted customer data.
func (c SubmitOrderCommand) Customer() order.Customer {
	return c.customer
}

func (c *SubmitOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SubmitOrderCommand) setCustomer(customer order.Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}

	c.customer = customer
	return nil
}
