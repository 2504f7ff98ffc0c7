package commands

import (
	"errors"

	"orderlink/internal/core/domain/model/kernel"
	"orderlink/internal/core/domain/model/order"
	"orderlink/internal/pkg/errs"
	"orderlink/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents an owner's request to issue a new sale link.
// Encapsulates the fixed item list and the declared total for the sale.
//
// Example:
//
//	item, _ := order.NewOrderItem("Handmade mug", 4500)
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), ownerID, []order.OrderItem{item}, 4500)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	ownerID     kernel.OwnerID
	items       []order.OrderItem
	totalAmount int64

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to issue a new sale link.
// Validates that the order and owner identifiers are valid, the item list is
// not empty, and the declared total matches the sum of item prices.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	ownerID kernel.OwnerID,
	items []order.OrderItem,
	totalAmount int64,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setOwnerID(ownerID),
		orderCommand.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	if err := orderCommand.setTotalAmount(totalAmount); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OwnerID returns the identifier of the owner issuing the sale link.
func (c CreateOrderCommand) OwnerID() kernel.OwnerID {
	return c.ownerID
}

// Items returns the sale lines fixed at creation.
func (c CreateOrderCommand) Items() []order.OrderItem {
	return c.items
}

// TotalAmount returns the declared total in minor currency units.
func (c CreateOrderCommand) TotalAmount() int64 {
	return c.totalAmount
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setOwnerID(ownerID kernel.OwnerID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	c.ownerID = ownerID
	return nil
}

func (c *CreateOrderCommand) setItems(items []order.OrderItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = items
	return nil
}

func (c *CreateOrderCommand) setTotalAmount(totalAmount int64) error {
	if totalAmount != order.TotalOf(c.items) {
		return errs.NewValueIsInvalidError("totalAmount")
	}

	c.totalAmount = totalAmount
	return nil
}
