package order

import (
	"errors"
	"math"

	"orderlink/internal/core/domain/model/kernel"
	"orderlink/internal/pkg/errs"
)

// ErrOrderItemIsNotConstructed is returned when an OrderItem was not created
// through the NewOrderItem constructor.
var ErrOrderItemIsNotConstructed = errors.New("OrderItem must be created via NewOrderItem constructor")

// OrderItem is a value object for a single line of a sale: a display name and
// a price in minor currency units. Items are fixed at order creation and never
// change afterwards.
type OrderItem struct {
	name  string
	price int64

	guard kernel.ConstructorGuard
}

// NewOrderItem creates a validated order item.
// The name must be non-empty and the price strictly positive.
func NewOrderItem(name string, price int64) (OrderItem, error) {
	item := OrderItem{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setName(name),
		item.setPrice(price),
	); err != nil {
		return OrderItem{}, err
	}

	return item, nil
}

// Validate ensures the item was created through NewOrderItem.
func (i OrderItem) Validate() error {
	return i.guard.Validate(ErrOrderItemIsNotConstructed)
}

// Name returns the item's display name.
func (i OrderItem) Name() string {
	return i.name
}

// Price returns the item's price in minor currency units.
func (i OrderItem) Price() int64 {
	return i.price
}

func (i *OrderItem) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	i.name = name
	return nil
}

func (i *OrderItem) setPrice(price int64) error {
	if price <= 0 {
		return errs.NewValueIsOutOfRangeError("item price", price, 1, int64(math.MaxInt64))
	}
	i.price = price
	return nil
}

// TotalOf sums the prices of the given items.
// The result is what an order's totalAmount must equal at creation.
func TotalOf(items []OrderItem) int64 {
	var total int64
	for _, item := range items {
		total += item.price
	}
	return total
}
