package queries

import (
	"errors"

	"orderlink/internal/core/domain/model/kernel"
	"orderlink/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves one order for its owner.
// Orders belonging to a different owner come back as not found, so the
// endpoint does not reveal which identifiers exist.
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	ownerID kernel.OwnerID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to retrieve a single order.
func NewGetOrderQuery(orderID kernel.UUID, ownerID kernel.OwnerID) (GetOrderQuery, error) {
	orderQuery := GetOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderQuery.setOrderID(orderID),
		orderQuery.setOwnerID(ownerID),
	); err != nil {
		return GetOrderQuery{}, err
	}

	return orderQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// OwnerID returns the identifier of the requesting owner.
func (q GetOrderQuery) OwnerID() kernel.OwnerID {
	return q.ownerID
}

func (q *GetOrderQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

func (q *GetOrderQuery) setOwnerID(ownerID kernel.OwnerID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	q.ownerID = ownerID
	return nil
}
