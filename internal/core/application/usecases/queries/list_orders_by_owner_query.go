package queries

import (
	"errors"

	"orderlink/internal/core/domain/model/kernel"
	"orderlink/internal/pkg/guard"
)

var (
	ErrListOrdersByOwnerQueryIsNotConstructed = errors.New(
		"ListOrdersByOwnerQuery must be created via NewListOrdersByOwnerQuery constructor",
	)
)

// ListOrdersByOwnerQuery retrieves every order of one owner, newest first,
// optionally narrowed to one delivery region. A blank region or "all" means
// no narrowing.
type ListOrdersByOwnerQuery struct { //nolint:recvcheck //using for validation
	ownerID kernel.OwnerID
	region  string

	guard guard.ConstructorGuard
}

// NewListOrdersByOwnerQuery creates a query to list an owner's orders.
func NewListOrdersByOwnerQuery(ownerID kernel.OwnerID, region string) (ListOrdersByOwnerQuery, error) {
	listQuery := ListOrdersByOwnerQuery{
		region: region,
		guard:  guard.NewConstructorGuard(),
	}

	if err := listQuery.setOwnerID(ownerID); err != nil {
		return ListOrdersByOwnerQuery{}, err
	}

	return listQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListOrdersByOwnerQueryIsNotConstructed if validation fails.
func (q ListOrdersByOwnerQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersByOwnerQueryIsNotConstructed)
}

// OwnerID returns the identifier of the owner whose orders are listed.
func (q ListOrdersByOwnerQuery) OwnerID() kernel.OwnerID {
	return q.ownerID
}

// Region returns the delivery region filter, blank for no filter.
func (q ListOrdersByOwnerQuery) Region() string {
	return q.region
}

func (q *ListOrdersByOwnerQuery) setOwnerID(ownerID kernel.OwnerID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	q.ownerID = ownerID
	return nil
}
