package order

import (
	"errors"
	"fmt"
	"time"

	"orderlink/internal/core/domain/model/kernel"
	"orderlink/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order represents a single sale in the system. It is the aggregate root that
// manages the order lifecycle from sale-link creation through delivery or
// cancellation.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and owner identifier
//   - Must have at least one item; every item price is positive
//   - totalAmount equals the sum of item prices, fixed at creation
//   - A tracking token is present if and only if status is not Created
//   - Status transitions follow the Status state machine
//   - Can only be created through NewOrder or RestoreOrder
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order, assigned at creation
	id kernel.UUID

	// ownerID identifies the business owner who issued the sale link
	ownerID kernel.OwnerID

	// status is the current state in the order lifecycle
	status Status

	// customer holds the submitted customer data (nil until submission)
	customer *Customer

	// items is the fixed list of sale lines
	items []OrderItem

	// totalAmount is the sum of item prices, stored redundantly for display
	totalAmount int64

	// trackingID is the public lookup token (nil until submission)
	trackingID *TrackingID

	createdAt time.Time
	updatedAt time.Time

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order in Created status. This is how an owner issues
// a sale link: the item list and total are fixed here, customer data and the
// tracking token arrive later with the submission.
//
// totalAmount must equal the sum of the item prices; the mismatch is rejected
// rather than silently recomputed.
func NewOrder(
	id kernel.UUID,
	ownerID kernel.OwnerID,
	items []OrderItem,
	totalAmount int64,
	now time.Time,
) (*Order, error) {
	order := &Order{
		status:        Created,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setOwnerID(ownerID),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	if err := order.setTotalAmount(totalAmount); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence. It re-checks the
// cross-field invariants so corrupt rows cannot produce an aggregate that the
// constructors would have rejected, in particular the rule that a tracking
// token and customer data exist exactly when the order has left Created.
func RestoreOrder(
	id kernel.UUID,
	ownerID kernel.OwnerID,
	status Status,
	customer *Customer,
	items []OrderItem,
	totalAmount int64,
	trackingID *TrackingID,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	order := &Order{
		customer:      customer,
		totalAmount:   totalAmount,
		trackingID:    trackingID,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setOwnerID(ownerID),
		order.setItems(items),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	order.status = status

	if trackingID != nil {
		if err := trackingID.Validate(); err != nil {
			return nil, err
		}
	}
	if customer != nil {
		if err := customer.Validate(); err != nil {
			return nil, err
		}
	}

	if err := order.validateSubmissionState(); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. This prevents bypassing validation by directly instantiating
// the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OwnerID returns the identifier of the business owner who created the order.
func (o *Order) OwnerID() kernel.OwnerID {
	return o.ownerID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Customer returns the submitted customer data.
// Returns nil while the order is still in Created status.
func (o *Order) Customer() *Customer {
	return o.customer
}

// Items returns a copy of the order's item list.
func (o *Order) Items() []OrderItem {
	items := make([]OrderItem, len(o.items))
	copy(items, o.items)
	return items
}

// TotalAmount returns the sum of item prices in minor currency units.
func (o *Order) TotalAmount() int64 {
	return o.totalAmount
}

// TrackingID returns the public tracking token.
// Returns nil while the order is still in Created status.
func (o *Order) TrackingID() *TrackingID {
	return o.trackingID
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the timestamp of the last mutation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Submit applies the customer's one-time sale-form submission: it attaches the
// customer data and the freshly generated tracking token, and moves the order
// from Created to Pending.
//
// This is the only way an order leaves Created (other than cancellation) and
// the only mutation a customer ever performs.
func (o *Order) Submit(customer Customer, trackingID TrackingID, now time.Time) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	if err := trackingID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.TransitionTo(Pending)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.customer = &customer
	o.trackingID = &trackingID
	o.updatedAt = now
	return nil
}

// ChangeStatus applies an owner-driven status transition. Pending is not a
// legal target here: the Created -> Pending move carries customer data and a
// tracking token, which only Submit can supply.
func (o *Order) ChangeStatus(target Status, now time.Time) error {
	if target == Pending {
		return NewInvalidTransitionError(o.status, target)
	}

	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = now
	return nil
}

// Cancel moves the order to Canceled. Canceling an already-canceled order is
// a no-op rather than an error; canceling a delivered order fails because
// Delivered is terminal.
func (o *Order) Cancel(now time.Time) error {
	if o.status == Canceled {
		return nil
	}

	newStatus, err := o.status.TransitionTo(Canceled)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = now
	return nil
}

// validateSubmissionState enforces the tracking/customer presence invariant:
// both absent in Created, both present in every other status.
func (o *Order) validateSubmissionState() error {
	if o.status == Created {
		if o.trackingID != nil {
			return errs.NewValueIsInvalidErrorWithCause("trackingId",
				fmt.Errorf("order in %s status must not have a tracking token", o.status))
		}
		if o.customer != nil {
			return errs.NewValueIsInvalidErrorWithCause("customer",
				fmt.Errorf("order in %s status must not have customer data", o.status))
		}
		return nil
	}

	if o.trackingID == nil {
		return errs.NewValueIsRequiredErrorWithCause("trackingId",
			fmt.Errorf("order in %s status must have a tracking token", o.status))
	}
	if o.customer == nil {
		return errs.NewValueIsRequiredErrorWithCause("customer",
			fmt.Errorf("order in %s status must have customer data", o.status))
	}
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOwnerID(ownerID kernel.OwnerID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	o.ownerID = ownerID
	return nil
}

func (o *Order) setItems(items []OrderItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]OrderItem, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setTotalAmount(totalAmount int64) error {
	if sum := TotalOf(o.items); totalAmount != sum {
		return errs.NewValueIsInvalidErrorWithCause("totalAmount",
			fmt.Errorf("%d does not equal the item price sum %d", totalAmount, sum))
	}
	o.totalAmount = totalAmount
	return nil
}
