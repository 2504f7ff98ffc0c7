package order

import (
	"errors"
	"fmt"

	"orderlink/internal/pkg/errs"
)

// ErrInvalidTransition is the unwrap target for InvalidTransitionError.
// Callers classify rejected status changes with errors.Is against this value.
var ErrInvalidTransition = errors.New("status transition is not allowed")

// InvalidTransitionError reports a status change that the state machine does
// not permit. It always names the disallowed from/to pair.
type InvalidTransitionError struct {
	From Status
	To   Status
}

// NewInvalidTransitionError creates an error for a disallowed status change.
func NewInvalidTransitionError(from, to Status) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct fulfillment workflow.
//
// State transitions:
//
//	Created ──> Pending ──> Processing ──> Shipped ──> Delivered
//	   │           │            │             │
//	   └───────────┴────────────┴─────────────┴──────> Canceled
//
// Delivered and Canceled are terminal; no transition leaves them.
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status when an owner issues a sale link.
	// No customer data or tracking token exists yet.
	Created

	// Pending indicates the customer has submitted the sale form.
	// Customer data and the tracking token are attached at this point.
	Pending

	// Processing indicates the owner has started preparing the order.
	Processing

	// Shipped indicates the order has been handed to delivery.
	Shipped

	// Delivered indicates the order reached the customer. Terminal.
	Delivered

	// Canceled indicates the order was called off. Terminal, reachable
	// from any non-terminal status.
	Canceled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Created:    "Created",
		Pending:    "Pending",
		Processing: "Processing",
		Shipped:    "Shipped",
		Delivered:  "Delivered",
		Canceled:   "Canceled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:    "Created",
		Pending:    "Pending",
		Processing: "Processing",
		Shipped:    "Shipped",
		Delivered:  "Delivered",
		Canceled:   "Canceled",
	}
}

// getTransitions returns the closed transition table of the state machine.
// A status maps to the exact set of statuses it may move to.
func getTransitions() map[Status][]Status {
	return map[Status][]Status{
		Created:    {Pending, Canceled},
		Pending:    {Processing, Canceled},
		Processing: {Shipped, Canceled},
		Shipped:    {Delivered, Canceled},
		Delivered:  {},
		Canceled:   {},
	}
}

// StatusFromString parses a status name as it appears on the wire or in
// storage. Returns an error for unknown names, including "Unknown".
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
// Unknown (0) and any out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// It implements fmt.Stringer and is safe to call on any Status value,
// returning "Unknown" for invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no transition leaves this status.
// Delivered and Canceled are the terminal states.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Canceled
}

// CanTransitionTo reports whether the state machine permits moving from the
// current status to target, without performing the transition.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range getTransitions()[s] {
		if next == target {
			return true
		}
	}
	return false
}

// TransitionTo validates the move against the transition table and returns the
// new status.
//
// Returns:
//   - (target, nil) on a valid transition
//   - (0, *InvalidTransitionError) naming the from/to pair otherwise
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}

	if !s.CanTransitionTo(target) {
		return 0, NewInvalidTransitionError(s, target)
	}

	return target, nil
}
