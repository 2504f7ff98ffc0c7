// Package order provides domain entities and business logic for the order
// lifecycle in the orderlink system. It implements the Order aggregate root
// with lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, items, customer data, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//   - OrderItem: A value object for a single sale line (name and price)
//   - Customer: A value object for the data a customer submits on the sale page
//   - TrackingID: An opaque public token that lets a customer query order status
//
// Key business rules:
//   - Orders are created by an owner in Created status with their item list fixed
//   - A customer submission moves the order to Pending exactly once, attaching
//     customer data and a freshly generated tracking token
//   - Status then only moves forward: Pending -> Processing -> Shipped -> Delivered,
//     or to Canceled from any non-terminal state
//   - A tracking token is present if and only if the order has left Created
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
