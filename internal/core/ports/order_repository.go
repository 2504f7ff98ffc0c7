package ports

import (
	"context"

	"orderlink/internal/core/domain/model/kernel"
	"orderlink/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// It is the only abstraction through which the core touches durable storage.
//
// Implementations surface missing rows as errs.ObjectNotFoundError, tracking
// token collisions as errs.ErrTrackingIDTaken, and unreachable storage as
// errs.StorageUnavailableError. No partial writes are ever visible: each call
// either fully applies or fails.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Fails with ObjectNotFoundError when the id does not exist.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByTrackingID retrieves an order by its public tracking token.
	// Backed by a unique index on the token column, not a scan; this path
	// serves unauthenticated customers and intentionally bypasses owner
	// scoping.
	GetByTrackingID(ctx context.Context, trackingID order.TrackingID) (*order.Order, error)

	// GetAllByOwner retrieves every order belonging to one owner, in no
	// particular order. Callers sort and group.
	GetAllByOwner(ctx context.Context, ownerID kernel.OwnerID) ([]*order.Order, error)
}
