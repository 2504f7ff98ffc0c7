// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"orderlink/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ProfileRepoFactory provides access to the profile repository within a transaction.
	ProfileRepoFactory interface {
		ProfileRepository() ports.ProfileRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used when commands only modify order aggregates.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	// Handlers that retry a failed transaction, such as the sale submission
	// retrying a tracking token collision, create a fresh unit of work per
	// attempt.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ProfileUoW manages transactions for profile-only operations.
	ProfileUoW interface {
		TxManager
		ProfileRepoFactory
	}

	// ProfileUoWFactory creates new profile unit of work instances.
	ProfileUoWFactory interface {
		Create() ProfileUoW
	}
)
