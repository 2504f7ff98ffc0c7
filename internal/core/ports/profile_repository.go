package ports

import (
	"context"

	"orderlink/internal/core/domain/model/account"
	"orderlink/internal/core/domain/model/kernel"
)

// ProfileRepository defines the persistence contract for owner profiles.
type ProfileRepository interface {
	// Get retrieves the profile of the given owner.
	// Fails with ObjectNotFoundError before the owner has onboarded.
	Get(ctx context.Context, ownerID kernel.OwnerID) (*account.Profile, error)

	// Upsert creates the profile on first write and replaces it afterwards.
	// Merge semantics for partially filled input are the aggregate's job;
	// the repository stores whatever state the aggregate carries.
	Upsert(ctx context.Context, aggregate *account.Profile) error
}
