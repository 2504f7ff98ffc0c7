package queries

import (
	"errors"
	"time"

	"orderlink/internal/core/domain/model/kernel"
	"orderlink/internal/pkg/guard"
)

var (
	ErrGetProfileQueryIsNotConstructed = errors.New(
		"GetProfileQuery must be created via NewGetProfileQuery constructor",
	)
)

// GetProfileQuery retrieves the business profile of one owner.
type GetProfileQuery struct { //nolint:recvcheck //using for validation
	ownerID kernel.OwnerID

	guard guard.ConstructorGuard
}

// NewGetProfileQuery creates a query to retrieve an owner's profile.
func NewGetProfileQuery(ownerID kernel.OwnerID) (GetProfileQuery, error) {
	profileQuery := GetProfileQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := profileQuery.setOwnerID(ownerID); err != nil {
		return GetProfileQuery{}, err
	}

	return profileQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetProfileQueryIsNotConstructed if validation fails.
func (q GetProfileQuery) Validate() error {
	return q.guard.Validate(ErrGetProfileQueryIsNotConstructed)
}

// OwnerID returns the identifier of the owner whose profile is requested.
func (q GetProfileQuery) OwnerID() kernel.OwnerID {
	return q.ownerID
}

func (q *GetProfileQuery) setOwnerID(ownerID kernel.OwnerID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	q.ownerID = ownerID
	return nil
}

// ProfileResponse is the owner-facing view of the business profile.
type ProfileResponse struct {
	BusinessName        string    `json:"businessName"`
	BusinessPhoneNumber string    `json:"businessPhoneNumber"`
	UpdatedAt           time.Time `json:"updatedAt"`
}
