// Package profilerepo provides data transfer objects and mapping functions for
// owner-profile persistence.
package profilerepo

import (
	"time"

	"orderlink/internal/core/domain/model/account"
	"orderlink/internal/core/domain/model/kernel"
)

// ProfileDTO represents the database structure for persisting owner profiles.
// The owner identifier is the primary key, so there is at most one row per owner.
type ProfileDTO struct {
	OwnerID             string `gorm:"primaryKey"`
	BusinessName        string
	BusinessPhoneNumber string
	UpdatedAt           time.Time
}

// TableName specifies the database table name for profile entities.
func (ProfileDTO) TableName() string {
	return "profiles"
}

// fromDomain converts a profile aggregate to its database representation.
func fromDomain(aggregate *account.Profile) ProfileDTO {
	return ProfileDTO{
		OwnerID:             aggregate.OwnerID().String(),
		BusinessName:        aggregate.BusinessName(),
		BusinessPhoneNumber: aggregate.BusinessPhoneNumber(),
		UpdatedAt:           aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a profile aggregate.
func toDomain(dto ProfileDTO) (*account.Profile, error) {
	ownerID, err := kernel.NewOwnerID(dto.OwnerID)
	if err != nil {
		return nil, err
	}

	return account.RestoreProfile(ownerID, dto.BusinessName, dto.BusinessPhoneNumber, dto.UpdatedAt)
}
