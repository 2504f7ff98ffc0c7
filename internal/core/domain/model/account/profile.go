// Package account provides the business-owner profile entity. A profile is
// created at most once per owner during onboarding and updated with merge
// semantics afterwards.
package account

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"orderlink/internal/core/domain/model/kernel"
	"orderlink/internal/pkg/errs"
)

// ErrProfileIsNotConstructed is returned when a Profile was not created
// through the NewProfile or RestoreProfile factory methods.
var ErrProfileIsNotConstructed = errors.New("Profile must be created via NewProfile or RestoreProfile constructor")

// Minimum lengths for profile fields when they are supplied.
const (
	MinBusinessNameLength  = 2
	MinBusinessPhoneLength = 10
)

// Profile holds the business metadata an owner fills in during onboarding.
// The owner identifier doubles as the profile identity, so there is at most
// one profile per owner.
type Profile struct {
	ownerID             kernel.OwnerID
	businessName        string
	businessPhoneNumber string
	updatedAt           time.Time

	isConstructed bool
}

// NewProfile creates a validated owner profile.
// Both business fields are required on first creation.
func NewProfile(ownerID kernel.OwnerID, businessName, businessPhoneNumber string, now time.Time) (*Profile, error) {
	profile := &Profile{
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		profile.setOwnerID(ownerID),
		profile.setBusinessName(businessName),
		profile.setBusinessPhoneNumber(businessPhoneNumber),
	); err != nil {
		return nil, err
	}

	return profile, nil
}

// RestoreProfile reconstructs a Profile from persistence.
func RestoreProfile(ownerID kernel.OwnerID, businessName, businessPhoneNumber string, updatedAt time.Time) (*Profile, error) {
	return NewProfile(ownerID, businessName, businessPhoneNumber, updatedAt)
}

// Validate ensures the Profile was properly constructed through a factory method.
func (p *Profile) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProfileIsNotConstructed
	}
	return nil
}

// OwnerID returns the owner identifier the profile belongs to.
func (p *Profile) OwnerID() kernel.OwnerID {
	return p.ownerID
}

// BusinessName returns the display name of the owner's business.
func (p *Profile) BusinessName() string {
	return p.businessName
}

// BusinessPhoneNumber returns the business contact phone.
func (p *Profile) BusinessPhoneNumber() string {
	return p.businessPhoneNumber
}

// UpdatedAt returns the timestamp of the last profile change.
func (p *Profile) UpdatedAt() time.Time {
	return p.updatedAt
}

// Merge applies a partial update: blank incoming fields leave the stored
// values untouched, matching the upsert-with-merge semantics of the profile
// operation. Non-blank fields are validated before being applied.
func (p *Profile) Merge(businessName, businessPhoneNumber string, now time.Time) error {
	if businessName != "" {
		if err := p.setBusinessName(businessName); err != nil {
			return err
		}
	}
	if businessPhoneNumber != "" {
		if err := p.setBusinessPhoneNumber(businessPhoneNumber); err != nil {
			return err
		}
	}
	p.updatedAt = now
	return nil
}

func (p *Profile) setOwnerID(ownerID kernel.OwnerID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	p.ownerID = ownerID
	return nil
}

func (p *Profile) setBusinessName(businessName string) error {
	if businessName == "" {
		return errs.NewValueIsRequiredError("businessName")
	}
	if utf8.RuneCountInString(businessName) < MinBusinessNameLength {
		return errs.NewValueIsInvalidErrorWithCause("businessName",
			fmt.Errorf("must be at least %d characters", MinBusinessNameLength))
	}
	p.businessName = businessName
	return nil
}

func (p *Profile) setBusinessPhoneNumber(businessPhoneNumber string) error {
	if businessPhoneNumber == "" {
		return errs.NewValueIsRequiredError("businessPhoneNumber")
	}
	if utf8.RuneCountInString(businessPhoneNumber) < MinBusinessPhoneLength {
		return errs.NewValueIsInvalidErrorWithCause("businessPhoneNumber",
			fmt.Errorf("must be at least %d characters", MinBusinessPhoneLength))
	}
	p.businessPhoneNumber = businessPhoneNumber
	return nil
}
