package commands

import (
	"errors"
	"strings"

	"orderlink/internal/core/domain/model/kernel"
	"orderlink/internal/pkg/errs"
	"orderlink/internal/pkg/guard"
)

var (
	ErrUpsertProfileCommandIsNotConstructed = errors.New(
		"UpsertProfileCommand must be created via NewUpsertProfileCommand constructor",
	)
)

// UpsertProfileCommand represents an owner's request to save business profile
// settings. Blank fields mean "leave unchanged", so a command carrying only a
// phone number updates the phone and keeps the stored business name.
type UpsertProfileCommand struct { //nolint:recvcheck //using for validation
	ownerID             kernel.OwnerID
	businessName        string
	businessPhoneNumber string

	guard guard.ConstructorGuard
}

// NewUpsertProfileCommand creates a command to save profile settings.
// At least one of the two fields must be non-blank; field-level length rules
// are enforced by the profile aggregate.
func NewUpsertProfileCommand(
	ownerID kernel.OwnerID,
	businessName string,
	businessPhoneNumber string,
) (UpsertProfileCommand, error) {
	profileCommand := UpsertProfileCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		profileCommand.setOwnerID(ownerID),
		profileCommand.setFields(businessName, businessPhoneNumber),
	); err != nil {
		return UpsertProfileCommand{}, err
	}

	return profileCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpsertProfileCommandIsNotConstructed if validation fails.
func (c UpsertProfileCommand) Validate() error {
	return c.guard.Validate(ErrUpsertProfileCommandIsNotConstructed)
}

// OwnerID returns the identifier of the owner whose profile is saved.
func (c UpsertProfileCommand) OwnerID() kernel.OwnerID {
	return c.ownerID
}

// BusinessName returns the new business name, or blank to keep the stored one.
func (c UpsertProfileCommand) BusinessName() string {
	return c.businessName
}

// BusinessPhoneNumber returns the new phone number, or blank to keep the stored one.
func (c UpsertProfileCommand) BusinessPhoneNumber() string {
	return c.businessPhoneNumber
}

func (c *UpsertProfileCommand) setOwnerID(ownerID kernel.OwnerID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	c.ownerID = ownerID
	return nil
}

func (c *UpsertProfileCommand) setFields(businessName, businessPhoneNumber string) error {
	if strings.TrimSpace(businessName) == "" && strings.TrimSpace(businessPhoneNumber) == "" {
		return errs.NewValueIsRequiredError("businessName or businessPhoneNumber")
	}

	c.businessName = businessName
	c.businessPhoneNumber = businessPhoneNumber
	return nil
}
