package kernel

import (
	"strings"

	"orderlink/internal/pkg/errs"
)

// ErrOwnerIDIsNotConstructed indicates an OwnerID was not created through NewOwnerID.
var ErrOwnerIDIsNotConstructed = errs.NewValueIsRequiredError("OwnerID must be created via NewOwnerID")

// OwnerID is a value object for the business-owner identifier. The identity
// provider issues it as an opaque string; the core never inspects its shape
// beyond requiring it to be non-blank.
//
// The zero value is invalid and must be constructed via NewOwnerID.
type OwnerID struct {
	value string
}

// NewOwnerID creates an OwnerID from the opaque identifier supplied by the
// identity provider. Leading and trailing whitespace is rejected rather than
// trimmed so the stored value always matches what the provider issued.
func NewOwnerID(value string) (OwnerID, error) {
	if value == "" {
		return OwnerID{}, errs.NewValueIsRequiredError("ownerId")
	}
	if strings.TrimSpace(value) != value {
		return OwnerID{}, errs.NewValueIsInvalidError("ownerId")
	}
	return OwnerID{value: value}, nil
}

// String returns the identifier exactly as issued by the identity provider.
func (o OwnerID) String() string {
	return o.value
}

// IsEqual compares two owner identifiers for equality.
func (o OwnerID) IsEqual(other OwnerID) bool {
	return o.value == other.value
}

// Validate checks if the OwnerID is properly constructed.
func (o OwnerID) Validate() error {
	if o.value == "" {
		return ErrOwnerIDIsNotConstructed
	}
	return nil
}
