package order

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"orderlink/internal/pkg/errs"
)

// ErrTrackingIDIsNotConstructed is returned when a TrackingID was not created
// through NewTrackingID or TrackingIDFromString.
var ErrTrackingIDIsNotConstructed = errs.NewValueIsRequiredError(
	"TrackingID must be created via NewTrackingID or TrackingIDFromString")

// TrackingIDLength is the exact length of a tracking token in characters.
const TrackingIDLength = 12

// trackingIDBytes is the number of random bytes hex-encoded into a token.
const trackingIDBytes = TrackingIDLength / 2

// TrackingID is the opaque public token that lets a customer query order
// status without authentication. It carries no embedded structure: it is not
// derived from the order id, the owner, or a timestamp, so it leaks neither
// sequencing nor ownership.
//
// A token is exactly 12 lowercase hex characters drawn from crypto/rand.
// The 2^48 value space makes collisions negligible at expected order volumes;
// the repository still enforces uniqueness with a storage-level index as
// defense in depth, and callers retry with a fresh token on collision.
type TrackingID struct {
	value string
}

// NewTrackingID generates a fresh tracking token from a high-entropy random
// source. Stateless; callable any number of times.
func NewTrackingID() (TrackingID, error) {
	buf := make([]byte, trackingIDBytes)
	if _, err := rand.Read(buf); err != nil {
		return TrackingID{}, fmt.Errorf("reading random source: %w", err)
	}
	return TrackingID{value: hex.EncodeToString(buf)}, nil
}

// TrackingIDFromString parses a tracking token received on the public lookup
// path or restored from persistence. It accepts exactly 12 lowercase hex
// characters.
func TrackingIDFromString(s string) (TrackingID, error) {
	if len(s) != TrackingIDLength {
		return TrackingID{}, errs.NewValueIsInvalidErrorWithCause("trackingId",
			fmt.Errorf("must be exactly %d characters", TrackingIDLength))
	}
	if _, err := hex.DecodeString(s); err != nil {
		return TrackingID{}, errs.NewValueIsInvalidErrorWithCause("trackingId", err)
	}
	for _, r := range s {
		if r >= 'A' && r <= 'F' {
			return TrackingID{}, errs.NewValueIsInvalidErrorWithCause("trackingId",
				fmt.Errorf("must be lowercase hex"))
		}
	}
	return TrackingID{value: s}, nil
}

// String returns the token's text form.
func (t TrackingID) String() string {
	return t.value
}

// IsEqual compares two tracking tokens for equality.
func (t TrackingID) IsEqual(other TrackingID) bool {
	return t.value == other.value
}

// Validate checks if the TrackingID is properly constructed.
func (t TrackingID) Validate() error {
	if t.value == "" {
		return ErrTrackingIDIsNotConstructed
	}
	return nil
}
