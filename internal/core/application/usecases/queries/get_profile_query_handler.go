package queries

import (
	"context"

	"orderlink/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetProfileQueryHandler retrieves an owner's business profile from the database.
type GetProfileQueryHandler struct {
	db *gorm.DB
}

// NewGetProfileQueryHandler creates a handler for profile reads.
// Requires a GORM database connection for query execution.
func NewGetProfileQueryHandler(db *gorm.DB) GetProfileQueryHandler {
	return GetProfileQueryHandler{db: db}
}

// Handle executes the query. Owners who have never saved settings get a not
// found error, which the outer layer turns into an empty form.
func (h GetProfileQueryHandler) Handle(ctx context.Context, query GetProfileQuery) (ProfileResponse, error) {
	if err := query.Validate(); err != nil {
		return ProfileResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			business_name,
			business_phone_number,
			updated_at
		FROM profiles
		WHERE owner_id = ?
	`, query.OwnerID().String()).Rows()
	if err != nil {
		return ProfileResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return ProfileResponse{}, err
		}
		return ProfileResponse{}, errs.NewObjectNotFoundError("ownerID", query.OwnerID())
	}

	var resp ProfileResponse
	if err = rows.Scan(&resp.BusinessName, &resp.BusinessPhoneNumber, &resp.UpdatedAt); err != nil {
		return ProfileResponse{}, err
	}

	return resp, rows.Err()
}
