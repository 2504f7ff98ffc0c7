package profilerepo

import (
	"context"
	"errors"

	"orderlink/internal/core/domain/model/account"
	"orderlink/internal/core/domain/model/kernel"
	"orderlink/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormProfileRepository implements ports.ProfileRepository using GORM.
// Profiles are keyed by the owner identifier rather than a generated UUID,
// so the repository does not participate in aggregate tracking.
type GormProfileRepository struct {
	db *gorm.DB
}

// NewGormProfileRepository creates a new GORM profile repository.
func NewGormProfileRepository(db *gorm.DB) *GormProfileRepository {
	return &GormProfileRepository{db: db}
}

// Get retrieves the profile of the given owner.
func (r *GormProfileRepository) Get(ctx context.Context, ownerID kernel.OwnerID) (*account.Profile, error) {
	if err := ownerID.Validate(); err != nil {
		return nil, err
	}

	var dto ProfileDTO
	if err := r.db.WithContext(ctx).First(&dto, "owner_id = ?", ownerID.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("ownerId", ownerID.String())
		}
		return nil, errs.NewStorageUnavailableError("profile.Get", err)
	}

	return toDomain(dto)
}

// Upsert creates the profile row on first write and replaces it afterwards,
// in a single round trip.
func (r *GormProfileRepository) Upsert(ctx context.Context, aggregate *account.Profile) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "owner_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"business_name", "business_phone_number", "updated_at"}),
	}).Create(&dto).Error
	if err != nil {
		return errs.NewStorageUnavailableError("profile.Upsert", err)
	}

	return nil
}
