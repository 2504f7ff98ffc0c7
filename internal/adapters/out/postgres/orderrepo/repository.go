package orderrepo

import (
	"context"
	"errors"

	"orderlink/internal/core/domain/model/kernel"
	"orderlink/internal/core/domain/model/order"
	"orderlink/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// pgUniqueViolation is the Postgres error code for a unique-constraint breach.
const pgUniqueViolation = "23505"

// trackingIDIndex is the name GORM gives the unique index on the tracking column.
const trackingIDIndex = "idx_orders_tracking_id"

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return classifyWriteError("order.Add", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database. Every mutable column is
// written explicitly so cleared values are not skipped as Go zero values.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"status":           dto.Status,
		"customer_name":    dto.CustomerName,
		"customer_phone":   dto.CustomerPhone,
		"delivery_address": dto.DeliveryAddress,
		"delivery_state":   dto.DeliveryState,
		"tracking_id":      dto.TrackingID,
		"updated_at":       dto.UpdatedAt,
	})
	if result.Error != nil {
		return classifyWriteError("order.Update", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderId", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", id.String())
		}
		return nil, errs.NewStorageUnavailableError("order.Get", err)
	}

	return toDomain(dto)
}

// GetByTrackingID retrieves an order by its public tracking token.
// The lookup hits the unique index on the tracking column.
func (r *GormOrderRepository) GetByTrackingID(ctx context.Context, trackingID order.TrackingID) (*order.Order, error) {
	if err := trackingID.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "tracking_id = ?", trackingID.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("trackingId", trackingID.String())
		}
		return nil, errs.NewStorageUnavailableError("order.GetByTrackingID", err)
	}

	return toDomain(dto)
}

// GetAllByOwner retrieves every order belonging to the given owner.
func (r *GormOrderRepository) GetAllByOwner(ctx context.Context, ownerID kernel.OwnerID) ([]*order.Order, error) {
	if err := ownerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "owner_id = ?", ownerID.String()).Error; err != nil {
		return nil, errs.NewStorageUnavailableError("order.GetAllByOwner", err)
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// classifyWriteError maps driver failures to the core error taxonomy.
// A unique violation on the tracking index means the freshly generated token
// collided and the caller should retry with a new one.
func classifyWriteError(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation && pqErr.Constraint == trackingIDIndex {
		return errs.ErrTrackingIDTaken
	}
	return errs.NewStorageUnavailableError(op, err)
}
