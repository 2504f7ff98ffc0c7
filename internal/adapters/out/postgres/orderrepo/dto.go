// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"orderlink/internal/core/domain/model/kernel"
	"orderlink/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The owner column is indexed for the dashboard listing; the tracking token
// column carries a unique index because it is the public point-lookup key and
// the storage-level uniqueness guarantee for generated tokens.
type OrderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID         string    `gorm:"index"`
	Status          int
	CustomerName    *string
	CustomerPhone   *string
	DeliveryAddress *string
	DeliveryState   *string
	Items           []ItemDTO `gorm:"type:jsonb;serializer:json"`
	TotalAmount     int64
	TrackingID      *string `gorm:"uniqueIndex"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ItemDTO is one sale line inside the order's JSON items column.
type ItemDTO struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
// Customer and tracking columns stay NULL while the order is in Created status.
func fromDomain(aggregate *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:          aggregate.ID().Bytes(),
		OwnerID:     aggregate.OwnerID().String(),
		Status:      int(aggregate.Status()),
		TotalAmount: aggregate.TotalAmount(),
		CreatedAt:   aggregate.CreatedAt(),
		UpdatedAt:   aggregate.UpdatedAt(),
	}

	items := aggregate.Items()
	dto.Items = make([]ItemDTO, len(items))
	for i, item := range items {
		dto.Items[i] = ItemDTO{Name: item.Name(), Price: item.Price()}
	}

	if customer := aggregate.Customer(); customer != nil {
		name := customer.Name()
		phone := customer.Phone()
		address := customer.Address()
		dto.CustomerName = &name
		dto.CustomerPhone = &phone
		dto.DeliveryAddress = &address
		if state := customer.DeliveryState(); state != "" {
			dto.DeliveryState = &state
		}
	}

	if trackingID := aggregate.TrackingID(); trackingID != nil {
		raw := trackingID.String()
		dto.TrackingID = &raw
	}

	return dto
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate using RestoreOrder, which re-checks the
// cross-field invariants on the way in.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.NewOwnerID(dto.OwnerID)
	if err != nil {
		return nil, err
	}

	items := make([]order.OrderItem, len(dto.Items))
	for i, itemDTO := range dto.Items {
		item, itemErr := order.NewOrderItem(itemDTO.Name, itemDTO.Price)
		if itemErr != nil {
			return nil, itemErr
		}
		items[i] = item
	}

	var customer *order.Customer
	if dto.CustomerName != nil && dto.CustomerPhone != nil && dto.DeliveryAddress != nil {
		state := ""
		if dto.DeliveryState != nil {
			state = *dto.DeliveryState
		}
		c, customerErr := order.NewCustomer(*dto.CustomerName, *dto.CustomerPhone, *dto.DeliveryAddress, state)
		if customerErr != nil {
			return nil, customerErr
		}
		customer = &c
	}

	var trackingID *order.TrackingID
	if dto.TrackingID != nil {
		tID, trackingErr := order.TrackingIDFromString(*dto.TrackingID)
		if trackingErr != nil {
			return nil, trackingErr
		}
		trackingID = &tID
	}

	return order.RestoreOrder(
		id,
		ownerID,
		order.Status(dto.Status),
		customer,
		items,
		dto.TotalAmount,
		trackingID,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
