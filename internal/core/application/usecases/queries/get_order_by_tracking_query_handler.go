package queries

import (
	"context"
	"encoding/json"

	"orderlink/internal/core/domain/model/order"
	"orderlink/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderByTrackingQueryHandler serves public tracking lookups.
// Backed by the unique index on the tracking token column.
type GetOrderByTrackingQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderByTrackingQueryHandler creates a handler for tracking lookups.
// Requires a GORM database connection for query execution.
func NewGetOrderByTrackingQueryHandler(db *gorm.DB) GetOrderByTrackingQueryHandler {
	return GetOrderByTrackingQueryHandler{db: db}
}

// Handle executes the lookup. An unknown token is reported as not found;
// nothing distinguishes a token that never existed from one that was never
// assigned.
func (h GetOrderByTrackingQueryHandler) Handle(
	ctx context.Context,
	query GetOrderByTrackingQuery,
) (TrackedOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackedOrderResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			items,
			total_amount,
			created_at,
			updated_at
		FROM orders
		WHERE tracking_id = ?
	`, query.TrackingID().String()).Rows()
	if err != nil {
		return TrackedOrderResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return TrackedOrderResponse{}, err
		}
		return TrackedOrderResponse{}, errs.NewObjectNotFoundError("trackingID", query.TrackingID().String())
	}

	var (
		status   int
		rawItems []byte
		resp     TrackedOrderResponse
	)
	if err = rows.Scan(&status, &rawItems, &resp.TotalAmount, &resp.CreatedAt, &resp.UpdatedAt); err != nil {
		return TrackedOrderResponse{}, err
	}

	resp.TrackingID = query.TrackingID().String()
	resp.Status = order.Status(status).String()
	if err = json.Unmarshal(rawItems, &resp.Items); err != nil {
		return TrackedOrderResponse{}, err
	}

	return resp, rows.Err()
}
