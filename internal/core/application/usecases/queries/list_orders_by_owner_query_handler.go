package queries

import (
	"context"
	"strings"

	"orderlink/internal/core/domain/services"

	"gorm.io/gorm"
)

// ListOrdersByOwnerQueryHandler lists an owner's orders from the database,
// newest first. The region filter compares delivery states case-insensitively
// in SQL, mirroring services.OrderGrouper.FilterByRegion for in-memory use.
type ListOrdersByOwnerQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersByOwnerQueryHandler creates a handler for owner order listings.
// Requires a GORM database connection for query execution.
func NewListOrdersByOwnerQueryHandler(db *gorm.DB) ListOrdersByOwnerQueryHandler {
	return ListOrdersByOwnerQueryHandler{db: db}
}

// Handle executes the listing query. Returns an empty slice, not nil, when
// the owner has no matching orders.
func (h ListOrdersByOwnerQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersByOwnerQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE owner_id = ?
	`
	args := []any{query.OwnerID().String()}

	if region := query.Region(); region != "" && !strings.EqualFold(region, services.RegionAll) {
		sql += ` AND LOWER(delivery_state) = LOWER(?)`
		args = append(args, region)
	}

	sql += ` ORDER BY created_at DESC`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	for rows.Next() {
		resp, scanErr := scanOrderRow(rows.Scan)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
