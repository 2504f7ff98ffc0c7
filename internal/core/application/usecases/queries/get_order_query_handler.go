package queries

import (
	"context"

	"orderlink/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order for its owner from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order reads.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. The owner filter is part of the SQL predicate,
// so a foreign order and a missing order are indistinguishable to the caller.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE id = ? AND owner_id = ?
	`, query.OrderID().Bytes(), query.OwnerID().String()).Rows()
	if err != nil {
		return OrderResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderResponse{}, err
		}
		return OrderResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}

	resp, err := scanOrderRow(rows.Scan)
	if err != nil {
		return OrderResponse{}, err
	}

	return resp, rows.Err()
}
