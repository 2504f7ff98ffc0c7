// Package queries contains read-only operations against the order store.
// Implements the Query side of the CQRS architecture: handlers read rows
// directly over SQL and return flat response structures, bypassing the
// domain aggregates where no invariants need enforcing.
package queries

import (
	"database/sql"
	"encoding/json"
	"time"

	"orderlink/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// ItemResponse is one sale line of an order.
type ItemResponse struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// CustomerResponse is the customer data attached to a submitted order.
// Nil on orders still awaiting submission.
type CustomerResponse struct {
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	DeliveryAddress string `json:"deliveryAddress"`
	DeliveryState   string `json:"deliveryState,omitempty"`
}

// OrderResponse is the owner-facing view of one order. The id is the plain
// uuid string the dashboard turns into sale links and follow-up calls.
type OrderResponse struct {
	ID          string            `json:"id"`
	Status      string            `json:"status"`
	Customer    *CustomerResponse `json:"customer,omitempty"`
	Items       []ItemResponse    `json:"items"`
	TotalAmount int64             `json:"totalAmount"`
	TrackingID  string            `json:"trackingId,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// orderColumns is the select list every order query shares; scanOrderRow
// depends on this exact column order.
const orderColumns = `
	id,
	status,
	customer_name,
	customer_phone,
	delivery_address,
	delivery_state,
	items,
	total_amount,
	tracking_id,
	created_at,
	updated_at
`

// scanOrderRow maps one row of orderColumns into an OrderResponse.
// Works for both sql.Rows and sql.Row via the scanner interface.
func scanOrderRow(scan func(dest ...any) error) (OrderResponse, error) {
	var (
		id            uuid.UUID
		status        int
		customerName  sql.NullString
		customerPhone sql.NullString
		address       sql.NullString
		state         sql.NullString
		rawItems      []byte
		trackingID    sql.NullString
		resp          OrderResponse
	)

	if err := scan(
		&id,
		&status,
		&customerName,
		&customerPhone,
		&address,
		&state,
		&rawItems,
		&resp.TotalAmount,
		&trackingID,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	); err != nil {
		return OrderResponse{}, err
	}

	resp.ID = id.String()
	resp.Status = order.Status(status).String()

	if err := json.Unmarshal(rawItems, &resp.Items); err != nil {
		return OrderResponse{}, err
	}

	if customerName.Valid {
		resp.Customer = &CustomerResponse{
			Name:            customerName.String,
			Phone:           customerPhone.String,
			DeliveryAddress: address.String,
			DeliveryState:   state.String,
		}
	}

	if trackingID.Valid {
		resp.TrackingID = trackingID.String
	}

	return resp, nil
}
