package queries

import (
	"errors"
	"time"

	"orderlink/internal/core/domain/model/order"
	"orderlink/internal/pkg/guard"
)

var (
	ErrGetOrderByTrackingQueryIsNotConstructed = errors.New(
		"GetOrderByTrackingQuery must be created via NewGetOrderByTrackingQuery constructor",
	)
)

// GetOrderByTrackingQuery retrieves an order by its public tracking token.
// Serves unauthenticated customers checking on their purchase, so the
// response deliberately omits owner details and the customer's contact data.
type GetOrderByTrackingQuery struct { //nolint:recvcheck //using for validation
	trackingID order.TrackingID

	guard guard.ConstructorGuard
}

// NewGetOrderByTrackingQuery creates a query to look up an order by tracking token.
func NewGetOrderByTrackingQuery(trackingID order.TrackingID) (GetOrderByTrackingQuery, error) {
	trackingQuery := GetOrderByTrackingQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := trackingQuery.setTrackingID(trackingID); err != nil {
		return GetOrderByTrackingQuery{}, err
	}

	return trackingQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderByTrackingQueryIsNotConstructed if validation fails.
func (q GetOrderByTrackingQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByTrackingQueryIsNotConstructed)
}

// TrackingID returns the tracking token being looked up.
func (q GetOrderByTrackingQuery) TrackingID() order.TrackingID {
	return q.trackingID
}

func (q *GetOrderByTrackingQuery) setTrackingID(trackingID order.TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return err
	}

	q.trackingID = trackingID
	return nil
}

// TrackedOrderResponse is the customer-facing view of a tracked order.
type TrackedOrderResponse struct {
	TrackingID  string         `json:"trackingId"`
	Status      string         `json:"status"`
	Items       []ItemResponse `json:"items"`
	TotalAmount int64          `json:"totalAmount"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}
