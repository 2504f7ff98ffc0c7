package http

// ItemRequest is one sale line in an order creation request.
type ItemRequest struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// CreateOrderRequest is the payload for issuing a new sale link.
type CreateOrderRequest struct {
	Items       []ItemRequest `json:"items"`
	TotalAmount int64         `json:"totalAmount"`
}

// CreateOrderResponse returns the identifier the owner shares as a sale link.
type CreateOrderResponse struct {
	ID string `json:"id"`
}

// SubmitOrderRequest is the customer's sale-form payload. The response is the
// resulting order view carrying the tracking token the customer keeps.
type SubmitOrderRequest struct {
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	DeliveryAddress string `json:"deliveryAddress"`
	DeliveryState   string `json:"deliveryState"`
}

// SetStatusRequest is the payload for a single-order status change.
type SetStatusRequest struct {
	Status string `json:"status"`
}

// BulkSetStatusRequest is the payload for a batch status change.
type BulkSetStatusRequest struct {
	OrderIDs []string `json:"orderIds"`
	Status   string   `json:"status"`
}

// BulkSetStatusResponse reports how the batch went.
type BulkSetStatusResponse struct {
	UpdatedCount int      `json:"updatedCount"`
	SkippedIDs   []string `json:"skippedIds"`
}

// UpsertProfileRequest is the payload for saving business profile settings.
// Blank fields keep their stored values.
type UpsertProfileRequest struct {
	BusinessName        string `json:"businessName"`
	BusinessPhoneNumber string `json:"businessPhoneNumber"`
}
