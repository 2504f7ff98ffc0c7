package queries

import (
	"context"

	"orderlink/internal/core/domain/model/order"
	"orderlink/internal/core/domain/services"
	"orderlink/internal/core/ports"
)

// GetDashboardQueryHandler builds the grouped dashboard view.
//
// Unlike the flat listing this handler reads through the order repository:
// grouping is domain logic owned by services.OrderGrouper, and the grouper
// operates on aggregates, not rows.
type GetDashboardQueryHandler struct {
	orderRepo ports.OrderRepository
	grouper   services.OrderGrouper
}

// NewGetDashboardQueryHandler creates a handler for the grouped dashboard view.
func NewGetDashboardQueryHandler(
	orderRepo ports.OrderRepository,
	grouper services.OrderGrouper,
) GetDashboardQueryHandler {
	return GetDashboardQueryHandler{
		orderRepo: orderRepo,
		grouper:   grouper,
	}
}

// Handle loads the owner's orders, narrows them to the requested region and
// buckets them by month and day, newest first.
func (h GetDashboardQueryHandler) Handle(ctx context.Context, query GetDashboardQuery) (DashboardResponse, error) {
	if err := query.Validate(); err != nil {
		return DashboardResponse{}, err
	}

	orders, err := h.orderRepo.GetAllByOwner(ctx, query.OwnerID())
	if err != nil {
		return DashboardResponse{}, err
	}

	filtered := h.grouper.FilterByRegion(orders, query.Region())
	months := h.grouper.GroupByMonthAndDay(filtered)

	resp := DashboardResponse{Months: make([]MonthGroupResponse, 0, len(months))}
	for _, month := range months {
		monthResp := MonthGroupResponse{
			Month:      month.Month,
			OrderCount: month.OrderCount(),
			Days:       make([]DayGroupResponse, 0, len(month.Days)),
		}
		for _, day := range month.Days {
			dayResp := DayGroupResponse{
				Day:        day.Day,
				OrderCount: len(day.Orders),
				Orders:     make([]OrderResponse, 0, len(day.Orders)),
			}
			for _, o := range day.Orders {
				dayResp.Orders = append(dayResp.Orders, NewOrderResponse(o))
			}
			monthResp.Days = append(monthResp.Days, dayResp)
		}
		resp.Months = append(resp.Months, monthResp)
	}

	return resp, nil
}

// NewOrderResponse flattens an order aggregate into the owner-facing view.
func NewOrderResponse(o *order.Order) OrderResponse {
	resp := OrderResponse{
		ID:          o.ID().String(),
		Status:      o.Status().String(),
		TotalAmount: o.TotalAmount(),
		CreatedAt:   o.CreatedAt(),
		UpdatedAt:   o.UpdatedAt(),
	}

	items := o.Items()
	resp.Items = make([]ItemResponse, len(items))
	for i, item := range items {
		resp.Items[i] = ItemResponse{Name: item.Name(), Price: item.Price()}
	}

	if customer := o.Customer(); customer != nil {
		resp.Customer = &CustomerResponse{
			Name:            customer.Name(),
			Phone:           customer.Phone(),
			DeliveryAddress: customer.Address(),
			DeliveryState:   customer.DeliveryState(),
		}
	}

	if trackingID := o.TrackingID(); trackingID != nil {
		resp.TrackingID = trackingID.String()
	}

	return resp
}
