package queries

import (
	"errors"

	"orderlink/internal/core/domain/model/kernel"
	"orderlink/internal/pkg/guard"
)

var (
	ErrGetDashboardQueryIsNotConstructed = errors.New(
		"GetDashboardQuery must be created via NewGetDashboardQuery constructor",
	)
)

// GetDashboardQuery retrieves an owner's orders grouped for dashboard
// display: month headers first, day headers inside each month, newest first
// throughout. Supports the same region narrowing as the flat listing.
type GetDashboardQuery struct { //nolint:recvcheck //using for validation
	ownerID kernel.OwnerID
	region  string

	guard guard.ConstructorGuard
}

// NewGetDashboardQuery creates a query for the grouped dashboard view.
func NewGetDashboardQuery(ownerID kernel.OwnerID, region string) (GetDashboardQuery, error) {
	dashboardQuery := GetDashboardQuery{
		region: region,
		guard:  guard.NewConstructorGuard(),
	}

	if err := dashboardQuery.setOwnerID(ownerID); err != nil {
		return GetDashboardQuery{}, err
	}

	return dashboardQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDashboardQueryIsNotConstructed if validation fails.
func (q GetDashboardQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardQueryIsNotConstructed)
}

// OwnerID returns the identifier of the owner whose dashboard is built.
func (q GetDashboardQuery) OwnerID() kernel.OwnerID {
	return q.ownerID
}

// Region returns the delivery region filter, blank for no filter.
func (q GetDashboardQuery) Region() string {
	return q.region
}

func (q *GetDashboardQuery) setOwnerID(ownerID kernel.OwnerID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	q.ownerID = ownerID
	return nil
}

// DayGroupResponse is one day's bucket of orders within a month group.
type DayGroupResponse struct {
	Day        string          `json:"day"`
	OrderCount int             `json:"orderCount"`
	Orders     []OrderResponse `json:"orders"`
}

// MonthGroupResponse is one month's bucket of an owner's orders.
type MonthGroupResponse struct {
	Month      string             `json:"month"`
	OrderCount int                `json:"orderCount"`
	Days       []DayGroupResponse `json:"days"`
}

// DashboardResponse is the grouped dashboard view, most recent month first.
type DashboardResponse struct {
	Months []MonthGroupResponse `json:"months"`
}
