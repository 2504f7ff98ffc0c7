package services

import (
	"sort"
	"strings"

	"orderlink/internal/core/domain/model/order"
)

// Key formats for the dashboard accordion headers.
const (
	monthKeyFormat = "January 2006"
	dayKeyFormat   = "January 2, 2006"
)

// RegionAll is the filter value that matches every order regardless of
// delivery region.
const RegionAll = "all"

// MonthGroup is one month of an owner's orders, most recent day first.
type MonthGroup struct {
	// Month is the header key, e.g. "March 2025".
	Month string

	// Days holds the month's orders bucketed per day.
	Days []DayGroup
}

// DayGroup is one day of orders within a month, most recent order first.
type DayGroup struct {
	// Day is the header key, e.g. "March 14, 2025".
	Day string

	// Orders are the day's orders sorted by creation time descending.
	Orders []*order.Order
}

// OrderCount returns the number of orders across all days of the month.
func (m MonthGroup) OrderCount() int {
	count := 0
	for _, day := range m.Days {
		count += len(day.Orders)
	}
	return count
}

// OrderGrouper is a domain service that prepares an owner's orders for
// dashboard display: newest first, bucketed by month and day, optionally
// narrowed to one delivery region.
//
// All methods are pure and safe to re-run on every refresh; the input slice
// is never reordered or otherwise mutated.
type OrderGrouper struct{}

// NewOrderGrouper creates a new OrderGrouper instance.
func NewOrderGrouper() OrderGrouper {
	return OrderGrouper{}
}

// GroupByMonthAndDay sorts orders by creation time descending and buckets
// them into ordered month and day groups. Because the input is sorted before
// bucketing and insertion order is preserved, the most recent month and day
// always appear first.
//
// Grouping the flattened result again yields an identical structure.
func (OrderGrouper) GroupByMonthAndDay(orders []*order.Order) []MonthGroup {
	sorted := make([]*order.Order, len(orders))
	copy(sorted, orders)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt().After(sorted[j].CreatedAt())
	})

	var groups []MonthGroup
	monthIndex := make(map[string]int)
	dayIndex := make(map[string]int)

	for _, o := range sorted {
		monthKey := o.CreatedAt().Format(monthKeyFormat)
		dayKey := o.CreatedAt().Format(dayKeyFormat)

		mi, ok := monthIndex[monthKey]
		if !ok {
			groups = append(groups, MonthGroup{Month: monthKey})
			mi = len(groups) - 1
			monthIndex[monthKey] = mi
		}

		di, ok := dayIndex[dayKey]
		if !ok {
			groups[mi].Days = append(groups[mi].Days, DayGroup{Day: dayKey})
			di = len(groups[mi].Days) - 1
			dayIndex[dayKey] = di
		}

		groups[mi].Days[di].Orders = append(groups[mi].Days[di].Orders, o)
	}

	return groups
}

// FilterByRegion returns the orders whose delivery region matches region,
// compared case-insensitively. RegionAll (or an empty region) is the identity
// filter. Orders still in Created status have no delivery region and never
// match a concrete one.
func (OrderGrouper) FilterByRegion(orders []*order.Order, region string) []*order.Order {
	if region == "" || strings.EqualFold(region, RegionAll) {
		return orders
	}

	filtered := make([]*order.Order, 0, len(orders))
	for _, o := range orders {
		customer := o.Customer()
		if customer == nil {
			continue
		}
		if strings.EqualFold(customer.DeliveryState(), region) {
			filtered = append(filtered, o)
		}
	}
	return filtered
}
