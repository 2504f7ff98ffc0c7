// Package services contains stateless domain services that operate across
// order aggregates without touching storage.
//
// The package includes:
//   - OrderGrouper: groups an owner's orders by month and day for dashboard
//     presentation and filters them by delivery region
//
// Domain services here are pure: the same input always produces the same
// output, inputs are never mutated, and no I/O occurs.
package services
