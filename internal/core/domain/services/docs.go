// Package services provides domain services that work across the Order aggregate
// and the restaurant's menu to build the kitchen and point-of-sale views.
//
// The package includes:
//   - KDSGrouper: folds an order's active course into kitchen display rows
//   - OrderBoard: filters orders by readiness and sorts them by creation time
//
// Both services are pure: they never touch storage and never mutate orders.
package services
