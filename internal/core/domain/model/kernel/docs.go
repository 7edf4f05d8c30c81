// Package kernel provides the identifier and money primitives shared by the
// restaurant and order aggregates.
//
// The package includes:
//   - RestaurantID: a UUID identifying the root restaurant aggregate
//   - SequenceID: a positive integer minted by the sequence allocator for orders,
//     line items, menu items and tables
//   - Money: a non-negative amount in minor currency units
//
// All three are immutable values whose zero value is invalid.
package kernel
