// Package order provides the Order aggregate and its LineItem entities together
// with the readiness classification used by every consumer view.
//
// The package includes:
//   - Order: the aggregate root owning header fields, the current course ("part")
//     and an ordered list of line items
//   - LineItem: a single dish with its note, modifications, readiness flag and the
//     course it was ordered in
//   - Channel, Modification, Course: value objects
//   - Readiness and Classify: the pending / ready / neither classifier
//   - Event: kitchen events emitted after each persisted mutation
//
// Key business rules:
//   - An order starts at course 1, unserved; its course never decreases
//   - A line item's course is fixed when it is added and never changes
//   - Readiness only considers line items of the order's current course
//   - Served is terminal: a served order cannot be un-served or receive new items
package order
