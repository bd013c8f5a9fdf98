// Package services contains stateless domain services that implement
// business logic spanning multiple aggregates.
//
// OfferPlanner plans one distribution cycle: it randomizes the order and
// courier processing sequence and hands out couriers through a cycle-scoped
// availability queue so that no courier is double-booked within a cycle.
package services
