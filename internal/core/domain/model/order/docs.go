// Package order contains the Order aggregate and its status state machine.
//
// The offer engine only ever touches orders that are Ready and unassigned;
// it moves them to Delivering when a courier accepts an offer and to
// Delivered when the courier finishes. Creation, preparation states, and
// cancellation live in the order-placement subsystem and reach this service
// only through the shared store.
package order
