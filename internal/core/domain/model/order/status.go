package order

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the lifecycle state of an order as seen by the offer
// engine. It implements a state machine with defined transitions to ensure
// orders follow the correct delivery workflow.
//
// State transitions owned by this service:
//
//	Ready ──> Delivering ──> Delivered
//
// Ready orders stay Ready until an offer for them is accepted. Cancelled is
// entered by the order-placement subsystem; the engine only observes it.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Ready means the establishment finished preparing the order and it is
	// waiting for a courier. Only Ready orders participate in distribution.
	Ready

	// Delivering means a courier accepted an offer and the order is on its way.
	Delivering

	// Delivered means the courier completed the delivery. Final state.
	Delivered

	// Cancelled means the order was withdrawn before delivery. Final state,
	// set outside this service.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Ready:      "Ready",
		Delivering: "Delivering",
		Delivered:  "Delivered",
		Cancelled:  "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Ready:      "Ready",
		Delivering: "Delivering",
		Delivered:  "Delivered",
		Cancelled:  "Cancelled",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are Ready, Delivering, Delivered, and Cancelled.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidateCanHaveCourier validates the consistency between order status and
// courier assignment: a courier is attached exactly while the order is
// Delivering or Delivered.
func (s Status) ValidateCanHaveCourier(courier bool) error {
	if courier && s != Delivering && s != Delivered {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a courier", s.String()),
		)
	}

	if !courier && (s == Delivering || s == Delivered) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no courier", s.String()),
		)
	}

	return nil
}

// Assign transitions the status to Delivering.
//
// Valid transitions:
//   - Ready -> Delivering (offer accepted)
//
// Returns the new status, or an error when the order already left Ready.
func (s Status) Assign() (Status, error) {
	if s != Ready {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to assign", s.String()),
		)
	}

	return Delivering, nil
}

// Complete transitions the status to Delivered.
//
// Valid transitions:
//   - Delivering -> Delivered (courier finished the delivery)
//
// Delivered is a final state with no further transitions possible.
func (s Status) Complete() (Status, error) {
	if s != Delivering {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}

	return Delivered, nil
}
