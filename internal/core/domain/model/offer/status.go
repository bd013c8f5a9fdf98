package offer

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the lifecycle state of an offer.
//
// State transitions:
//
//	Pending ──┬──> Accepted
//	          ├──> Rejected
//	          └──> Expired
//
// Accepted, Rejected, and Expired are all terminal; no transition ever
// leaves a terminal state. In particular, an expired offer can never become
// accepted.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending means the offer is live: the courier may still accept or
	// reject it, and the sweeper may expire it once its TTL elapses.
	Pending

	// Accepted means the courier took the order. At most one offer per order
	// ever reaches this state.
	Accepted

	// Rejected means the courier declined the offer.
	Rejected

	// Expired means the offer timed out, or the order went to another
	// courier before this offer was answered.
	Expired
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "Unknown",
		Pending:  "pending",
		Accepted: "accepted",
		Rejected: "rejected",
		Expired:  "expired",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:  "pending",
		Accepted: "accepted",
		Rejected: "rejected",
		Expired:  "expired",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are Pending, Accepted, Rejected, and Expired.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase wire name of the status, matching the values
// persisted by the store. Implements fmt.Stringer and is safe to call on any
// Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Accepted || s == Rejected || s == Expired
}

// Accept transitions the status to Accepted.
//
// Valid transitions:
//   - Pending -> Accepted
//
// Every other source state is an error: terminal offers, expired ones
// included, can never be accepted.
func (s Status) Accept() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to accept", s.String()),
		)
	}

	return Accepted, nil
}

// Reject transitions the status to Rejected.
//
// Valid transitions:
//   - Pending -> Rejected
func (s Status) Reject() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to reject", s.String()),
		)
	}

	return Rejected, nil
}

// Expire transitions the status to Expired.
//
// Valid transitions:
//   - Pending -> Expired
func (s Status) Expire() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to expire", s.String()),
		)
	}

	return Expired, nil
}
