// Package courier contains the Courier entity.
//
// Couriers are managed by the account subsystem and are read-only to the
// offer engine: the active flag is the sole availability signal used during
// distribution.
package courier
