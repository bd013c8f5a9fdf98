package order

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrOrderNotOwnedByCourier is returned when a courier tries to complete an
	// order that is assigned to somebody else.
	ErrOrderNotOwnedByCourier = errors.New("order is not assigned to this courier")
)

// Order represents a delivery order awaiting or undergoing delivery. It is
// the aggregate root the offer engine assigns couriers to.
//
// Order maintains these invariants:
//   - Must have a valid unique identifier
//   - A courier is attached exactly while the order is Delivering or Delivered
//   - Status transitions follow the Ready -> Delivering -> Delivered workflow
//
// The engine consumes orders only while they are Ready and unassigned;
// creation and cancellation belong to the order-placement subsystem.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// courierID is the assigned courier's ID (nil while unassigned)
	courierID *kernel.UUID

	// status is the current state in the delivery lifecycle
	status Status

	// g ensures the order was created via a constructor
	g guard.ConstructorGuard
}

// NewOrder creates a Ready, unassigned Order. Used when seeding orders into
// the store; orders arriving from the order-placement flow are reconstructed
// with RestoreOrder instead.
//
// Returns a validation error when the id is invalid.
func NewOrder(id kernel.UUID) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:     id,
		status: Ready,
		g:      guard.NewConstructorGuard(),
	}, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
// It validates the id, the status, and the status/courier consistency rule,
// so rows written by other subsystems cannot smuggle in an invalid state.
func RestoreOrder(id kernel.UUID, status Status, courierID *kernel.UUID) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		status.Validate(),
		status.ValidateCanHaveCourier(courierID != nil),
	); err != nil {
		return nil, err
	}

	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return nil, err
		}
	}

	return &Order{
		id:        id,
		courierID: courierID,
		status:    status,
		g:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.g.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Courier returns the assigned courier's ID, or nil while unassigned.
func (o *Order) Courier() *kernel.UUID {
	return o.courierID
}

// IsAvailable reports whether the order can still be offered to couriers:
// it is Ready and no courier has been assigned.
func (o *Order) IsAvailable() bool {
	return o.status == Ready && o.courierID == nil
}

// Assign attaches a courier to the order and moves it to Delivering.
//
// Business rules:
//   - The courier ID must be valid
//   - The order must still be Ready
//
// The in-memory transition mirrors the conditional UPDATE the repository
// performs; both must agree on when assignment is legal.
func (o *Order) Assign(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.courierID = &courierID
	return nil
}

// Complete marks a Delivering order as Delivered. Only the assigned courier
// may complete the delivery.
func (o *Order) Complete(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	if o.courierID == nil || !o.courierID.IsEqual(courierID) {
		return ErrOrderNotOwnedByCourier
	}

	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}
