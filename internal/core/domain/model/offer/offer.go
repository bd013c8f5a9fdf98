package offer

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

// ErrOfferIsNotConstructed is returned when an Offer instance was not created
// through NewOffer or RestoreOffer.
var ErrOfferIsNotConstructed = errors.New("Offer must be created via NewOffer or RestoreOffer constructor")

// Offer is an exclusive, time-boxed proposal of one order to one courier.
//
// Offer maintains these invariants:
//   - Must reference a valid order and a valid courier
//   - Starts Pending and ends in exactly one of Accepted, Rejected, Expired
//   - A terminal offer never changes state again
//
// Offers are created only by the distribution cycle; the resolution handlers
// move them to accepted/rejected and the sweeper moves stale ones to expired.
type Offer struct {
	// id is the unique identifier for the offer
	id kernel.UUID

	// orderID references the order being proposed
	orderID kernel.UUID

	// courierID references the courier the order is proposed to
	courierID kernel.UUID

	// status is the current state in the offer lifecycle
	status Status

	// createdAt anchors the TTL countdown
	createdAt time.Time

	// g ensures the offer was created via a constructor
	g guard.ConstructorGuard
}

// NewOffer creates a Pending offer of the given order to the given courier.
// createdAt anchors TTL expiration and is supplied by the caller so that one
// distribution cycle stamps all of its offers with the same instant.
func NewOffer(id, orderID, courierID kernel.UUID, createdAt time.Time) (*Offer, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		courierID.Validate(),
	); err != nil {
		return nil, err
	}

	return &Offer{
		id:        id,
		orderID:   orderID,
		courierID: courierID,
		status:    Pending,
		createdAt: createdAt,
		g:         guard.NewConstructorGuard(),
	}, nil
}

// RestoreOffer reconstructs an Offer aggregate from persistent storage.
func RestoreOffer(id, orderID, courierID kernel.UUID, status Status, createdAt time.Time) (*Offer, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		courierID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Offer{
		id:        id,
		orderID:   orderID,
		courierID: courierID,
		status:    status,
		createdAt: createdAt,
		g:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Offer instance was properly constructed.
func (o *Offer) Validate() error {
	if o == nil {
		return ErrOfferIsNotConstructed
	}
	return o.g.Validate(ErrOfferIsNotConstructed)
}

// IsEqual compares two offers by their unique identifiers.
func (o *Offer) IsEqual(other *Offer) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the offer's unique identifier.
func (o *Offer) ID() kernel.UUID {
	return o.id
}

// OrderID returns the identifier of the proposed order.
func (o *Offer) OrderID() kernel.UUID {
	return o.orderID
}

// CourierID returns the identifier of the addressed courier.
func (o *Offer) CourierID() kernel.UUID {
	return o.courierID
}

// Status returns the current status of the offer.
func (o *Offer) Status() Status {
	return o.status
}

// CreatedAt returns the instant the offer was created.
func (o *Offer) CreatedAt() time.Time {
	return o.createdAt
}

// IsPending reports whether the offer is still awaiting resolution.
func (o *Offer) IsPending() bool {
	return o.status == Pending
}

// IsOlderThan reports whether the offer's age at instant now exceeds ttl.
func (o *Offer) IsOlderThan(ttl time.Duration, now time.Time) bool {
	return now.Sub(o.createdAt) > ttl
}

// Accept moves a pending offer to Accepted.
// Fails for any terminal offer; an expired offer can never be accepted.
func (o *Offer) Accept() error {
	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Reject moves a pending offer to Rejected.
// Rejecting an already-terminal offer is a no-op success: the courier's
// intent is satisfied either way, so the operation is idempotent.
func (o *Offer) Reject() error {
	if o.status.IsTerminal() {
		return nil
	}

	newStatus, err := o.status.Reject()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Expire moves a pending offer to Expired.
// Expiring an already-terminal offer is a no-op success, which lets the
// sweeper and the accept failure path race without errors.
func (o *Offer) Expire() error {
	if o.status.IsTerminal() {
		return nil
	}

	newStatus, err := o.status.Expire()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}
