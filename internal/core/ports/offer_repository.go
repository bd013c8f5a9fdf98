package ports

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/offer"
)

// OfferRepository defines the persistence contract for offer aggregates and
// their append-only audit log.
type OfferRepository interface {
	// Add persists a new pending offer together with an audit log row
	// recording the TTL it was created with. The log is write-once and never
	// read back by the engine.
	Add(ctx context.Context, offer *offer.Offer, ttl time.Duration) error

	// Update persists a status change of an existing offer.
	Update(ctx context.Context, offer *offer.Offer) error

	// GetByIDAndCourier retrieves an offer addressed to the given courier,
	// whatever its status. Returns errs.ObjectNotFoundError when the offer
	// does not exist or belongs to another courier.
	GetByIDAndCourier(ctx context.Context, offerID, courierID kernel.UUID) (*offer.Offer, error)

	// GetPendingByIDAndCourier is GetByIDAndCourier restricted to pending
	// offers.
	GetPendingByIDAndCourier(ctx context.Context, offerID, courierID kernel.UUID) (*offer.Offer, error)

	// GetAllForOrder retrieves every offer ever made for the order,
	// regardless of status. Used to decide which couriers have already seen
	// the order and whether its offer history must be reset.
	GetAllForOrder(ctx context.Context, orderID kernel.UUID) ([]*offer.Offer, error)

	// GetPendingOlderThan retrieves all pending offers whose age exceeds the
	// given duration.
	GetPendingOlderThan(ctx context.Context, age time.Duration) ([]*offer.Offer, error)

	// ExpireOtherPending moves every pending offer for the order, except the
	// one identified by keepOfferID, to expired.
	ExpireOtherPending(ctx context.Context, orderID, keepOfferID kernel.UUID) error

	// DeleteAllForOrder removes every offer row for the order. Used by the
	// exhaustion reset; audit log rows are retained.
	DeleteAllForOrder(ctx context.Context, orderID kernel.UUID) error

	// PurgeAccepted deletes all accepted offer rows, returning how many were
	// removed. The order row is the durable record of acceptance, so
	// accepted offers are kept for at most one sweep.
	PurgeAccepted(ctx context.Context) (int64, error)
}
