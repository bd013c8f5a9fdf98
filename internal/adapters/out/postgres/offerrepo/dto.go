// Package offerrepo provides data transfer objects and mapping functions for
// offer persistence. Besides the live offers table it maintains the
// append-only offer log, the audit trail of every offer ever extended.
package offerrepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/offer"

	"github.com/google/uuid"
)

// OfferDTO represents the database structure for persisting offer aggregates.
// The (order_id, courier_id) pair is unique: an order is proposed to a given
// courier at most once per distribution round.
type OfferDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_offers_order_courier"`
	CourierID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_offers_order_courier;index"`
	Status    int       `gorm:"index"`
	CreatedAt time.Time
}

// TableName specifies the database table name for offer entities.
func (OfferDTO) TableName() string {
	return "offers"
}

// OfferLogDTO is the append-only audit record written alongside every new
// offer. Log rows survive offer deletion (history resets, accepted purges),
// so they are the only durable trace of the full distribution history.
type OfferLogDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OfferID   uuid.UUID `gorm:"type:uuid;index"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	CourierID uuid.UUID `gorm:"type:uuid"`
	CreatedAt time.Time
	ExpiresAt time.Time
}

// TableName specifies the database table name for offer log entries.
func (OfferLogDTO) TableName() string {
	return "offer_logs"
}

// fromDomain converts an offer domain aggregate to its database representation.
func fromDomain(offer *offer.Offer) OfferDTO {
	return OfferDTO{
		ID:        offer.ID().Bytes(),
		OrderID:   offer.OrderID().Bytes(),
		CourierID: offer.CourierID().Bytes(),
		Status:    int(offer.Status()),
		CreatedAt: offer.CreatedAt(),
	}
}

// logFromDomain builds the audit record for a newly created offer.
func logFromDomain(o *offer.Offer, ttl time.Duration) OfferLogDTO {
	return OfferLogDTO{
		ID:        uuid.New(),
		OfferID:   o.ID().Bytes(),
		OrderID:   o.OrderID().Bytes(),
		CourierID: o.CourierID().Bytes(),
		CreatedAt: o.CreatedAt(),
		ExpiresAt: o.CreatedAt().Add(ttl),
	}
}

// toDomain converts a database DTO to an offer domain aggregate.
func toDomain(dto OfferDTO) (*offer.Offer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	courierID, err := kernel.UUIDFromBytes(dto.CourierID[:])
	if err != nil {
		return nil, err
	}

	return offer.RestoreOffer(id, orderID, courierID, offer.Status(dto.Status), dto.CreatedAt)
}
