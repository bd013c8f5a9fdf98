package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrRejectOfferCommandIsNotConstructed = errors.New(
	"RejectOfferCommand must be created via NewRejectOfferCommand constructor",
)

// RejectOfferCommand represents a courier declining an offered order.
// Rejection is final for this (order, courier) pair until the order's offer
// history resets, and idempotent: declining an already-settled offer is fine.
type RejectOfferCommand struct { //nolint:recvcheck //using for validation
	offerID   kernel.UUID
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRejectOfferCommand creates a command for a courier to reject an offer.
// Both identifiers must be valid UUIDs.
func NewRejectOfferCommand(offerID, courierID kernel.UUID) (RejectOfferCommand, error) {
	rejectCommand := RejectOfferCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		rejectCommand.setOfferID(offerID),
		rejectCommand.setCourierID(courierID),
	); err != nil {
		return RejectOfferCommand{}, err
	}

	return rejectCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRejectOfferCommandIsNotConstructed if validation fails.
func (c RejectOfferCommand) Validate() error {
	return c.guard.Validate(ErrRejectOfferCommandIsNotConstructed)
}

// OfferID returns the identifier of the offer being rejected.
func (c RejectOfferCommand) OfferID() kernel.UUID {
	return c.offerID
}

// CourierID returns the identifier of the rejecting courier.
func (c RejectOfferCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c *RejectOfferCommand) setOfferID(offerID kernel.UUID) error {
	if err := offerID.Validate(); err != nil {
		return err
	}

	c.offerID = offerID
	return nil
}

func (c *RejectOfferCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}
