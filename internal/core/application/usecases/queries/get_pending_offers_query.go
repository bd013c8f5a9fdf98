// Package queries contains read-only operations for retrieving system state.
// Implements the Query side of the CQRS architecture: handlers read the store
// directly and return plain response structs, bypassing the domain aggregates.
package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetPendingOffersQueryIsNotConstructed = errors.New(
	"GetPendingOffersQuery must be created via NewGetPendingOffersQuery constructor",
)

// GetPendingOffersQuery retrieves the offers currently awaiting a courier's
// decision. This is the feed couriers poll between distribution cycles.
//
// Example:
//
//	query, err := NewGetPendingOffersQuery(courierID)
//	if err != nil {
//	    return err
//	}
//
//	offers, err := handler.Handle(ctx, query)
//	for _, o := range offers {
//	    fmt.Printf("offer %s for order %s\n", o.OfferID, o.OrderID)
//	}
type GetPendingOffersQuery struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPendingOffersQuery creates a query for a courier's pending offers.
// The courier ID must be a valid UUID.
func NewGetPendingOffersQuery(courierID kernel.UUID) (GetPendingOffersQuery, error) {
	if err := courierID.Validate(); err != nil {
		return GetPendingOffersQuery{}, err
	}

	return GetPendingOffersQuery{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPendingOffersQueryIsNotConstructed if validation fails.
func (q GetPendingOffersQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingOffersQueryIsNotConstructed)
}

// CourierID returns the identifier of the courier whose feed is requested.
func (q GetPendingOffersQuery) CourierID() kernel.UUID {
	return q.courierID
}

// GetPendingOffersQueryResponse represents one entry in a courier's offer feed.
type GetPendingOffersQueryResponse struct {
	OfferID   kernel.UUID
	OrderID   kernel.UUID
	CreatedAt time.Time
}
