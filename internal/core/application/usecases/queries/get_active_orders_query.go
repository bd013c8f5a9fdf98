package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
	"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
)

// GetActiveOrdersQuery retrieves the deliveries a courier currently carries:
// orders assigned to the courier that have not been delivered yet.
type GetActiveOrdersQuery struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetActiveOrdersQuery creates a query for a courier's in-flight deliveries.
// The courier ID must be a valid UUID.
func NewGetActiveOrdersQuery(courierID kernel.UUID) (GetActiveOrdersQuery, error) {
	if err := courierID.Validate(); err != nil {
		return GetActiveOrdersQuery{}, err
	}

	return GetActiveOrdersQuery{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetActiveOrdersQueryIsNotConstructed if validation fails.
func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// CourierID returns the identifier of the courier whose deliveries are requested.
func (q GetActiveOrdersQuery) CourierID() kernel.UUID {
	return q.courierID
}

// GetActiveOrdersQueryResponse represents one in-flight delivery.
type GetActiveOrdersQueryResponse struct {
	OrderID kernel.UUID
	Status  string
}
