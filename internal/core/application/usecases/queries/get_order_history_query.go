package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetOrderHistoryQueryIsNotConstructed = errors.New(
	"GetOrderHistoryQuery must be created via NewGetOrderHistoryQuery constructor",
)

// GetOrderHistoryQuery retrieves the deliveries a courier has completed:
// orders assigned to the courier that reached Delivered.
type GetOrderHistoryQuery struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderHistoryQuery creates a query for a courier's completed deliveries.
// The courier ID must be a valid UUID.
func NewGetOrderHistoryQuery(courierID kernel.UUID) (GetOrderHistoryQuery, error) {
	if err := courierID.Validate(); err != nil {
		return GetOrderHistoryQuery{}, err
	}

	return GetOrderHistoryQuery{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderHistoryQueryIsNotConstructed if validation fails.
func (q GetOrderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderHistoryQueryIsNotConstructed)
}

// CourierID returns the identifier of the courier whose history is requested.
func (q GetOrderHistoryQuery) CourierID() kernel.UUID {
	return q.courierID
}

// GetOrderHistoryQueryResponse represents one completed delivery.
type GetOrderHistoryQueryResponse struct {
	OrderID kernel.UUID
	Status  string
}
