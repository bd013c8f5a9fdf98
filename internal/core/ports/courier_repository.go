package ports

import (
	"context"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
)

// CourierRepository defines the persistence contract for courier entities.
// The engine only reads couriers; Add exists for seeding and tests.
type CourierRepository interface {
	// Add persists a new courier to storage.
	Add(ctx context.Context, courier *courier.Courier) error

	// Get retrieves a courier by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	// GetAllActive retrieves every courier currently holding the courier
	// role. Role membership is the only availability signal the engine uses.
	GetAllActive(ctx context.Context) ([]*courier.Courier, error)
}
