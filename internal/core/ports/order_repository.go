// Package ports defines the contracts between the domain/application layers
// and infrastructure. These interfaces enable dependency inversion and
// testability: the store adapters implement them, the use cases consume them.
package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, order *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, order *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllReadyUnassigned retrieves every order that is Ready and has no
	// courier attached, the set of orders eligible for distribution.
	GetAllReadyUnassigned(ctx context.Context) ([]*order.Order, error)

	// AssignIfUnassigned attaches the courier to the order and moves it to
	// Delivering in a single conditional write: the update only applies while
	// the order is still Ready with no courier. Returns false when another
	// writer got there first; the caller must treat the order as gone.
	//
	// This is the synchronization point that keeps two concurrent accepts
	// from both succeeding; a read-then-write sequence is not equivalent.
	AssignIfUnassigned(ctx context.Context, orderID, courierID kernel.UUID) (bool, error)
}
