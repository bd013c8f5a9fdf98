package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
)

// UnitOfWork coordinates a database transaction across the repositories.
// Each business operation gets a fresh instance; repositories obtained from
// it run inside the transaction once Begin has been called.
type UnitOfWork interface {
	// Begin initiates a transaction. Calling Begin on an instance with an
	// active transaction is a no-op.
	Begin(ctx context.Context) error

	// Commit finalizes all changes made within the current transaction.
	Commit(ctx context.Context) error

	// Rollback discards all changes made within the current transaction.
	Rollback(ctx context.Context) error

	// OrderRepository returns an order repository bound to this unit of work.
	OrderRepository() OrderRepository

	// CourierRepository returns a courier repository bound to this unit of work.
	CourierRepository() CourierRepository

	// OfferRepository returns an offer repository bound to this unit of work.
	OfferRepository() OfferRepository

	// TrackAggregate registers an aggregate modified within this unit of
	// work, for post-commit processing such as event publication.
	TrackAggregate(id kernel.UUID, aggregate any)
}
