package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
)

// Notifier wakes a courier's client when a new offer is created for them.
// Delivery is fire-and-forget: a notification failure never affects the
// correctness of the distribution cycle, since clients also poll their
// pending offers.
type Notifier interface {
	NotifyOfferCreated(ctx context.Context, courierID, orderID kernel.UUID) error
}
