package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/offer"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
)

var (
	ErrNoOrdersToDistribute = errors.New("no orders to distribute")
	ErrNoActiveCouriers     = errors.New("no active couriers found")
)

// DistributeOrdersCommandHandler orchestrates one distribution cycle.
// Loads every unassigned order and every active courier, plans a randomized
// matching via the OfferPlanner, and persists one pending offer per matched
// order. Each order is processed in its own transaction, so a store failure
// on one order never blocks the rest of the cycle.
//
// An order whose offer history already covers every active courier gets its
// history wiped first, so distribution starts over rather than starving the
// order.
type DistributeOrdersCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
	offerTTL   time.Duration
	logger     *slog.Logger
}

// NewDistributeOrdersCommandHandler creates a handler for distribution cycles.
// The offerTTL is recorded in the audit log of every offer the cycle creates.
func NewDistributeOrdersCommandHandler(
	uowFactory UoWFactory,
	notifier ports.Notifier,
	offerTTL time.Duration,
	logger *slog.Logger,
) DistributeOrdersCommandHandler {
	return DistributeOrdersCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		offerTTL:   offerTTL,
		logger:     logger,
	}
}

// Handle processes the distribution command.
// Returns ErrNoOrdersToDistribute or ErrNoActiveCouriers when the cycle has
// nothing to do; both are expected idle states, not failures. Per-order
// persistence errors are logged and swallowed so the cycle always completes.
func (h DistributeOrdersCommandHandler) Handle(ctx context.Context, command DistributeOrdersCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()

	orders, err := uow.OrderRepository().GetAllReadyUnassigned(ctx)
	if err != nil {
		return err
	}
	if len(orders) == 0 {
		return ErrNoOrdersToDistribute
	}

	couriers, err := uow.CourierRepository().GetAllActive(ctx)
	if err != nil {
		return err
	}
	if len(couriers) == 0 {
		return ErrNoActiveCouriers
	}

	planner := services.NewOfferPlanner()
	queue := planner.NewCourierQueue(couriers)
	active := make(map[kernel.UUID]bool, len(couriers))
	for _, c := range couriers {
		active[c.ID()] = true
	}

	now := time.Now().UTC()
	for _, o := range planner.ShuffleOrders(orders) {
		if err := h.offerOrder(ctx, o, active, queue, now); err != nil {
			h.logger.ErrorContext(ctx, "offer creation failed",
				"order_id", o.ID().String(),
				"error", err,
			)
		}
	}

	return nil
}

// offerOrder creates at most one pending offer for the order, inside its own
// transaction. Returns nil when the order is skipped because no eligible
// courier remains in the queue.
func (h DistributeOrdersCommandHandler) offerOrder(
	ctx context.Context,
	o *order.Order,
	active map[kernel.UUID]bool,
	queue *services.CourierQueue,
	now time.Time,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	offerRepo := uow.OfferRepository()

	history, err := offerRepo.GetAllForOrder(ctx, o.ID())
	if err != nil {
		return err
	}

	offered := make(map[kernel.UUID]bool, len(history))
	for _, past := range history {
		offered[past.CourierID()] = true
	}

	if coversAllActive(offered, active) {
		if err = offerRepo.DeleteAllForOrder(ctx, o.ID()); err != nil {
			return err
		}
		offered = map[kernel.UUID]bool{}
	}

	candidate := queue.Take(offered)
	if candidate == nil {
		h.logger.DebugContext(ctx, "order skipped this cycle, no eligible courier",
			"order_id", o.ID().String(),
		)
		return nil
	}

	newOffer, err := offer.NewOffer(kernel.NewUUID(), o.ID(), candidate.ID(), now)
	if err != nil {
		return err
	}

	if err = offerRepo.Add(ctx, newOffer, h.offerTTL); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if h.notifier != nil {
		if err = h.notifier.NotifyOfferCreated(ctx, candidate.ID(), o.ID()); err != nil {
			h.logger.WarnContext(ctx, "offer notification failed",
				"offer_id", newOffer.ID().String(),
				"courier_id", candidate.ID().String(),
				"error", err,
			)
		}
	}

	h.logger.InfoContext(ctx, "offer created",
		"offer_id", newOffer.ID().String(),
		"order_id", o.ID().String(),
		"courier_id", candidate.ID().String(),
	)

	return nil
}

// coversAllActive reports whether every active courier already received an
// offer for the order. Offers to couriers that have since gone inactive do
// not count towards coverage.
func coversAllActive(offered, active map[kernel.UUID]bool) bool {
	if len(active) == 0 {
		return false
	}
	for id := range active {
		if !offered[id] {
			return false
		}
	}
	return true
}
