package commands

import (
	"context"
	"log/slog"
	"time"
)

// SweepOffersCommandHandler enforces offer lifetimes.
// Pending offers older than the TTL move to expired, which releases their
// couriers for the next distribution cycle. Accepted offers, whose outcome
// is already recorded on the order row, are deleted. Both steps run in a
// single transaction.
type SweepOffersCommandHandler struct {
	uowFactory OfferUoWFactory
	offerTTL   time.Duration
	logger     *slog.Logger
}

// NewSweepOffersCommandHandler creates a handler for expiration sweeps.
func NewSweepOffersCommandHandler(
	uowFactory OfferUoWFactory,
	offerTTL time.Duration,
	logger *slog.Logger,
) SweepOffersCommandHandler {
	return SweepOffersCommandHandler{
		uowFactory: uowFactory,
		offerTTL:   offerTTL,
		logger:     logger,
	}
}

// Handle processes the sweep command.
// A sweep that finds nothing to do succeeds silently; this is the common
// case between distribution cycles.
func (h SweepOffersCommandHandler) Handle(ctx context.Context, command SweepOffersCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	offerRepo := uow.OfferRepository()

	stale, err := offerRepo.GetPendingOlderThan(ctx, h.offerTTL)
	if err != nil {
		return err
	}

	for _, o := range stale {
		if err = o.Expire(); err != nil {
			return err
		}
		if err = offerRepo.Update(ctx, o); err != nil {
			return err
		}
	}

	purged, err := offerRepo.PurgeAccepted(ctx)
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if len(stale) > 0 || purged > 0 {
		h.logger.InfoContext(ctx, "offer sweep completed",
			"expired", len(stale),
			"purged", purged,
		)
	}

	return nil
}
