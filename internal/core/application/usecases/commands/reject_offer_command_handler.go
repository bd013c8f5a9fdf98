package commands

import (
	"context"
	"errors"
	"log/slog"

	"dispatch/internal/pkg/errs"
)

// RejectOfferCommandHandler processes a courier declining an offer.
// The offer row is kept in rejected state so the order is never re-offered
// to this courier before its history resets.
type RejectOfferCommandHandler struct {
	uowFactory OfferUoWFactory
	logger     *slog.Logger
}

// NewRejectOfferCommandHandler creates a handler for offer rejection.
func NewRejectOfferCommandHandler(uowFactory OfferUoWFactory, logger *slog.Logger) RejectOfferCommandHandler {
	return RejectOfferCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Handle processes the reject command.
// Returns ErrOfferNotFoundOrExpired when no offer with this ID was ever
// addressed to the courier. Rejecting an offer that already expired, was
// already rejected, or was accepted elsewhere succeeds without changing it.
func (h RejectOfferCommandHandler) Handle(ctx context.Context, command RejectOfferCommand) error {
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

	existingOffer, err := offerRepo.GetByIDAndCourier(ctx, command.OfferID(), command.CourierID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrOfferNotFoundOrExpired
	}
	if err != nil {
		return err
	}

	if !existingOffer.IsPending() {
		return nil
	}

	if err = existingOffer.Reject(); err != nil {
		return err
	}

	if err = offerRepo.Update(ctx, existingOffer); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "offer rejected",
		"offer_id", existingOffer.ID().String(),
		"order_id", existingOffer.OrderID().String(),
		"courier_id", command.CourierID().String(),
	)

	return nil
}
