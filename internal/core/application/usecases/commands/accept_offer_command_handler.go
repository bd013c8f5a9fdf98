package commands

import (
	"context"
	"errors"
	"log/slog"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/offer"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
)

var (
	ErrOfferNotFoundOrExpired = errors.New("offer not found or no longer pending")
	ErrOrderNoLongerAvailable = errors.New("order is no longer available")
)

// AcceptOfferResult reports the outcome of a successful acceptance.
type AcceptOfferResult struct {
	OrderID     kernel.UUID
	OrderStatus order.Status
}

// AcceptOfferCommandHandler processes a courier's claim on an offer.
//
// The winner of a race is decided by a single conditional write on the order
// row: whichever transaction flips the order to delivering first wins, and
// every later claim sees zero affected rows. A losing claim expires its own
// offer so the client stops seeing it; the winning claim expires every other
// pending offer for the order.
type AcceptOfferCommandHandler struct {
	uowFactory OrderOfferUoWFactory
	logger     *slog.Logger
}

// NewAcceptOfferCommandHandler creates a handler for offer acceptance.
func NewAcceptOfferCommandHandler(uowFactory OrderOfferUoWFactory, logger *slog.Logger) AcceptOfferCommandHandler {
	return AcceptOfferCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Handle processes the accept command.
// Returns ErrOfferNotFoundOrExpired when the offer does not exist, belongs to
// another courier, or is no longer pending. Returns ErrOrderNoLongerAvailable
// when the order was claimed by someone else first; the losing offer is
// expired as a side effect.
func (h AcceptOfferCommandHandler) Handle(
	ctx context.Context,
	command AcceptOfferCommand,
) (AcceptOfferResult, error) {
	if err := command.Validate(); err != nil {
		return AcceptOfferResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AcceptOfferResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	offerRepo := uow.OfferRepository()
	orderRepo := uow.OrderRepository()

	pendingOffer, err := offerRepo.GetPendingByIDAndCourier(ctx, command.OfferID(), command.CourierID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return AcceptOfferResult{}, ErrOfferNotFoundOrExpired
	}
	if err != nil {
		return AcceptOfferResult{}, err
	}

	assigned, err := orderRepo.AssignIfUnassigned(ctx, pendingOffer.OrderID(), command.CourierID())
	if err != nil {
		return AcceptOfferResult{}, err
	}

	if !assigned {
		// Lost the race. Retire the offer so the courier's feed clears,
		// and commit that even though the claim itself failed.
		if expireErr := h.expireAndCommit(ctx, uow, pendingOffer); expireErr != nil {
			return AcceptOfferResult{}, expireErr
		}

		h.logger.InfoContext(ctx, "offer acceptance lost race",
			"offer_id", pendingOffer.ID().String(),
			"order_id", pendingOffer.OrderID().String(),
			"courier_id", command.CourierID().String(),
		)
		return AcceptOfferResult{}, ErrOrderNoLongerAvailable
	}

	if err = pendingOffer.Accept(); err != nil {
		return AcceptOfferResult{}, err
	}

	if err = offerRepo.Update(ctx, pendingOffer); err != nil {
		return AcceptOfferResult{}, err
	}

	if err = offerRepo.ExpireOtherPending(ctx, pendingOffer.OrderID(), pendingOffer.ID()); err != nil {
		return AcceptOfferResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AcceptOfferResult{}, err
	}

	h.logger.InfoContext(ctx, "offer accepted",
		"offer_id", pendingOffer.ID().String(),
		"order_id", pendingOffer.OrderID().String(),
		"courier_id", command.CourierID().String(),
	)

	return AcceptOfferResult{
		OrderID:     pendingOffer.OrderID(),
		OrderStatus: order.Delivering,
	}, nil
}

func (h AcceptOfferCommandHandler) expireAndCommit(
	ctx context.Context,
	uow OrderOfferUoW,
	pendingOffer *offer.Offer,
) error {
	if err := pendingOffer.Expire(); err != nil {
		return err
	}

	if err := uow.OfferRepository().Update(ctx, pendingOffer); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
