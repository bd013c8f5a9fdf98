package commands_test

import (
	"errors"
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/offer"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRejectOfferCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	pendingOffer := newPendingOffer(t)
	cmd, err := commands.NewRejectOfferCommand(pendingOffer.ID(), pendingOffer.CourierID())
	require.NoError(t, err)

	offerRepo := new(MockOfferRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OfferRepository").Return(offerRepo).Once(),
		offerRepo.On("GetByIDAndCourier", ctx, pendingOffer.ID(), pendingOffer.CourierID()).
			Return(pendingOffer, nil).
			Once(),
		offerRepo.On("Update", ctx, pendingOffer).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOfferUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRejectOfferCommandHandler(factory, discardLogger())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, offer.Rejected, pendingOffer.Status())
	offerRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRejectOfferCommandHandler_Handle_IdempotentOnSettledOffer(t *testing.T) {
	ctx := t.Context()

	settledOffer := newPendingOffer(t)
	require.NoError(t, settledOffer.Expire())

	cmd, err := commands.NewRejectOfferCommand(settledOffer.ID(), settledOffer.CourierID())
	require.NoError(t, err)

	offerRepo := new(MockOfferRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OfferRepository").Return(offerRepo).Once(),
		offerRepo.On("GetByIDAndCourier", ctx, settledOffer.ID(), settledOffer.CourierID()).
			Return(settledOffer, nil).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOfferUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRejectOfferCommandHandler(factory, discardLogger())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, offer.Expired, settledOffer.Status())
	offerRepo.AssertNotCalled(t, "Update", ctx, settledOffer)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestRejectOfferCommandHandler_Handle_OfferNotFound(t *testing.T) {
	ctx := t.Context()

	offerID := kernel.NewUUID()
	courierID := kernel.NewUUID()
	cmd, err := commands.NewRejectOfferCommand(offerID, courierID)
	require.NoError(t, err)

	offerRepo := new(MockOfferRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OfferRepository").Return(offerRepo).Once(),
		offerRepo.On("GetByIDAndCourier", ctx, offerID, courierID).
			Return(nil, errs.NewObjectNotFoundError("offerID", offerID)).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOfferUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRejectOfferCommandHandler(factory, discardLogger())
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrOfferNotFoundOrExpired)
}

func TestRejectOfferCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.RejectOfferCommand{} // not constructed properly

	factory := new(MockOfferUoWFactory)
	handler := commands.NewRejectOfferCommandHandler(factory, discardLogger())
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrRejectOfferCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestRejectOfferCommandHandler_Handle_UpdateError(t *testing.T) {
	ctx := t.Context()

	pendingOffer := newPendingOffer(t)
	cmd, err := commands.NewRejectOfferCommand(pendingOffer.ID(), pendingOffer.CourierID())
	require.NoError(t, err)

	offerRepo := new(MockOfferRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OfferRepository").Return(offerRepo).Once(),
		offerRepo.On("GetByIDAndCourier", ctx, pendingOffer.ID(), pendingOffer.CourierID()).
			Return(pendingOffer, nil).
			Once(),
		offerRepo.On("Update", ctx, pendingOffer).Return(errors.New("update error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOfferUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRejectOfferCommandHandler(factory, discardLogger())
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "update error")
}
