package offerrepo

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/offer"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOfferRepository implements OfferRepository using GORM.
type GormOfferRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOfferRepository creates a new GORM offer repository.
func NewGormOfferRepository(db *gorm.DB, tracker aggregateTracker) *GormOfferRepository {
	return &GormOfferRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new offer together with its audit log row. Both rows go in the
// same statement batch, so when the caller runs inside a transaction they
// commit or vanish together.
func (r *GormOfferRepository) Add(ctx context.Context, aggregate *offer.Offer, ttl time.Duration) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	logDTO := logFromDomain(aggregate, ttl)
	if err := r.db.WithContext(ctx).Create(&logDTO).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing offer to the database.
func (r *GormOfferRepository) Update(ctx context.Context, aggregate *offer.Offer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OfferDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetByIDAndCourier retrieves an offer addressed to the given courier,
// whatever its status.
func (r *GormOfferRepository) GetByIDAndCourier(
	ctx context.Context,
	offerID, courierID kernel.UUID,
) (*offer.Offer, error) {
	if err := errors.Join(offerID.Validate(), courierID.Validate()); err != nil {
		return nil, err
	}

	var dto OfferDTO
	err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND courier_id = ?", offerID.Bytes(), courierID.Bytes()).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("offer", offerID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetPendingByIDAndCourier is GetByIDAndCourier restricted to pending offers.
func (r *GormOfferRepository) GetPendingByIDAndCourier(
	ctx context.Context,
	offerID, courierID kernel.UUID,
) (*offer.Offer, error) {
	if err := errors.Join(offerID.Validate(), courierID.Validate()); err != nil {
		return nil, err
	}

	var dto OfferDTO
	err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND courier_id = ? AND status = ?",
			offerID.Bytes(), courierID.Bytes(), offer.Pending).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("offer", offerID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllForOrder retrieves every offer ever made for the order, regardless of
// status.
func (r *GormOfferRepository) GetAllForOrder(ctx context.Context, orderID kernel.UUID) ([]*offer.Offer, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OfferDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "order_id = ?", orderID.Bytes()).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetPendingOlderThan retrieves all pending offers created more than age ago.
func (r *GormOfferRepository) GetPendingOlderThan(
	ctx context.Context,
	age time.Duration,
) ([]*offer.Offer, error) {
	cutoff := time.Now().UTC().Add(-age)

	var dtos []OfferDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "status = ? AND created_at < ?", offer.Pending, cutoff).
		Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// ExpireOtherPending moves every pending offer for the order, except the one
// identified by keepOfferID, to expired. A single guarded UPDATE: couriers
// racing to reject their copy at the same moment lose nothing either way.
func (r *GormOfferRepository) ExpireOtherPending(ctx context.Context, orderID, keepOfferID kernel.UUID) error {
	if err := errors.Join(orderID.Validate(), keepOfferID.Validate()); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Model(&OfferDTO{}).
		Where("order_id = ? AND id != ? AND status = ?", orderID.Bytes(), keepOfferID.Bytes(), offer.Pending).
		Update("status", int(offer.Expired)).
		Error
}

// DeleteAllForOrder removes every offer row for the order. Audit log rows are
// retained.
func (r *GormOfferRepository) DeleteAllForOrder(ctx context.Context, orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Delete(&OfferDTO{}).
		Error
}

// PurgeAccepted deletes all accepted offer rows, returning how many were
// removed.
func (r *GormOfferRepository) PurgeAccepted(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("status = ?", offer.Accepted).
		Delete(&OfferDTO{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

func toDomainSlice(dtos []OfferDTO) ([]*offer.Offer, error) {
	offers := make([]*offer.Offer, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		offers = append(offers, o)
	}

	return offers, nil
}
