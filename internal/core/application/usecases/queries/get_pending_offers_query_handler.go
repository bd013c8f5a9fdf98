package queries

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/offer"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPendingOffersQueryHandler reads a courier's pending offers from the
// database. Offers past their TTL may still appear until the next sweep;
// resolution handlers re-check the status, so a stale entry is harmless.
type GetPendingOffersQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingOffersQueryHandler creates a handler for offer feed queries.
// Requires a GORM database connection for query execution.
func NewGetPendingOffersQueryHandler(db *gorm.DB) GetPendingOffersQueryHandler {
	return GetPendingOffersQueryHandler{db: db}
}

// Handle executes the query to retrieve the courier's pending offers.
// Results are sorted oldest first, so the offer closest to expiring is shown
// at the top of the feed.
func (h GetPendingOffersQueryHandler) Handle(
	ctx context.Context,
	query GetPendingOffersQuery,
) ([]GetPendingOffersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	offers := make([]GetPendingOffersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			created_at
		FROM offers
		WHERE courier_id = ? AND status = ?
		ORDER BY created_at
	`, query.CourierID().Bytes(), offer.Pending).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var offerResp GetPendingOffersQueryResponse
		var id, orderID uuid.UUID
		var createdAt time.Time

		err = rows.Scan(
			&id,
			&orderID,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		offerID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		offerResp.OfferID = offerID

		offerOrderID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}
		offerResp.OrderID = offerOrderID

		offerResp.CreatedAt = createdAt
		offers = append(offers, offerResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return offers, nil
}
