package queries_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetPendingOffersQuery(t *testing.T) {
	courierID := kernel.NewUUID()

	query, err := queries.NewGetPendingOffersQuery(courierID)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, courierID, query.CourierID())
}

func TestNewGetPendingOffersQuery_InvalidCourierID(t *testing.T) {
	_, err := queries.NewGetPendingOffersQuery(kernel.UUID{})
	require.Error(t, err)
}

func TestGetPendingOffersQuery_Validate_NotConstructed(t *testing.T) {
	var query queries.GetPendingOffersQuery
	err := query.Validate()

	require.Error(t, err)
	require.ErrorIs(t, err, queries.ErrGetPendingOffersQueryIsNotConstructed)
}
