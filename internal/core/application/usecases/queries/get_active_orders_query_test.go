package queries_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetActiveOrdersQuery(t *testing.T) {
	courierID := kernel.NewUUID()

	query, err := queries.NewGetActiveOrdersQuery(courierID)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, courierID, query.CourierID())
}

func TestNewGetActiveOrdersQuery_InvalidCourierID(t *testing.T) {
	_, err := queries.NewGetActiveOrdersQuery(kernel.UUID{})
	require.Error(t, err)
}

func TestGetActiveOrdersQuery_Validate_NotConstructed(t *testing.T) {
	var query queries.GetActiveOrdersQuery
	err := query.Validate()

	require.Error(t, err)
	require.ErrorIs(t, err, queries.ErrGetActiveOrdersQueryIsNotConstructed)
}
