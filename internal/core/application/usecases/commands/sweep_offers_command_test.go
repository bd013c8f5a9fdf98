package commands_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/require"
)

func TestNewSweepOffersCommand(t *testing.T) {
	cmd := commands.NewSweepOffersCommand()
	require.NoError(t, cmd.Validate())
}

func TestSweepOffersCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.SweepOffersCommand
	err := cmd.Validate()

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrSweepOffersCommandIsNotConstructed)
}
