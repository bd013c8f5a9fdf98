package commands

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrSweepOffersCommandIsNotConstructed = errors.New(
	"SweepOffersCommand must be created via NewSweepOffersCommand constructor",
)

// SweepOffersCommand triggers one expiration sweep: pending offers past their
// TTL are expired and accepted offers are purged.
// This is a parameterless command fired periodically by the job scheduler.
type SweepOffersCommand struct {
	guard guard.ConstructorGuard
}

// NewSweepOffersCommand creates a new command to trigger an expiration sweep.
func NewSweepOffersCommand() SweepOffersCommand {
	return SweepOffersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrSweepOffersCommandIsNotConstructed if validation fails.
func (c *SweepOffersCommand) Validate() error {
	return c.guard.Validate(
		ErrSweepOffersCommandIsNotConstructed,
	)
}
