package commands

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrDistributeOrdersCommandIsNotConstructed = errors.New(
	"DistributeOrdersCommand must be created via NewDistributeOrdersCommand constructor",
)

// DistributeOrdersCommand triggers one distribution cycle: every unassigned
// order gets offered to a courier that has not seen it yet.
// This is a parameterless command fired periodically by the job scheduler.
//
// Example:
//
//	cmd := NewDistributeOrdersCommand()
//	handler := NewDistributeOrdersCommandHandler(uowFactory, notifier, ttl, logger)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoOrdersToDistribute):
//	    log.Println("Nothing to distribute")
//	case errors.Is(err, ErrNoActiveCouriers):
//	    log.Println("No couriers on shift")
//	case err != nil:
//	    log.Printf("Distribution failed: %v", err)
//	}
type DistributeOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewDistributeOrdersCommand creates a new command to trigger a distribution cycle.
func NewDistributeOrdersCommand() DistributeOrdersCommand {
	return DistributeOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrDistributeOrdersCommandIsNotConstructed if validation fails.
func (c *DistributeOrdersCommand) Validate() error {
	return c.guard.Validate(
		ErrDistributeOrdersCommandIsNotConstructed,
	)
}
