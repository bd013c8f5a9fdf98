package courier

import (
	"errors"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// Domain errors for courier operations.
var (
	// ErrNameIsRequired is returned when attempting to create a courier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier or RestoreCourier constructor")
)

// Courier represents a user with the courier role. The offer engine treats
// couriers as read-only: role membership (the active flag) is the only
// availability signal, and no busy/idle state is tracked here.
//
// Business rules:
//   - Courier must have a valid UUID and a non-empty name
//   - Only active couriers participate in offer distribution
type Courier struct {
	// id uniquely identifies the courier
	id kernel.UUID
	// name is the human-readable name of the courier
	name string
	// active reports whether the courier currently holds the courier role
	active bool
	// g ensures the courier was properly constructed
	g guard.ConstructorGuard
}

// NewCourier creates an active Courier with the specified identity.
//
// Returns an aggregated validation error when the id is invalid or the name
// is blank.
func NewCourier(id kernel.UUID, name string) (*Courier, error) {
	c := &Courier{
		active: true,
		g:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCourier reconstructs a Courier from persistent storage, including
// couriers whose role membership has been revoked (active=false).
func RestoreCourier(id kernel.UUID, name string, active bool) (*Courier, error) {
	c, err := NewCourier(id, name)
	if err != nil {
		return nil, err
	}

	c.active = active
	return c, nil
}

// Validate ensures the Courier instance was properly constructed.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.g.Validate(ErrCourierIsNotConstructed)
}

// IsEqual compares two couriers by their unique identifiers.
func (c *Courier) IsEqual(other *Courier) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the courier's unique identifier.
func (c *Courier) ID() kernel.UUID {
	return c.id
}

// Name returns the courier's human-readable name.
func (c *Courier) Name() string {
	return c.name
}

// IsActive reports whether the courier currently holds the courier role.
func (c *Courier) IsActive() bool {
	return c.active
}

// Deactivate revokes the courier's participation in offer distribution.
// The account subsystem owns role membership; this is exposed for seeding
// and tests.
func (c *Courier) Deactivate() {
	c.active = false
}

func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Courier) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}
