package usecase

import (
	"fmt"
	"strings"
	"time"

	"skill-swap/internal/domain/role"
)

// Caller is the resolved identity every operation runs as.
type Caller struct {
	ID   string
	Role role.Role
}

func Anonymous() Caller {
	return Caller{Role: role.Guest}
}

func (c Caller) Authenticated() bool {
	return strings.TrimSpace(c.ID) != ""
}

// Require fails with ErrUnauthorized for anonymous callers on anything
// beyond public reads and with ErrForbidden when the role lacks cap.
func (c Caller) Require(cap role.Capability) error {
	if cap != role.ReadPublic && !c.Authenticated() {
		return fmt.Errorf("%w: sign in required", ErrUnauthorized)
	}
	if !c.Role.Can(cap) {
		return fmt.Errorf("%w: role %s cannot %s", ErrForbidden, c.Role, cap)
	}
	return nil
}

type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

func clockOrSystem(c Clock) Clock {
	if c == nil {
		return systemClock{}
	}
	return c
}
