package role

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownRole = errors.New("unknown role")

type Role uint8

const (
	Guest Role = iota
	User
	Admin
)

func (r Role) String() string {
	switch r {
	case Guest:
		return "guest"
	case User:
		return "user"
	case Admin:
		return "admin"
	default:
		return "unknown"
	}
}

func Parse(v string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "guest":
		return Guest, nil
	case "user":
		return User, nil
	case "admin":
		return Admin, nil
	default:
		return Guest, fmt.Errorf("%w: %q", ErrUnknownRole, v)
	}
}

func (r Role) MarshalText() ([]byte, error) {
	if r > Admin {
		return nil, fmt.Errorf("%w: %d", ErrUnknownRole, r)
	}
	return []byte(r.String()), nil
}

func (r *Role) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

type Capability uint8

const (
	// ReadPublic covers profile browsing, skill search and rating reads.
	ReadPublic Capability = iota
	Exchange
	Message
	Rate
	AssignRoles
)

func (c Capability) String() string {
	switch c {
	case ReadPublic:
		return "read_public"
	case Exchange:
		return "exchange"
	case Message:
		return "message"
	case Rate:
		return "rate"
	case AssignRoles:
		return "assign_roles"
	default:
		return "unknown"
	}
}

var grants = map[Role]map[Capability]bool{
	Guest: {ReadPublic: true},
	User:  {ReadPublic: true, Exchange: true, Message: true, Rate: true},
	Admin: {ReadPublic: true, Exchange: true, Message: true, Rate: true, AssignRoles: true},
}

func (r Role) Can(c Capability) bool {
	return grants[r][c]
}
