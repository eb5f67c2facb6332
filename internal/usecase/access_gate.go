package usecase

import (
	"context"
	"strings"

	"skill-swap/internal/domain/role"
	"skill-swap/internal/repository"
)

// Access is what the caller may currently do with another member.
type Access struct {
	With       string
	CanMessage bool
	CanRate    bool
}

// AccessGate answers whether two members hold an authorized relationship.
// The answer is read from the store on every call.
type AccessGate struct {
	store repository.Store
}

func NewAccessGate(store repository.Store) *AccessGate {
	return &AccessGate{store: store}
}

// within binds the gate to a running command so the check and the write
// see the same state.
func (g *AccessGate) within(tx repository.Store) *AccessGate {
	return &AccessGate{store: tx}
}

func (g *AccessGate) CanMessage(ctx context.Context, a, b string) (bool, error) {
	return g.authorized(ctx, a, b)
}

func (g *AccessGate) CanRate(ctx context.Context, a, b string) (bool, error) {
	return g.authorized(ctx, a, b)
}

// Check reports the caller's access towards with. Only members who could
// act on the answer may ask, so guests are refused like any user-only call.
func (g *AccessGate) Check(ctx context.Context, c Caller, with string) (Access, error) {
	if err := c.Require(role.Message); err != nil {
		return Access{}, err
	}
	with = strings.TrimSpace(with)
	if with == "" {
		return Access{}, invalid("member id is required")
	}

	canMessage, err := g.CanMessage(ctx, c.ID, with)
	if err != nil {
		return Access{}, err
	}
	canRate, err := g.CanRate(ctx, c.ID, with)
	if err != nil {
		return Access{}, err
	}
	return Access{With: with, CanMessage: canMessage, CanRate: canRate}, nil
}

func (g *AccessGate) authorized(ctx context.Context, a, b string) (bool, error) {
	if a == "" || b == "" || a == b {
		return false, nil
	}
	ok, err := g.store.Exchanges().Authorized(ctx, a, b)
	if err != nil {
		return false, internal(err)
	}
	return ok, nil
}
