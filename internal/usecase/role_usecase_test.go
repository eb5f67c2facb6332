package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skill-swap/internal/domain/role"
)

func TestRoles_Resolve(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	c, err := f.roles.Resolve(ctx, "")
	require.NoError(t, err)
	assert.False(t, c.Authenticated())
	assert.Equal(t, role.Guest, f.roles.CallerRole(c))

	c, err = f.roles.Resolve(ctx, "root")
	require.NoError(t, err)
	assert.True(t, f.roles.IsCallerAdmin(c))

	c, err = f.roles.Resolve(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, role.User, f.roles.CallerRole(c))
	assert.False(t, f.roles.IsCallerAdmin(c))
}

func TestRoles_Assign(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	admin, err := f.roles.Resolve(ctx, "root")
	require.NoError(t, err)

	err = f.roles.Assign(ctx, member("alice"), "bob", role.Admin)
	assert.ErrorIs(t, err, ErrForbidden)

	err = f.roles.Assign(ctx, Anonymous(), "bob", role.Admin)
	assert.ErrorIs(t, err, ErrUnauthorized)

	err = f.roles.Assign(ctx, admin, " ", role.User)
	assert.ErrorIs(t, err, ErrInvalidInput)

	require.NoError(t, f.roles.Assign(ctx, admin, "bob", role.Guest))
	bob, err := f.roles.Resolve(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, role.Guest, bob.Role)

	_, err = f.exchanges.ListIncoming(ctx, bob)
	assert.ErrorIs(t, err, ErrForbidden)

	require.NoError(t, f.roles.Assign(ctx, admin, "bob", role.Admin))
	bob, err = f.roles.Resolve(ctx, "bob")
	require.NoError(t, err)
	assert.True(t, f.roles.IsCallerAdmin(bob))
}
