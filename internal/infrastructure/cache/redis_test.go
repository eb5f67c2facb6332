package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skill-swap/internal/config"
)

func TestRedis_DisabledBypasses(t *testing.T) {
	ctx := context.Background()
	r := NewRedis(ctx, config.RedisConfig{Enabled: false}, nil)

	assert.ErrorIs(t, r.Ping(ctx), ErrUnavailable)
	require.NoError(t, r.SetJSON(ctx, "k", map[string]int{"a": 1}, time.Minute))

	var out map[string]int
	hit, err := r.GetJSON(ctx, "k", &out)
	require.NoError(t, err)
	assert.False(t, hit)

	assert.NoError(t, r.Delete(ctx, "k"))
	assert.NoError(t, r.DeleteByPattern(ctx, "profiles:*"))
	assert.NoError(t, r.Close())
}

func TestRedis_NilReceiverBypasses(t *testing.T) {
	var r *Redis
	ctx := context.Background()

	hit, err := r.GetJSON(ctx, "k", new(string))
	require.NoError(t, err)
	assert.False(t, hit)
	assert.NoError(t, r.SetJSON(ctx, "k", "v", 0))
	assert.NoError(t, r.Delete(ctx, "k"))
}
