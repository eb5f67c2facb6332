package exchange

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestAccept(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	r := Request{From: "a", To: "b", Status: StatusPending}

	accepted, err := r.Accept(now)
	require.NoError(t, err)
	assert.True(t, accepted.IsAccepted())
	require.NotNil(t, accepted.AcceptedAt)
	assert.Equal(t, now, *accepted.AcceptedAt)
	assert.True(t, r.IsPending(), "receiver must not be mutated")

	_, err = accepted.Accept(now)
	assert.True(t, errors.Is(err, ErrInvalidTransition))
}

func TestStatusJSON(t *testing.T) {
	b, err := json.Marshal(Request{Status: StatusAccepted})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"status":"accepted"`)

	var r Request
	require.NoError(t, json.Unmarshal([]byte(`{"status":"pending"}`), &r))
	assert.Equal(t, StatusPending, r.Status)

	assert.Error(t, json.Unmarshal([]byte(`{"status":"rejected"}`), &r))
}

func TestPair(t *testing.T) {
	assert.Equal(t, NewPair("x", "y"), NewPair("y", "x"))
	p := NewPair("y", "x")
	assert.True(t, p.Has("x"))
	assert.False(t, p.Has("z"))
	assert.Equal(t, "y", p.Other("x"))
}

func TestAuthorized(t *testing.T) {
	reqs := []Request{
		{From: "a", To: "b", Status: StatusPending},
		{From: "c", To: "a", Status: StatusAccepted},
	}
	assert.False(t, Authorized(reqs, "a", "b"))
	assert.True(t, Authorized(reqs, "a", "c"))
	assert.True(t, Authorized(reqs, "c", "a"))
	assert.False(t, Authorized(nil, "a", "c"))
}
