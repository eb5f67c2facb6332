package clock

import (
	"testing"
	"time"
)

func TestMonotonic_StrictlyIncreasing(t *testing.T) {
	fixed := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	c := NewMonotonic(func() time.Time { return fixed })

	a := c.Now()
	b := c.Now()
	d := c.Now()
	if !a.Equal(fixed) {
		t.Fatalf("first instant should be the wall clock, got %v", a)
	}
	if !b.After(a) || !d.After(b) {
		t.Fatalf("expected strictly increasing instants: %v %v %v", a, b, d)
	}
}
