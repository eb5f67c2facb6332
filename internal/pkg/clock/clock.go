package clock

import (
	"sync"
	"time"
)

// Monotonic hands out strictly increasing UTC instants, even when the wall
// clock stalls or steps backwards.
type Monotonic struct {
	mu   sync.Mutex
	now  func() time.Time
	last time.Time
}

func NewMonotonic(now func() time.Time) *Monotonic {
	if now == nil {
		now = time.Now
	}
	return &Monotonic{now: now}
}

func (m *Monotonic) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()

	t := m.now().UTC()
	if !t.After(m.last) {
		t = m.last.Add(time.Microsecond)
	}
	m.last = t
	return t
}
