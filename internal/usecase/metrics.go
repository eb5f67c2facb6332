package usecase

import (
	"github.com/uber-go/tally/v4"
)

const (
	MetricRequestsSent     = "exchange.requests_sent"
	MetricRequestsAccepted = "exchange.requests_accepted"
	MetricMessagesSent     = "messages.sent"
	MetricRatingsLeft      = "ratings.left"
	MetricAccessDenied     = "access.denied"
)

type counters struct {
	scope tally.Scope
}

func newCounters(scope tally.Scope) counters {
	if scope == nil {
		scope = tally.NoopScope
	}
	return counters{scope: scope}
}

func (m counters) inc(name string, n int64) {
	m.scope.Counter(name).Inc(n)
}

func (m counters) denied(op string) {
	m.scope.Tagged(map[string]string{"op": op}).Counter(MetricAccessDenied).Inc(1)
}
