package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"skill-swap/internal/config"
)

func TestZapReporter_LogsCountersOnClose(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	scope, closer := NewRootScope(config.MetricsConfig{Prefix: "skillswap", ReportInterval: time.Hour}, zap.New(core))

	scope.Counter("messages.sent").Inc(2)
	require.NoError(t, closer.Close())

	entries := logs.FilterMessage("counter").All()
	require.NotEmpty(t, entries)
	fields := entries[0].ContextMap()
	assert.Equal(t, "skillswap.messages.sent", fields["name"])
	assert.EqualValues(t, 2, fields["value"])
}

func TestZapReporter_SkipsZeroCounters(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	r := NewZapReporter(zap.New(core))

	r.ReportCounter("x", nil, 0)
	assert.Zero(t, logs.Len())
	assert.True(t, r.Capabilities().Reporting())
}
