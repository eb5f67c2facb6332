// Package metrics builds the tally root scope and a reporter that writes
// flushed values to the service log.
package metrics

import (
	"io"
	"time"

	"github.com/uber-go/tally/v4"
	"go.uber.org/zap"

	"skill-swap/internal/config"
	"skill-swap/internal/pkg/logger"
)

const defaultReportInterval = time.Minute

func NewRootScope(cfg config.MetricsConfig, log *zap.Logger) (tally.Scope, io.Closer) {
	interval := cfg.ReportInterval
	if interval <= 0 {
		interval = defaultReportInterval
	}
	return tally.NewRootScope(tally.ScopeOptions{
		Prefix:   cfg.Prefix,
		Reporter: NewZapReporter(log),
	}, interval)
}

type capabilities struct{}

func (capabilities) Reporting() bool { return true }
func (capabilities) Tagging() bool   { return true }

// ZapReporter logs every non-zero value at debug level except counters,
// which are logged at info.
type ZapReporter struct {
	logger *zap.Logger
}

var _ tally.StatsReporter = (*ZapReporter)(nil)

func NewZapReporter(log *zap.Logger) *ZapReporter {
	return &ZapReporter{logger: logger.OrNop(log).Named("metrics")}
}

func (r *ZapReporter) Capabilities() tally.Capabilities { return capabilities{} }

func (r *ZapReporter) Flush() {}

func (r *ZapReporter) ReportCounter(name string, tags map[string]string, value int64) {
	if value == 0 {
		return
	}
	r.logger.Info("counter", zap.String("name", name), zap.Any("tags", tags), zap.Int64("value", value))
}

func (r *ZapReporter) ReportGauge(name string, tags map[string]string, value float64) {
	r.logger.Debug("gauge", zap.String("name", name), zap.Any("tags", tags), zap.Float64("value", value))
}

func (r *ZapReporter) ReportTimer(name string, tags map[string]string, interval time.Duration) {
	r.logger.Debug("timer", zap.String("name", name), zap.Any("tags", tags), zap.Duration("value", interval))
}

func (r *ZapReporter) ReportHistogramValueSamples(
	name string,
	tags map[string]string,
	_ tally.Buckets,
	bucketLowerBound, bucketUpperBound float64,
	samples int64,
) {
	r.logger.Debug("histogram",
		zap.String("name", name),
		zap.Any("tags", tags),
		zap.Float64("lower", bucketLowerBound),
		zap.Float64("upper", bucketUpperBound),
		zap.Int64("samples", samples),
	)
}

func (r *ZapReporter) ReportHistogramDurationSamples(
	name string,
	tags map[string]string,
	_ tally.Buckets,
	bucketLowerBound, bucketUpperBound time.Duration,
	samples int64,
) {
	r.logger.Debug("histogram",
		zap.String("name", name),
		zap.Any("tags", tags),
		zap.Duration("lower", bucketLowerBound),
		zap.Duration("upper", bucketUpperBound),
		zap.Int64("samples", samples),
	)
}
