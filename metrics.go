package vecmath

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics
// of batch operations.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    batchHistogram *prometheus.HistogramVec
//	}
//
//	func (p *PrometheusCollector) RecordBatch(op string, count int, d time.Duration, err error) {
//	    p.batchHistogram.WithLabelValues(op).Observe(d.Seconds())
//	}
type MetricsCollector interface {
	// RecordBatch is called after each batch operation.
	// count is the number of vectors processed, err is nil if successful.
	RecordBatch(op string, count int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordBatch(string, int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
type BasicMetricsCollector struct {
	BatchCount      atomic.Int64
	BatchItems      atomic.Int64
	BatchErrors     atomic.Int64
	BatchTotalNanos atomic.Int64
}

// RecordBatch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatch(_ string, count int, duration time.Duration, err error) {
	b.BatchCount.Add(1)
	b.BatchItems.Add(int64(count))
	b.BatchTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.BatchErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		BatchCount:    b.BatchCount.Load(),
		BatchItems:    b.BatchItems.Load(),
		BatchErrors:   b.BatchErrors.Load(),
		BatchAvgNanos: b.getAvgBatchNanos(),
	}
}

func (b *BasicMetricsCollector) getAvgBatchNanos() int64 {
	count := b.BatchCount.Load()
	if count == 0 {
		return 0
	}
	return b.BatchTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	BatchCount    int64
	BatchItems    int64
	BatchErrors   int64
	BatchAvgNanos int64
}
