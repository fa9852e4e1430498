package goToken

import "sync/atomic"

// MetricID identifies a single issuer counter.
type MetricID uint16

const (
	// MetricIssued counts tokens generated through the Issuer.
	MetricIssued MetricID = iota
	// MetricVerifySuccess counts tokens that passed full verification.
	MetricVerifySuccess
	// MetricVerifyRejected counts tokens rejected as empty, malformed, or
	// carrying the wrong id.
	MetricVerifyRejected
	// MetricVerifyExpired counts tokens rejected for being past due.
	MetricVerifyExpired
	// MetricVerifyConsumed counts replay rejections (token already redeemed).
	MetricVerifyConsumed
	// MetricRedeemed counts successful one-shot redemptions.
	MetricRedeemed

	metricCount
)

// MetricsSnapshot is a point-in-time copy of all issuer counters.
type MetricsSnapshot struct {
	Issued         uint64
	VerifySuccess  uint64
	VerifyRejected uint64
	VerifyExpired  uint64
	VerifyConsumed uint64
	Redeemed       uint64
}

// Counter returns the snapshot value for a single metric, for table-driven
// consumers such as the exporters under metrics/export.
func (s MetricsSnapshot) Counter(id MetricID) uint64 {
	switch id {
	case MetricIssued:
		return s.Issued
	case MetricVerifySuccess:
		return s.VerifySuccess
	case MetricVerifyRejected:
		return s.VerifyRejected
	case MetricVerifyExpired:
		return s.VerifyExpired
	case MetricVerifyConsumed:
		return s.VerifyConsumed
	case MetricRedeemed:
		return s.Redeemed
	default:
		return 0
	}
}

// metricsRecorder holds lock-free counters for the issuer hot paths.
type metricsRecorder struct {
	counters [metricCount]atomic.Uint64
}

func (m *metricsRecorder) inc(id MetricID) {
	if m == nil || id >= metricCount {
		return
	}
	m.counters[id].Add(1)
}

func (m *metricsRecorder) snapshot() MetricsSnapshot {
	if m == nil {
		return MetricsSnapshot{}
	}
	return MetricsSnapshot{
		Issued:         m.counters[MetricIssued].Load(),
		VerifySuccess:  m.counters[MetricVerifySuccess].Load(),
		VerifyRejected: m.counters[MetricVerifyRejected].Load(),
		VerifyExpired:  m.counters[MetricVerifyExpired].Load(),
		VerifyConsumed: m.counters[MetricVerifyConsumed].Load(),
		Redeemed:       m.counters[MetricRedeemed].Load(),
	}
}
