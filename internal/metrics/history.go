// Package metrics exposes application metrics collectors.
package metrics

import (
	"time"

	"github.com/goodnatureofminers/walletview7000-backend/internal/history/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	historyDecomposeTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "walletview7000",
		Subsystem: "history",
		Name:      "decompose_total",
		Help:      "Count of transactions decomposed into display records.",
	}, []string{"network"})

	historyDecomposeRecords = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "walletview7000",
		Subsystem: "history",
		Name:      "decompose_records",
		Help:      "Number of display records produced per transaction.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 8), // 1..128
	}, []string{"network"})

	historyStatusDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "walletview7000",
		Subsystem: "history",
		Name:      "status_duration_seconds",
		Help:      "Duration of a single status computation.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network"})

	historySyncTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "walletview7000",
		Subsystem: "history",
		Name:      "sync_total",
		Help:      "Count of wallet history rebuilds.",
	}, []string{"network", "status"})

	historySyncDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "walletview7000",
		Subsystem: "history",
		Name:      "sync_duration_seconds",
		Help:      "Duration of a wallet history rebuild.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	historySyncTransactions = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "walletview7000",
		Subsystem: "history",
		Name:      "sync_transactions",
		Help:      "Number of wallet transactions loaded per rebuild.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 16), // 1..32768
	}, []string{"network"})

	historyRefreshTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "walletview7000",
		Subsystem: "history",
		Name:      "refresh_total",
		Help:      "Count of stale-status refresh passes.",
	}, []string{"network", "status"})

	historyRefreshDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "walletview7000",
		Subsystem: "history",
		Name:      "refresh_duration_seconds",
		Help:      "Duration of a stale-status refresh pass.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	historyRefreshRecords = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "walletview7000",
		Subsystem: "history",
		Name:      "refresh_records",
		Help:      "Number of statuses recomputed per refresh pass.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 16), // 1..32768
	}, []string{"network"})
)

// History tracks metrics for the wallet history pipeline.
type History struct {
	network model.Network
}

// NewHistory constructs a History metrics collector.
func NewHistory(network model.Network) *History {
	if network == "" {
		network = "unknown"
	}
	return &History{network: network}
}

// ObserveDecompose records one transaction decomposition.
func (m History) ObserveDecompose(records int, _ time.Time) {
	historyDecomposeTotal.WithLabelValues(string(m.network)).Inc()
	historyDecomposeRecords.WithLabelValues(string(m.network)).Observe(float64(records))
}

// ObserveStatus records one status computation.
func (m History) ObserveStatus(started time.Time) {
	historyStatusDuration.WithLabelValues(string(m.network)).Observe(time.Since(started).Seconds())
}

// ObserveSync records a wallet history rebuild outcome.
func (m History) ObserveSync(err error, transactions, records int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	historySyncTotal.WithLabelValues(string(m.network), status).Inc()
	historySyncDuration.WithLabelValues(string(m.network), status).
		Observe(time.Since(started).Seconds())
	if err == nil {
		historySyncTransactions.WithLabelValues(string(m.network)).Observe(float64(transactions))
	}
}

// ObserveRefresh records a stale-status refresh pass.
func (m History) ObserveRefresh(err error, refreshed int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	historyRefreshTotal.WithLabelValues(string(m.network), status).Inc()
	historyRefreshDuration.WithLabelValues(string(m.network), status).
		Observe(time.Since(started).Seconds())
	if err == nil {
		historyRefreshRecords.WithLabelValues(string(m.network)).Observe(float64(refreshed))
	}
}
