// Package metrics exposes application metrics collectors.
package metrics

import (
	"time"

	"github.com/goodnatureofminers/utxoset7000-backend/internal/utxo/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	snapshotProcessFileTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "utxoset7000",
		Subsystem: "snapshot_ingester",
		Name:      "process_file_total",
		Help:      "Count of processed snapshot files.",
	}, []string{"coin", "network", "status"})

	snapshotProcessFileDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "utxoset7000",
		Subsystem: "snapshot_ingester",
		Name:      "process_file_duration_seconds",
		Help:      "Duration of processing one snapshot file.",
		Buckets:   prometheus.ExponentialBuckets(0.1, 2, 14), // 0.1s..~13m
	}, []string{"coin", "network", "status"})

	snapshotOutputsDecoded = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "utxoset7000",
		Subsystem: "snapshot_ingester",
		Name:      "outputs_decoded",
		Help:      "Number of unspent outputs decoded per snapshot file.",
		Buckets:   prometheus.ExponentialBuckets(1000, 4, 12),
	}, []string{"coin", "network"})

	snapshotWriteBatchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "utxoset7000",
		Subsystem: "snapshot_ingester",
		Name:      "write_batch_total",
		Help:      "Count of output batches written to storage.",
	}, []string{"coin", "network", "status"})

	snapshotWriteBatchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "utxoset7000",
		Subsystem: "snapshot_ingester",
		Name:      "write_batch_duration_seconds",
		Help:      "Duration of writing one output batch.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"coin", "network", "status"})

	snapshotWriteBatchSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "utxoset7000",
		Subsystem: "snapshot_ingester",
		Name:      "write_batch_size",
		Help:      "Number of outputs written per batch.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 16), // 1..32768
	}, []string{"coin", "network"})
)

// SnapshotIngester tracks metrics for the snapshot ingestion pipeline.
type SnapshotIngester struct {
	coin    model.Coin
	network model.Network
}

// NewSnapshotIngester constructs a SnapshotIngester with sane defaults.
func NewSnapshotIngester(coin model.Coin, network model.Network) *SnapshotIngester {
	if coin == "" {
		coin = "unknown"
	}
	if network == "" {
		network = "unknown"
	}
	return &SnapshotIngester{coin: coin, network: network}
}

// ObserveProcessFile records the outcome of decoding one snapshot file.
func (m SnapshotIngester) ObserveProcessFile(err error, outputs int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	snapshotProcessFileTotal.WithLabelValues(string(m.coin), string(m.network), status).Inc()
	snapshotProcessFileDuration.WithLabelValues(string(m.coin), string(m.network), status).
		Observe(time.Since(started).Seconds())
	snapshotOutputsDecoded.WithLabelValues(string(m.coin), string(m.network)).Observe(float64(outputs))
}

// ObserveWriteBatch records writing one batch of outputs to storage.
func (m SnapshotIngester) ObserveWriteBatch(err error, outputs int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	snapshotWriteBatchTotal.WithLabelValues(string(m.coin), string(m.network), status).Inc()
	snapshotWriteBatchDuration.WithLabelValues(string(m.coin), string(m.network), status).
		Observe(time.Since(started).Seconds())
	snapshotWriteBatchSize.WithLabelValues(string(m.coin), string(m.network)).Observe(float64(outputs))
}
