package ingester

import (
	"context"
	"time"

	"github.com/goodnatureofminers/utxoset7000-backend/internal/utxo/model"
	"github.com/goodnatureofminers/utxoset7000-backend/pkg/batcher"
	"go.uber.org/zap"
)

type snapshotOutputWriter struct {
	repo          ClickhouseRepository
	metrics       SnapshotIngesterMetrics
	logger        *zap.Logger
	outputBatcher *batcher.Batcher[model.SnapshotRecord]
}

func newSnapshotOutputWriter(repo ClickhouseRepository, metrics SnapshotIngesterMetrics, logger *zap.Logger) *snapshotOutputWriter {
	w := &snapshotOutputWriter{
		repo:    repo,
		metrics: metrics,
		logger:  logger,
	}

	w.outputBatcher = batcher.New[model.SnapshotRecord](
		logger.Named("outputBatcher"),
		w.flush,
		outputBatcherCapacity,
		outputBatcherFlushInterval,
		outputBatcherFlushRPS,
	)
	return w
}

func (w *snapshotOutputWriter) Start(ctx context.Context) {
	w.outputBatcher.Start(ctx)
}

func (w *snapshotOutputWriter) Stop() {
	w.outputBatcher.Stop()
}

func (w *snapshotOutputWriter) WriteOutput(ctx context.Context, rec model.SnapshotRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return w.outputBatcher.Add(ctx, rec)
}

func (w *snapshotOutputWriter) flush(ctx context.Context, outputs []model.SnapshotRecord) error {
	started := time.Now()
	err := w.repo.InsertSnapshotOutputs(ctx, outputs)
	w.metrics.ObserveWriteBatch(err, len(outputs), started)
	if err != nil {
		return err
	}

	w.logger.Debug("InsertSnapshotOutputs", zap.Int("count", len(outputs)))
	return nil
}
