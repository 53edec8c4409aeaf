// Package ingester loads decoded UTXO snapshot files into ClickHouse.
package ingester

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/utxoset7000-backend/internal/utxo/model"
	"github.com/goodnatureofminers/utxoset7000-backend/pkg/workerpool"
	"go.uber.org/zap"
)

type SnapshotIngesterService struct {
	logger       *zap.Logger
	coin         model.Coin
	metrics      SnapshotIngesterMetrics
	opener       SnapshotOpener
	outputWriter OutputWriter
	workerCount  int
}

func NewSnapshotIngesterService(
	repo ClickhouseRepository,
	opener SnapshotOpener,
	metrics SnapshotIngesterMetrics,
	coin model.Coin,
	logger *zap.Logger,
) (*SnapshotIngesterService, error) {
	logger = logger.With(zap.String("coin", string(coin)))

	if metrics == nil {
		return nil, errors.New("snapshot ingester metrics is required")
	}
	if opener == nil {
		return nil, errors.New("snapshot opener is required")
	}

	return &SnapshotIngesterService{
		logger:       logger,
		coin:         coin,
		metrics:      metrics,
		opener:       opener,
		outputWriter: newSnapshotOutputWriter(repo, metrics, logger.Named("outputWriter")),
		workerCount:  defaultWorkerCount,
	}, nil
}

// Run ingests every snapshot file, fanning the paths out over the worker
// pool. The first failing file cancels the remaining work.
func (s *SnapshotIngesterService) Run(ctx context.Context, paths []string) error {
	wCtx, wCancel := context.WithCancel(ctx)

	s.outputWriter.Start(wCtx)
	defer func() {
		s.outputWriter.Stop()
		wCancel()
	}()

	return workerpool.Process(ctx, s.workerCount, paths, s.ingestFile, nil)
}

func (s *SnapshotIngesterService) ingestFile(ctx context.Context, path string) error {
	started := time.Now()
	outputs, err := s.processFile(ctx, path)
	s.metrics.ObserveProcessFile(err, outputs, started)
	if err != nil {
		s.logger.Error("snapshot file failed", zap.String("path", path), zap.Error(err))
		return err
	}

	s.logger.Info("snapshot file ingested", zap.String("path", path), zap.Int("output_count", outputs))
	return nil
}

func (s *SnapshotIngesterService) processFile(ctx context.Context, path string) (int, error) {
	stream, err := s.opener.OpenSnapshot(path)
	if err != nil {
		return 0, fmt.Errorf("open snapshot: %w", err)
	}
	defer func() {
		if cerr := stream.Close(); cerr != nil {
			s.logger.Warn("close snapshot failed", zap.String("path", path), zap.Error(cerr))
		}
	}()

	snap := stream.Snapshot()
	s.logger.Info("snapshot opened",
		zap.String("path", path),
		zap.String("layout", string(snap.Layout)),
		zap.String("network", string(snap.Network)),
		zap.String("block_hash", snap.BlockHash.String()),
		zap.Uint64("declared_outputs", snap.OutputCount))

	blockHash := snap.BlockHash.String()

	var n int
	for stream.Next() {
		out := stream.Output()
		rec := model.SnapshotRecord{
			Coin:       s.coin,
			Network:    snap.Network,
			BlockHash:  blockHash,
			TxID:       out.OutPoint.Hash.String(),
			Vout:       out.OutPoint.Index,
			Height:     out.Height,
			IsCoinbase: out.IsCoinbase,
			Value:      out.Amount,
			ScriptHex:  hex.EncodeToString(out.Script),
			Address:    out.Address,
		}
		if err := s.outputWriter.WriteOutput(ctx, rec); err != nil {
			return n, fmt.Errorf("write output: %w", err)
		}
		n++
	}
	if err := stream.Err(); err != nil {
		return n, fmt.Errorf("decode snapshot: %w", err)
	}

	// The declared count is advisory; a divergence is worth a log line but
	// never fails the file.
	if uint64(n) != snap.OutputCount {
		s.logger.Warn("declared output count differs from decoded records",
			zap.String("path", path),
			zap.Uint64("declared", snap.OutputCount),
			zap.Int("decoded", n))
	}

	return n, nil
}
