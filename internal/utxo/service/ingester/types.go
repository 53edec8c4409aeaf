package ingester

import (
	"context"
	"time"

	"github.com/goodnatureofminers/utxoset7000-backend/internal/utxo/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// SnapshotStream is a pull-based iterator over one snapshot file.
	SnapshotStream interface {
		Snapshot() model.Snapshot
		Next() bool
		Output() model.UnspentOutput
		Err() error
		Close() error
	}
	SnapshotOpener interface {
		OpenSnapshot(path string) (SnapshotStream, error)
	}
	OutputWriter interface {
		Start(ctx context.Context)
		Stop()
		WriteOutput(ctx context.Context, rec model.SnapshotRecord) error
	}
	ClickhouseRepository interface {
		InsertSnapshotOutputs(ctx context.Context, outputs []model.SnapshotRecord) error
	}
	SnapshotIngesterMetrics interface {
		ObserveProcessFile(err error, outputs int, started time.Time)
		ObserveWriteBatch(err error, outputs int, started time.Time)
	}
)
