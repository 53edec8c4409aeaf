package ingester

import (
	"github.com/goodnatureofminers/utxoset7000-backend/internal/utxo/snapshot"
	"go.uber.org/zap"
)

// dumpOpener adapts the snapshot decoder to the SnapshotOpener interface.
type dumpOpener struct {
	addrs  snapshot.AddressConfig
	logger *zap.Logger
}

// NewDumpOpener returns a SnapshotOpener that decodes dump files with the
// given address configuration.
func NewDumpOpener(addrs snapshot.AddressConfig, logger *zap.Logger) SnapshotOpener {
	return &dumpOpener{addrs: addrs, logger: logger}
}

func (o *dumpOpener) OpenSnapshot(path string) (SnapshotStream, error) {
	return snapshot.Open(path, o.addrs, o.logger)
}
