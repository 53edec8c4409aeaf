package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/utxoset7000-backend/internal/utxo/model"
)

// InsertSnapshotOutputs stores decoded snapshot outputs in ClickHouse.
func (r *Repository) InsertSnapshotOutputs(ctx context.Context, outputs []model.SnapshotRecord) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_snapshot_outputs", firstCoin(outputs), firstNetwork(outputs), err, start)
	}()

	if len(outputs) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertSnapshotOutputsQuery())
	if err != nil {
		return fmt.Errorf("prepare snapshot outputs batch: %w", err)
	}

	for _, output := range outputs {
		if err = batch.Append(
			string(output.Coin),
			string(output.Network),
			output.BlockHash,
			output.TxID,
			output.Vout,
			output.Height,
			output.IsCoinbase,
			output.Value,
			output.ScriptHex,
			output.Address,
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append snapshot output: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert snapshot outputs: %w", err)
	}
	return nil
}

func insertSnapshotOutputsQuery() string {
	return `
INSERT INTO utxo_snapshot_outputs (
    coin,
    network,
    snapshot_block_hash,
    txid,
    vout,
    height,
    is_coinbase,
    value,
    script_hex,
    address
) VALUES`
}

func firstCoin(outputs []model.SnapshotRecord) model.Coin {
	if len(outputs) == 0 {
		return ""
	}
	return outputs[0].Coin
}

func firstNetwork(outputs []model.SnapshotRecord) model.Network {
	if len(outputs) == 0 {
		return ""
	}
	return outputs[0].Network
}
