package main

import (
	"encoding/csv"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/goodnatureofminers/utxoset7000-backend/internal/utxo/model"
	"github.com/goodnatureofminers/utxoset7000-backend/internal/utxo/snapshot"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
)

type config struct {
	Addresses bool          `short:"a" long:"addresses" description:"append the decoded address column"`
	Network   model.Network `long:"network" description:"network for address encoding; empty auto-detects from the snapshot"`
	Check     bool          `short:"c" long:"check" description:"decode the whole file without emitting CSV"`
	Args      struct {
		File string `positional-arg-name:"FILE" required:"yes" description:"snapshot file produced by dumptxoutset"`
	} `positional-args:"true"`
}

func main() {
	cfg := config{}

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(cfg, logger); err != nil {
		logger.Fatal("utxo dump failed", zap.Error(err))
	}
}

func run(cfg config, logger *zap.Logger) error {
	addrs := snapshot.NoAddresses()
	if cfg.Addresses {
		addrs = snapshot.AutoDetectAddresses()
		if cfg.Network != "" {
			addrs = snapshot.AddressesFor(cfg.Network)
		}
	}

	d, err := snapshot.Open(cfg.Args.File, addrs, logger)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := d.Close(); cerr != nil {
			logger.Warn("close snapshot failed", zap.Error(cerr))
		}
	}()

	snap := d.Snapshot()
	logger.Info("snapshot opened",
		zap.String("file", cfg.Args.File),
		zap.String("layout", string(snap.Layout)),
		zap.String("network", string(snap.Network)),
		zap.String("block_hash", snap.BlockHash.String()),
		zap.Uint64("declared_outputs", snap.OutputCount))

	var emit func(out model.UnspentOutput) error
	if !cfg.Check {
		w := csv.NewWriter(os.Stdout)
		defer w.Flush()

		if err := w.Write(csvHeader(cfg.Addresses)); err != nil {
			return fmt.Errorf("write csv header: %w", err)
		}

		emit = func(out model.UnspentOutput) error {
			return w.Write(csvRow(out, cfg.Addresses))
		}
	}

	var count uint64
	for d.Next() {
		if emit != nil {
			if err := emit(d.Output()); err != nil {
				return fmt.Errorf("write csv row: %w", err)
			}
		}
		count++
	}
	if err := d.Err(); err != nil {
		return err
	}

	if count != snap.OutputCount {
		logger.Warn("declared output count differs from decoded records",
			zap.Uint64("declared", snap.OutputCount),
			zap.Uint64("decoded", count))
	}
	logger.Info("snapshot decoded", zap.Uint64("output_count", count))

	return nil
}

func csvHeader(withAddress bool) []string {
	header := []string{"out_point", "coinbase", "height", "amount", "script_hex"}
	if withAddress {
		header = append(header, "address")
	}
	return header
}

// csvRow renders one output as out-point (txid:vout), coinbase 0/1, height,
// amount in satoshis and script hex, with the address appended when requested.
func csvRow(out model.UnspentOutput, withAddress bool) []string {
	coinbase := "0"
	if out.IsCoinbase {
		coinbase = "1"
	}
	row := []string{
		out.OutPoint.String(),
		coinbase,
		strconv.FormatUint(uint64(out.Height), 10),
		strconv.FormatUint(out.Amount, 10),
		hex.EncodeToString(out.Script),
	}
	if withAddress {
		row = append(row, out.Address)
	}
	return row
}
