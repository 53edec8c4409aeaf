// Package snapshot decodes UTXO set dump files produced by a chain node into
// a lazy stream of unspent outputs. Both the legacy flat layout and the
// modern magic-prefixed layout that groups outputs by txid are supported.
package snapshot

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/utxoset7000-backend/internal/utxo/codec"
	"github.com/goodnatureofminers/utxoset7000-backend/internal/utxo/model"
	"github.com/goodnatureofminers/utxoset7000-backend/pkg/safe"
	"go.uber.org/zap"
)

type stateKind int

const (
	// stateLegacy decodes flat records, each carrying its own out-point.
	stateLegacy stateKind = iota
	// stateNeedTxid expects a fresh txid group header next.
	stateNeedTxid
	// stateHaveTxid is mid-group: txid is held, remaining outputs follow.
	stateHaveTxid
)

// decodeState tracks grouping progress across records. txid and remaining are
// only meaningful in stateHaveTxid, where remaining is always >= 1.
type decodeState struct {
	kind      stateKind
	txid      chainhash.Hash
	remaining uint64
}

// Dump is a pull-based decoder over one snapshot file. It is not safe for
// concurrent use; decoding happens only inside Next.
type Dump struct {
	snap   model.Snapshot
	r      io.ReadSeeker
	closer io.Closer
	params *chaincfg.Params
	logger *zap.Logger
	state  decodeState
	out    model.UnspentOutput
	err    error
	done   bool
}

// Open opens a snapshot file by path.
func Open(path string, addrs AddressConfig, logger *zap.Logger) (*Dump, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	d, err := FromReader(f, addrs, logger)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	d.closer = f
	return d, nil
}

// FromReader decodes a snapshot from an existing readable, seekable stream.
// The single seek happens during header parsing when a legacy layout is
// detected; afterwards the stream is only read forward.
func FromReader(r io.ReadSeeker, addrs AddressConfig, logger *zap.Logger) (*Dump, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	snap, params, err := parseHeader(r, addrs)
	if err != nil {
		return nil, err
	}

	state := decodeState{kind: stateNeedTxid}
	if snap.Layout == model.LayoutLegacy {
		state.kind = stateLegacy
	}

	return &Dump{
		snap:   snap,
		r:      r,
		params: params,
		logger: logger,
		state:  state,
	}, nil
}

// Snapshot returns the metadata decoded from the file header.
func (d *Dump) Snapshot() model.Snapshot {
	return d.snap
}

// Next advances to the next unspent output, returning false when the stream
// is exhausted or a record fails to decode. Err distinguishes the two after
// Next returns false.
func (d *Dump) Next() bool {
	if d.done {
		return false
	}

	start := d.tell()
	out, err := d.decodeRecord()
	if err != nil {
		d.done = true
		if err == io.EOF {
			// Clean end of stream at a record boundary.
			return false
		}
		d.logger.Error("record decode failed",
			zap.Int64("start", start),
			zap.Int64("pos", d.tell()),
			zap.Error(err))
		d.err = fmt.Errorf("record at offset %d: %w", start, err)
		return false
	}

	d.out = out
	return true
}

// Output returns the record decoded by the last successful Next.
func (d *Dump) Output() model.UnspentOutput {
	return d.out
}

// Err returns the decode error that terminated iteration, or nil if the
// stream ended at a record boundary.
func (d *Dump) Err() error {
	return d.err
}

// Close releases the underlying file for path-opened dumps.
func (d *Dump) Close() error {
	if d.closer == nil {
		return nil
	}
	return d.closer.Close()
}

// decodeRecord decodes one record and applies the state transition for the
// active layout. Only the leading txid read may return a bare io.EOF, which
// marks natural exhaustion; every other failure is wrapped.
func (d *Dump) decodeRecord() (model.UnspentOutput, error) {
	var out model.UnspentOutput

	switch d.state.kind {
	case stateLegacy:
		var txid chainhash.Hash
		if _, err := io.ReadFull(d.r, txid[:]); err != nil {
			if err == io.EOF {
				return out, io.EOF
			}
			return out, fmt.Errorf("read txid: %w", err)
		}
		var vout uint32
		if err := binary.Read(d.r, binary.LittleEndian, &vout); err != nil {
			return out, fmt.Errorf("read vout: %w", err)
		}
		out.OutPoint = wire.OutPoint{Hash: txid, Index: vout}

	case stateNeedTxid:
		var txid chainhash.Hash
		if _, err := io.ReadFull(d.r, txid[:]); err != nil {
			if err == io.EOF {
				return out, io.EOF
			}
			return out, fmt.Errorf("read txid: %w", err)
		}
		// The group header stores the output count minus one, since at least
		// one output always follows.
		extra, err := codec.ReadCompactSize(d.r)
		if err != nil {
			return out, fmt.Errorf("read output count: %w", err)
		}
		vout, err := d.readGroupedVout()
		if err != nil {
			return out, err
		}
		out.OutPoint = wire.OutPoint{Hash: txid, Index: vout}
		if extra > 0 {
			d.state = decodeState{kind: stateHaveTxid, txid: txid, remaining: extra}
		}

	case stateHaveTxid:
		vout, err := d.readGroupedVout()
		if err != nil {
			return out, err
		}
		out.OutPoint = wire.OutPoint{Hash: d.state.txid, Index: vout}
		d.state.remaining--
		if d.state.remaining == 0 {
			d.state = decodeState{kind: stateNeedTxid}
		}
	}

	code, err := codec.ReadVarInt(d.r)
	if err != nil {
		return out, fmt.Errorf("read code: %w", err)
	}
	height, err := safe.Uint32(code >> 1)
	if err != nil {
		return out, fmt.Errorf("decode height: %w", err)
	}
	out.Height = height
	out.IsCoinbase = code&1 == 1

	out.Amount, err = codec.ReadAmount(d.r)
	if err != nil {
		return out, fmt.Errorf("read amount: %w", err)
	}

	out.Script, err = codec.ReadCompressedScript(d.r)
	if err != nil {
		return out, fmt.Errorf("read script: %w", err)
	}

	if d.params != nil {
		out.Address = addressForScript(out.Script, d.params)
	}

	return out, nil
}

func (d *Dump) readGroupedVout() (uint32, error) {
	v, err := codec.ReadCompactSize(d.r)
	if err != nil {
		return 0, fmt.Errorf("read grouped vout: %w", err)
	}
	vout, err := safe.Uint32(v)
	if err != nil {
		return 0, fmt.Errorf("decode grouped vout: %w", err)
	}
	return vout, nil
}

func (d *Dump) tell() int64 {
	pos, err := d.r.Seek(0, io.SeekCurrent)
	if err != nil {
		return -1
	}
	return pos
}
