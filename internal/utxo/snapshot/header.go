package snapshot

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/utxoset7000-backend/internal/utxo/model"
)

// snapshotMagic is the 5-byte token modern dump files start with.
var snapshotMagic = [5]byte{'u', 't', 'x', 'o', 0xff}

// modernVersion is the only modern snapshot version this decoder understands.
const modernVersion uint16 = 2

// parseHeader reads the file preamble, detects the layout and resolves the
// address network. A non-matching magic means the file is a legacy dump whose
// first bytes are the block hash, so the reader is rewound once and left
// positioned at the first record either way.
func parseHeader(r io.ReadSeeker, addrs AddressConfig) (model.Snapshot, *chaincfg.Params, error) {
	var snap model.Snapshot

	var magic [5]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return model.Snapshot{}, nil, fmt.Errorf("read magic: %w", err)
	}

	if magic == snapshotMagic {
		snap.Layout = model.LayoutModern

		var version uint16
		if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
			return model.Snapshot{}, nil, fmt.Errorf("read version: %w", err)
		}
		if version != modernVersion {
			return model.Snapshot{}, nil, fmt.Errorf("version %d: %w", version, ErrUnknownVersion)
		}

		var rawNet uint32
		if err := binary.Read(r, binary.LittleEndian, &rawNet); err != nil {
			return model.Snapshot{}, nil, fmt.Errorf("read network magic: %w", err)
		}
		detected, ok := networkForMagic(wire.BitcoinNet(rawNet))
		if !ok {
			return model.Snapshot{}, nil, fmt.Errorf("network magic %#08x: %w", rawNet, ErrUnknownMagic)
		}

		switch addrs.mode {
		case addressModeAuto:
			snap.Network = detected
		case addressModeExplicit:
			specified, err := canonicalNetwork(addrs.network)
			if err != nil {
				return model.Snapshot{}, nil, err
			}
			if specified != detected {
				return model.Snapshot{}, nil, &NetworkMismatchError{Detected: detected, Specified: specified}
			}
			snap.Network = detected
		}
	} else {
		snap.Layout = model.LayoutLegacy
		if _, err := r.Seek(0, io.SeekStart); err != nil {
			return model.Snapshot{}, nil, fmt.Errorf("rewind legacy header: %w", err)
		}

		switch addrs.mode {
		case addressModeAuto:
			return model.Snapshot{}, nil, ErrNetworkDetect
		case addressModeExplicit:
			network, err := canonicalNetwork(addrs.network)
			if err != nil {
				return model.Snapshot{}, nil, err
			}
			snap.Network = network
		}
	}

	var params *chaincfg.Params
	if snap.Network != "" {
		var err error
		params, err = chainParamsForNetwork(snap.Network)
		if err != nil {
			return model.Snapshot{}, nil, err
		}
	}

	if _, err := io.ReadFull(r, snap.BlockHash[:]); err != nil {
		return model.Snapshot{}, nil, fmt.Errorf("read block hash: %w", err)
	}
	if err := binary.Read(r, binary.LittleEndian, &snap.OutputCount); err != nil {
		return model.Snapshot{}, nil, fmt.Errorf("read output count: %w", err)
	}

	return snap, params, nil
}
