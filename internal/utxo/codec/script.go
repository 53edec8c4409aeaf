package codec

import (
	"fmt"
	"io"
	"math"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/txscript"
)

const (
	// Selectors below this value name a script template; anything above is
	// selector-6 literal bytes.
	numSpecialScripts = 6
	// Scripts longer than this are treated as unspendable by the producer.
	maxScriptSize = 10_000
)

// ReadCompressedScript expands one compressed script pubkey:
//
//	0      pay-to-pubkey-hash, 20-byte hash
//	1      pay-to-script-hash, 20-byte hash
//	2, 3   pay-to-pubkey, compressed key, selector is the parity byte
//	4, 5   pay-to-pubkey, uncompressed key stored as x plus parity
//	>= 6   raw script of selector-6 bytes
//
// Oversized raw scripts are still drained from the stream so the next record
// stays aligned, but the result is the canonical unspendable OP_RETURN marker
// the producer itself writes.
func ReadCompressedScript(r io.Reader) ([]byte, error) {
	selector, err := ReadVarInt(r)
	if err != nil {
		return nil, err
	}

	switch selector {
	case 0x00:
		var hash [20]byte
		if _, err := io.ReadFull(r, hash[:]); err != nil {
			return nil, fmt.Errorf("read pubkey hash: %w", err)
		}
		script := make([]byte, 0, 25)
		script = append(script, txscript.OP_DUP, txscript.OP_HASH160, txscript.OP_DATA_20)
		script = append(script, hash[:]...)
		script = append(script, txscript.OP_EQUALVERIFY, txscript.OP_CHECKSIG)
		return script, nil

	case 0x01:
		var hash [20]byte
		if _, err := io.ReadFull(r, hash[:]); err != nil {
			return nil, fmt.Errorf("read script hash: %w", err)
		}
		script := make([]byte, 0, 23)
		script = append(script, txscript.OP_HASH160, txscript.OP_DATA_20)
		script = append(script, hash[:]...)
		script = append(script, txscript.OP_EQUAL)
		return script, nil

	case 0x02, 0x03:
		var x [32]byte
		if _, err := io.ReadFull(r, x[:]); err != nil {
			return nil, fmt.Errorf("read public key: %w", err)
		}
		script := make([]byte, 0, 35)
		script = append(script, txscript.OP_DATA_33, byte(selector))
		script = append(script, x[:]...)
		script = append(script, txscript.OP_CHECKSIG)
		return script, nil

	case 0x04, 0x05:
		var x [32]byte
		if _, err := io.ReadFull(r, x[:]); err != nil {
			return nil, fmt.Errorf("read public key: %w", err)
		}
		compressed := make([]byte, 0, 33)
		compressed = append(compressed, byte(selector-2))
		compressed = append(compressed, x[:]...)
		pubKey, err := btcec.ParsePubKey(compressed)
		if err != nil {
			return nil, fmt.Errorf("parse public key: %w", err)
		}
		script := make([]byte, 0, 67)
		script = append(script, txscript.OP_DATA_65)
		script = append(script, pubKey.SerializeUncompressed()...)
		script = append(script, txscript.OP_CHECKSIG)
		return script, nil

	default:
		size := selector - numSpecialScripts
		if size > maxScriptSize {
			if size > math.MaxInt64 {
				return nil, fmt.Errorf("raw script size %d out of range", size)
			}
			if _, err := io.CopyN(io.Discard, r, int64(size)); err != nil {
				return nil, fmt.Errorf("drain oversized script: %w", err)
			}
			return []byte{txscript.OP_RETURN}, nil
		}
		script := make([]byte, size)
		if _, err := io.ReadFull(r, script); err != nil {
			return nil, fmt.Errorf("read raw script: %w", err)
		}
		return script, nil
	}
}
