package model

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// Layout identifies which on-disk encoding a snapshot file uses.
type Layout string

var (
	// LayoutLegacy is the flat per-output encoding without a file magic.
	LayoutLegacy Layout = "legacy"
	// LayoutModern is the magic-prefixed encoding that groups outputs by txid.
	LayoutModern Layout = "modern"
)

// Snapshot holds the metadata decoded from a snapshot file header.
type Snapshot struct {
	BlockHash chainhash.Hash
	// OutputCount is the count declared by the producer. It is advisory and
	// never enforced against the number of records actually decoded.
	OutputCount uint64
	Layout      Layout
	// Network is the resolved address network, empty when addresses are not
	// being computed.
	Network Network
}

// UnspentOutput is one decoded UTXO record. Values are owned by the caller
// once returned.
type UnspentOutput struct {
	OutPoint   wire.OutPoint
	Height     uint32
	IsCoinbase bool
	// Amount in satoshis.
	Amount uint64
	// Script is the decompressed script pubkey.
	Script []byte
	// Address is the encoded address form of the script, empty when address
	// computation is off or the script has no address form.
	Address string
}

// SnapshotRecord is the persistence row for one unspent output.
type SnapshotRecord struct {
	Coin       Coin
	Network    Network
	BlockHash  string
	TxID       string
	Vout       uint32
	Height     uint32
	IsCoinbase bool
	Value      uint64
	ScriptHex  string
	Address    string
}
