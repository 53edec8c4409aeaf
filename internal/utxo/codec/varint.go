// Package codec implements the wire encodings used inside UTXO set snapshot
// files: the chainstate VarInt, the p2p CompactSize, the decimal-factoring
// amount compression and the compressed script representation.
package codec

import (
	"errors"
	"io"
	"math"
)

// ErrNonMinimalVarInt is returned when a VarInt would overflow 64 bits, which
// can only happen for encodings longer than the minimal one.
var ErrNonMinimalVarInt = errors.New("non-minimal varint")

// ReadVarInt decodes an MSB-first base-128 integer. The high bit of each byte
// marks a following digit, and every digit except the last is stored minus
// one, so each integer has exactly one encoding:
//
//	0: [0x00]   127: [0x7F]   128: [0x80 0x00]   16383: [0xFE 0x7F]
func ReadVarInt(r io.Reader) (uint64, error) {
	var n uint64
	var buf [1]byte
	for {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return 0, err
		}
		b := uint64(buf[0])
		if n > math.MaxUint64>>7 {
			return 0, ErrNonMinimalVarInt
		}
		n = n<<7 | b&0x7f
		if b&0x80 == 0 {
			return n, nil
		}
		if n == math.MaxUint64 {
			return 0, ErrNonMinimalVarInt
		}
		n++
	}
}

// WriteVarInt encodes n in the fewest digits, most significant first.
func WriteVarInt(w io.Writer, n uint64) error {
	// 64 bits at 7 bits per digit never needs more than 10 bytes.
	buf := make([]byte, 0, 10)
	first := true
	for {
		b := byte(n & 0x7f)
		if !first {
			b |= 0x80
		}
		buf = append(buf, b)
		if n <= 0x7f {
			break
		}
		n = n>>7 - 1
		first = false
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	_, err := w.Write(buf)
	return err
}
