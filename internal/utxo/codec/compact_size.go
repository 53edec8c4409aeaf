package codec

import (
	"encoding/binary"
	"io"
	"math"
)

// ReadCompactSize decodes the standard prefixed little-endian integer:
//
//	value <  253        -- 1 byte
//	value <= u16 max    -- 0xFD + 2 bytes
//	value <= u32 max    -- 0xFE + 4 bytes
//	value >  u32 max    -- 0xFF + 8 bytes
//
// Non-minimal encodings are accepted: the snapshot producer mirrors the p2p
// protocol's laxity here, unlike ReadVarInt which rejects them.
func ReadCompactSize(r io.Reader) (uint64, error) {
	var prefix [1]byte
	if _, err := io.ReadFull(r, prefix[:]); err != nil {
		return 0, err
	}
	switch prefix[0] {
	case 0xfd:
		var v uint16
		if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
			return 0, err
		}
		return uint64(v), nil
	case 0xfe:
		var v uint32
		if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
			return 0, err
		}
		return uint64(v), nil
	case 0xff:
		var v uint64
		if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
			return 0, err
		}
		return v, nil
	default:
		return uint64(prefix[0]), nil
	}
}

// WriteCompactSize encodes n with the shortest prefix that fits.
func WriteCompactSize(w io.Writer, n uint64) error {
	switch {
	case n < 0xfd:
		_, err := w.Write([]byte{byte(n)})
		return err
	case n <= math.MaxUint16:
		if _, err := w.Write([]byte{0xfd}); err != nil {
			return err
		}
		return binary.Write(w, binary.LittleEndian, uint16(n))
	case n <= math.MaxUint32:
		if _, err := w.Write([]byte{0xfe}); err != nil {
			return err
		}
		return binary.Write(w, binary.LittleEndian, uint32(n))
	default:
		if _, err := w.Write([]byte{0xff}); err != nil {
			return err
		}
		return binary.Write(w, binary.LittleEndian, n)
	}
}
