package codec

import "io"

// CompressAmount maps a satoshi count to its compact integer form by factoring
// out up to nine trailing decimal zeros. Round amounts, which dominate real
// UTXO sets, compress into one or two VarInt bytes.
func CompressAmount(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	e := uint64(0)
	for n%10 == 0 && e < 9 {
		n /= 10
		e++
	}
	if e < 9 {
		// d is in 1..9 because all trailing zeros were stripped.
		d := n % 10
		n /= 10
		return 1 + (n*9+d-1)*10 + e
	}
	return 1 + (n-1)*10 + 9
}

// DecompressAmount inverts CompressAmount exactly.
func DecompressAmount(x uint64) uint64 {
	if x == 0 {
		return 0
	}
	x--
	// x = 10*(9*n + d - 1) + e
	e := x % 10
	x /= 10
	var n uint64
	if e < 9 {
		d := x%9 + 1
		x /= 9
		n = x*10 + d
	} else {
		n = x + 1
	}
	for ; e > 0; e-- {
		n *= 10
	}
	return n
}

// ReadAmount reads a VarInt-compressed satoshi amount.
func ReadAmount(r io.Reader) (uint64, error) {
	x, err := ReadVarInt(r)
	if err != nil {
		return 0, err
	}
	return DecompressAmount(x), nil
}

// WriteAmount writes sats in compressed VarInt form.
func WriteAmount(w io.Writer, sats uint64) error {
	return WriteVarInt(w, CompressAmount(sats))
}
