// Package safe provides checked conversions to unsigned integer types.
package safe

import (
	"fmt"
	"math"
)

// Integer covers the integer types the decoders convert between.
type Integer interface {
	~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64
}

// Uint64 converts v to uint64, rejecting negative values.
func Uint64[T Integer](v T) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("value %d out of uint64 range", v)
	}
	return uint64(v), nil
}

// Uint32 converts v to uint32, rejecting negative values and overflow.
func Uint32[T Integer](v T) (uint32, error) {
	u, err := Uint64(v)
	if err != nil {
		return 0, err
	}
	if u > math.MaxUint32 {
		return 0, fmt.Errorf("value %d out of uint32 range", v)
	}
	return uint32(u), nil
}
