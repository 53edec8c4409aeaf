package snapshot

import (
	"errors"
	"fmt"

	"github.com/goodnatureofminers/utxoset7000-backend/internal/utxo/model"
)

var (
	// ErrUnknownVersion is returned for a modern snapshot whose version field
	// is not the one supported value.
	ErrUnknownVersion = errors.New("unknown snapshot format version")
	// ErrUnknownMagic is returned when a modern snapshot embeds a network
	// magic that maps to no known network.
	ErrUnknownMagic = errors.New("unknown network magic")
	// ErrNetworkDetect is returned when auto-detection is requested against a
	// legacy snapshot, which carries no network information.
	ErrNetworkDetect = errors.New("cannot detect network from a legacy snapshot")
)

// NetworkMismatchError reports a caller-specified network disagreeing with
// the network magic embedded in a modern snapshot.
type NetworkMismatchError struct {
	Detected  model.Network
	Specified model.Network
}

func (e *NetworkMismatchError) Error() string {
	return fmt.Sprintf("snapshot is for network %s, not the requested %s", e.Detected, e.Specified)
}
