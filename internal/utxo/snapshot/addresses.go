package snapshot

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/utxoset7000-backend/internal/utxo/model"
)

// addressMode selects whether and how addresses are computed for decoded
// scripts.
type addressMode int

const (
	addressModeNone addressMode = iota
	addressModeAuto
	addressModeExplicit
)

// AddressConfig controls address computation for a Dump. Use NoAddresses,
// AutoDetectAddresses or AddressesFor to construct one.
type AddressConfig struct {
	mode    addressMode
	network model.Network
}

// NoAddresses disables address computation.
func NoAddresses() AddressConfig {
	return AddressConfig{mode: addressModeNone}
}

// AutoDetectAddresses derives the network from the snapshot itself. Only
// modern snapshots embed a network; legacy files fail with ErrNetworkDetect.
func AutoDetectAddresses() AddressConfig {
	return AddressConfig{mode: addressModeAuto}
}

// AddressesFor computes addresses for an explicitly named network. A modern
// snapshot must agree with it or opening fails with NetworkMismatchError.
func AddressesFor(network model.Network) AddressConfig {
	return AddressConfig{mode: addressModeExplicit, network: network}
}

// canonicalNetwork resolves a user-supplied network name, aliases included,
// to its canonical form.
func canonicalNetwork(network model.Network) (model.Network, error) {
	switch strings.ToLower(string(network)) {
	case "main", "mainnet", "bitcoin":
		return model.Mainnet, nil
	case "testnet", "testnet3":
		return model.Testnet, nil
	case "regtest":
		return model.Regtest, nil
	case "signet":
		return model.Signet, nil
	default:
		return "", fmt.Errorf("unsupported network %q", network)
	}
}

func chainParamsForNetwork(network model.Network) (*chaincfg.Params, error) {
	canonical, err := canonicalNetwork(network)
	if err != nil {
		return nil, err
	}
	switch canonical {
	case model.Mainnet:
		return &chaincfg.MainNetParams, nil
	case model.Testnet:
		return &chaincfg.TestNet3Params, nil
	case model.Regtest:
		return &chaincfg.RegressionNetParams, nil
	case model.Signet:
		return &chaincfg.SigNetParams, nil
	default:
		return nil, fmt.Errorf("unsupported network %q", network)
	}
}

func networkForMagic(magic wire.BitcoinNet) (model.Network, bool) {
	switch magic {
	case chaincfg.MainNetParams.Net:
		return model.Mainnet, true
	case chaincfg.TestNet3Params.Net:
		return model.Testnet, true
	case chaincfg.SigNetParams.Net:
		return model.Signet, true
	case chaincfg.RegressionNetParams.Net:
		return model.Regtest, true
	default:
		return "", false
	}
}

// addressForScript derives the canonical address string for a script pubkey,
// or "" when the script has no address form. Failure here is never fatal, a
// record is still yielded without an address.
func addressForScript(script []byte, params *chaincfg.Params) string {
	_, addrs, _, err := txscript.ExtractPkScriptAddrs(script, params)
	if err != nil || len(addrs) == 0 {
		return ""
	}
	return addrs[0].EncodeAddress()
}
