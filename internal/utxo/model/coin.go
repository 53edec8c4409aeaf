// Package model defines domain models for UTXO snapshot decoding and ingestion.
package model

type Coin string
type Network string

var (
	BTC Coin = "BTC"
)

var (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
	Signet  Network = "signet"
	Regtest Network = "regtest"
)
