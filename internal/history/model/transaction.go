// Package model defines domain models for wallet transaction history.
package model

import (
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// Network names the chain a wallet transaction belongs to.
type Network string

var (
	Testnet Network = "testnet"
	Mainnet Network = "mainnet"
	Regtest Network = "regtest"
	Signet  Network = "signet"
)

// WalletTx is an immutable snapshot of one wallet-visible transaction.
// Amounts are satoshis; inputs and outputs keep their on-chain order.
type WalletTx struct {
	Network      Network
	TxID         chainhash.Hash
	Time         time.Time
	TimeReceived time.Time
	LockTime     uint32
	BlockHash    chainhash.Hash // zero while unmined
	Coinbase     bool
	Coinstake    bool
	Inputs       []TxInput
	Outputs      []TxOutput
	FromLabel    string
	ToLabel      string
}

// TxInput references a previous transaction output being spent.
type TxInput struct {
	PrevTxID  chainhash.Hash
	PrevVout  uint32
	Sequence  uint32
	Value     int64
	Addresses []string
}

// TxOutput is a single output of a wallet transaction.
type TxOutput struct {
	Index     uint32
	Value     int64
	Addresses []string
}

// Mined reports whether the transaction is attached to a block.
func (tx *WalletTx) Mined() bool {
	return tx.BlockHash != chainhash.Hash{}
}

// Reward reports whether the transaction pays newly issued coin.
func (tx *WalletTx) Reward() bool {
	return tx.Coinbase || tx.Coinstake
}

// TimeLocked reports whether the lock-time field is active, meaning it
// is non-zero and at least one input has not opted out via a maximal
// sequence number.
func (tx *WalletTx) TimeLocked() bool {
	if tx.LockTime == 0 {
		return false
	}
	for _, in := range tx.Inputs {
		if in.Sequence != wire.MaxTxInSequenceNum {
			return true
		}
	}
	return false
}
