// Package chain defines the read-only chain queries shared between the
// decomposer and the status engine.
package chain

import (
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/walletview7000-backend/internal/history/model"
)

// View is a read-only snapshot of chain state. Implementations must be
// safe for concurrent readers; status computation treats the snapshot
// as fixed for the duration of one call.
type View interface {
	// ConfirmingHeight resolves the height of the block that includes
	// the transaction; ok is false while the block is unknown.
	ConfirmingHeight(blockHash chainhash.Hash) (height int32, ok bool)
	// BestHeight is the current tip height.
	BestHeight() int32
	// IsInMainChain reports whether the transaction's block is part of
	// the best chain.
	IsInMainChain(tx *model.WalletTx) bool
	// DepthInMainChain counts confirming blocks, zero while unmined.
	DepthInMainChain(tx *model.WalletTx) int32
	// BlocksToMaturity is the remaining block count before a reward
	// transaction's value becomes spendable, zero for regular ones.
	BlocksToMaturity(tx *model.WalletTx) int32
	// AdjustedTime is the network-adjusted current time.
	AdjustedTime() time.Time
	// Indeterminate reports that the snapshot could not be refreshed
	// from its backing source and may be stale or empty.
	Indeterminate() bool
}
