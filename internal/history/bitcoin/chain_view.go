package bitcoin

import (
	"fmt"
	"sync"
	"time"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/walletview7000-backend/internal/clock"
	"github.com/goodnatureofminers/walletview7000-backend/internal/history/model"
	"github.com/goodnatureofminers/walletview7000-backend/pkg/safe"
)

// headerEntry caches a confirming block's position.
type headerEntry struct {
	height    int32
	mainChain bool
}

// ChainView implements the chain queries over node RPC. Refresh pins
// the snapshot to the node's current tip; between refreshes every
// query answers from the pinned state so status computation stays a
// pure function of it.
type ChainView struct {
	client   RPCClient
	clk      clock.Clock
	maturity int32

	mu      sync.Mutex
	best    int32
	headers map[chainhash.Hash]headerEntry
	stale   bool
}

// NewChainView builds a view for the given chain params.
func NewChainView(client RPCClient, params *chaincfg.Params, clk clock.Clock) *ChainView {
	if clk == nil {
		clk = clock.System{}
	}
	return &ChainView{
		client:   client,
		clk:      clk,
		maturity: int32(params.CoinbaseMaturity),
		headers:  make(map[chainhash.Hash]headerEntry),
	}
}

// Refresh re-pins the snapshot to the node's tip. The header cache is
// dropped so reorganized blocks are re-resolved.
func (v *ChainView) Refresh() error {
	count, err := v.client.GetBlockCount()
	if err != nil {
		v.mu.Lock()
		v.stale = true
		v.mu.Unlock()
		return fmt.Errorf("query block count: %w", err)
	}
	best, err := safe.Int32(count)
	if err != nil {
		return fmt.Errorf("block count overflow: %w", err)
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if best != v.best {
		v.headers = make(map[chainhash.Hash]headerEntry)
	}
	v.best = best
	v.stale = false
	return nil
}

func (v *ChainView) lookupHeader(blockHash chainhash.Hash) (headerEntry, bool) {
	v.mu.Lock()
	entry, ok := v.headers[blockHash]
	v.mu.Unlock()
	if ok {
		return entry, true
	}

	header, err := v.client.GetBlockHeaderVerbose(&blockHash)
	if err != nil {
		return headerEntry{}, false
	}
	// A negative confirmation count marks a block off the best chain.
	entry = headerEntry{height: header.Height, mainChain: header.Confirmations >= 0}

	v.mu.Lock()
	v.headers[blockHash] = entry
	v.mu.Unlock()
	return entry, true
}

// ConfirmingHeight resolves the height of the block that includes a
// transaction.
func (v *ChainView) ConfirmingHeight(blockHash chainhash.Hash) (int32, bool) {
	entry, ok := v.lookupHeader(blockHash)
	if !ok {
		return 0, false
	}
	return entry.height, true
}

// BestHeight is the tip height of the pinned snapshot.
func (v *ChainView) BestHeight() int32 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.best
}

// IsInMainChain reports whether the transaction's block is on the best
// chain.
func (v *ChainView) IsInMainChain(tx *model.WalletTx) bool {
	if !tx.Mined() {
		return false
	}
	entry, ok := v.lookupHeader(tx.BlockHash)
	return ok && entry.mainChain
}

// DepthInMainChain counts confirming blocks, zero while unmined or off
// the best chain.
func (v *ChainView) DepthInMainChain(tx *model.WalletTx) int32 {
	if !tx.Mined() {
		return 0
	}
	entry, ok := v.lookupHeader(tx.BlockHash)
	if !ok || !entry.mainChain {
		return 0
	}
	depth := v.BestHeight() - entry.height + 1
	if depth < 0 {
		return 0
	}
	return depth
}

// BlocksToMaturity is the remaining block count before a reward
// becomes spendable.
func (v *ChainView) BlocksToMaturity(tx *model.WalletTx) int32 {
	if !tx.Reward() {
		return 0
	}
	remaining := v.maturity + 1 - v.DepthInMainChain(tx)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// AdjustedTime is the current network time.
func (v *ChainView) AdjustedTime() time.Time {
	return v.clk.Now()
}

// Indeterminate reports that the last refresh failed and the snapshot
// may be stale.
func (v *ChainView) Indeterminate() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.stale
}
