package bitcoin

import (
	"sync"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/walletview7000-backend/internal/history/chain"
	"github.com/goodnatureofminers/walletview7000-backend/internal/history/model"
)

// AddressBook is a wallet ownership oracle backed by a watched address
// set. Addresses in the label book are the ones handed out for
// receiving; owned addresses outside it are treated as change
// destinations.
type AddressBook struct {
	view chain.View

	mu       sync.RWMutex
	owned    map[string]struct{}
	labels   map[string]string
	requests map[chainhash.Hash]int
}

// NewAddressBook builds an oracle over the owned address set. Every
// key of labels is implicitly owned. view may be nil; it is only
// consulted for reward maturity when valuing credit.
func NewAddressBook(owned []string, labels map[string]string, view chain.View) *AddressBook {
	b := &AddressBook{
		view:     view,
		owned:    make(map[string]struct{}, len(owned)+len(labels)),
		labels:   make(map[string]string, len(labels)),
		requests: make(map[chainhash.Hash]int),
	}
	for _, addr := range owned {
		b.owned[addr] = struct{}{}
	}
	for addr, label := range labels {
		b.owned[addr] = struct{}{}
		b.labels[addr] = label
	}
	return b
}

func (b *AddressBook) ownsAny(addrs []string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, addr := range addrs {
		if _, ok := b.owned[addr]; ok {
			return true
		}
	}
	return false
}

// IsOwnedInput reports whether the input spends a wallet output.
func (b *AddressBook) IsOwnedInput(in model.TxInput) bool {
	return b.ownsAny(in.Addresses)
}

// IsOwnedOutput reports whether the output pays the wallet.
func (b *AddressBook) IsOwnedOutput(out model.TxOutput) bool {
	return b.ownsAny(out.Addresses)
}

// KnownAddress resolves a simple single-destination output to an
// address the wallet holds. Multisig and bare scripts do not resolve.
func (b *AddressBook) KnownAddress(out model.TxOutput) (string, bool) {
	if len(out.Addresses) != 1 {
		return "", false
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	if _, ok := b.owned[out.Addresses[0]]; !ok {
		return "", false
	}
	return out.Addresses[0], true
}

// isChange reports whether an output returns value to an owned address
// that was never handed out for receiving.
func (b *AddressBook) isChange(out model.TxOutput) bool {
	if !b.IsOwnedOutput(out) {
		return false
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, addr := range out.Addresses {
		if _, ok := b.labels[addr]; ok {
			return false
		}
	}
	return true
}

// TotalCredit sums output value paid to the wallet. A reward
// transaction is valued at zero until it matures; when
// includeUnconfirmed is false, unmined transactions are also valued at
// zero.
func (b *AddressBook) TotalCredit(tx *model.WalletTx, includeUnconfirmed bool) int64 {
	if tx.Reward() && b.view != nil && b.view.BlocksToMaturity(tx) > 0 {
		return 0
	}
	if !includeUnconfirmed && (b.view == nil || b.view.DepthInMainChain(tx) < 1) {
		return 0
	}

	var sum int64
	for _, out := range tx.Outputs {
		if b.IsOwnedOutput(out) {
			sum += out.Value
		}
	}
	return sum
}

// TotalDebit sums input value funded by the wallet.
func (b *AddressBook) TotalDebit(tx *model.WalletTx) int64 {
	var sum int64
	for _, in := range tx.Inputs {
		if b.IsOwnedInput(in) {
			sum += in.Value
		}
	}
	return sum
}

// ChangeAmount sums output value returning to the wallet as change.
func (b *AddressBook) ChangeAmount(tx *model.WalletTx) int64 {
	var sum int64
	for _, out := range tx.Outputs {
		if b.isChange(out) {
			sum += out.Value
		}
	}
	return sum
}

// TotalOutputValue sums every output regardless of ownership.
func (b *AddressBook) TotalOutputValue(tx *model.WalletTx) int64 {
	var sum int64
	for _, out := range tx.Outputs {
		sum += out.Value
	}
	return sum
}

// RequestCount reports how often peers have requested the transaction.
func (b *AddressBook) RequestCount(tx *model.WalletTx) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.requests[tx.TxID]
}

// MarkRequested records that the network has seen the transaction.
func (b *AddressBook) MarkRequested(txid chainhash.Hash) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.requests[txid]++
}
