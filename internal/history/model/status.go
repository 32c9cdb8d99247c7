package model

import "fmt"

// UnconfirmedHeight is the sort-key sentinel for transactions that are
// not yet included in the main chain. It orders before every real
// block height, numerically and in the padded string form, so
// unconfirmed rows stay at the top of the table.
const UnconfirmedHeight int32 = -1

// LifecycleState describes where a transaction sits between broadcast
// and full confirmation. States are mutually exclusive and recomputed
// fresh on every status computation.
type LifecycleState string

var (
	// OpenUntilBlock marks a transaction time-locked by block height.
	OpenUntilBlock LifecycleState = "open_until_block"
	// OpenUntilDate marks a transaction time-locked by timestamp.
	OpenUntilDate LifecycleState = "open_until_date"
	// Offline marks a transaction no peer has requested within the
	// grace window after receipt.
	Offline LifecycleState = "offline"
	// Unconfirmed marks a transaction below the confirmation target.
	Unconfirmed LifecycleState = "unconfirmed"
	// HaveConfirmations marks a transaction at or past the target.
	HaveConfirmations LifecycleState = "have_confirmations"
)

// MaturityState applies to reward records only.
type MaturityState string

var (
	MaturityNotApplicable MaturityState = "not_applicable"
	Immature              MaturityState = "immature"
	MaturesWarning        MaturityState = "matures_warning"
	NotAccepted           MaturityState = "not_accepted"
	Mature                MaturityState = "mature"
)

// SortKey orders display rows: unconfirmed first, then by confirming
// height, coinbase flag, receive time and split index. Fields are
// compared numerically; String renders the padded form expected by
// widgets that sort lexicographically.
type SortKey struct {
	Height       int32
	Coinbase     bool
	TimeReceived int64
	Index        int
}

// Less reports whether k orders before other.
func (k SortKey) Less(other SortKey) bool {
	if k.Height != other.Height {
		return k.Height < other.Height
	}
	if k.Coinbase != other.Coinbase {
		return !k.Coinbase
	}
	if k.TimeReceived != other.TimeReceived {
		return k.TimeReceived < other.TimeReceived
	}
	return k.Index < other.Index
}

// String renders the key zero-padded so lexicographic order equals
// Less order.
func (k SortKey) String() string {
	coinbase := 0
	if k.Coinbase {
		coinbase = 1
	}
	return fmt.Sprintf("%010d-%01d-%010d-%03d", k.Height, coinbase, k.TimeReceived, k.Index)
}

// TransactionStatus is the point-in-time confirmation and maturity
// snapshot of one display record. It is recomputed whenever the chain
// height moves; recomputation is the only mutation path.
type TransactionStatus struct {
	SortKey   SortKey
	Confirmed bool
	Depth     int32
	// HeightAtComputation is the best height used for this snapshot;
	// a consumer must recompute once the chain tip moves past it.
	HeightAtComputation int32
	Lifecycle           LifecycleState
	Maturity            MaturityState
	// OpenFor is a block count for OpenUntilBlock and a raw lock-time
	// timestamp for OpenUntilDate.
	OpenFor          int64
	BlocksToMaturity int32
	// Indeterminate is set when chain collaborators could not be
	// consulted; the record should render as unconfirmed/unknown.
	Indeterminate bool
}
