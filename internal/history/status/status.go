package status

import (
	"time"

	"github.com/btcsuite/btcd/txscript"
	"github.com/goodnatureofminers/walletview7000-backend/internal/history/chain"
	"github.com/goodnatureofminers/walletview7000-backend/internal/history/model"
)

const (
	// MinConfirmations is the depth at which a transaction is shown as
	// fully confirmed.
	MinConfirmations = 6

	// offlineGrace is how long after receipt a transaction may go
	// unrequested by peers before it is flagged as offline.
	offlineGrace = 2 * time.Minute
)

// Compute derives the status snapshot for one display record. It is a
// pure function of its inputs: identical record, transaction, chain
// view and wallet signals always produce an identical snapshot, so it
// is safe to re-invoke whenever the chain tip moves.
func Compute(rec model.TransactionRecord, tx *model.WalletTx, view chain.View, wallet Wallet) model.TransactionStatus {
	best := view.BestHeight()
	now := view.AdjustedTime()

	height := model.UnconfirmedHeight
	if tx.Mined() {
		if h, ok := view.ConfirmingHeight(tx.BlockHash); ok {
			height = h
		}
	}

	st := model.TransactionStatus{
		SortKey: model.SortKey{
			Height:       height,
			Coinbase:     tx.Coinbase,
			TimeReceived: tx.TimeReceived.Unix(),
			Index:        rec.Index,
		},
		Depth:               view.DepthInMainChain(tx),
		HeightAtComputation: best,
		Maturity:            model.MaturityNotApplicable,
		Indeterminate:       view.Indeterminate(),
	}
	st.Confirmed = st.Depth >= 1

	offline := now.Sub(tx.TimeReceived) > offlineGrace && wallet.RequestCount(tx) == 0

	switch {
	case tx.TimeLocked():
		if tx.LockTime < txscript.LockTimeThreshold {
			st.Lifecycle = model.OpenUntilBlock
			st.OpenFor = int64(best) - int64(tx.LockTime)
		} else {
			st.Lifecycle = model.OpenUntilDate
			st.OpenFor = int64(tx.LockTime)
		}
	case offline:
		st.Lifecycle = model.Offline
	case st.Depth < MinConfirmations:
		st.Lifecycle = model.Unconfirmed
	default:
		st.Lifecycle = model.HaveConfirmations
	}

	if rec.Type == model.Generated || rec.Type == model.StakeMint {
		if wallet.TotalCredit(tx, true) == 0 {
			// The reward is not yet spendable.
			if view.IsInMainChain(tx) {
				st.Maturity = model.Immature
				st.BlocksToMaturity = view.BlocksToMaturity(tx)
				if offline {
					st.Maturity = model.MaturesWarning
				}
			} else {
				st.Maturity = model.NotAccepted
			}
		} else {
			st.Maturity = model.Mature
		}
	}

	return st
}

// NeedsRefresh reports whether a previously computed status is stale
// for the given chain view.
func NeedsRefresh(st model.TransactionStatus, view chain.View) bool {
	return st.HeightAtComputation != view.BestHeight()
}
