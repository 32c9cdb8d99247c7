package decompose

import (
	"github.com/goodnatureofminers/walletview7000-backend/internal/history/chain"
	"github.com/goodnatureofminers/walletview7000-backend/internal/history/model"
)

// rewardVisibilityDepth is the confirmation depth below which reward
// transactions are hidden. A reward whose block is orphaned never
// becomes valid, so it is not shown until the block has one block on
// top of it. Regular transactions are shown right away because they
// can still get into some later block.
const rewardVisibilityDepth = 2

// ShowTransaction reports whether a transaction should appear in the
// history at all.
func ShowTransaction(tx *model.WalletTx, view chain.View) bool {
	if tx.Reward() && view.DepthInMainChain(tx) < rewardVisibilityDepth {
		return false
	}
	return true
}

// Decompose splits one wallet transaction into zero or more display
// records. Iteration follows the fixed on-chain input/output order, so
// repeated runs over unchanged data yield identical records and
// indices.
func Decompose(tx *model.WalletTx, wallet Wallet, view chain.View) []model.TransactionRecord {
	if !ShowTransaction(tx, view) {
		return nil
	}

	credit := wallet.TotalCredit(tx, true)
	debit := wallet.TotalDebit(tx)
	net := credit - debit

	var parts []model.TransactionRecord
	switch {
	case tx.Coinstake:
		parts = append(parts, model.TransactionRecord{
			Type:   model.StakeMint,
			Debit:  -debit,
			Credit: wallet.TotalOutputValue(tx),
		})

	case net > 0 || tx.Coinbase:
		parts = creditRecords(tx, wallet)

	default:
		parts = debitRecords(tx, wallet, credit, debit, net)
	}

	for i := range parts {
		parts[i].TxID = tx.TxID
		parts[i].Index = i
		parts[i].Timestamp = tx.Time
	}
	return parts
}

// creditRecords emits one record per wallet-owned output of a
// net-credit or coinbase transaction.
func creditRecords(tx *model.WalletTx, wallet Wallet) []model.TransactionRecord {
	var parts []model.TransactionRecord
	for _, out := range tx.Outputs {
		if !wallet.IsOwnedOutput(out) {
			continue
		}

		rec := model.TransactionRecord{Credit: out.Value}
		if tx.Coinbase {
			rec.Type = model.Generated
		} else if addr, ok := wallet.KnownAddress(out); ok {
			rec.Type = model.RecvWithAddress
			rec.Counterparty = addr
		} else {
			// Received on a multisig or other non-simple script; fall
			// back to the sender label when one was recorded.
			rec.Type = model.RecvFromOther
			rec.Counterparty = tx.FromLabel
		}
		parts = append(parts, rec)
	}
	return parts
}

// debitRecords handles the net-debit side: self-payments collapse to a
// single record with change excluded, fully wallet-funded sends emit
// one record per external output with the fee folded into the first,
// and mixed-ownership transactions degrade to a single approximate
// record.
func debitRecords(tx *model.WalletTx, wallet Wallet, credit, debit, net int64) []model.TransactionRecord {
	allFromMe := true
	for _, in := range tx.Inputs {
		allFromMe = allFromMe && wallet.IsOwnedInput(in)
	}
	allToMe := true
	for _, out := range tx.Outputs {
		allToMe = allToMe && wallet.IsOwnedOutput(out)
	}

	switch {
	case allFromMe && allToMe:
		change := wallet.ChangeAmount(tx)
		return []model.TransactionRecord{{
			Type:   model.SendToSelf,
			Debit:  -(debit - change),
			Credit: credit - change,
		}}

	case allFromMe:
		fee := debit - wallet.TotalOutputValue(tx)
		var parts []model.TransactionRecord
		for _, out := range tx.Outputs {
			if wallet.IsOwnedOutput(out) {
				// Owned outputs of a send are change returning to the
				// wallet, not payments.
				continue
			}

			rec := model.TransactionRecord{}
			if len(out.Addresses) > 0 {
				rec.Type = model.SendToAddress
				rec.Counterparty = out.Addresses[0]
			} else {
				rec.Type = model.SendToOther
				rec.Counterparty = tx.ToLabel
			}

			// The whole fee is carried by the earliest external output.
			value := out.Value
			if fee > 0 {
				value += fee
				fee = 0
			}
			rec.Debit = -value
			parts = append(parts, rec)
		}
		return parts

	default:
		return []model.TransactionRecord{{
			Type:  model.Other,
			Debit: net,
		}}
	}
}
