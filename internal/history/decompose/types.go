// Package decompose turns raw wallet transactions into display records.
package decompose

import (
	"github.com/goodnatureofminers/walletview7000-backend/internal/history/model"
)

type (
	// Wallet is the ownership oracle consulted while classifying a
	// transaction's inputs and outputs.
	Wallet interface {
		IsOwnedInput(in model.TxInput) bool
		IsOwnedOutput(out model.TxOutput) bool
		// KnownAddress resolves an output destination to an address the
		// wallet holds a key for.
		KnownAddress(out model.TxOutput) (string, bool)
		// TotalCredit sums output value paid to the wallet. Reward
		// transactions count as zero until mature.
		TotalCredit(tx *model.WalletTx, includeUnconfirmed bool) int64
		// TotalDebit sums input value funded by the wallet.
		TotalDebit(tx *model.WalletTx) int64
		// ChangeAmount sums output value returning to the wallet as
		// change.
		ChangeAmount(tx *model.WalletTx) int64
		// TotalOutputValue sums all output values regardless of owner.
		TotalOutputValue(tx *model.WalletTx) int64
	}
)
