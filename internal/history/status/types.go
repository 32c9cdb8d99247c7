// Package status computes point-in-time confirmation and maturity
// snapshots for display records.
package status

import (
	"github.com/goodnatureofminers/walletview7000-backend/internal/history/model"
)

type (
	// Wallet supplies the wallet-side signals status computation needs.
	Wallet interface {
		// TotalCredit sums output value paid to the wallet; reward
		// transactions count as zero until mature.
		TotalCredit(tx *model.WalletTx, includeUnconfirmed bool) int64
		// RequestCount reports how often peers requested the transaction
		// since broadcast.
		RequestCount(tx *model.WalletTx) int
	}
)
