// Package service exposes wallet transaction history to presentation
// layers and keeps record statuses fresh as the chain advances.
package service

import (
	"context"
	"time"

	"github.com/goodnatureofminers/walletview7000-backend/internal/history/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Wallet joins the ownership oracle and the wallet-side status
	// signals the decomposer and status engine consume.
	Wallet interface {
		IsOwnedInput(in model.TxInput) bool
		IsOwnedOutput(out model.TxOutput) bool
		KnownAddress(out model.TxOutput) (string, bool)
		TotalCredit(tx *model.WalletTx, includeUnconfirmed bool) int64
		TotalDebit(tx *model.WalletTx) int64
		ChangeAmount(tx *model.WalletTx) int64
		TotalOutputValue(tx *model.WalletTx) int64
		RequestCount(tx *model.WalletTx) int
	}

	// Source yields the wallet's current transaction set.
	Source interface {
		Load(ctx context.Context) ([]*model.WalletTx, error)
	}

	// RefreshableView re-pins a chain snapshot to the node's tip.
	RefreshableView interface {
		Refresh() error
		BestHeight() int32
	}

	// Metrics observes history operations.
	Metrics interface {
		ObserveDecompose(records int, started time.Time)
		ObserveStatus(started time.Time)
		ObserveSync(err error, transactions, records int, started time.Time)
		ObserveRefresh(err error, refreshed int, started time.Time)
	}
)
