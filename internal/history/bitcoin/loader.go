package bitcoin

import (
	"context"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/walletview7000-backend/internal/history/model"
	"go.uber.org/zap"
)

// Loader pulls the node wallet's recent transactions and converts them
// to domain snapshots.
type Loader struct {
	client    RPCClient
	converter *Converter
	book      *AddressBook
	batch     int
	logger    *zap.Logger
}

// NewLoader constructs a loader reading up to batch wallet entries per
// Load call.
func NewLoader(client RPCClient, converter *Converter, book *AddressBook, batch int, logger *zap.Logger) *Loader {
	if batch <= 0 {
		batch = 1000
	}
	return &Loader{
		client:    client,
		converter: converter,
		book:      book,
		batch:     batch,
		logger:    logger,
	}
}

// Load fetches and converts the wallet's transactions. listtransactions
// reports one entry per affected address, so entries are deduplicated
// by txid before fetching the raw transactions.
func (l *Loader) Load(ctx context.Context) ([]*model.WalletTx, error) {
	entries, err := l.client.ListTransactionsCount("*", l.batch)
	if err != nil {
		return nil, fmt.Errorf("list wallet transactions: %w", err)
	}

	type seenEntry struct {
		received     time.Time
		confirmation bool
	}
	seen := make(map[chainhash.Hash]seenEntry, len(entries))
	order := make([]chainhash.Hash, 0, len(entries))
	for _, entry := range entries {
		txid, err := chainhash.NewHashFromStr(entry.TxID)
		if err != nil {
			return nil, fmt.Errorf("parse wallet txid %q: %w", entry.TxID, err)
		}
		if _, ok := seen[*txid]; !ok {
			order = append(order, *txid)
		}
		seen[*txid] = seenEntry{
			received:     time.Unix(entry.TimeReceived, 0),
			confirmation: entry.Confirmations > 0,
		}
	}

	txs := make([]*model.WalletTx, 0, len(order))
	for _, txid := range order {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		raw, err := l.client.GetRawTransactionVerbose(&txid)
		if err != nil {
			return nil, fmt.Errorf("fetch wallet tx %s: %w", txid, err)
		}
		tx, err := l.converter.Convert(raw, seen[txid].received)
		if err != nil {
			return nil, fmt.Errorf("convert wallet tx %s: %w", txid, err)
		}

		// A mined transaction has by definition been relayed; count it
		// as requested so it does not render as offline.
		if seen[txid].confirmation && l.book.RequestCount(tx) == 0 {
			l.book.MarkRequested(txid)
		}

		txs = append(txs, tx)
	}

	if l.logger != nil {
		l.logger.Debug("loaded wallet transactions",
			zap.Int("entries", len(entries)),
			zap.Int("transactions", len(txs)))
	}
	return txs, nil
}
