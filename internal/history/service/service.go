package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/goodnatureofminers/walletview7000-backend/internal/history/chain"
	"github.com/goodnatureofminers/walletview7000-backend/internal/history/decompose"
	"github.com/goodnatureofminers/walletview7000-backend/internal/history/model"
	"github.com/goodnatureofminers/walletview7000-backend/internal/history/status"
	"github.com/goodnatureofminers/walletview7000-backend/pkg/workerpool"
	"go.uber.org/zap"
)

const defaultWorkerCount = 4

// Entry pairs a display record with its latest status snapshot.
type Entry struct {
	Record model.TransactionRecord
	Status model.TransactionStatus
}

// Service owns the in-memory record set: it decomposes wallet
// transactions into display rows and recomputes row statuses as the
// chain moves. Reads are safe from any goroutine; Sync and
// RefreshStale follow a single-writer discipline.
type Service struct {
	wallet      Wallet
	view        chain.View
	source      Source
	metrics     Metrics
	logger      *zap.Logger
	workerCount int

	mu      sync.RWMutex
	entries []*Entry
	byID    map[string]*Entry
	txs     map[string]*model.WalletTx // display id -> source tx
}

// New constructs a history service.
func New(wallet Wallet, view chain.View, source Source, metrics Metrics, logger *zap.Logger) *Service {
	return &Service{
		wallet:      wallet,
		view:        view,
		source:      source,
		metrics:     metrics,
		logger:      logger.Named("history"),
		workerCount: defaultWorkerCount,
		byID:        make(map[string]*Entry),
		txs:         make(map[string]*model.WalletTx),
	}
}

// Decompose splits one transaction into display records.
func (s *Service) Decompose(tx *model.WalletTx) []model.TransactionRecord {
	started := time.Now()
	records := decompose.Decompose(tx, s.wallet, s.view)
	if s.metrics != nil {
		s.metrics.ObserveDecompose(len(records), started)
	}
	return records
}

// ComputeStatus derives the current status snapshot for one record.
func (s *Service) ComputeStatus(rec model.TransactionRecord, tx *model.WalletTx) model.TransactionStatus {
	started := time.Now()
	st := status.Compute(rec, tx, s.view, s.wallet)
	if s.metrics != nil {
		s.metrics.ObserveStatus(started)
	}
	return st
}

// NeedsRefresh reports whether a status is stale for the current view.
func (s *Service) NeedsRefresh(st model.TransactionStatus) bool {
	return status.NeedsRefresh(st, s.view)
}

// DisplayID returns the stable list key for a record.
func (s *Service) DisplayID(rec model.TransactionRecord) string {
	return rec.DisplayID()
}

// Sync reloads the wallet's transactions and rebuilds the record set.
func (s *Service) Sync(ctx context.Context) (err error) {
	started := time.Now()
	var txCount, recordCount int
	defer func() {
		if s.metrics != nil {
			s.metrics.ObserveSync(err, txCount, recordCount, started)
		}
	}()

	txs, err := s.source.Load(ctx)
	if err != nil {
		return err
	}
	txCount = len(txs)

	entries := make([]*Entry, 0, len(txs))
	byID := make(map[string]*Entry, len(txs))
	txByID := make(map[string]*model.WalletTx, len(txs))
	for _, tx := range txs {
		for _, rec := range s.Decompose(tx) {
			entry := &Entry{
				Record: rec,
				Status: s.ComputeStatus(rec, tx),
			}
			entries = append(entries, entry)
			byID[rec.DisplayID()] = entry
			txByID[rec.DisplayID()] = tx
		}
	}
	recordCount = len(entries)

	s.mu.Lock()
	s.entries = entries
	s.byID = byID
	s.txs = txByID
	s.mu.Unlock()

	s.logger.Debug("synced wallet history",
		zap.Int("transactions", txCount),
		zap.Int("records", recordCount))
	return nil
}

// RefreshStale recomputes every status pinned to an older chain height.
// Recomputation is a pure function of (record, tx, view), so concurrent
// workers only ever write the same fresh value.
func (s *Service) RefreshStale(ctx context.Context) (err error) {
	started := time.Now()
	var refreshed int
	defer func() {
		if s.metrics != nil {
			s.metrics.ObserveRefresh(err, refreshed, started)
		}
	}()

	s.mu.RLock()
	stale := make([]*Entry, 0, len(s.entries))
	for _, entry := range s.entries {
		if status.NeedsRefresh(entry.Status, s.view) {
			stale = append(stale, entry)
		}
	}
	s.mu.RUnlock()
	if len(stale) == 0 {
		return nil
	}

	err = workerpool.Process(ctx, s.workerCount, stale, func(_ context.Context, entry *Entry) error {
		id := entry.Record.DisplayID()
		s.mu.RLock()
		tx := s.txs[id]
		s.mu.RUnlock()
		if tx == nil {
			return nil
		}
		st := s.ComputeStatus(entry.Record, tx)

		s.mu.Lock()
		entry.Status = st
		s.mu.Unlock()
		return nil
	})
	if err != nil {
		return err
	}

	refreshed = len(stale)
	s.logger.Debug("refreshed stale statuses", zap.Int("records", refreshed))
	return nil
}

// Records returns the current rows ordered by sort key.
func (s *Service) Records() []Entry {
	s.mu.RLock()
	out := make([]Entry, 0, len(s.entries))
	for _, entry := range s.entries {
		out = append(out, *entry)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].Status.SortKey.Less(out[j].Status.SortKey)
	})
	return out
}

// Record looks one row up by display id.
func (s *Service) Record(id string) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.byID[id]
	if !ok {
		return Entry{}, false
	}
	return *entry, true
}
