// Package transport exposes HTTP handlers.
package transport

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/goodnatureofminers/walletview7000-backend/internal/history/service"
	"go.uber.org/zap"
)

type (
	// History is the record set the handler serves.
	History interface {
		Records() []service.Entry
		Record(id string) (service.Entry, bool)
	}
)

// HistoryHandler serves the wallet transaction history as JSON.
type HistoryHandler struct {
	history History
	logger  *zap.Logger
}

// NewHistoryHandler returns a HistoryHandler instance.
func NewHistoryHandler(history History, logger *zap.Logger) *HistoryHandler {
	return &HistoryHandler{
		history: history,
		logger:  logger.Named("transport"),
	}
}

// Register mounts the handler's routes on mux.
func (h *HistoryHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /v1/transactions", h.listTransactions)
	mux.HandleFunc("GET /v1/transactions/{displayID}", h.getTransaction)
	mux.HandleFunc("GET /healthz", h.health)
}

type statusPayload struct {
	SortKey             string `json:"sort_key"`
	Confirmed           bool   `json:"confirmed"`
	Depth               int32  `json:"depth"`
	HeightAtComputation int32  `json:"height_at_computation"`
	Lifecycle           string `json:"lifecycle"`
	Maturity            string `json:"maturity"`
	OpenFor             int64  `json:"open_for,omitempty"`
	BlocksToMaturity    int32  `json:"blocks_to_maturity,omitempty"`
	Indeterminate       bool   `json:"indeterminate,omitempty"`
}

type recordPayload struct {
	DisplayID    string        `json:"display_id"`
	TxID         string        `json:"txid"`
	Index        int           `json:"index"`
	Timestamp    time.Time     `json:"timestamp"`
	Type         string        `json:"type"`
	Counterparty string        `json:"counterparty,omitempty"`
	Debit        int64         `json:"debit"`
	Credit       int64         `json:"credit"`
	Status       statusPayload `json:"status"`
}

type listTransactionsResponse struct {
	Transactions []recordPayload `json:"transactions"`
}

func toPayload(entry service.Entry) recordPayload {
	return recordPayload{
		DisplayID:    entry.Record.DisplayID(),
		TxID:         entry.Record.TxID.String(),
		Index:        entry.Record.Index,
		Timestamp:    entry.Record.Timestamp.UTC(),
		Type:         string(entry.Record.Type),
		Counterparty: entry.Record.Counterparty,
		Debit:        entry.Record.Debit,
		Credit:       entry.Record.Credit,
		Status: statusPayload{
			SortKey:             entry.Status.SortKey.String(),
			Confirmed:           entry.Status.Confirmed,
			Depth:               entry.Status.Depth,
			HeightAtComputation: entry.Status.HeightAtComputation,
			Lifecycle:           string(entry.Status.Lifecycle),
			Maturity:            string(entry.Status.Maturity),
			OpenFor:             entry.Status.OpenFor,
			BlocksToMaturity:    entry.Status.BlocksToMaturity,
			Indeterminate:       entry.Status.Indeterminate,
		},
	}
}

func (h *HistoryHandler) listTransactions(w http.ResponseWriter, _ *http.Request) {
	entries := h.history.Records()
	resp := listTransactionsResponse{
		Transactions: make([]recordPayload, 0, len(entries)),
	}
	for _, entry := range entries {
		resp.Transactions = append(resp.Transactions, toPayload(entry))
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *HistoryHandler) getTransaction(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("displayID")
	entry, ok := h.history.Record(id)
	if !ok {
		h.writeJSON(w, http.StatusNotFound, map[string]string{"error": "transaction record not found"})
		return
	}
	h.writeJSON(w, http.StatusOK, toPayload(entry))
}

func (h *HistoryHandler) health(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (h *HistoryHandler) writeJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Warn("failed to write response", zap.Error(err))
	}
}
