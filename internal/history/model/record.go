package model

import (
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// RecordType classifies a display record.
type RecordType string

var (
	// Generated marks a coinbase reward output paid to the wallet.
	Generated RecordType = "generated"
	// StakeMint marks a stake-minting reward transaction.
	StakeMint RecordType = "stake_mint"
	// RecvWithAddress marks value received on a wallet-known address.
	RecvWithAddress RecordType = "recv_with_address"
	// RecvFromOther marks value received without a resolvable address.
	RecvFromOther RecordType = "recv_from_other"
	// SendToAddress marks value sent to a resolvable address.
	SendToAddress RecordType = "send_to_address"
	// SendToOther marks value sent without a resolvable address.
	SendToOther RecordType = "send_to_other"
	// SendToSelf marks a payment where the wallet funds and receives
	// the whole transaction.
	SendToSelf RecordType = "send_to_self"
	// Other marks a mixed-ownership transaction that cannot be broken
	// down payee by payee.
	Other RecordType = "other"
)

// TransactionRecord is one display row derived from a wallet
// transaction. A transaction with several external recipients yields
// several records distinguished by Index.
type TransactionRecord struct {
	TxID         chainhash.Hash
	Index        int
	Timestamp    time.Time
	Type         RecordType
	Counterparty string
	// Debit is the value leaving this record, non-positive except on
	// mixed-ownership records where it carries the raw net amount.
	Debit int64
	// Credit is the value entering this record, never negative.
	Credit int64
}

// DisplayID returns the stable list key for this record, the
// transaction hash joined with the zero-padded split index.
func (r TransactionRecord) DisplayID() string {
	return fmt.Sprintf("%s-%03d", r.TxID.String(), r.Index)
}
