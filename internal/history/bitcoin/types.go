// Package bitcoin adapts Bitcoin node RPC data to the history domain.
package bitcoin

import (
	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// RPCClient is the subset of node RPC operations the adapter needs.
	RPCClient interface {
		GetBlockCount() (int64, error)
		GetBlockHeaderVerbose(blockHash *chainhash.Hash) (*btcjson.GetBlockHeaderVerboseResult, error)
		GetRawTransactionVerbose(txHash *chainhash.Hash) (*btcjson.TxRawResult, error)
		ListTransactionsCount(account string, count int) ([]btcjson.ListTransactionsResult, error)
	}

	// ScriptDecoder extracts destination addresses from output scripts.
	ScriptDecoder interface {
		decodeAddresses(vout btcjson.Vout) ([]string, error)
	}
)
