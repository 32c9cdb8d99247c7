package bitcoin

import (
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/walletview7000-backend/internal/history/model"
	"github.com/goodnatureofminers/walletview7000-backend/pkg/safe"
)

// BtcToSatoshis converts a BTC amount to satoshis, rejecting negatives.
func BtcToSatoshis(value float64) (int64, error) {
	amt, err := btcutil.NewAmount(value)
	if err != nil {
		return 0, err
	}
	if amt < 0 {
		return 0, fmt.Errorf("negative amount: %d", amt)
	}
	return int64(amt), nil
}

// Converter turns verbose RPC transactions into domain wallet
// transactions, resolving input values through previous outputs.
type Converter struct {
	decoder  ScriptDecoder
	prevOuts *prevOutResolver
	network  model.Network
}

// NewConverter constructs a converter for the given network.
func NewConverter(client RPCClient, network model.Network) (*Converter, error) {
	decoder, err := NewScriptDecoder(network)
	if err != nil {
		return nil, err
	}
	return &Converter{
		decoder:  decoder,
		prevOuts: newPrevOutResolver(client, decoder),
		network:  network,
	}, nil
}

// Convert maps one verbose RPC transaction to a WalletTx snapshot.
// received is the wallet's first-seen time for the transaction.
func (c *Converter) Convert(raw *btcjson.TxRawResult, received time.Time) (*model.WalletTx, error) {
	txid, err := chainhash.NewHashFromStr(raw.Txid)
	if err != nil {
		return nil, fmt.Errorf("tx %s parse txid: %w", raw.Txid, err)
	}

	tx := &model.WalletTx{
		Network:      c.network,
		TxID:         *txid,
		Time:         time.Unix(raw.Time, 0).UTC(),
		TimeReceived: received.UTC(),
		LockTime:     raw.LockTime,
	}
	if raw.BlockHash != "" {
		blockHash, err := chainhash.NewHashFromStr(raw.BlockHash)
		if err != nil {
			return nil, fmt.Errorf("tx %s parse block hash: %w", raw.Txid, err)
		}
		tx.BlockHash = *blockHash
	}

	tx.Inputs, err = c.convertInputs(raw)
	if err != nil {
		return nil, err
	}
	if len(raw.Vin) > 0 && raw.Vin[0].IsCoinBase() {
		tx.Coinbase = true
	}

	tx.Outputs, err = c.convertOutputs(raw)
	if err != nil {
		return nil, err
	}
	return tx, nil
}

func (c *Converter) convertInputs(raw *btcjson.TxRawResult) ([]model.TxInput, error) {
	inputs := make([]model.TxInput, 0, len(raw.Vin))
	for idx, vin := range raw.Vin {
		if vin.IsCoinBase() {
			inputs = append(inputs, model.TxInput{Sequence: vin.Sequence})
			continue
		}

		prevTxID, err := chainhash.NewHashFromStr(vin.Txid)
		if err != nil {
			return nil, fmt.Errorf("tx %s input %d parse prev txid: %w", raw.Txid, idx, err)
		}
		prevOut, err := c.prevOuts.Resolve(*prevTxID, vin.Vout)
		if err != nil {
			return nil, fmt.Errorf("tx %s input %d resolve prevout: %w", raw.Txid, idx, err)
		}

		inputs = append(inputs, model.TxInput{
			PrevTxID:  *prevTxID,
			PrevVout:  vin.Vout,
			Sequence:  vin.Sequence,
			Value:     prevOut.Value,
			Addresses: prevOut.Addresses,
		})
	}
	return inputs, nil
}

func (c *Converter) convertOutputs(raw *btcjson.TxRawResult) ([]model.TxOutput, error) {
	outputs := make([]model.TxOutput, 0, len(raw.Vout))
	for idx, vout := range raw.Vout {
		value, err := BtcToSatoshis(vout.Value)
		if err != nil {
			return nil, fmt.Errorf("tx %s output %d value: %w", raw.Txid, idx, err)
		}
		addresses, err := c.decoder.decodeAddresses(vout)
		if err != nil {
			return nil, fmt.Errorf("decode addresses for tx %s output %d: %w", raw.Txid, idx, err)
		}
		index, err := safe.Uint32(idx)
		if err != nil {
			return nil, fmt.Errorf("tx %s output index overflow: %w", raw.Txid, err)
		}

		outputs = append(outputs, model.TxOutput{
			Index:     index,
			Value:     value,
			Addresses: addresses,
		})
	}
	return outputs, nil
}

// prevOutResolver caches previous outputs during conversion to avoid
// refetching shared funding transactions over RPC.
type prevOutResolver struct {
	client  RPCClient
	decoder ScriptDecoder
	local   map[chainhash.Hash][]model.TxOutput
}

func newPrevOutResolver(client RPCClient, decoder ScriptDecoder) *prevOutResolver {
	return &prevOutResolver{
		client:  client,
		decoder: decoder,
		local:   make(map[chainhash.Hash][]model.TxOutput),
	}
}

func (r *prevOutResolver) Resolve(txid chainhash.Hash, vout uint32) (model.TxOutput, error) {
	outputs, ok := r.local[txid]
	if !ok {
		raw, err := r.client.GetRawTransactionVerbose(&txid)
		if err != nil {
			return model.TxOutput{}, fmt.Errorf("fetch prev tx %s: %w", txid, err)
		}
		outputs = make([]model.TxOutput, 0, len(raw.Vout))
		for idx, out := range raw.Vout {
			value, err := BtcToSatoshis(out.Value)
			if err != nil {
				return model.TxOutput{}, fmt.Errorf("prev tx %s output %d value: %w", txid, idx, err)
			}
			addresses, err := r.decoder.decodeAddresses(out)
			if err != nil {
				return model.TxOutput{}, fmt.Errorf("prev tx %s output %d addresses: %w", txid, idx, err)
			}
			index, err := safe.Uint32(idx)
			if err != nil {
				return model.TxOutput{}, fmt.Errorf("prev tx %s output index overflow: %w", txid, err)
			}
			outputs = append(outputs, model.TxOutput{Index: index, Value: value, Addresses: addresses})
		}
		r.local[txid] = outputs
	}

	if int(vout) >= len(outputs) {
		return model.TxOutput{}, fmt.Errorf("prev tx %s has no output %d", txid, vout)
	}
	return outputs[vout], nil
}
