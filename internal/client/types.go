package client

import (
	"encoding/json"
	"fmt"
)

// BlockTemplate is the subset of getblocktemplate the miner uses
type BlockTemplate struct {
	Version           int32   `json:"version"`
	PreviousBlockHash string  `json:"previousblockhash"`
	MerkleRootHash    string  `json:"merkleroothash"`
	CurTime           uint32  `json:"curtime"`
	Bits              string  `json:"bits"`   // compact target, hex
	Target            string  `json:"target"` // full target, hex
	Difficulty        float64 `json:"difficulty"`
	Height            int64   `json:"height"`
}

// Share is the submitblock payload for a found nonce
type Share struct {
	JobID    string  `json:"jobId"`
	Nonce    uint32  `json:"nonce"`
	HashRate float64 `json:"hashRate"`
	Worker   string  `json:"worker,omitempty"`
}

// NodeTransaction is one entry of listtransactions / gettransaction.
// Amounts keep the node's JSON number text to avoid float rounding.
type NodeTransaction struct {
	Address       string      `json:"address"`
	Category      string      `json:"category"` // send, receive
	Amount        json.Number `json:"amount"`
	Fee           json.Number `json:"fee,omitempty"`
	AssetID       string      `json:"assetid,omitempty"`
	Confirmations int64       `json:"confirmations"`
	TxID          string      `json:"txid"`
	Time          int64       `json:"time"`
	Memo          string      `json:"comment,omitempty"`
}

// BlockchainInfo is the subset of getblockchaininfo the wallet shows
type BlockchainInfo struct {
	Chain         string  `json:"chain"`
	Blocks        int64   `json:"blocks"`
	Headers       int64   `json:"headers"`
	BestBlockHash string  `json:"bestblockhash"`
	Difficulty    float64 `json:"difficulty"`
}

// AddressValidation is the validateaddress result
type AddressValidation struct {
	IsValid bool   `json:"isvalid"`
	Address string `json:"address,omitempty"`
}

// StakingInfo is the getstakinginfo result
type StakingInfo struct {
	Enabled          bool    `json:"enabled"`
	Staking          bool    `json:"staking"`
	Weight           float64 `json:"weight"`
	NetStakeWeight   float64 `json:"netstakeweight"`
	ExpectedTime     int64   `json:"expectedtime"`
	CurrentBlockSize int64   `json:"currentblocksize,omitempty"`
}

// BatchCall is one element of a batch request
type BatchCall struct {
	Method string
	Params []interface{}
}

// BatchResult holds either the raw result or the error of one batch element
type BatchResult struct {
	Result json.RawMessage
	Err    error
}

// Decode unmarshals the element result into out, or returns its error
func (r BatchResult) Decode(out interface{}) error {
	if r.Err != nil {
		return r.Err
	}
	if err := json.Unmarshal(r.Result, out); err != nil {
		return fmt.Errorf("failed to decode batch result: %w", err)
	}
	return nil
}
