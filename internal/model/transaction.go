package model

import (
	"fmt"
	"time"

	"github.com/AlexZinkM/drachma-wallet/internal/common"
)

// TransactionType transaction type
type TransactionType string

const (
	TransactionTypeReceive TransactionType = "receive"
	TransactionTypeSend    TransactionType = "send"
)

// TransactionPayload is the unsigned transfer a wallet account authorizes.
// Field order is part of the signed encoding and must not change.
type TransactionPayload struct {
	_       struct{} `cbor:",toarray"`
	ChainID uint32   `json:"chainId"`
	From    string   `json:"from"`
	To      string   `json:"to"`
	Amount  uint64   `json:"amount"` // base units, 1 DRACHMA = 10^8
	Fee     uint64   `json:"fee"`    // base units
	Nonce   uint64   `json:"nonce"`
	AssetID string   `json:"assetId,omitempty"`
	Memo    string   `json:"memo,omitempty"`
}

// Signature is the result of signing a TransactionPayload
type Signature struct {
	Hash      string `json:"hash"`      // tagged hash of the canonical payload, hex
	Signature string `json:"signature"` // 64-byte BIP-340 signature, hex
	PublicKey string `json:"publicKey"` // compressed public key of the signer, hex
}

// SignedTransaction is the envelope submitted through sendrawtransaction
type SignedTransaction struct {
	_         struct{}           `cbor:",toarray"`
	Payload   TransactionPayload `json:"payload"`
	PublicKey []byte             `json:"publicKey"`
	Signature []byte             `json:"signature"`
}

// Transaction represents a transaction in the account history
type Transaction struct {
	Type          TransactionType `json:"type"`
	TxID          string          `json:"txId"`
	Address       string          `json:"address"`
	Amount        string          `json:"amount"`
	AssetID       string          `json:"assetId"`
	Fee           string          `json:"fee"`
	Confirmations int64           `json:"confirmations"`
	Timestamp     time.Time       `json:"timestamp"`
}

// LogResponse represents response for GET /wallet/transactions
type LogResponse struct {
	Address       string        `json:"address"`
	TotalReceived string        `json:"totalReceived"`
	TotalSent     string        `json:"totalSent"`
	Transactions  []Transaction `json:"transactions"`
}

// LogRequest represents filter parameters for GET /wallet/transactions
type LogRequest struct {
	Type      *TransactionType `form:"type"`
	TxID      *string          `form:"txId"`
	AssetID   *string          `form:"assetId"`
	From      *time.Time       `form:"from"`
	To        *time.Time       `form:"to"`
	MinAmount *string          `form:"minAmount"`
	MaxAmount *string          `form:"maxAmount"`
	Count     int              `form:"count"`
	Skip      int              `form:"skip"`
}

// Validate validates LogRequest filter parameters.
func (r *LogRequest) Validate() error {
	if r.Type != nil && *r.Type != TransactionTypeReceive && *r.Type != TransactionTypeSend {
		return fmt.Errorf("type must be send or receive")
	}
	if r.From != nil && r.To != nil && r.To.Before(*r.From) {
		return fmt.Errorf("to date must be after or equal to from date")
	}
	if r.Count < 0 || r.Skip < 0 {
		return fmt.Errorf("count and skip must not be negative")
	}
	if r.MinAmount != nil && r.MaxAmount != nil {
		cmp, err := common.CompareAmounts(*r.MinAmount, *r.MaxAmount)
		if err != nil {
			return fmt.Errorf("invalid amount: %w", err)
		}
		if cmp == 1 {
			return fmt.Errorf("minAmount must be less than or equal to maxAmount")
		}
	}
	return nil
}
