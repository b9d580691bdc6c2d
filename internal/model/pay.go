package model

// PayRequest represents request for POST /wallet/send
type PayRequest struct {
	ToAddress string `json:"toAddress" binding:"required"`
	Amount    string `json:"amount" binding:"required"`
	Fee       string `json:"fee,omitempty"`
	AssetID   string `json:"assetId,omitempty"`
	Memo      string `json:"memo,omitempty"`
}

// PayResponse represents response for POST /wallet/send
type PayResponse struct {
	TxID string `json:"txId"`
}
