package model

// BalanceResponse represents response for GET /wallet/balance
type BalanceResponse struct {
	Address   string `json:"address"`
	AssetID   string `json:"assetId,omitempty"`
	Balance   string `json:"balance"`
	Formatted string `json:"formatted"`
}
