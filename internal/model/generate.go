package model

// GenerateRequest represents request for POST /wallet/generate
type GenerateRequest struct {
	Passphrase string `json:"passphrase,omitempty"`
}

// GenerateResponse represents response for POST /wallet/generate.
// Mnemonic is returned exactly once, at generation time.
type GenerateResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Address  string `json:"address,omitempty"`
	Mnemonic string `json:"mnemonic,omitempty"`
}

// RestoreRequest represents request for POST /wallet/restore
type RestoreRequest struct {
	Mnemonic   string `json:"mnemonic" binding:"required"`
	Passphrase string `json:"passphrase,omitempty"`
}

// SwitchAccountRequest represents request for POST /wallet/accounts/switch
type SwitchAccountRequest struct {
	Index int `json:"index"`
}

// ReceiveResponse represents response for GET /wallet/receive
type ReceiveResponse struct {
	Address string `json:"address"`
	QR      string `json:"QR"` // base64 PNG
}
