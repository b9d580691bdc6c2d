package model

// DerivationPathPrefix is the BIP-44 prefix every account is derived under.
// The account index is appended as the final, non-hardened segment.
const DerivationPathPrefix = "m/44'/9001'/0'/0/"

// WalletAccount represents one derived account
type WalletAccount struct {
	Address        string `json:"address"`
	PublicKey      string `json:"publicKey"`            // compressed secp256k1, hex
	PrivateKey     string `json:"privateKey,omitempty"` // hex; only ever persisted inside the vault
	DerivationPath string `json:"derivationPath"`
	Index          uint32 `json:"index"`
}

// Public returns a copy of the account without the private key
func (a WalletAccount) Public() WalletAccount {
	a.PrivateKey = ""
	return a
}

// WalletData represents the single persisted wallet record
type WalletData struct {
	Mnemonic            string          `json:"mnemonic"`
	Passphrase          string          `json:"passphrase,omitempty"` // BIP-39 passphrase the seed was derived with
	Accounts            []WalletAccount `json:"accounts"`
	CurrentAccountIndex int             `json:"currentAccountIndex"`
}

// CurrentAccount returns the active account or nil when the index is out of range
func (w *WalletData) CurrentAccount() *WalletAccount {
	if w == nil || w.CurrentAccountIndex < 0 || w.CurrentAccountIndex >= len(w.Accounts) {
		return nil
	}
	account := w.Accounts[w.CurrentAccountIndex]
	return &account
}
