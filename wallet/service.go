// Package wallet manages the single HD wallet stored in the vault: creating
// and restoring it, deriving accounts, and signing with the current one.
package wallet

import (
	"encoding/json"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/AlexZinkM/drachma-wallet/internal/keys"
	"github.com/AlexZinkM/drachma-wallet/internal/model"
	"github.com/AlexZinkM/drachma-wallet/internal/vault"
)

// StorageKey is the vault key holding the serialized WalletData
const StorageKey = "drachma_wallet_data"

// maxDeriveAttempts bounds how many indices createAccount skips past
// derivation failures before giving up.
const maxDeriveAttempts = 16

// Service owns the wallet record. All methods are serialized.
type Service struct {
	vault  vault.Vault
	logger *zap.Logger
	mu     sync.Mutex
}

// Option configures a Service
type Option func(*Service)

// WithLogger sets the service logger
func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// NewService creates a wallet service backed by v
func NewService(v vault.Vault, opts ...Option) *Service {
	s := &Service{
		vault:  v,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GenerateWallet creates a fresh 24-word wallet and returns its mnemonic.
// The mnemonic is returned only here; it is not logged.
func (s *Service) GenerateWallet(passphrase string) (string, error) {
	mnemonic, err := keys.GenerateMnemonic(keys.DefaultEntropyBits)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.initWallet(mnemonic, passphrase); err != nil {
		return "", err
	}
	s.logger.Info("wallet generated")
	return mnemonic, nil
}

// RestoreWallet rebuilds the wallet from an existing mnemonic
func (s *Service) RestoreWallet(mnemonic, passphrase string) error {
	if !keys.ValidateMnemonic(mnemonic) {
		return &InvalidMnemonicError{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.initWallet(mnemonic, passphrase); err != nil {
		return err
	}
	s.logger.Info("wallet restored")
	return nil
}

func (s *Service) initWallet(mnemonic, passphrase string) error {
	seed, err := keys.SeedFromMnemonic(mnemonic, passphrase)
	if err != nil {
		return &InvalidMnemonicError{}
	}
	defer clear(seed)

	account, err := deriveNext(seed, 0)
	if err != nil {
		return err
	}

	return s.save(&model.WalletData{
		Mnemonic:            mnemonic,
		Passphrase:          passphrase,
		Accounts:            []model.WalletAccount{*account},
		CurrentAccountIndex: 0,
	})
}

// CreateAccount derives the next sequential account and appends it.
// The current account does not change.
func (s *Service) CreateAccount() (*model.WalletAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return nil, err
	}
	if data == nil || data.Mnemonic == "" {
		return nil, &NoWalletError{}
	}

	seed, err := keys.SeedFromMnemonic(data.Mnemonic, data.Passphrase)
	if err != nil {
		return nil, fmt.Errorf("failed to derive seed: %w", err)
	}
	defer clear(seed)

	var next uint32
	if n := len(data.Accounts); n > 0 {
		next = data.Accounts[n-1].Index + 1
	}

	account, err := deriveNext(seed, next)
	if err != nil {
		return nil, err
	}

	data.Accounts = append(data.Accounts, *account)
	if err := s.save(data); err != nil {
		return nil, err
	}

	s.logger.Info("account created", zap.Uint32("index", account.Index), zap.String("address", account.Address))
	public := account.Public()
	return &public, nil
}

// deriveNext derives the account at index, moving to the following index
// when a path yields no valid key.
func deriveNext(seed []byte, index uint32) (*model.WalletAccount, error) {
	var lastErr error
	for i := 0; i < maxDeriveAttempts; i++ {
		account, err := keys.DeriveAccount(seed, index+uint32(i))
		if err == nil {
			return account, nil
		}
		if !keys.IsDerivationError(err) {
			return nil, err
		}
		lastErr = err
	}
	return nil, lastErr
}

// SwitchAccount makes the account at position index current
func (s *Service) SwitchAccount(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return err
	}
	if data == nil {
		return &NoWalletError{}
	}
	if index < 0 || index >= len(data.Accounts) {
		return &InvalidIndexError{Index: index, Count: len(data.Accounts)}
	}

	data.CurrentAccountIndex = index
	if err := s.save(data); err != nil {
		return err
	}
	s.logger.Info("account switched", zap.Int("index", index))
	return nil
}

// CurrentAccount returns the active account without its private key,
// or nil when there is no wallet.
func (s *Service) CurrentAccount() (*model.WalletAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return nil, err
	}
	account := data.CurrentAccount()
	if account == nil {
		return nil, nil
	}
	public := account.Public()
	return &public, nil
}

// Accounts lists every account without private keys
func (s *Service) Accounts() ([]model.WalletAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, &NoWalletError{}
	}

	accounts := make([]model.WalletAccount, 0, len(data.Accounts))
	for _, a := range data.Accounts {
		accounts = append(accounts, a.Public())
	}
	return accounts, nil
}

// Wallet returns the full decrypted record, mnemonic included.
// Callers must not log or persist it.
func (s *Service) Wallet() (*model.WalletData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, &NoWalletError{}
	}
	return data, nil
}

// HasWallet reports whether a wallet is stored
func (s *Service) HasWallet() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return false, err
	}
	return data != nil, nil
}

// SignTransaction signs payload with the current account's key
func (s *Service) SignTransaction(payload model.TransactionPayload) (*model.Signature, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return nil, err
	}
	account := data.CurrentAccount()
	if account == nil {
		return nil, &NoAccountError{}
	}

	sig, err := keys.SignTransaction(account.PrivateKey, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to sign transaction: %w", err)
	}
	return sig, nil
}

// DeleteWallet erases the wallet record. There is no undo.
func (s *Service) DeleteWallet() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.vault.Delete(StorageKey); err != nil {
		return err
	}
	s.logger.Warn("wallet deleted")
	return nil
}

func (s *Service) load() (*model.WalletData, error) {
	raw, ok, err := s.vault.Get(StorageKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var data model.WalletData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, &vault.StorageError{Op: "decode", Key: StorageKey, Err: err}
	}
	return &data, nil
}

func (s *Service) save(data *model.WalletData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return &vault.StorageError{Op: "encode", Key: StorageKey, Err: err}
	}
	defer clear(raw)
	return s.vault.Put(StorageKey, string(raw))
}
