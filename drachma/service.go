// Package drachma composes the wallet with a node connection: balance,
// history, sending, receiving and layer-2 NFTs.
package drachma

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/AlexZinkM/drachma-wallet/internal/client"
	"github.com/AlexZinkM/drachma-wallet/internal/model"
)

// Node is the subset of the node RPC used for wallet operations
type Node interface {
	GetBalance(ctx context.Context, assetID string) (json.Number, error)
	ListTransactions(ctx context.Context, count, skip int) ([]client.NodeTransaction, error)
	SendRawTransaction(ctx context.Context, rawHex string) (string, error)
	EstimateFee(ctx context.Context, blocks int) (json.Number, error)
	ListNFTs(ctx context.Context, owner string) ([]model.NFT, error)
	MintNFT(ctx context.Context, nft model.NFT) (string, error)
	TransferNFT(ctx context.Context, tokenID, to string) (string, error)
}

// Wallet is the subset of wallet.Service used here
type Wallet interface {
	CurrentAccount() (*model.WalletAccount, error)
	SignTransaction(payload model.TransactionPayload) (*model.Signature, error)
}

// Service runs node-facing wallet operations for one wallet
type Service struct {
	wallet   Wallet
	node     Node
	chainID  uint32
	cooldown time.Duration
	logger   *zap.Logger
	now      func() time.Time

	payMu   sync.Mutex
	lastPay time.Time
}

// Option configures a Service
type Option func(*Service)

// WithLogger sets the service logger
func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithPayCooldown rejects sends issued within d of the previous one
func WithPayCooldown(d time.Duration) Option {
	return func(s *Service) {
		s.cooldown = d
	}
}

// WithClock overrides time.Now
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService creates a Service for the given network chain id
func NewService(w Wallet, node Node, chainID uint32, opts ...Option) *Service {
	s := &Service{
		wallet:  w,
		node:    node,
		chainID: chainID,
		logger:  zap.NewNop(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
