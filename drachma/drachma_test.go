package drachma

import (
	"context"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlexZinkM/drachma-wallet/internal/client"
	"github.com/AlexZinkM/drachma-wallet/internal/keys"
	"github.com/AlexZinkM/drachma-wallet/internal/model"
	"github.com/AlexZinkM/drachma-wallet/internal/vault"
	"github.com/AlexZinkM/drachma-wallet/wallet"
)

const (
	abandonMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	recipient       = "drm1234567890abcdef1234567890abcdef12345678"
)

type fakeNode struct {
	balances map[string]json.Number
	txs      []client.NodeTransaction
	fee      json.Number
	feeErr   error
	sendErr  error
	sent     []string

	nfts      []model.NFT
	nftOwner  string
	minted    []model.NFT
	transfers [][2]string
}

func (n *fakeNode) GetBalance(_ context.Context, assetID string) (json.Number, error) {
	return n.balances[assetID], nil
}

func (n *fakeNode) ListTransactions(_ context.Context, count, skip int) ([]client.NodeTransaction, error) {
	return n.txs, nil
}

func (n *fakeNode) SendRawTransaction(_ context.Context, raw string) (string, error) {
	if n.sendErr != nil {
		return "", n.sendErr
	}
	n.sent = append(n.sent, raw)
	return "tx-1", nil
}

func (n *fakeNode) EstimateFee(context.Context, int) (json.Number, error) {
	return n.fee, n.feeErr
}

func (n *fakeNode) ListNFTs(_ context.Context, owner string) ([]model.NFT, error) {
	n.nftOwner = owner
	return n.nfts, n.sendErr
}

func (n *fakeNode) MintNFT(_ context.Context, nft model.NFT) (string, error) {
	if n.sendErr != nil {
		return "", n.sendErr
	}
	n.minted = append(n.minted, nft)
	return "token-1", nil
}

func (n *fakeNode) TransferNFT(_ context.Context, tokenID, to string) (string, error) {
	if n.sendErr != nil {
		return "", n.sendErr
	}
	n.transfers = append(n.transfers, [2]string{tokenID, to})
	return "tx-nft", nil
}

func newWallet(t *testing.T) *wallet.Service {
	t.Helper()
	w := wallet.NewService(vault.NewMemoryVault())
	require.NoError(t, w.RestoreWallet(abandonMnemonic, ""))
	return w
}

func TestGetBalance(t *testing.T) {
	node := &fakeNode{balances: map[string]json.Number{"": "12.5", "gold": "1e-8"}}
	s := NewService(newWallet(t), node, 2)

	bal, err := s.GetBalance(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "12.50000000", bal.Balance)
	assert.Equal(t, "12.50000000 DRACHMA", bal.Formatted)
	assert.NotEmpty(t, bal.Address)

	bal, err = s.GetBalance(context.Background(), "gold")
	require.NoError(t, err)
	assert.Equal(t, "0.00000001", bal.Balance)
	assert.Equal(t, "gold", bal.AssetID)
}

func TestGetBalance_NoWallet(t *testing.T) {
	s := NewService(wallet.NewService(vault.NewMemoryVault()), &fakeNode{}, 2)
	_, err := s.GetBalance(context.Background(), "")
	assert.True(t, wallet.IsNoAccountError(err))
}

func TestGetTransactions(t *testing.T) {
	node := &fakeNode{txs: []client.NodeTransaction{
		{Category: "receive", Amount: "2", TxID: "a", Time: 1000, Address: recipient},
		{Category: "send", Amount: "-0.5", Fee: "-0.0001", TxID: "b", Time: 3000},
		{Category: "receive", Amount: "1", TxID: "c", Time: 2000, AssetID: "gold"},
		{Category: "orphan", Amount: "9", TxID: "d", Time: 4000},
	}}
	s := NewService(newWallet(t), node, 2)

	resp, err := s.GetTransactions(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, resp.Transactions, 3)
	assert.Equal(t, "b", resp.Transactions[0].TxID)
	assert.Equal(t, "c", resp.Transactions[1].TxID)
	assert.Equal(t, "a", resp.Transactions[2].TxID)
	assert.Equal(t, "0.50000000", resp.Transactions[0].Amount)
	assert.Equal(t, "0.00010000", resp.Transactions[0].Fee)
	assert.Equal(t, "2.00000000", resp.TotalReceived)
	assert.Equal(t, "0.50000000", resp.TotalSent)

	send := model.TransactionTypeSend
	resp, err = s.GetTransactions(context.Background(), &model.LogRequest{Type: &send})
	require.NoError(t, err)
	require.Len(t, resp.Transactions, 1)
	assert.Equal(t, "b", resp.Transactions[0].TxID)

	minAmount := "1"
	resp, err = s.GetTransactions(context.Background(), &model.LogRequest{MinAmount: &minAmount})
	require.NoError(t, err)
	assert.Len(t, resp.Transactions, 2)

	from := time.Unix(1500, 0)
	to := time.Unix(2500, 0)
	resp, err = s.GetTransactions(context.Background(), &model.LogRequest{From: &from, To: &to})
	require.NoError(t, err)
	require.Len(t, resp.Transactions, 1)
	assert.Equal(t, "c", resp.Transactions[0].TxID)

	asset := "gold"
	resp, err = s.GetTransactions(context.Background(), &model.LogRequest{AssetID: &asset})
	require.NoError(t, err)
	require.Len(t, resp.Transactions, 1)
	assert.Equal(t, "0.00000000", resp.TotalReceived)
}

func TestGetTransactions_InvalidFilter(t *testing.T) {
	s := NewService(newWallet(t), &fakeNode{}, 2)
	lo, hi := "5", "1"
	_, err := s.GetTransactions(context.Background(), &model.LogRequest{MinAmount: &lo, MaxAmount: &hi})
	assert.True(t, IsValidationError(err))
}

func TestSend(t *testing.T) {
	node := &fakeNode{balances: map[string]json.Number{"": "10"}, fee: "0.0002"}
	w := newWallet(t)
	s := NewService(w, node, 2)

	resp, err := s.Send(context.Background(), &model.PayRequest{ToAddress: recipient, Amount: "1.5", Memo: "<b>rent</b>"})
	require.NoError(t, err)
	assert.Equal(t, "tx-1", resp.TxID)
	require.Len(t, node.sent, 1)

	tx, err := keys.DecodeSignedTransaction(node.sent[0])
	require.NoError(t, err)
	assert.Equal(t, uint64(150000000), tx.Payload.Amount)
	assert.Equal(t, uint64(20000), tx.Payload.Fee)
	assert.Equal(t, uint32(2), tx.Payload.ChainID)
	assert.Equal(t, recipient, tx.Payload.To)
	assert.Equal(t, "brent/b", tx.Payload.Memo)

	current, err := w.CurrentAccount()
	require.NoError(t, err)
	assert.Equal(t, current.Address, tx.Payload.From)

	ok, err := keys.VerifyTransaction(tx.Payload, &model.Signature{
		PublicKey: current.PublicKey,
		Signature: hexString(tx.Signature),
	})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSend_Validation(t *testing.T) {
	node := &fakeNode{balances: map[string]json.Number{"": "10"}}
	s := NewService(newWallet(t), node, 2)

	_, err := s.Send(context.Background(), &model.PayRequest{ToAddress: "0x1234", Amount: "1"})
	assert.True(t, IsValidationError(err))
	_, err = s.Send(context.Background(), &model.PayRequest{ToAddress: recipient, Amount: "0"})
	assert.True(t, IsValidationError(err))
	_, err = s.Send(context.Background(), &model.PayRequest{ToAddress: recipient, Amount: "-1"})
	assert.True(t, IsValidationError(err))
	_, err = s.Send(context.Background(), &model.PayRequest{ToAddress: recipient, Amount: "1", Fee: "abc"})
	assert.True(t, IsValidationError(err))
	assert.Empty(t, node.sent)
}

func TestSend_InsufficientFunds(t *testing.T) {
	node := &fakeNode{balances: map[string]json.Number{"": "1"}, feeErr: errors.New("no estimate")}
	s := NewService(newWallet(t), node, 2)

	// 1 DRACHMA plus the default fee does not fit in a balance of 1
	_, err := s.Send(context.Background(), &model.PayRequest{ToAddress: recipient, Amount: "1"})
	assert.True(t, IsInsufficientFundsError(err))

	_, err = s.Send(context.Background(), &model.PayRequest{ToAddress: recipient, Amount: "0.5", AssetID: "gold"})
	assert.True(t, IsInsufficientFundsError(err))
	assert.Empty(t, node.sent)
}

func TestSend_Cooldown(t *testing.T) {
	now := time.Unix(1700000000, 0)
	node := &fakeNode{balances: map[string]json.Number{"": "10"}}
	s := NewService(newWallet(t), node, 2,
		WithPayCooldown(time.Minute),
		WithClock(func() time.Time { return now }))

	req := &model.PayRequest{ToAddress: recipient, Amount: "1", Fee: "0.0001"}
	_, err := s.Send(context.Background(), req)
	require.NoError(t, err)

	now = now.Add(30 * time.Second)
	_, err = s.Send(context.Background(), req)
	var ce *CooldownError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, 30*time.Second, ce.Remaining)

	now = now.Add(31 * time.Second)
	_, err = s.Send(context.Background(), req)
	require.NoError(t, err)
	assert.Len(t, node.sent, 2)
}

func TestSend_NodeErrorDoesNotStartCooldown(t *testing.T) {
	node := &fakeNode{balances: map[string]json.Number{"": "10"}, sendErr: &client.RPCError{Code: -26, Message: "rejected"}}
	s := NewService(newWallet(t), node, 2, WithPayCooldown(time.Hour))

	req := &model.PayRequest{ToAddress: recipient, Amount: "1", Fee: "0.0001"}
	_, err := s.Send(context.Background(), req)
	assert.True(t, client.IsRPCError(err))

	node.sendErr = nil
	_, err = s.Send(context.Background(), req)
	assert.NoError(t, err)
}

func TestReceive(t *testing.T) {
	w := newWallet(t)
	s := NewService(w, &fakeNode{}, 2)

	resp, err := s.Receive()
	require.NoError(t, err)

	current, err := w.CurrentAccount()
	require.NoError(t, err)
	assert.Equal(t, current.Address, resp.Address)

	png, err := base64.StdEncoding.DecodeString(resp.QR)
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), png[:4])
}

func hexString(b []byte) string {
	return hex.EncodeToString(b)
}

func TestListNFTs(t *testing.T) {
	w := newWallet(t)
	node := &fakeNode{nfts: []model.NFT{{TokenID: "1", Name: "Owl"}}}
	s := NewService(w, node, 2)
	account, err := w.CurrentAccount()
	require.NoError(t, err)

	resp, err := s.ListNFTs(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, account.Address, resp.Owner)
	assert.Equal(t, account.Address, node.nftOwner)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Owl", resp.Items[0].Name)

	resp, err = s.ListNFTs(context.Background(), recipient)
	require.NoError(t, err)
	assert.Equal(t, recipient, node.nftOwner)

	node.nfts = nil
	resp, err = s.ListNFTs(context.Background(), recipient)
	require.NoError(t, err)
	assert.NotNil(t, resp.Items)

	_, err = s.ListNFTs(context.Background(), "bogus")
	assert.True(t, IsValidationError(err))
}

func TestMintNFT(t *testing.T) {
	w := newWallet(t)
	node := &fakeNode{}
	s := NewService(w, node, 2)
	account, err := w.CurrentAccount()
	require.NoError(t, err)

	resp, err := s.MintNFT(context.Background(), &model.MintNFTRequest{
		Name:       "Owl",
		Attributes: []model.NFTAttribute{{TraitType: "eyes", Value: 2.0}},
	})
	require.NoError(t, err)
	assert.Equal(t, "token-1", resp.TokenID)
	assert.Equal(t, account.Address, resp.Owner)
	require.Len(t, node.minted, 1)
	assert.Equal(t, account.Address, node.minted[0].Owner)

	_, err = s.MintNFT(context.Background(), &model.MintNFTRequest{})
	assert.True(t, IsValidationError(err))

	_, err = s.MintNFT(context.Background(), &model.MintNFTRequest{
		Name:       "Owl",
		Attributes: []model.NFTAttribute{{TraitType: "eyes", Value: []string{"x"}}},
	})
	assert.True(t, IsValidationError(err))
	assert.Len(t, node.minted, 1)
}

func TestTransferNFT(t *testing.T) {
	w := newWallet(t)
	node := &fakeNode{}
	s := NewService(w, node, 2)
	account, err := w.CurrentAccount()
	require.NoError(t, err)

	resp, err := s.TransferNFT(context.Background(), &model.TransferNFTRequest{TokenID: "7", ToAddress: recipient})
	require.NoError(t, err)
	assert.Equal(t, "tx-nft", resp.TxID)
	assert.Equal(t, account.Address, resp.From)
	assert.Equal(t, [][2]string{{"7", recipient}}, node.transfers)

	tests := []model.TransferNFTRequest{
		{ToAddress: recipient},
		{TokenID: "7", ToAddress: "nope"},
		{TokenID: "7", ToAddress: account.Address},
	}
	for _, req := range tests {
		_, err := s.TransferNFT(context.Background(), &req)
		assert.True(t, IsValidationError(err), "%+v", req)
	}
	assert.Len(t, node.transfers, 1)

	node.sendErr = errors.New("node down")
	_, err = s.TransferNFT(context.Background(), &model.TransferNFTRequest{TokenID: "7", ToAddress: recipient})
	assert.ErrorIs(t, err, node.sendErr)
}

func TestNFT_NoWallet(t *testing.T) {
	s := NewService(wallet.NewService(vault.NewMemoryVault()), &fakeNode{}, 2)
	_, err := s.ListNFTs(context.Background(), "")
	assert.True(t, wallet.IsNoAccountError(err))
	_, err = s.MintNFT(context.Background(), &model.MintNFTRequest{Name: "Owl"})
	assert.True(t, wallet.IsNoAccountError(err))
}

func TestGetBalance_SharedAcrossAccounts(t *testing.T) {
	w := newWallet(t)
	node := &fakeNode{balances: map[string]json.Number{"": "3"}}
	s := NewService(w, node, 2)

	first, err := s.GetBalance(context.Background(), "")
	require.NoError(t, err)

	_, err = w.CreateAccount()
	require.NoError(t, err)
	require.NoError(t, w.SwitchAccount(1))

	second, err := s.GetBalance(context.Background(), "")
	require.NoError(t, err)
	assert.NotEqual(t, first.Address, second.Address)
	assert.Equal(t, first.Balance, second.Balance)
}
