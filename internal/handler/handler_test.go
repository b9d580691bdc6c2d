package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/AlexZinkM/drachma-wallet/drachma"
	"github.com/AlexZinkM/drachma-wallet/internal/client"
	"github.com/AlexZinkM/drachma-wallet/internal/device"
	"github.com/AlexZinkM/drachma-wallet/internal/model"
	"github.com/AlexZinkM/drachma-wallet/internal/settings"
	"github.com/AlexZinkM/drachma-wallet/internal/vault"
	"github.com/AlexZinkM/drachma-wallet/mining"
	"github.com/AlexZinkM/drachma-wallet/wallet"
)

const abandonMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

type stubNode struct {
	balance json.Number
	err     error
}

func (n *stubNode) GetBalance(context.Context, string) (json.Number, error) {
	return n.balance, n.err
}

func (n *stubNode) ListTransactions(context.Context, int, int) ([]client.NodeTransaction, error) {
	return []client.NodeTransaction{
		{Category: "receive", Amount: "2", TxID: "a", Time: 1700000000},
		{Category: "send", Amount: "-1", Fee: "-0.0001", TxID: "b", Time: 1700086400},
	}, n.err
}

func (n *stubNode) SendRawTransaction(context.Context, string) (string, error) {
	return "tx-1", n.err
}

func (n *stubNode) EstimateFee(context.Context, int) (json.Number, error) {
	return "", errors.New("no estimate")
}

func (n *stubNode) ListNFTs(_ context.Context, owner string) ([]model.NFT, error) {
	return []model.NFT{{TokenID: "7", Name: "Owl", Owner: owner}}, n.err
}

func (n *stubNode) MintNFT(context.Context, model.NFT) (string, error) {
	return "token-1", n.err
}

func (n *stubNode) TransferNFT(context.Context, string, string) (string, error) {
	return "tx-nft", n.err
}

type stubSource struct{}

func (stubSource) GetBlockTemplate(context.Context) (*client.BlockTemplate, error) {
	return nil, errors.New("offline")
}

func (stubSource) SubmitShare(context.Context, client.Share) (bool, string, error) {
	return true, "", nil
}

func newWalletHandler(t *testing.T, node *stubNode) (*WalletHandler, *wallet.Service) {
	t.Helper()
	w := wallet.NewService(vault.NewMemoryVault())
	d := drachma.NewService(w, node, 2, drachma.WithPayCooldown(time.Minute))
	return NewWalletHandler(w, d, zap.NewNop()), w
}

func do(h http.HandlerFunc, method, target string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) model.ErrorResponse {
	t.Helper()
	var resp model.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestGenerate(t *testing.T) {
	h, _ := newWalletHandler(t, &stubNode{})

	rec := do(h.Generate, http.MethodPost, "/wallet/generate", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp model.GenerateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Len(t, strings.Fields(resp.Mnemonic), 24)
	assert.Contains(t, resp.Address, "drm")

	rec = do(h.Generate, http.MethodPost, "/wallet/generate", model.GenerateRequest{})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "wallet_exists", decodeError(t, rec).Code)
}

func TestRestore(t *testing.T) {
	h, _ := newWalletHandler(t, &stubNode{})

	rec := do(h.Restore, http.MethodPost, "/wallet/restore", model.RestoreRequest{Mnemonic: "abandon abandon"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_mnemonic", decodeError(t, rec).Code)

	rec = do(h.Restore, http.MethodPost, "/wallet/restore", model.RestoreRequest{Mnemonic: abandonMnemonic})
	require.Equal(t, http.StatusOK, rec.Code)
	var resp model.GenerateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Mnemonic)

	rec = do(h.Restore, http.MethodPost, "/wallet/restore", map[string]string{"mnemonic": abandonMnemonic, "extra": "x"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAccounts(t *testing.T) {
	h, w := newWalletHandler(t, &stubNode{})

	rec := do(h.Current, http.MethodGet, "/wallet/current", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "no_wallet", decodeError(t, rec).Code)

	require.NoError(t, w.RestoreWallet(abandonMnemonic, ""))

	rec = do(h.CreateAccount, http.MethodPost, "/wallet/accounts", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var created model.WalletAccount
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, uint32(1), created.Index)
	assert.Empty(t, created.PrivateKey)

	rec = do(h.Accounts, http.MethodGet, "/wallet/accounts", nil)
	var accounts []model.WalletAccount
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &accounts))
	assert.Len(t, accounts, 2)

	rec = do(h.SwitchAccount, http.MethodPost, "/wallet/accounts/switch", model.SwitchAccountRequest{Index: 5})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_index", decodeError(t, rec).Code)

	rec = do(h.SwitchAccount, http.MethodPost, "/wallet/accounts/switch", model.SwitchAccountRequest{Index: 1})
	require.Equal(t, http.StatusOK, rec.Code)
	var current model.WalletAccount
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &current))
	assert.Equal(t, created.Address, current.Address)
}

func TestSign(t *testing.T) {
	h, w := newWalletHandler(t, &stubNode{})
	require.NoError(t, w.RestoreWallet(abandonMnemonic, ""))

	rec := do(h.Sign, http.MethodPost, "/wallet/sign", model.TransactionPayload{ChainID: 2, Amount: 1})
	require.Equal(t, http.StatusOK, rec.Code)
	var sig model.Signature
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sig))
	assert.Len(t, sig.Signature, 128)
}

func TestDelete(t *testing.T) {
	h, w := newWalletHandler(t, &stubNode{})
	require.NoError(t, w.RestoreWallet(abandonMnemonic, ""))

	rec := do(h.Delete, http.MethodDelete, "/wallet", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	has, err := w.HasWallet()
	require.NoError(t, err)
	assert.False(t, has)
}

func TestGetBalance(t *testing.T) {
	h, w := newWalletHandler(t, &stubNode{balance: "1.5"})
	require.NoError(t, w.RestoreWallet(abandonMnemonic, ""))

	rec := do(h.GetBalance, http.MethodGet, "/wallet/balance", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp model.BalanceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "1.50000000", resp.Balance)
}

func TestGetBalance_NodeErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"rpc", &client.RPCError{Method: "getbalance", Code: -5, Message: "bad"}, http.StatusBadGateway, "rpc_error"},
		{"network", &client.NetworkError{Method: "getbalance", Err: errors.New("refused")}, http.StatusServiceUnavailable, "network_error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, w := newWalletHandler(t, &stubNode{err: tt.err})
			require.NoError(t, w.RestoreWallet(abandonMnemonic, ""))

			rec := do(h.GetBalance, http.MethodGet, "/wallet/balance", nil)
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.code, decodeError(t, rec).Code)
		})
	}
}

func TestSend(t *testing.T) {
	h, w := newWalletHandler(t, &stubNode{balance: "10"})
	require.NoError(t, w.RestoreWallet(abandonMnemonic, ""))
	to := "drm1234567890abcdef1234567890abcdef12345678"

	rec := do(h.Send, http.MethodPost, "/wallet/send", model.PayRequest{ToAddress: to})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(h.Send, http.MethodPost, "/wallet/send", model.PayRequest{ToAddress: "nope", Amount: "1"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(h.Send, http.MethodPost, "/wallet/send", model.PayRequest{ToAddress: to, Amount: "100"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "insufficient_funds", decodeError(t, rec).Code)

	rec = do(h.Send, http.MethodPost, "/wallet/send", model.PayRequest{ToAddress: to, Amount: "1"})
	require.Equal(t, http.StatusOK, rec.Code)
	var resp model.PayResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "tx-1", resp.TxID)

	rec = do(h.Send, http.MethodPost, "/wallet/send", model.PayRequest{ToAddress: to, Amount: "1"})
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestTransactionHistory(t *testing.T) {
	h, w := newWalletHandler(t, &stubNode{})
	require.NoError(t, w.RestoreWallet(abandonMnemonic, ""))

	rec := do(h.TransactionHistory, http.MethodGet, "/wallet/transactions?type=send", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp model.LogResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Transactions, 1)
	assert.Equal(t, "b", resp.Transactions[0].TxID)

	rec = do(h.TransactionHistory, http.MethodGet, "/wallet/transactions?to=2023-11-14", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Transactions, 1)
	assert.Equal(t, "a", resp.Transactions[0].TxID)

	for _, q := range []string{"from=14-11-2023", "type=stake", "count=-1", "from=2023-11-15&to=2023-11-14"} {
		rec = do(h.TransactionHistory, http.MethodGet, "/wallet/transactions?"+q, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, q)
	}
}

func TestReceive(t *testing.T) {
	h, w := newWalletHandler(t, &stubNode{})
	require.NoError(t, w.RestoreWallet(abandonMnemonic, ""))

	rec := do(h.Receive, http.MethodGet, "/wallet/receive", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp model.ReceiveResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.QR)
}

func TestNFTEndpoints(t *testing.T) {
	h, w := newWalletHandler(t, &stubNode{})

	rec := do(h.ListNFTs, http.MethodGet, "/nft", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	require.NoError(t, w.RestoreWallet(abandonMnemonic, ""))
	account, err := w.CurrentAccount()
	require.NoError(t, err)

	rec = do(h.ListNFTs, http.MethodGet, "/nft", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list model.NFTListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Equal(t, account.Address, list.Owner)
	require.Len(t, list.Items, 1)

	rec = do(h.ListNFTs, http.MethodGet, "/nft?owner=bogus", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(h.MintNFT, http.MethodPost, "/nft/mint", model.MintNFTRequest{Name: "Owl"})
	require.Equal(t, http.StatusOK, rec.Code)
	var minted model.MintNFTResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &minted))
	assert.Equal(t, "token-1", minted.TokenID)

	rec = do(h.MintNFT, http.MethodPost, "/nft/mint", model.MintNFTRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(h.TransferNFT, http.MethodPost, "/nft/transfer", model.TransferNFTRequest{
		TokenID:   "7",
		ToAddress: "drm1234567890abcdef1234567890abcdef12345678",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var sent model.TransferNFTResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sent))
	assert.Equal(t, "tx-nft", sent.TxID)
	assert.Equal(t, account.Address, sent.From)
}

func newMiningHandler(t *testing.T, st device.State) *MiningHandler {
	t.Helper()
	cfg := model.DefaultMiningConfig()
	cfg.SleepBetweenBatches = time.Millisecond
	cfg.MonitorInterval = 100 * time.Millisecond
	m, err := mining.NewService(stubSource{}, device.Static(st), cfg)
	require.NoError(t, err)
	t.Cleanup(m.Stop)
	return NewMiningHandler(m, zap.NewNop())
}

func TestMiningStartStop(t *testing.T) {
	h := newMiningHandler(t, device.State{BatteryLevel: 90, IsCharging: true, Temperature: 30})

	rec := do(h.Start, http.MethodPost, "/mining/start", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var stats model.MiningStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, model.MiningRunning, stats.State)

	rec = do(h.Stop, http.MethodPost, "/mining/stop", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, model.MiningStopped, stats.State)
}

func TestMiningStart_GateClosed(t *testing.T) {
	h := newMiningHandler(t, device.State{BatteryLevel: 90, IsCharging: false})

	rec := do(h.CanRun, http.MethodGet, "/mining/can-run", nil)
	var canRun model.CanRunResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &canRun))
	assert.False(t, canRun.CanRun)

	rec = do(h.Start, http.MethodPost, "/mining/start", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "gate_closed", decodeError(t, rec).Code)
}

func TestMiningConfig_IntervalsInMilliseconds(t *testing.T) {
	h := newMiningHandler(t, device.State{BatteryLevel: 90, IsCharging: true})

	rec := do(h.UpdateConfig, http.MethodPut, "/mining/config",
		json.RawMessage(`{"sleepBetweenBatches":250,"monitorInterval":5000}`))
	require.Equal(t, http.StatusOK, rec.Code)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	assert.Equal(t, 250.0, raw["sleepBetweenBatches"])
	assert.Equal(t, 5000.0, raw["monitorInterval"])
	// untouched fields keep their values
	assert.Equal(t, 30000.0, raw["jobRefreshInterval"])
	assert.Equal(t, 100.0, raw["hashBatchSize"])

	rec = do(h.UpdateConfig, http.MethodPut, "/mining/config", json.RawMessage(`{"monitorInterval":5}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMiningConfig(t *testing.T) {
	h := newMiningHandler(t, device.State{BatteryLevel: 90, IsCharging: true})

	cfg := model.DefaultMiningConfig()
	cfg.MinBatteryLevel = 50
	rec := do(h.UpdateConfig, http.MethodPut, "/mining/config", cfg)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(h.GetConfig, http.MethodGet, "/mining/config", nil)
	var got model.MiningConfig
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 50, got.MinBatteryLevel)

	cfg.MinBatteryLevel = 150
	rec = do(h.UpdateConfig, http.MethodPut, "/mining/config", cfg)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(h.SetBackground, http.MethodPut, "/mining/background", model.BackgroundRequest{Background: true})
	require.Equal(t, http.StatusOK, rec.Code)
	var stats model.MiningStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.True(t, stats.Background)
}

func TestSettings(t *testing.T) {
	h := NewSettingsHandler(settings.NewStore(t.TempDir()), zap.NewNop())

	rec := do(h.Get, http.MethodGet, "/settings", nil)
	var s model.Settings
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &s))
	assert.Equal(t, model.DefaultSettings(), s)

	rec = do(h.Update, http.MethodPut, "/settings", map[string]string{"network": "mainnet"})
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &s))
	assert.Equal(t, model.NetworkMainnet, s.Network)
	assert.Equal(t, "system", s.Theme)

	rec = do(h.Update, http.MethodPut, "/settings", map[string]string{"network": "moon"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
