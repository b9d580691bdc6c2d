package handler

import (
	"errors"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/AlexZinkM/drachma-wallet/drachma"
	"github.com/AlexZinkM/drachma-wallet/internal/model"
	"github.com/AlexZinkM/drachma-wallet/wallet"
)

// WalletHandler serves wallet and account endpoints
type WalletHandler struct {
	wallet  *wallet.Service
	drachma *drachma.Service
	logger  *zap.Logger
}

// NewWalletHandler creates a new WalletHandler
func NewWalletHandler(w *wallet.Service, d *drachma.Service, logger *zap.Logger) *WalletHandler {
	return &WalletHandler{wallet: w, drachma: d, logger: logger}
}

// Generate handles POST /wallet/generate
// @Summary      Generate new wallet
// @Description  Generates a 24-word wallet, derives account 0 and stores it in the vault. The mnemonic is returned only in this response.
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.GenerateRequest  false  "Optional BIP-39 passphrase"
// @Success      200      {object}  model.GenerateResponse
// @Failure      409      {object}  model.ErrorResponse
// @Router       /wallet/generate [post]
func (h *WalletHandler) Generate(w http.ResponseWriter, r *http.Request) {
	// Body is optional
	var req model.GenerateRequest
	if err := decodeBody(w, r, &req); err != nil && !errors.Is(err, io.EOF) {
		writeBadRequest(w, err.Error())
		return
	}

	if !h.ensureNoWallet(w) {
		return
	}

	mnemonic, err := h.wallet.GenerateWallet(req.Passphrase)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	account, err := h.wallet.CurrentAccount()
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, model.GenerateResponse{
		Success:  true,
		Message:  "Wallet generated successfully. Write down the mnemonic, it will not be shown again",
		Address:  account.Address,
		Mnemonic: mnemonic,
	})
}

// Restore handles POST /wallet/restore
// @Summary      Restore wallet
// @Description  Restores a wallet from its mnemonic and optional passphrase
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.RestoreRequest  true  "Mnemonic and passphrase"
// @Success      200      {object}  model.GenerateResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      409      {object}  model.ErrorResponse
// @Router       /wallet/restore [post]
func (h *WalletHandler) Restore(w http.ResponseWriter, r *http.Request) {
	var req model.RestoreRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	if !h.ensureNoWallet(w) {
		return
	}

	if err := h.wallet.RestoreWallet(req.Mnemonic, req.Passphrase); err != nil {
		writeError(w, h.logger, err)
		return
	}

	account, err := h.wallet.CurrentAccount()
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, model.GenerateResponse{
		Success: true,
		Message: "Wallet restored successfully",
		Address: account.Address,
	})
}

func (h *WalletHandler) ensureNoWallet(w http.ResponseWriter) bool {
	has, err := h.wallet.HasWallet()
	if err != nil {
		writeError(w, h.logger, err)
		return false
	}
	if has {
		writeJSON(w, http.StatusConflict, model.ErrorResponse{
			Error: "wallet already exists, delete it first",
			Code:  "wallet_exists",
		})
		return false
	}
	return true
}

// Delete handles DELETE /wallet
// @Summary      Delete wallet
// @Description  Irreversibly erases the wallet from the vault
// @Tags         wallet
// @Success      204
// @Router       /wallet [delete]
func (h *WalletHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.wallet.DeleteWallet(); err != nil {
		writeError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Accounts handles GET /wallet/accounts
// @Summary      List accounts
// @Tags         wallet
// @Produce      json
// @Success      200  {array}   model.WalletAccount
// @Failure      404  {object}  model.ErrorResponse
// @Router       /wallet/accounts [get]
func (h *WalletHandler) Accounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.wallet.Accounts()
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, accounts)
}

// CreateAccount handles POST /wallet/accounts
// @Summary      Create account
// @Description  Derives the next account index. The current account does not change.
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  model.WalletAccount
// @Failure      404  {object}  model.ErrorResponse
// @Router       /wallet/accounts [post]
func (h *WalletHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	account, err := h.wallet.CreateAccount()
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, account)
}

// SwitchAccount handles POST /wallet/accounts/switch
// @Summary      Switch current account
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.SwitchAccountRequest  true  "Account position"
// @Success      200      {object}  model.WalletAccount
// @Failure      400      {object}  model.ErrorResponse
// @Router       /wallet/accounts/switch [post]
func (h *WalletHandler) SwitchAccount(w http.ResponseWriter, r *http.Request) {
	var req model.SwitchAccountRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	if err := h.wallet.SwitchAccount(req.Index); err != nil {
		writeError(w, h.logger, err)
		return
	}
	h.Current(w, r)
}

// Current handles GET /wallet/current
// @Summary      Current account
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  model.WalletAccount
// @Failure      404  {object}  model.ErrorResponse
// @Router       /wallet/current [get]
func (h *WalletHandler) Current(w http.ResponseWriter, r *http.Request) {
	account, err := h.wallet.CurrentAccount()
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	if account == nil {
		writeError(w, h.logger, &wallet.NoWalletError{})
		return
	}
	writeJSON(w, http.StatusOK, account)
}

// Sign handles POST /wallet/sign
// @Summary      Sign transaction payload
// @Description  Signs the canonical encoding of the payload with the current account (BIP-340 Schnorr)
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.TransactionPayload  true  "Payload"
// @Success      200      {object}  model.Signature
// @Failure      404      {object}  model.ErrorResponse
// @Router       /wallet/sign [post]
func (h *WalletHandler) Sign(w http.ResponseWriter, r *http.Request) {
	var payload model.TransactionPayload
	if err := decodeBody(w, r, &payload); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	sig, err := h.wallet.SignTransaction(payload)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, sig)
}

// Receive handles GET /wallet/receive
// @Summary      Receive address
// @Description  Current address with a base64 PNG QR code
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  model.ReceiveResponse
// @Router       /wallet/receive [get]
func (h *WalletHandler) Receive(w http.ResponseWriter, r *http.Request) {
	resp, err := h.drachma.Receive()
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetBalance handles GET /wallet/balance
// @Summary      Get wallet balance
// @Description  Node wallet balance, shared by every account
// @Tags         wallet
// @Produce      json
// @Param        assetId  query     string  false  "Asset id, empty for DRACHMA"
// @Success      200      {object}  model.BalanceResponse
// @Failure      502      {object}  model.ErrorResponse
// @Failure      503      {object}  model.ErrorResponse
// @Router       /wallet/balance [get]
func (h *WalletHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	balance, err := h.drachma.GetBalance(r.Context(), r.URL.Query().Get("assetId"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, balance)
}

// Send handles POST /wallet/send
// @Summary      Send DRACHMA
// @Description  Signs a transfer from the current account and broadcasts it
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.PayRequest  true  "Payment data"
// @Success      200      {object}  model.PayResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      422      {object}  model.ErrorResponse
// @Failure      429      {object}  model.ErrorResponse
// @Router       /wallet/send [post]
func (h *WalletHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req model.PayRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	if req.ToAddress == "" || req.Amount == "" {
		writeBadRequest(w, "toAddress and amount are required")
		return
	}

	resp, err := h.drachma.Send(r.Context(), &req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// TransactionHistory handles GET /wallet/transactions
// @Summary      Get wallet transactions
// @Description  Gets the node wallet history with filtering, newest first. Shared by every account.
// @Tags         wallet
// @Produce      json
// @Param        type       query     string   false  "Transaction type: send or receive"
// @Param        txId       query     string   false  "Transaction ID"
// @Param        assetId    query     string   false  "Asset id"
// @Param        from       query     string   false  "Start date (YYYY-MM-DD)"
// @Param        to         query     string   false  "End date (YYYY-MM-DD)"
// @Param        minAmount  query     string   false  "Minimum amount"
// @Param        maxAmount  query     string   false  "Maximum amount"
// @Param        count      query     int      false  "Entries to request from the node"
// @Param        skip       query     int      false  "Entries to skip"
// @Success      200  {object}  model.LogResponse
// @Router       /wallet/transactions [get]
func (h *WalletHandler) TransactionHistory(w http.ResponseWriter, r *http.Request) {
	var req model.LogRequest
	q := r.URL.Query()

	// Parse date parameters (YYYY-MM-DD)
	const dateLayout = "2006-01-02"
	if fromStr := q.Get("from"); fromStr != "" {
		t, err := time.Parse(dateLayout, fromStr)
		if err != nil {
			writeBadRequest(w, "invalid from date: use YYYY-MM-DD (e.g. 2006-01-02)")
			return
		}
		req.From = &t
	}
	if toStr := q.Get("to"); toStr != "" {
		t, err := time.Parse(dateLayout, toStr)
		if err != nil {
			writeBadRequest(w, "invalid to date: use YYYY-MM-DD (e.g. 2006-01-02)")
			return
		}
		// End of day so filter is inclusive
		t = t.Add(24*time.Hour - time.Nanosecond)
		req.To = &t
	}

	if typeStr := q.Get("type"); typeStr != "" {
		txType := model.TransactionType(typeStr)
		req.Type = &txType
	}
	if txID := q.Get("txId"); txID != "" {
		req.TxID = &txID
	}
	if assetID := q.Get("assetId"); assetID != "" {
		req.AssetID = &assetID
	}
	if minAmount := q.Get("minAmount"); minAmount != "" {
		req.MinAmount = &minAmount
	}
	if maxAmount := q.Get("maxAmount"); maxAmount != "" {
		req.MaxAmount = &maxAmount
	}

	var err error
	if req.Count, err = intParam(q.Get("count")); err != nil {
		writeBadRequest(w, "invalid count")
		return
	}
	if req.Skip, err = intParam(q.Get("skip")); err != nil {
		writeBadRequest(w, "invalid skip")
		return
	}

	if err := req.Validate(); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	logResp, err := h.drachma.GetTransactions(r.Context(), &req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, logResp)
}
