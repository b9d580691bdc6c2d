package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/AlexZinkM/drachma-wallet/drachma"
	"github.com/AlexZinkM/drachma-wallet/internal/client"
	"github.com/AlexZinkM/drachma-wallet/internal/model"
	"github.com/AlexZinkM/drachma-wallet/internal/vault"
	"github.com/AlexZinkM/drachma-wallet/wallet"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		json.NewEncoder(w).Encode(v)
	}
}

func writeBadRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: msg, Code: "bad_request"})
}

// writeError maps typed errors to a status and a stable code
func writeError(w http.ResponseWriter, logger *zap.Logger, err error) {
	status, code := http.StatusInternalServerError, "internal"
	switch {
	case drachma.IsValidationError(err):
		status, code = http.StatusBadRequest, "bad_request"
	case wallet.IsInvalidMnemonicError(err):
		status, code = http.StatusBadRequest, "invalid_mnemonic"
	case wallet.IsInvalidIndexError(err):
		status, code = http.StatusBadRequest, "invalid_index"
	case wallet.IsNoWalletError(err):
		status, code = http.StatusNotFound, "no_wallet"
	case wallet.IsNoAccountError(err):
		status, code = http.StatusNotFound, "no_account"
	case drachma.IsCooldownError(err):
		status, code = http.StatusTooManyRequests, "cooldown"
	case drachma.IsInsufficientFundsError(err):
		status, code = http.StatusUnprocessableEntity, "insufficient_funds"
	case client.IsRPCError(err):
		status, code = http.StatusBadGateway, "rpc_error"
	case client.IsNetworkError(err):
		status, code = http.StatusServiceUnavailable, "network_error"
	case vault.IsStorageError(err):
		status, code = http.StatusInternalServerError, "storage_error"
	}
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", zap.String("code", code), zap.Error(err))
	}
	writeJSON(w, status, model.ErrorResponse{Error: err.Error(), Code: code})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
