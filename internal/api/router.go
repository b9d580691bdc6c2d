package api

import (
	"net/http"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/AlexZinkM/drachma-wallet/docs"
	"github.com/AlexZinkM/drachma-wallet/internal/handler"
)

// Handlers groups the endpoint handlers served by the router
type Handlers struct {
	Wallet   *handler.WalletHandler
	Mining   *handler.MiningHandler
	Settings *handler.SettingsHandler
}

// SetupRouter sets up router with handlers
func SetupRouter(h Handlers) http.Handler {
	r := mux.NewRouter()

	// Swagger UI
	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}).Methods(http.MethodGet)

	// Wallet endpoints
	r.HandleFunc("/wallet", h.Wallet.Delete).Methods(http.MethodDelete)
	r.HandleFunc("/wallet/generate", h.Wallet.Generate).Methods(http.MethodPost)
	r.HandleFunc("/wallet/restore", h.Wallet.Restore).Methods(http.MethodPost)
	r.HandleFunc("/wallet/accounts", h.Wallet.Accounts).Methods(http.MethodGet)
	r.HandleFunc("/wallet/accounts", h.Wallet.CreateAccount).Methods(http.MethodPost)
	r.HandleFunc("/wallet/accounts/switch", h.Wallet.SwitchAccount).Methods(http.MethodPost)
	r.HandleFunc("/wallet/current", h.Wallet.Current).Methods(http.MethodGet)
	r.HandleFunc("/wallet/sign", h.Wallet.Sign).Methods(http.MethodPost)
	r.HandleFunc("/wallet/receive", h.Wallet.Receive).Methods(http.MethodGet)
	r.HandleFunc("/wallet/balance", h.Wallet.GetBalance).Methods(http.MethodGet)
	r.HandleFunc("/wallet/transactions", h.Wallet.TransactionHistory).Methods(http.MethodGet)
	r.HandleFunc("/wallet/send", h.Wallet.Send).Methods(http.MethodPost)

	// NFT endpoints
	r.HandleFunc("/nft", h.Wallet.ListNFTs).Methods(http.MethodGet)
	r.HandleFunc("/nft/mint", h.Wallet.MintNFT).Methods(http.MethodPost)
	r.HandleFunc("/nft/transfer", h.Wallet.TransferNFT).Methods(http.MethodPost)

	// Mining endpoints
	r.HandleFunc("/mining/start", h.Mining.Start).Methods(http.MethodPost)
	r.HandleFunc("/mining/stop", h.Mining.Stop).Methods(http.MethodPost)
	r.HandleFunc("/mining/stats", h.Mining.Stats).Methods(http.MethodGet)
	r.HandleFunc("/mining/stats/reset", h.Mining.ResetStats).Methods(http.MethodPost)
	r.HandleFunc("/mining/can-run", h.Mining.CanRun).Methods(http.MethodGet)
	r.HandleFunc("/mining/config", h.Mining.GetConfig).Methods(http.MethodGet)
	r.HandleFunc("/mining/config", h.Mining.UpdateConfig).Methods(http.MethodPut)
	r.HandleFunc("/mining/background", h.Mining.SetBackground).Methods(http.MethodPut)

	// Settings endpoints
	r.HandleFunc("/settings", h.Settings.Get).Methods(http.MethodGet)
	r.HandleFunc("/settings", h.Settings.Update).Methods(http.MethodPut)
	r.HandleFunc("/settings/networks", h.Settings.Networks).Methods(http.MethodGet)

	r.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)

	return r
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusMethodNotAllowed)
	w.Write([]byte(`{"error":"method not allowed","code":"method_not_allowed"}`))
}
