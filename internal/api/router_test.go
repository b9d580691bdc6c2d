package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/AlexZinkM/drachma-wallet/drachma"
	"github.com/AlexZinkM/drachma-wallet/internal/client"
	"github.com/AlexZinkM/drachma-wallet/internal/device"
	"github.com/AlexZinkM/drachma-wallet/internal/handler"
	"github.com/AlexZinkM/drachma-wallet/internal/model"
	"github.com/AlexZinkM/drachma-wallet/internal/settings"
	"github.com/AlexZinkM/drachma-wallet/internal/vault"
	"github.com/AlexZinkM/drachma-wallet/mining"
	"github.com/AlexZinkM/drachma-wallet/wallet"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	logger := zap.NewNop()

	// Unreachable node: no request in this test talks to it
	node, err := client.NewNodeClient(client.Config{URL: "http://127.0.0.1:1"})
	require.NoError(t, err)
	w := wallet.NewService(vault.NewMemoryVault())
	m, err := mining.NewService(node, device.Static{BatteryLevel: 10}, model.DefaultMiningConfig())
	require.NoError(t, err)

	return SetupRouter(Handlers{
		Wallet:   handler.NewWalletHandler(w, drachma.NewService(w, node, 2), logger),
		Mining:   handler.NewMiningHandler(m, logger),
		Settings: handler.NewSettingsHandler(settings.NewStore(t.TempDir()), logger),
	})
}

func TestRouter(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		method string
		path   string
		status int
	}{
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/wallet/current", http.StatusNotFound},
		{http.MethodGet, "/wallet/accounts", http.StatusNotFound},
		{http.MethodGet, "/mining/stats", http.StatusOK},
		{http.MethodGet, "/mining/can-run", http.StatusOK},
		{http.MethodGet, "/settings", http.StatusOK},
		{http.MethodGet, "/settings/networks", http.StatusOK},
		{http.MethodPost, "/settings", http.StatusMethodNotAllowed},
		{http.MethodGet, "/wallet/send", http.StatusMethodNotAllowed},
		{http.MethodGet, "/nft", http.StatusNotFound},
		{http.MethodGet, "/nft/mint", http.StatusMethodNotAllowed},
		{http.MethodGet, "/nope", http.StatusNotFound},
		{http.MethodGet, "/swagger/doc.json", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
