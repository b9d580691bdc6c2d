package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlexZinkM/drachma-wallet/internal/model"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8080", cfg.ListenAddr)
	assert.Empty(t, cfg.Network)
	assert.Equal(t, model.NetworkMainnet, cfg.ResolveNetwork(model.NetworkMainnet))
	assert.Equal(t, 30*time.Second, cfg.RPCTimeout)
	assert.Equal(t, model.DefaultMiningConfig(), cfg.MiningConfig())
	assert.Equal(t, model.Networks[model.NetworkTestnet].RPCURL, cfg.NodeURL(model.NetworkTestnet))
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DRACHMA_NETWORK", "local")
	t.Setenv("DRACHMA_RPC_URL", "http://node:9000")
	t.Setenv("PAY_COOLDOWN", "4m")
	t.Setenv("MINING_HASH_BATCH_SIZE", "250")
	t.Setenv("MINING_ENABLE_ON_BATTERY", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, model.NetworkLocal, cfg.ResolveNetwork(model.NetworkMainnet))
	assert.Equal(t, "http://node:9000", cfg.NodeURL(cfg.Network))
	assert.Equal(t, 4*time.Minute, cfg.PayCooldown)

	mc := cfg.MiningConfig()
	assert.Equal(t, 250, mc.HashBatchSize)
	assert.True(t, mc.EnableOnBattery)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("DRACHMA_NETWORK", "moonnet")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_ZeroSleepRejected(t *testing.T) {
	t.Setenv("MINING_SLEEP_BETWEEN_BATCHES", "0s")
	_, err := Load()
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger("debug", true)
	require.NoError(t, err)
	assert.NotNil(t, logger)

	_, err = NewLogger("loud", false)
	assert.Error(t, err)
}
