package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/AlexZinkM/drachma-wallet/internal/model"
)

// Config contains all configuration parameters for the application.
// The vault password is never read from the environment; see PromptForPassword.
type Config struct {
	ListenAddr     string        `envconfig:"LISTEN_ADDR" default:"127.0.0.1:8080"`
	DataDir        string        `envconfig:"DRACHMA_DATA_DIR" default:".drachma"`
	Network        model.Network `envconfig:"DRACHMA_NETWORK"` // overrides the saved setting when set
	RPCURL         string        `envconfig:"DRACHMA_RPC_URL"`
	RPCUser        string        `envconfig:"DRACHMA_RPC_USER"`
	RPCPassword    string        `envconfig:"DRACHMA_RPC_PASSWORD"`
	RPCTimeout     time.Duration `envconfig:"DRACHMA_RPC_TIMEOUT" default:"30s"`
	LogLevel       string        `envconfig:"LOG_LEVEL" default:"info"`
	LogDevelopment bool          `envconfig:"LOG_DEVELOPMENT" default:"false"`
	PayCooldown    time.Duration `envconfig:"PAY_COOLDOWN" default:"0s"`

	Mining Mining
}

// Mining mirrors model.MiningConfig; variables are prefixed with MINING_
type Mining struct {
	Enabled                 bool          `envconfig:"ENABLED" default:"false"`
	PoolURL                 string        `envconfig:"POOL_URL"`
	WorkerName              string        `envconfig:"WORKER_NAME"`
	MaxBatteryDrain         int           `envconfig:"MAX_BATTERY_DRAIN" default:"5"`
	EnableOnBattery         bool          `envconfig:"ENABLE_ON_BATTERY" default:"false"`
	EnableOnCharging        bool          `envconfig:"ENABLE_ON_CHARGING" default:"true"`
	MinBatteryLevel         int           `envconfig:"MIN_BATTERY_LEVEL" default:"30"`
	MaxTemperature          float64       `envconfig:"MAX_TEMPERATURE" default:"40"`
	HashBatchSize           int           `envconfig:"HASH_BATCH_SIZE" default:"100"`
	BackgroundHashBatchSize int           `envconfig:"BACKGROUND_HASH_BATCH_SIZE" default:"10"`
	SleepBetweenBatches     time.Duration `envconfig:"SLEEP_BETWEEN_BATCHES" default:"100ms"`
	LowPowerMode            bool          `envconfig:"LOW_POWER_MODE" default:"true"`
	MonitorInterval         time.Duration `envconfig:"MONITOR_INTERVAL" default:"5s"`
	JobRefreshInterval      time.Duration `envconfig:"JOB_REFRESH_INTERVAL" default:"30s"`
	SysfsRoot               string        `envconfig:"SYSFS_ROOT" default:"/sys/class"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	if _, ok := model.Networks[cfg.Network]; cfg.Network != "" && !ok {
		return nil, fmt.Errorf("unknown network %q", cfg.Network)
	}
	if err := cfg.MiningConfig().Validate(); err != nil {
		return nil, fmt.Errorf("invalid mining config: %w", err)
	}
	return cfg, nil
}

// ResolveNetwork returns the environment network, or saved when none is set
func (c *Config) ResolveNetwork(saved model.Network) model.Network {
	if c.Network != "" {
		return c.Network
	}
	return saved
}

// NodeURL returns the RPC URL override, or the URL of the given network
func (c *Config) NodeURL(network model.Network) string {
	if c.RPCURL != "" {
		return c.RPCURL
	}
	return model.Networks[network].RPCURL
}

// VaultDir is where encrypted records live
func (c *Config) VaultDir() string {
	return filepath.Join(c.DataDir, "vault")
}

// MiningConfig converts the environment settings into a model.MiningConfig
func (c *Config) MiningConfig() model.MiningConfig {
	m := c.Mining
	return model.MiningConfig{
		Enabled:                 m.Enabled,
		PoolURL:                 m.PoolURL,
		WorkerName:              m.WorkerName,
		MaxBatteryDrain:         m.MaxBatteryDrain,
		EnableOnBattery:         m.EnableOnBattery,
		EnableOnCharging:        m.EnableOnCharging,
		MinBatteryLevel:         m.MinBatteryLevel,
		MaxTemperature:          m.MaxTemperature,
		HashBatchSize:           m.HashBatchSize,
		BackgroundHashBatchSize: m.BackgroundHashBatchSize,
		SleepBetweenBatches:     m.SleepBetweenBatches,
		LowPowerMode:            m.LowPowerMode,
		MonitorInterval:         m.MonitorInterval,
		JobRefreshInterval:      m.JobRefreshInterval,
	}
}
