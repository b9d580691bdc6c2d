package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/AlexZinkM/drachma-wallet/drachma"
	"github.com/AlexZinkM/drachma-wallet/internal/client"
	"github.com/AlexZinkM/drachma-wallet/internal/config"
	"github.com/AlexZinkM/drachma-wallet/internal/device"
	"github.com/AlexZinkM/drachma-wallet/internal/model"
	"github.com/AlexZinkM/drachma-wallet/internal/settings"
	"github.com/AlexZinkM/drachma-wallet/internal/vault"
	"github.com/AlexZinkM/drachma-wallet/mining"
	"github.com/AlexZinkM/drachma-wallet/wallet"
)

// app holds everything a command needs, built once per invocation
type app struct {
	cfg      *config.Config
	logger   *zap.Logger
	settings *settings.Store
	network  model.Network

	vault   *vault.FileVault
	node    *client.NodeClient
	wallet  *wallet.Service
	drachma *drachma.Service
	mining  *mining.Service
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "drachma",
		Short:        "Drachma wallet and mobile miner",
		SilenceUsage: true,
		Long: `Drachma wallet core.

Configuration comes from environment variables (DRACHMA_DATA_DIR,
DRACHMA_NETWORK, DRACHMA_RPC_URL, MINING_*, ...). The vault password is
always read from the terminal.`,
	}

	root.AddCommand(
		serveCmd(),
		walletCmd(),
		mineCmd(),
		settingsCmd(),
	)
	return root
}

// loadApp reads configuration and settings without touching the vault
func loadApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger, err := config.NewLogger(cfg.LogLevel, cfg.LogDevelopment)
	if err != nil {
		return nil, err
	}

	store := settings.NewStore(cfg.DataDir)
	saved, err := store.Load()
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:      cfg,
		logger:   logger,
		settings: store,
		network:  cfg.ResolveNetwork(saved.Network),
	}, nil
}

// openVault prompts for the password and unlocks the vault. A new vault asks
// for the password twice.
func (a *app) openVault() error {
	dir := a.cfg.VaultDir()

	var password []byte
	var err error
	if vault.Exists(dir) {
		password, err = config.PromptForPassword("Vault password: ")
	} else {
		fmt.Println("No vault found, creating a new one at", dir)
		password, err = config.PromptForNewPassword("New vault password: ")
	}
	if err != nil {
		return err
	}
	defer clear(password)

	v, err := vault.Open(dir, password)
	if err != nil {
		if errors.Is(err, vault.ErrInvalidPassword) {
			return errors.New("wrong vault password")
		}
		return err
	}
	a.vault = v
	a.wallet = wallet.NewService(v, wallet.WithLogger(a.logger.Named("wallet")))
	return nil
}

// connect builds the node client and the services that use it
func (a *app) connect() error {
	node, err := client.NewNodeClient(client.Config{
		URL:      a.cfg.NodeURL(a.network),
		Username: a.cfg.RPCUser,
		Password: a.cfg.RPCPassword,
		Timeout:  a.cfg.RPCTimeout,
	}, client.WithLogger(a.logger.Named("rpc")))
	if err != nil {
		return err
	}
	a.node = node

	if a.wallet != nil {
		a.drachma = drachma.NewService(a.wallet, node, model.Networks[a.network].ChainID,
			drachma.WithLogger(a.logger.Named("drachma")),
			drachma.WithPayCooldown(a.cfg.PayCooldown))
	}

	a.mining, err = mining.NewService(node, device.NewSysfs(a.cfg.Mining.SysfsRoot), a.cfg.MiningConfig(),
		mining.WithLogger(a.logger.Named("mining")))
	return err
}

func (a *app) close() {
	if a.mining != nil {
		a.mining.Stop()
	}
	if a.node != nil {
		a.node.Close()
	}
	if a.vault != nil {
		a.vault.Close()
	}
	a.logger.Sync()
}
