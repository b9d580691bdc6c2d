package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/AlexZinkM/drachma-wallet/internal/api"
	"github.com/AlexZinkM/drachma-wallet/internal/handler"
)

const shutdownTimeout = 10 * time.Second

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Unlock the vault and serve the local HTTP API",
		Long: `Unlock the vault and serve the wallet, mining and settings API on
LISTEN_ADDR. Swagger UI is available under /swagger/.

When MINING_ENABLED is true mining starts right away, subject to the
battery and charging gate.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			if err := a.openVault(); err != nil {
				return err
			}
			if err := a.connect(); err != nil {
				a.close()
				return err
			}
			defer a.close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serve(ctx, a)
		},
	}
}

func serve(ctx context.Context, a *app) error {
	router := api.SetupRouter(api.Handlers{
		Wallet:   handler.NewWalletHandler(a.wallet, a.drachma, a.logger.Named("http")),
		Mining:   handler.NewMiningHandler(a.mining, a.logger.Named("http")),
		Settings: handler.NewSettingsHandler(a.settings, a.logger.Named("http")),
	})

	srv := &http.Server{
		Addr:              a.cfg.ListenAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	if a.cfg.Mining.Enabled {
		if err := a.mining.Start(ctx); err != nil {
			a.logger.Warn("mining did not start", zap.Error(err))
		}
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("listening",
			zap.String("addr", a.cfg.ListenAddr),
			zap.String("network", string(a.network)))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	a.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
