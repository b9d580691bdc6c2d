package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/AlexZinkM/drachma-wallet/internal/common"
	"github.com/AlexZinkM/drachma-wallet/internal/model"
)

func mineCmd() *cobra.Command {
	var background bool
	var every time.Duration

	cmd := &cobra.Command{
		Use:   "mine",
		Short: "Mine in the foreground until interrupted",
		Long: `Mine in the foreground and print statistics periodically.

Mining stops on Ctrl-C, or on its own when the battery drops below
MINING_MIN_BATTERY_LEVEL, the device overheats, or it is unplugged while
MINING_ENABLE_ON_BATTERY is false.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			defer a.close()
			if err := a.connect(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a.mining.SetBackgroundMode(background)
			if err := a.mining.Start(ctx); err != nil {
				return err
			}
			if a.mining.State() == model.MiningStopped {
				return errors.New("device conditions do not allow mining (see MINING_* settings)")
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "mining started %s\n", common.FormatDate(time.Now()))
			ticker := time.NewTicker(every)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					a.mining.Stop()
					printStats(out, a.mining.Stats())
					return nil
				case <-a.mining.Done():
					stats := a.mining.Stats()
					printStats(out, stats)
					return fmt.Errorf("mining stopped: %s", stats.StopReason)
				case <-ticker.C:
					printStats(out, a.mining.Stats())
				}
			}
		},
	}
	cmd.Flags().BoolVar(&background, "background", false, "use the background batch size")
	cmd.Flags().DurationVar(&every, "interval", 10*time.Second, "statistics print interval")
	return cmd
}

func printStats(w io.Writer, s model.MiningStats) {
	lastShare := "never"
	if s.LastShareTime != nil {
		lastShare = common.FormatRelativeTime(*s.LastShareTime, time.Now())
	}
	fmt.Fprintf(w, "%-8s %10.1f H/s  nonces=%d  shares=%d/%d/%d  last share=%s  battery=%d%% charging=%t temp=%.1fC  job=%s\n",
		s.State, s.HashRate, s.NoncesTried,
		s.SharesFound, s.SharesAccepted, s.SharesRejected, lastShare,
		s.BatteryLevel, s.IsCharging, s.Temperature, s.JobID)
}
