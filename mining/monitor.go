package mining

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/AlexZinkM/drachma-wallet/internal/device"
	"github.com/AlexZinkM/drachma-wallet/internal/model"
)

const (
	baseTemperature     = 28.0
	maxTemperatureDelta = 15.0
	hashesPerDegree     = 5000.0
)

// monitorLoop checks the device every MonitorInterval
func (s *Service) monitorLoop(ctx context.Context) {
	for {
		timer := time.NewTimer(s.Config().MonitorInterval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}
		s.checkDevice(ctx)
	}
}

// checkDevice is one monitoring tick
func (s *Service) checkDevice(ctx context.Context) {
	st, err := s.device.Read(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		s.mu.Lock()
		s.shutdownLocked(fmt.Sprintf("device read failed: %v", err))
		s.mu.Unlock()
		s.logger.Warn("device read failed, stopping mining", zap.Error(err))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	temperature := st.Temperature
	if temperature <= 0 {
		temperature = estimateTemperature(s.stats.HashRate)
	}
	s.stats.BatteryLevel = st.BatteryLevel
	s.stats.IsCharging = st.IsCharging
	s.stats.Temperature = temperature

	if reason := stopReason(s.cfg, st, temperature); reason != "" {
		s.logger.Info("protective shutdown",
			zap.String("reason", reason),
			zap.Int("battery", st.BatteryLevel),
			zap.Float64("temperature", temperature))
		s.shutdownLocked(reason)
		return
	}

	if w := s.work; w != nil {
		if w.job.Placeholder || s.now().Sub(w.job.FetchedAt) >= s.cfg.JobRefreshInterval {
			s.refetch.Store(true)
		}
	}
}

// stopReason returns why mining must stop, or "" to keep going
func stopReason(cfg model.MiningConfig, st device.State, temperature float64) string {
	switch {
	case st.BatteryLevel < cfg.MinBatteryLevel:
		return fmt.Sprintf("battery %d%% below %d%%", st.BatteryLevel, cfg.MinBatteryLevel)
	case temperature > cfg.MaxTemperature:
		return fmt.Sprintf("temperature %.1fC above %.1fC", temperature, cfg.MaxTemperature)
	case !st.IsCharging && !cfg.EnableOnBattery:
		return "running on battery"
	}
	return ""
}

// estimateTemperature guesses device heat from load when no sensor reports one
func estimateTemperature(hashRate float64) float64 {
	return baseTemperature + min(maxTemperatureDelta, hashRate/hashesPerDegree)
}
