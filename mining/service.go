// Package mining runs a battery- and heat-aware proof-of-work loop sized
// for phones: small batches, a mandatory pause between them, and a monitor
// that shuts mining down when the device is unhappy.
package mining

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/AlexZinkM/drachma-wallet/internal/device"
	"github.com/AlexZinkM/drachma-wallet/internal/model"
)

// Service owns the mining state machine and its stats. Start and Stop may be
// called from any goroutine; all reads return snapshots.
type Service struct {
	source JobSource
	device device.Reader
	logger *zap.Logger
	now    func() time.Time

	background atomic.Bool
	refetch    atomic.Bool

	// lifecycle serializes Start and Stop
	lifecycle sync.Mutex

	mu        sync.Mutex
	cfg       model.MiningConfig
	state     model.MiningState
	stats     model.MiningStats
	startedAt time.Time
	work      *work
	nonce     uint64
	cancel    context.CancelFunc
	done      chan struct{}
}

// Option configures a Service
type Option func(*Service)

// WithLogger sets the service logger
func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithClock overrides time.Now
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService creates a stopped mining service
func NewService(source JobSource, reader device.Reader, cfg model.MiningConfig, opts ...Option) (*Service, error) {
	if source == nil || reader == nil {
		return nil, errors.New("job source and device reader are required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid mining config: %w", err)
	}

	done := make(chan struct{})
	close(done)

	s := &Service{
		source: source,
		device: reader,
		logger: zap.NewNop(),
		now:    time.Now,
		cfg:    cfg,
		state:  model.MiningStopped,
		done:   done,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// CanRun reports whether the device currently satisfies the start gate
func (s *Service) CanRun(ctx context.Context) (bool, error) {
	st, err := s.device.Read(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to read device state: %w", err)
	}
	return canRun(s.Config(), st), nil
}

func canRun(cfg model.MiningConfig, st device.State) bool {
	if st.BatteryLevel < cfg.MinBatteryLevel {
		return false
	}
	if st.IsCharging {
		return cfg.EnableOnCharging
	}
	return cfg.EnableOnBattery
}

// Start begins mining. It is a no-op when already running, and it returns
// nil without starting when the device gate fails; use CanRun to find out
// beforehand. ctx bounds only the startup work.
func (s *Service) Start(ctx context.Context) error {
	s.lifecycle.Lock()
	defer s.lifecycle.Unlock()

	s.mu.Lock()
	switch s.state {
	case model.MiningRunning, model.MiningStarting:
		s.mu.Unlock()
		return nil
	case model.MiningStopping:
		done := s.done
		s.mu.Unlock()
		<-done
		s.mu.Lock()
	}
	s.state = model.MiningStarting
	cfg := s.cfg
	s.mu.Unlock()

	st, err := s.device.Read(ctx)
	if err != nil {
		s.setState(model.MiningStopped)
		return fmt.Errorf("failed to read device state: %w", err)
	}
	if !canRun(cfg, st) {
		s.setState(model.MiningStopped)
		s.logger.Info("mining gate closed, not starting",
			zap.Int("battery", st.BatteryLevel),
			zap.Bool("charging", st.IsCharging))
		return nil
	}

	w := s.fetchWork(ctx)

	loopCtx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	s.mu.Lock()
	s.work = w
	s.nonce = 0
	s.refetch.Store(false)
	s.startedAt = s.now()
	s.stats.BatteryLevel = st.BatteryLevel
	s.stats.IsCharging = st.IsCharging
	s.stats.Temperature = st.Temperature
	s.stats.StopReason = ""
	s.cancel = cancel
	s.done = done
	s.state = model.MiningRunning
	s.mu.Unlock()

	s.logger.Info("mining started", zap.String("job", w.job.JobID), zap.Bool("placeholder", w.job.Placeholder))

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		s.monitorLoop(loopCtx)
	}()
	go func() {
		defer wg.Done()
		s.hashLoop(loopCtx)
	}()
	go func() {
		wg.Wait()
		s.mu.Lock()
		s.stats.Uptime = int64(s.now().Sub(s.startedAt).Seconds())
		s.state = model.MiningStopped
		s.cancel = nil
		s.mu.Unlock()
		cancel()
		close(done)
		s.logger.Info("mining stopped")
	}()

	return nil
}

// Stop halts mining and waits for both loops to exit. Stats are kept.
func (s *Service) Stop() {
	s.lifecycle.Lock()
	defer s.lifecycle.Unlock()

	s.mu.Lock()
	if s.state == model.MiningStopped {
		s.mu.Unlock()
		return
	}
	done := s.done
	s.shutdownLocked("stopped")
	s.mu.Unlock()

	<-done
}

// Done is closed when the current run has fully stopped
func (s *Service) Done() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.done
}

// shutdownLocked moves Running to Stopping and cancels both loops.
// The hash loop notices at its next batch boundary.
func (s *Service) shutdownLocked(reason string) {
	if s.state != model.MiningRunning {
		return
	}
	s.state = model.MiningStopping
	s.stats.StopReason = reason
	if s.cancel != nil {
		s.cancel()
	}
}

func (s *Service) setState(state model.MiningState) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

// State returns the current state
func (s *Service) State() model.MiningState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// SetBackgroundMode switches batch size from the next batch on
func (s *Service) SetBackgroundMode(background bool) {
	if s.background.Swap(background) != background {
		s.logger.Debug("mining background mode changed", zap.Bool("background", background))
	}
}

// UpdateConfig replaces the configuration; loops pick it up on their next tick
func (s *Service) UpdateConfig(cfg model.MiningConfig) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid mining config: %w", err)
	}
	s.mu.Lock()
	s.cfg = cfg
	s.mu.Unlock()
	return nil
}

// Config returns the current configuration
func (s *Service) Config() model.MiningConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg
}

// Stats returns a snapshot
func (s *Service) Stats() model.MiningStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := s.stats
	stats.State = s.state
	stats.IsActive = s.state == model.MiningRunning
	stats.Background = s.background.Load()
	if s.state == model.MiningRunning {
		stats.Uptime = int64(s.now().Sub(s.startedAt).Seconds())
	}
	if s.work != nil {
		stats.JobID = s.work.job.JobID
	}
	if stats.LastShareTime != nil {
		t := *stats.LastShareTime
		stats.LastShareTime = &t
	}
	return stats
}

// ResetStats clears counters. Device readings and state are kept.
func (s *Service) ResetStats() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stats = model.MiningStats{
		BatteryLevel: s.stats.BatteryLevel,
		IsCharging:   s.stats.IsCharging,
		Temperature:  s.stats.Temperature,
	}
	if s.state == model.MiningRunning {
		s.startedAt = s.now()
	}
}
