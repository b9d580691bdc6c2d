package mining

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/AlexZinkM/drachma-wallet/internal/client"
	"github.com/AlexZinkM/drachma-wallet/internal/model"
)

// nonceSpace is the number of nonces a 32-bit header field can hold
const nonceSpace = uint64(1) << 32

// submitTimeout bounds a share submission. A found share is still reported
// when Stop lands mid-submit.
const submitTimeout = 10 * time.Second

// hashLoop runs batches until ctx is cancelled or the service leaves Running
func (s *Service) hashLoop(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			return
		}

		if s.refetch.Swap(false) {
			w := s.fetchWork(ctx)
			if ctx.Err() != nil {
				return
			}
			s.mu.Lock()
			// an unchanged header keeps its nonce cursor so found nonces are never hashed twice
			if !sameWork(s.work, w) {
				s.nonce = 0
			}
			s.work = w
			s.mu.Unlock()
		}

		if !s.mineBatch(ctx) {
			return
		}

		// thermal safety: never skipped, only cut short by cancellation
		timer := time.NewTimer(s.Config().SleepBetweenBatches)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}
	}
}

// mineBatch hashes one batch. It returns false if the service is no longer
// running, which is the only place the hash loop observes a shutdown.
func (s *Service) mineBatch(ctx context.Context) bool {
	s.mu.Lock()
	if s.state != model.MiningRunning || s.work == nil {
		s.mu.Unlock()
		return false
	}
	w := s.work
	header := w.header
	start := s.nonce
	size := uint64(s.cfg.HashBatchSize)
	if s.background.Load() {
		size = uint64(s.cfg.BackgroundHashBatchSize)
	}
	s.mu.Unlock()

	if start >= nonceSpace {
		s.refetch.Store(true)
		return true
	}
	end := min(start+size, nonceSpace)

	var (
		found   bool
		winning uint32
		tried   uint64
	)
	for n := start; n < end; n++ {
		header.Nonce = uint32(n)
		hash := header.BlockHash()
		tried++
		if meetsTarget(&hash, w.target) {
			found = true
			winning = uint32(n)
			break
		}
	}

	s.mu.Lock()
	s.nonce = end
	s.stats.NoncesTried += tried
	if elapsed := s.now().Sub(s.startedAt).Seconds(); elapsed > 0 {
		s.stats.HashRate = float64(s.stats.NoncesTried) / elapsed
	}
	if found {
		s.stats.SharesFound++
	}
	hashRate := s.stats.HashRate
	worker := s.cfg.WorkerName
	s.mu.Unlock()

	if end >= nonceSpace {
		s.refetch.Store(true)
	}
	if found {
		s.submitShare(ctx, w.job, winning, hashRate, worker)
		s.refetch.Store(true)
	}
	return true
}

// submitShare reports a found nonce once. Rejections are counted, not retried.
func (s *Service) submitShare(ctx context.Context, job model.MiningJob, nonce uint32, hashRate float64, worker string) {
	if job.Placeholder {
		s.logger.Debug("share found on placeholder job, not submitting", zap.String("job", job.JobID))
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), submitTimeout)
	defer cancel()

	accepted, reason, err := s.source.SubmitShare(ctx, client.Share{
		JobID:    job.JobID,
		Nonce:    nonce,
		HashRate: hashRate,
		Worker:   worker,
	})

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil || !accepted {
		s.stats.SharesRejected++
		s.logger.Warn("share rejected",
			zap.String("job", job.JobID),
			zap.Uint32("nonce", nonce),
			zap.String("reason", reason),
			zap.Error(err))
		return
	}

	s.stats.SharesAccepted++
	now := s.now()
	s.stats.LastShareTime = &now
	s.logger.Info("share accepted", zap.String("job", job.JobID), zap.Uint32("nonce", nonce))
}

// fetchWork gets a job from the node, falling back to a placeholder
func (s *Service) fetchWork(ctx context.Context) *work {
	now := s.now()

	w, err := s.fetchTemplate(ctx, now)
	if err != nil {
		s.logger.Warn("failed to fetch mining job, using placeholder", zap.Error(err))
		return placeholderWork(now)
	}
	return w
}

func (s *Service) fetchTemplate(ctx context.Context, now time.Time) (*work, error) {
	tmpl, err := s.source.GetBlockTemplate(ctx)
	if err != nil {
		return nil, err
	}
	job, err := jobFromTemplate(tmpl, now)
	if err != nil {
		return nil, err
	}
	return newWork(job)
}

// sameWork reports whether b hashes exactly the same header space as a
func sameWork(a, b *work) bool {
	if a == nil || b == nil {
		return false
	}
	return a.header.Version == b.header.Version &&
		a.header.PrevBlock == b.header.PrevBlock &&
		a.header.MerkleRoot == b.header.MerkleRoot &&
		a.header.Timestamp.Equal(b.header.Timestamp) &&
		a.header.Bits == b.header.Bits &&
		a.target.Cmp(b.target) == 0
}
