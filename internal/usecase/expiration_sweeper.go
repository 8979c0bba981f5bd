package usecase

import (
	"context"
	"time"

	"coletaverde/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

const sweepLockKey = "coletaverde:sweep:solicitations"

type sweepRunner interface {
	SweepExpired(ctx context.Context) (int, error)
}

// ExpirationSweeper runs SweepExpired after an initial delay and then on every
// interval until the context is cancelled. When a locker is set only one
// process sweeps per round.
type ExpirationSweeper struct {
	engine       sweepRunner
	locker       interfaces.ILocker
	initialDelay time.Duration
	interval     time.Duration
	logger       logrus.FieldLogger
}

func NewExpirationSweeper(engine sweepRunner, locker interfaces.ILocker, initialDelay, interval time.Duration, logger logrus.FieldLogger) *ExpirationSweeper {
	if interval <= 0 {
		interval = time.Minute
	}
	if initialDelay < 0 {
		initialDelay = 0
	}
	return &ExpirationSweeper{
		engine:       engine,
		locker:       locker,
		initialDelay: initialDelay,
		interval:     interval,
		logger:       logger.WithField("module", "sweeper"),
	}
}

// Run blocks until ctx is done.
func (s *ExpirationSweeper) Run(ctx context.Context) {
	timer := time.NewTimer(s.initialDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return
	case <-timer.C:
	}
	s.RunOnce(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunOnce(ctx)
		}
	}
}

// RunOnce performs a single sweep round and reports how many records expired.
func (s *ExpirationSweeper) RunOnce(ctx context.Context) int {
	if s.locker != nil {
		release, ok, err := s.locker.TryLock(ctx, sweepLockKey, s.interval)
		if err != nil {
			s.logger.WithError(err).Warn("sweep lock unavailable")
			return 0
		}
		if !ok {
			s.logger.Debug("sweep skipped, lock held elsewhere")
			return 0
		}
		defer release()
	}

	n, err := s.engine.SweepExpired(ctx)
	if err != nil {
		s.logger.WithError(err).Error("expiration sweep failed")
		return 0
	}
	if n > 0 {
		s.logger.WithField("expired", n).Info("expired stale solicitations")
	}
	return n
}
