package usecase

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	mock_interfaces "coletaverde/internal/usecase/interfaces/mocks"

	"github.com/sirupsen/logrus/hooks/test"
	"go.uber.org/mock/gomock"
)

type countingSweep struct {
	calls atomic.Int32
	n     int
	err   error
}

func (c *countingSweep) SweepExpired(context.Context) (int, error) {
	c.calls.Add(1)
	return c.n, c.err
}

func TestExpirationSweeper_RunOnce(t *testing.T) {
	logger, hook := test.NewNullLogger()

	t.Run("without locker", func(t *testing.T) {
		engine := &countingSweep{n: 3}
		s := NewExpirationSweeper(engine, nil, 0, time.Minute, logger)
		if n := s.RunOnce(context.Background()); n != 3 {
			t.Fatalf("expected 3, got %d", n)
		}
	})

	t.Run("lock held elsewhere", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		locker := mock_interfaces.NewMockILocker(ctrl)
		engine := &countingSweep{n: 3}
		s := NewExpirationSweeper(engine, locker, 0, time.Minute, logger)

		locker.EXPECT().TryLock(gomock.Any(), sweepLockKey, time.Minute).Return(nil, false, nil)

		if n := s.RunOnce(context.Background()); n != 0 || engine.calls.Load() != 0 {
			t.Fatalf("expected skipped round, got n=%d calls=%d", n, engine.calls.Load())
		}
	})

	t.Run("lock acquired and released", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		locker := mock_interfaces.NewMockILocker(ctrl)
		engine := &countingSweep{n: 2}
		s := NewExpirationSweeper(engine, locker, 0, time.Minute, logger)

		released := false
		locker.EXPECT().TryLock(gomock.Any(), sweepLockKey, time.Minute).Return(func() { released = true }, true, nil)

		if n := s.RunOnce(context.Background()); n != 2 || !released {
			t.Fatalf("expected sweep under lock, got n=%d released=%v", n, released)
		}
	})

	t.Run("sweep error is logged", func(t *testing.T) {
		hook.Reset()
		engine := &countingSweep{err: errors.New("db")}
		s := NewExpirationSweeper(engine, nil, 0, time.Minute, logger)
		if n := s.RunOnce(context.Background()); n != 0 {
			t.Fatalf("expected 0, got %d", n)
		}
		if hook.LastEntry() == nil || hook.LastEntry().Message != "expiration sweep failed" {
			t.Fatalf("expected error log entry")
		}
	})
}

func TestExpirationSweeper_RunRecurs(t *testing.T) {
	logger, _ := test.NewNullLogger()
	engine := &countingSweep{}
	s := NewExpirationSweeper(engine, nil, time.Millisecond, 5*time.Millisecond, logger)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	deadline := time.After(2 * time.Second)
	for engine.calls.Load() < 3 {
		select {
		case <-deadline:
			t.Fatalf("sweeper did not recur, calls=%d", engine.calls.Load())
		case <-time.After(time.Millisecond):
		}
	}
	cancel()
	<-done
}
