// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-pass-bridge/internal/logger"
)

const (
	// DefaultSweepInterval is used when the configured interval is not positive.
	DefaultSweepInterval = time.Hour

	maxSweepTimeout = time.Minute
)

// sessionSweeper periodically removes expired sessions together with their
// pending queues. A failed or panicking tick is logged and retried on the
// next one.
type sessionSweeper struct {
	sessions ExpiredSessionRemover
	interval time.Duration
	timeout  time.Duration

	now       func() time.Time
	newTicker func(d time.Duration) (<-chan time.Time, func())

	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewSessionSweeper(sessions ExpiredSessionRemover, interval time.Duration, logger *logger.Logger) Worker {
	return newSessionSweeper(sessions, interval, logger)
}

func newSessionSweeper(sessions ExpiredSessionRemover, interval time.Duration, logger *logger.Logger) *sessionSweeper {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}

	return &sessionSweeper{
		sessions: sessions,
		interval: interval,
		timeout:  min(interval, maxSweepTimeout),
		now:      time.Now,
		newTicker: func(d time.Duration) (<-chan time.Time, func()) {
			t := time.NewTicker(d)
			return t.C, t.Stop
		},
		logger: logger,
	}
}

func (s *sessionSweeper) Run(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return
	}

	ctx, s.cancel = context.WithCancel(ctx)
	ticks, stopTicker := s.newTicker(s.interval)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer stopTicker()

		s.logger.Info().Dur("interval", s.interval).Msg("session sweeper started")
		for {
			select {
			case <-ctx.Done():
				s.logger.Info().Msg("session sweeper stopped")
				return
			case <-ticks:
				s.tick(ctx)
			}
		}
	}()
}

func (s *sessionSweeper) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	s.wg.Wait()
}

// tick runs one sweep. It never panics.
func (s *sessionSweeper) tick(ctx context.Context) {
	removed, err := s.sweep(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "*sessionSweeper.tick").Msg("expired session sweep failed")
		return
	}
	if removed > 0 {
		s.logger.Info().Int("removed", removed).Msg("expired sessions removed")
	}
}

func (s *sessionSweeper) sweep(ctx context.Context) (removed int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("sweep panicked: %v", r)
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	return s.sessions.SweepExpired(s.logger.WithContext(ctx), s.now())
}
