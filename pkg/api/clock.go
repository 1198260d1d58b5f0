package api

import (
	"context"
	"math/rand"
	"time"
)

// Sleeper waits between polls; tests swap it for one that returns immediately
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// NewSleeper returns a Sleeper backed by a real timer
func NewSleeper() Sleeper {
	return &timerSleeper{}
}

type timerSleeper struct{}

func (s *timerSleeper) Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// JitterFunc returns a random duration in [0, max)
type JitterFunc func(max time.Duration) time.Duration

// RandomJitter spreads out polls of builds that are waited for concurrently
func RandomJitter(max time.Duration) time.Duration {
	if max <= 0 {
		return 0
	}
	return time.Duration(rand.Int63n(int64(max)))
}
