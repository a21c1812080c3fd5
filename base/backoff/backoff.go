package backoff

import (
	"context"
	"math"
	"time"
)

type Strategy interface {
	Duration(attempt int, start time.Duration) time.Duration
}

// Backoff sleeps for a growing duration between attempts, capped at limit.
type Backoff struct {
	LastDuration time.Duration
	NextDuration time.Duration
	start        time.Duration
	limit        time.Duration
	attempts     int
	strategy     Strategy
}

func New(strategy Strategy, start, limit time.Duration) *Backoff {
	b := &Backoff{strategy: strategy, start: start, limit: limit}
	b.Reset()
	return b
}

func (b *Backoff) Reset() {
	b.attempts = 0
	b.LastDuration = 0
	b.NextDuration = b.next()
}

// Attempts is the number of completed sleeps since the last Reset
func (b *Backoff) Attempts() int {
	return b.attempts
}

// Backoff blocks for NextDuration. It returns the context error when c is
// done before the duration elapses.
func (b *Backoff) Backoff(c context.Context) error {
	timer := time.NewTimer(b.NextDuration)
	defer timer.Stop()
	select {
	case <-c.Done():
		return c.Err()
	case <-timer.C:
	}
	b.attempts++
	b.LastDuration = b.NextDuration
	b.NextDuration = b.next()
	return nil
}

func (b *Backoff) next() time.Duration {
	d := b.strategy.Duration(b.attempts, b.start)
	if b.limit > 0 && d > b.limit {
		d = b.limit
	}
	return d
}

type exponential struct{}

func (exponential) Duration(attempt int, start time.Duration) time.Duration {
	return time.Duration(math.Pow(2, float64(attempt))) * start
}

func NewExponential(start, limit time.Duration) *Backoff {
	return New(exponential{}, start, limit)
}

type linear struct{}

func (linear) Duration(attempt int, start time.Duration) time.Duration {
	return time.Duration(attempt+1) * start
}

func NewLinear(start, limit time.Duration) *Backoff {
	return New(linear{}, start, limit)
}
