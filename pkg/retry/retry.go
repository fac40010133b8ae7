package retry

import (
	"context"
	"math/rand"
	"time"
)

type Operation = func() error

type Config struct {
	MaxAttempts   int
	InitialDelay  time.Duration
	MaxDelay      time.Duration
	BackoffFactor float64
	Jitter        time.Duration
}

// NewDefaultConfig is tuned for hosted model APIs: a few quick attempts,
// capped well under typical request deadlines.
func NewDefaultConfig() *Config {
	return &Config{
		MaxAttempts:   3,
		InitialDelay:  250 * time.Millisecond,
		MaxDelay:      5 * time.Second,
		BackoffFactor: 2.0,
		Jitter:        100 * time.Millisecond,
	}
}

type Retrier struct {
	cfg *Config
	rnd *rand.Rand
}

func NewRetrier(cfg *Config) *Retrier {
	return &Retrier{
		cfg: cfg,
		rnd: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func NewDefaultRetrier() *Retrier {
	return NewRetrier(NewDefaultConfig())
}

// Do runs op until it succeeds, attempts are exhausted, or ctx is done.
// The last error is returned when all attempts fail.
func (r *Retrier) Do(ctx context.Context, op Operation) error {
	delay := r.cfg.InitialDelay

	var err error
	for attempt := 1; ; attempt++ {
		if err = op(); err == nil {
			return nil
		}
		if attempt >= r.cfg.MaxAttempts {
			return err
		}

		wait := delay + time.Duration(r.rnd.Float64()*float64(r.cfg.Jitter))
		if wait > r.cfg.MaxDelay {
			wait = r.cfg.MaxDelay
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}

		delay = time.Duration(float64(delay) * r.cfg.BackoffFactor)
		if delay > r.cfg.MaxDelay {
			delay = r.cfg.MaxDelay
		}
	}
}
