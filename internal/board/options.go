package board

import (
	"math/rand"
	"time"
)

type Option func(*Board)

// WithRand makes colors, note ids and access codes reproducible.
func WithRand(rng *rand.Rand) Option {
	return func(b *Board) {
		if rng != nil {
			b.rng = rng
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(b *Board) {
		if now != nil {
			b.now = now
		}
	}
}
