package srs

import (
	"math"
	"math/rand"
	"sync"
	"time"
)

// Jitter bounds: due dates land within ±15% of the computed interval.
const (
	jitterLow  = 0.85
	jitterHigh = 1.15
)

// RandSource supplies uniform numbers in [0, 1). *rand.Rand satisfies it.
type RandSource interface {
	Float64() float64
}

// Jitter scales days by a uniform factor in [0.85, 1.15], rounds, and
// floors the result at 1 day. It keeps cohorts of cards reviewed together
// from falling due on the same future day.
func Jitter(days int, src RandSource) int {
	f := jitterLow + src.Float64()*(jitterHigh-jitterLow)
	return max(1, int(math.Round(float64(days)*f)))
}

// lockedSource makes a *rand.Rand safe for concurrent use.
type lockedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func newLockedSource(seed int64) *lockedSource {
	return &lockedSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

func defaultSource() RandSource {
	return newLockedSource(time.Now().UnixNano())
}
