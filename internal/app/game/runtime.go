package game

import (
	"math/rand"
	"time"
)

// Runtime carries the swappable clock and random source. Everything in the
// engine reads time and randomness through it, so a fixed pair makes a whole
// reducer run deterministic.
type Runtime struct {
	Now  func() time.Time
	Rand func() float64
}

func DefaultRuntime() Runtime {
	return Runtime{
		Now:  time.Now,
		Rand: rand.Float64,
	}
}

func (r Runtime) now() time.Time {
	if r.Now == nil {
		return time.Now()
	}
	return r.Now()
}

func (r Runtime) rand() float64 {
	if r.Rand == nil {
		return rand.Float64()
	}
	return r.Rand()
}
