// Package rng provides the seedable random source used for skip-list level
// assignment.
package rng

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"

	"github.com/metailurini/ordered"
)

// Source supplies uniformly distributed integers in [0, n).
type Source interface {
	Intn(n int) int
}

const defaultSeed = uint64(0xdeadbeefcafebabe)

func newRandomSeed() uint64 {
	seed := uint64(time.Now().UnixNano())
	if seed == 0 {
		seed = defaultSeed
	}
	return seed
}

// RNG is a xorshift generator. The state advances with a CAS loop, so one RNG
// may be shared between goroutines.
type RNG struct {
	seed  uint64
	state atomic.Uint64
}

var _ Source = (*RNG)(nil)

// New returns an RNG seeded from the clock.
func New() *RNG {
	return NewWithSeed(newRandomSeed())
}

// NewWithSeed returns an RNG whose sequence is fully determined by seed. A
// zero seed is replaced by a fixed non-zero one.
func NewWithSeed(seed uint64) *RNG {
	if seed == 0 {
		seed = defaultSeed
	}
	r := &RNG{seed: seed}
	r.state.Store(seed)
	return r
}

// Seed returns the seed the generator started from, so a run can be replayed.
func (r *RNG) Seed() uint64 {
	return r.seed
}

// Uint64 returns the next 64 random bits.
func (r *RNG) Uint64() uint64 {
	for {
		current := r.state.Load()
		x := current
		x ^= x >> 12
		x ^= x << 25
		x ^= x >> 27
		if x == 0 {
			x = defaultSeed
		}
		if r.state.CompareAndSwap(current, x) {
			return x * 2685821657736338717
		}
	}
}

// Intn returns a uniformly distributed integer in [0, n). It panics when n is
// not positive.
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		panic(errors.Wrapf(ordered.ErrInvalidArgument, "rng: Intn(%d)", n))
	}
	bound := uint64(n)
	// Values at or above limit would favour the low residues.
	limit := (math.MaxUint64 / bound) * bound
	for {
		if v := r.Uint64(); v < limit {
			return int(v % bound)
		}
	}
}
