// Package seed derives canonical daily seed strings and provides the
// deterministic RNG every generator in the engine draws from. A seed string
// fully determines a day's board and inventory, so both the hash and the
// stream algorithm are frozen: changing either invalidates every published
// puzzle.
package seed

import "time"

// DateLayout is the canonical daily seed form: zero-padded YYYYMMDD, UTC.
const DateLayout = "20060102"

// Daily returns the seed string for the given date's UTC calendar day.
func Daily(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// Hash folds a seed string into a 32-bit value with multiplicative mixing,
// a 13-bit rotation per character, and a final shift-XOR avalanche. It is
// deterministic and allocation-free.
func Hash(seed string) uint32 {
	h := uint32(1779033703) ^ uint32(len(seed))
	for i := 0; i < len(seed); i++ {
		h = (h ^ uint32(seed[i])) * 3432918353
		h = h<<13 | h>>19
	}
	h = (h ^ h>>16) * 2246822507
	h = (h ^ h>>13) * 3266489909
	return h ^ h>>16
}

// RNG is a mulberry32 stream: 32 bits of state advanced by addition, with a
// two-round multiply/XOR avalanche per draw. The position in the stream is
// part of the engine contract; components that must not interfere with each
// other each start a fresh RNG from the same seed.
type RNG struct {
	state uint32
}

// New returns a fresh stream seeded from the hashed seed string.
func New(seed string) *RNG {
	return &RNG{state: Hash(seed)}
}

// NewFromState returns a stream starting at an explicit 32-bit state.
func NewFromState(state uint32) *RNG {
	return &RNG{state: state}
}

// Float64 returns the next value in [0, 1).
func (r *RNG) Float64() float64 {
	r.state += 0x6D2B79F5
	t := r.state
	t = (t ^ t>>15) * (t | 1)
	t ^= t + (t^t>>7)*(t|61)
	return float64(t^t>>14) / 4294967296.0
}

// IntN returns a uniformly drawn integer in the inclusive range [lo, hi].
// A reversed range is a contract violation and panics.
func (r *RNG) IntN(lo, hi int) int {
	if hi < lo {
		panic("seed: IntN range reversed")
	}
	return lo + int(r.Float64()*float64(hi-lo+1))
}
