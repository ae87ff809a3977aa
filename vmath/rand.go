package vmath

// FastRand is a xorshift64 generator, not safe for concurrent use
// One instance per simulation keeps wind sampling reproducible for a given seed
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Float64 returns a value in [0, 1) built from the top 53 bits
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// ConstRand returns the same value on every call
// Used to pin the wind term (0.5 cancels it) in tests and replays
type ConstRand float64

func (c ConstRand) Float64() float64 {
	return float64(c)
}
