package track

// FastRand is a xorshift64 generator. The track window must be reproducible
// for a given seed within one process, and the generator must not share
// global RNG state with anything else, so it carries its own source.
type FastRand struct {
	state uint64
}

// NewFastRand seeds a generator. Zero seeds are remapped since xorshift
// cannot leave the zero state.
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

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a uniform value in [0,1).
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Range returns a uniform value in [lo,hi).
func (r *FastRand) Range(lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}
