package mapgen

// lcg is a 64-bit linear-congruential generator (Knuth MMIX constants).
// Identical seeds replay identical sequences, which is what makes map
// generation reproducible. The low bits of an LCG are weak, so consumers
// draw from the high bits only.
type lcg struct {
	state uint64
}

func newLCG(seed int64) *lcg {
	return &lcg{state: uint64(seed)}
}

func (r *lcg) next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Float64 returns a uniform value in [0, 1).
func (r *lcg) Float64() float64 {
	return float64(r.next()>>11) / (1 << 53)
}

// Intn returns a uniform value in [0, n). n <= 0 yields 0.
func (r *lcg) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int((r.next() >> 33) % uint64(n))
}

// Range returns a uniform value in [min, max]. A degenerate range yields min.
func (r *lcg) Range(min, max int) int {
	if max <= min {
		return min
	}
	return min + r.Intn(max-min+1)
}
