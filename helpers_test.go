package base57

// lcg is Knuth's MMIX linear congruential generator. It keeps the random tests reproducible.
type lcg uint64

func (l *lcg) next() uint64 {
	*l = lcg(6364136223846793005*uint64(*l) + 1442695040888963407)
	return uint64(*l)
}

func (l *lcg) intn(n int) int {
	return int((l.next() >> 16) % uint64(n))
}

func (l *lcg) bytes(n int) []byte {
	b := make([]byte, n)
	for i := 0; i < n; i += BlockSize {
		putLE64(b[i:min(i+BlockSize, n)], l.next())
	}
	return b
}

// randomBytes returns n reproducible random bytes for the seed.
func randomBytes(seed uint64, n int) []byte {
	rnd := lcg(seed)
	return rnd.bytes(n)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func repeat(b byte, n int) []byte {
	r := make([]byte, n)
	for i := range r {
		r[i] = b
	}
	return r
}
