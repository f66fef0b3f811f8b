package garden

// fixedSource always returns the same draws.
type fixedSource struct {
	f float64
	i int
}

func (s fixedSource) Float64() float64 { return s.f }

func (s fixedSource) Intn(n int) int {
	if s.i >= n {
		return n - 1
	}
	return s.i
}
