package genetics

// Source supplies randomness for splicing, naming and pest draws.
// *rand.Rand from math/rand satisfies it.
type Source interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// Intn returns a value in [0, n). n is always positive.
	Intn(n int) int
}

// Pick returns a uniformly chosen element of a non-empty slice.
func Pick[T any](src Source, items []T) T {
	return items[src.Intn(len(items))]
}
