package genetics

// scriptedSource replays fixed draws. Intn cycles through ints (clamped to
// n-1) and Float64 always returns f.
type scriptedSource struct {
	ints []int
	next int
	f    float64
}

func (s *scriptedSource) Float64() float64 { return s.f }

func (s *scriptedSource) Intn(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[s.next%len(s.ints)]
	s.next++
	if v >= n {
		return n - 1
	}
	return v
}

func roberto() Plant {
	return NewPlant(NewPlantName("ro", "ber", "to"),
		StemColorCategory(Green),
		StemColorCategory(Brown),
		StemStyleCategory(Curvy),
		StemStyleCategory(Loopy),
		FruitStyleCategory(Circle),
		FruitStyleCategory(Square),
		FruitColorCategory(Red),
		FruitColorCategory(Purple),
	)
}

func jessica() Plant {
	return NewPlant(NewPlantName("jes", "si", "ca"),
		StemColorCategory(Brown),
		StemColorCategory(Blue),
		StemStyleCategory(Wiggly),
		StemStyleCategory(Loopy),
		FruitStyleCategory(Square),
		FruitStyleCategory(Triangle),
		FruitColorCategory(Red),
		FruitColorCategory(Yellow),
	)
}
