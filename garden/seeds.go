package garden

import "github.com/pthm-cable/smartyplants/genetics"

// DefaultSeedCapacity is the number of seed slots in the inventory.
const DefaultSeedCapacity = 4

// Seeds is the ordered, bounded inventory of harvested seeds.
type Seeds struct {
	seeds    []genetics.Seed
	capacity int
}

// NewSeeds creates an empty inventory holding at most capacity seeds.
func NewSeeds(capacity int) *Seeds {
	if capacity < 0 {
		capacity = 0
	}
	return &Seeds{
		seeds:    make([]genetics.Seed, 0, capacity),
		capacity: capacity,
	}
}

// Add appends a seed. It returns false and drops the seed when full.
func (s *Seeds) Add(seed genetics.Seed) bool {
	if s.Full() {
		return false
	}
	s.seeds = append(s.seeds, seed)
	return true
}

// WithID returns the seed at index id, or false if id is out of range.
func (s *Seeds) WithID(id int) (genetics.Seed, bool) {
	if id < 0 || id >= len(s.seeds) {
		return genetics.Seed{}, false
	}
	return s.seeds[id], true
}

// TakeWithID removes and returns the seed at index id. Later seeds shift down.
func (s *Seeds) TakeWithID(id int) (genetics.Seed, bool) {
	seed, ok := s.WithID(id)
	if !ok {
		return genetics.Seed{}, false
	}
	s.seeds = append(s.seeds[:id], s.seeds[id+1:]...)
	return seed, true
}

// Len returns the number of seeds held.
func (s *Seeds) Len() int { return len(s.seeds) }

// Cap returns the inventory capacity.
func (s *Seeds) Cap() int { return s.capacity }

// Full reports whether no more seeds fit.
func (s *Seeds) Full() bool { return len(s.seeds) >= s.capacity }

// Empty reports whether the inventory holds no seeds.
func (s *Seeds) Empty() bool { return len(s.seeds) == 0 }

// All returns a copy of the held seeds in order.
func (s *Seeds) All() []genetics.Seed {
	out := make([]genetics.Seed, len(s.seeds))
	copy(out, s.seeds)
	return out
}
