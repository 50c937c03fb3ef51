package random

import (
	"math/rand/v2"
	"time"
)

type source struct {
	rng *rand.Rand
}

// New returns a PCG backed Source. A zero seed seeds from the clock.
func New(seed int64) Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &source{
		rng: rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15)),
	}
}

func (s *source) Intn(n int) int {
	return s.rng.IntN(n)
}

func (s *source) Float64() float64 {
	return s.rng.Float64()
}
