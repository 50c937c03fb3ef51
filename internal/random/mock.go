package random

// Sequence is a scripted Source for tests. Ints and Floats are consumed in
// order; once a queue is exhausted Intn returns 0 and Float64 returns 0.99
// so that unscripted draws stay away from probability thresholds.
type Sequence struct {
	Ints   []int
	Floats []float64

	IntnCalls    []int
	Float64Calls int
}

// NewSequence creates a scripted source.
func NewSequence(ints []int, floats []float64) *Sequence {
	return &Sequence{Ints: ints, Floats: floats}
}

func (s *Sequence) Intn(n int) int {
	s.IntnCalls = append(s.IntnCalls, n)
	if len(s.Ints) == 0 {
		return 0
	}
	v := s.Ints[0]
	s.Ints = s.Ints[1:]
	if v >= n {
		v = n - 1
	}
	if v < 0 {
		v = 0
	}
	return v
}

func (s *Sequence) Float64() float64 {
	s.Float64Calls++
	if len(s.Floats) == 0 {
		return 0.99
	}
	v := s.Floats[0]
	s.Floats = s.Floats[1:]
	return v
}
