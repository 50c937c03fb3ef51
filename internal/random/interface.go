package random

// Source is the single funnel for every random draw the engine makes.
// Implementations need not be safe for concurrent use.
type Source interface {
	// Intn returns a uniform int in [0, n). It panics if n <= 0.
	Intn(n int) int
	// Float64 returns a uniform float64 in [0, 1).
	Float64() float64
}
