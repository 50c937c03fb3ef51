package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSource_SameSeedSameDraws(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Intn(7), b.Intn(7))
		assert.Equal(t, a.Float64(), b.Float64())
	}
}

func TestSource_Bounds(t *testing.T) {
	src := New(7)
	for i := 0; i < 1000; i++ {
		v := src.Intn(7)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 7)
		f := src.Float64()
		assert.GreaterOrEqual(t, f, 0.0)
		assert.Less(t, f, 1.0)
	}
}

func TestSequence(t *testing.T) {
	seq := NewSequence([]int{3, 9}, []float64{0.25})

	assert.Equal(t, 3, seq.Intn(7))
	assert.Equal(t, 1, seq.Intn(2), "out of range values are clamped to n-1")
	assert.Equal(t, 0, seq.Intn(7), "exhausted int queue returns 0")
	assert.Equal(t, 0.25, seq.Float64())
	assert.Equal(t, 0.99, seq.Float64(), "exhausted float queue returns 0.99")
	assert.Equal(t, []int{7, 2, 7}, seq.IntnCalls)
	assert.Equal(t, 2, seq.Float64Calls)
}
