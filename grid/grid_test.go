package grid

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewGrid(t *testing.T) {
	// Valid mixed grid
	{
		g, err := NewGrid(
			RegularAxis(0, 1, 4),
			RectilinearAxis([]float64{0, 0.5, 2}),
		)
		assert.NoError(t, err)
		assert.Equal(t, 2, g.NDims())
		assert.Equal(t, 12, g.Size())
		assert.Equal(t, 3, g.Stride(0))
		assert.Equal(t, 1, g.Stride(1))
		assert.Equal(t, 7, g.FlatIndex([]int{2, 1}))
	}
	// No axes
	{
		_, err := NewGrid()
		assert.ErrorIs(t, err, ErrMalformedGrid)
	}
	// Too short
	{
		_, err := NewGrid(RectilinearAxis([]float64{1}))
		assert.ErrorIs(t, err, ErrMalformedGrid)
		_, err = NewGrid(RegularAxis(0, 1, 1))
		assert.ErrorIs(t, err, ErrMalformedGrid)
	}
	// Non-monotonic knots
	{
		_, err := NewGrid(RectilinearAxis([]float64{0, 2, 1}))
		assert.ErrorIs(t, err, ErrMalformedGrid)
		_, err = NewGrid(RectilinearAxis([]float64{0, 1, 1}))
		assert.ErrorIs(t, err, ErrMalformedGrid)
	}
	// Non-finite knots and steps
	{
		_, err := NewGrid(RectilinearAxis([]float64{0, math.NaN(), 2}))
		assert.ErrorIs(t, err, ErrMalformedGrid)
		_, err = NewGrid(RegularAxis(0, math.Inf(1), 4))
		assert.ErrorIs(t, err, ErrMalformedGrid)
		_, err = NewGrid(RegularAxis(0, -1, 4))
		assert.ErrorIs(t, err, ErrMalformedGrid)
	}
	// Error names the offending axis
	{
		_, err := NewGrid(RegularAxis(0, 1, 4), RectilinearAxis([]float64{3, 2}))
		assert.ErrorIs(t, err, ErrMalformedGrid)
		assert.Contains(t, err.Error(), "axis 1")
	}
}

func TestAxisSpan(t *testing.T) {
	reg := RegularAxis(1, 0.5, 5)
	assert.Equal(t, 1.0, reg.First())
	assert.Equal(t, 3.0, reg.Last())
	assert.Equal(t, 2.0, reg.Knot(2))

	rec := RectilinearAxis([]float64{-1, 0, 2.5})
	assert.Equal(t, -1.0, rec.First())
	assert.Equal(t, 2.5, rec.Last())
	assert.Equal(t, 0.0, rec.Knot(1))

	ks := UniformKnots(0, 3, 4)
	assert.InDeltaSlice(t, []float64{0, 1, 2, 3}, ks, 1.e-15)
}

func TestLocateRegular(t *testing.T) {
	ax := RegularAxis(0, 1, 4)
	// Interior
	{
		lower, tt, err := ax.Locate(1.5)
		assert.NoError(t, err)
		assert.Equal(t, 1, lower)
		assert.InDelta(t, 0.5, tt, 1.e-15)
	}
	// Exactly on a knot
	{
		lower, tt, err := ax.Locate(2.0)
		assert.NoError(t, err)
		assert.Equal(t, 2, lower)
		assert.Equal(t, 0.0, tt)
	}
	// Below: index clamps to the first cell, t goes negative
	{
		lower, tt, err := ax.Locate(-0.5)
		assert.NoError(t, err)
		assert.Equal(t, 0, lower)
		assert.InDelta(t, -0.5, tt, 1.e-15)
	}
	// Above: index clamps to the last cell, t exceeds 1
	{
		lower, tt, err := ax.Locate(3.5)
		assert.NoError(t, err)
		assert.Equal(t, 2, lower)
		assert.InDelta(t, 1.5, tt, 1.e-15)
	}
	// NaN and Inf are rejected
	{
		_, _, err := ax.Locate(math.NaN())
		assert.ErrorIs(t, err, ErrInvalidInput)
		_, _, err = ax.Locate(math.Inf(-1))
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}

func TestLocateRectilinear(t *testing.T) {
	ax := RectilinearAxis([]float64{0, 0.5, 2, 3})
	// Interior, non-uniform cell
	{
		lower, tt, err := ax.Locate(1.0)
		assert.NoError(t, err)
		assert.Equal(t, 1, lower)
		assert.InDelta(t, 1./3., tt, 1.e-15)
	}
	// Last knot lands in the top cell with t=1
	{
		lower, tt, err := ax.Locate(3.0)
		assert.NoError(t, err)
		assert.Equal(t, 2, lower)
		assert.InDelta(t, 1.0, tt, 1.e-15)
	}
	// Below the first knot
	{
		lower, tt, err := ax.Locate(-1.0)
		assert.NoError(t, err)
		assert.Equal(t, 0, lower)
		assert.InDelta(t, -2.0, tt, 1.e-15)
	}
	// Above the last knot
	{
		lower, tt, err := ax.Locate(4.0)
		assert.NoError(t, err)
		assert.Equal(t, 2, lower)
		assert.InDelta(t, 2.0, tt, 1.e-15)
	}
	// Every knot locates into a cell whose edge it sits on
	{
		for i := 0; i < ax.Count; i++ {
			lower, tt, err := ax.Locate(ax.Knot(i))
			assert.NoError(t, err)
			x := ax.Knot(lower) + tt*(ax.Knot(lower+1)-ax.Knot(lower))
			assert.InDelta(t, ax.Knot(i), x, 1.e-15)
		}
	}
}

func TestClassify(t *testing.T) {
	assert.Equal(t, Interior, Classify(0))
	assert.Equal(t, Interior, Classify(0.5))
	assert.Equal(t, Interior, Classify(1))
	assert.Equal(t, Below, Classify(-1.e-16))
	assert.Equal(t, Above, Classify(1.0000000001))
}
