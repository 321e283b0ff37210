package multilinear

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/interpn/grid"
)

func TestEvalBatch(t *testing.T) {
	itp := ramp1D(t, BoundsExtrapolate)
	// A malformed point fails alone, siblings still evaluate
	{
		points := [][]float64{{0.5}, {math.NaN()}, {1.5}, {1, 2}}
		out, errs := itp.EvalBatch(points, nil)
		require.Len(t, errs, 2)
		assert.Equal(t, 1, errs[0].Index)
		assert.ErrorIs(t, errs[0], grid.ErrInvalidInput)
		assert.Equal(t, 3, errs[1].Index)
		assert.ErrorIs(t, errs[1], ErrDimensionMismatch)
		assert.InDelta(t, 5.0, out[0], 1.e-12)
		assert.Equal(t, 0.0, out[1])
		assert.InDelta(t, 25.0, out[2], 1.e-12)
	}
	// Caller-supplied output buffer is filled in place
	{
		points := [][]float64{{1.0}, {2.0}}
		out := make([]float64, 2)
		got, errs := itp.EvalBatch(points, out)
		assert.Nil(t, errs)
		assert.Same(t, &out[0], &got[0])
		assert.InDeltaSlice(t, []float64{10, 20}, out, 1.e-12)
	}
	// Mismatched buffer length is a programmer error
	{
		assert.Panics(t, func() {
			itp.EvalBatch([][]float64{{1.0}}, make([]float64, 3))
		})
	}
}

func TestEvalAll(t *testing.T) {
	itp := ramp1D(t, BoundsExtrapolate)
	out := itp.EvalAll([][]float64{{0.5}, {-0.5}})
	assert.InDeltaSlice(t, []float64{5, -5}, out, 1.e-12)

	buf := make([]float64, 2)
	got := itp.EvalAll([][]float64{{0.5}, {3.5}}, buf)
	assert.Same(t, &buf[0], &got[0])
	assert.InDeltaSlice(t, []float64{5, 35}, buf, 1.e-12)

	assert.Panics(t, func() {
		itp.EvalAll([][]float64{{math.NaN()}})
	})
}

func TestEvalMat(t *testing.T) {
	g, err := grid.NewGrid(
		grid.RectilinearAxis([]float64{0, 1}),
		grid.RectilinearAxis([]float64{0, 1}),
	)
	require.NoError(t, err)
	itp := mustInterp(t, g, []float64{0, 10, 10, 20}, BoundsExtrapolate)
	pts := mat.NewDense(3, 2, []float64{
		0.5, 0.5,
		1.5, 1.5,
		0, 1,
	})
	y, errs := itp.EvalMat(pts)
	assert.Nil(t, errs)
	assert.InDelta(t, 10.0, y.AtVec(0), 1.e-12)
	assert.InDelta(t, 30.0, y.AtVec(1), 1.e-12)
	assert.InDelta(t, 10.0, y.AtVec(2), 1.e-12)

	// Column count must match the grid dimension
	_, errs = itp.EvalMat(mat.NewDense(1, 3, nil))
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], ErrDimensionMismatch)
}
