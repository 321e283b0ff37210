// Package grid describes rectangular interpolation grids: per-axis knot
// layouts, validation, cell location and flat value indexing. A Grid is
// immutable after construction, so it is safe for concurrent use.
package grid

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

var (
	// ErrMalformedGrid reports an axis that is too short, non-monotonic or
	// otherwise unusable. Detected once at construction, never during
	// evaluation.
	ErrMalformedGrid = errors.New("malformed grid")
	// ErrInvalidInput reports a NaN or Inf observation coordinate.
	ErrInvalidInput = errors.New("invalid input")
)

type AxisKind uint8

const (
	Regular AxisKind = iota // {Start, Step, Count}
	Rectilinear             // strictly increasing knot slice
)

// Axis is one dimension of a grid, either regular or rectilinear. Build one
// with RegularAxis or RectilinearAxis; validation happens in NewGrid so that
// the error can name the offending axis.
type Axis struct {
	Kind        AxisKind
	Start, Step float64   // Regular only
	Knots       []float64 // Rectilinear only, caller must not mutate
	Count       int
}

func RegularAxis(start, step float64, count int) Axis {
	return Axis{Kind: Regular, Start: start, Step: step, Count: count}
}

func RectilinearAxis(knots []float64) Axis {
	return Axis{Kind: Rectilinear, Knots: knots, Count: len(knots)}
}

// UniformKnots builds n evenly spaced knots spanning [start, stop], for
// composing rectilinear axes in tests and tools.
func UniformKnots(start, stop float64, n int) []float64 {
	return floats.Span(make([]float64, n), start, stop)
}

func (ax Axis) validate() error {
	if ax.Count < 2 {
		return fmt.Errorf("axis has %d knots, need at least 2", ax.Count)
	}
	switch ax.Kind {
	case Regular:
		if !isFinite(ax.Start) || !isFinite(ax.Step) {
			return fmt.Errorf("start/step %g/%g not finite", ax.Start, ax.Step)
		}
		if ax.Step <= 0 {
			return fmt.Errorf("step %g not positive", ax.Step)
		}
	case Rectilinear:
		if len(ax.Knots) != ax.Count {
			return fmt.Errorf("count %d disagrees with %d knots", ax.Count, len(ax.Knots))
		}
		for i, x := range ax.Knots {
			if !isFinite(x) {
				return fmt.Errorf("knot %d is %g", i, x)
			}
			if i > 0 && x <= ax.Knots[i-1] {
				return fmt.Errorf("knots not strictly increasing at %d: %g <= %g",
					i, x, ax.Knots[i-1])
			}
		}
	default:
		return fmt.Errorf("unknown axis kind %d", ax.Kind)
	}
	return nil
}

// First returns the lowest knot coordinate on the axis.
func (ax Axis) First() float64 {
	if ax.Kind == Regular {
		return ax.Start
	}
	return ax.Knots[0]
}

// Last returns the highest knot coordinate on the axis.
func (ax Axis) Last() float64 {
	if ax.Kind == Regular {
		return ax.Start + ax.Step*float64(ax.Count-1)
	}
	return ax.Knots[ax.Count-1]
}

// Knot returns the coordinate of knot i.
func (ax Axis) Knot(i int) float64 {
	if i < 0 || i >= ax.Count {
		panic(fmt.Sprintf("knot index %d out of bounds [0,%d)", i, ax.Count))
	}
	if ax.Kind == Regular {
		return ax.Start + ax.Step*float64(i)
	}
	return ax.Knots[i]
}

// Grid is an immutable rectangular grid description. Values associated with
// the grid are stored flat in C order: the last axis varies fastest.
type Grid struct {
	axes    []Axis
	strides []int
	size    int
}

// NewGrid validates the axes and computes the flat indexing strides. A
// validation failure wraps ErrMalformedGrid and names the offending axis.
func NewGrid(axes ...Axis) (*Grid, error) {
	if len(axes) == 0 {
		return nil, fmt.Errorf("%w: no axes", ErrMalformedGrid)
	}
	for d, ax := range axes {
		if err := ax.validate(); err != nil {
			return nil, fmt.Errorf("%w: axis %d: %s", ErrMalformedGrid, d, err)
		}
	}
	g := &Grid{
		axes:    make([]Axis, len(axes)),
		strides: make([]int, len(axes)),
		size:    1,
	}
	copy(g.axes, axes)
	for d := len(axes) - 1; d >= 0; d-- {
		g.strides[d] = g.size
		g.size *= axes[d].Count
	}
	return g, nil
}

func (g *Grid) NDims() int { return len(g.axes) }

// Size is the total number of grid points, which is the required length of
// any flat value table evaluated on the grid.
func (g *Grid) Size() int { return g.size }

func (g *Grid) Axis(d int) Axis { return g.axes[d] }

// Stride is the flat-index distance between neighboring knots on axis d.
func (g *Grid) Stride(d int) int { return g.strides[d] }

// FlatIndex folds per-axis knot indices into a flat value-table index.
func (g *Grid) FlatIndex(idx []int) int {
	var flat int
	for d, i := range idx {
		flat += i * g.strides[d]
	}
	return flat
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
