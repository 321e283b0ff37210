package grid

import (
	"fmt"
	"math"
	"sort"
)

// Region classifies one axis of an observation point relative to its located
// cell: inside the cell span, below the first knot, or above the last.
type Region uint8

const (
	Interior Region = iota
	Below
	Above
)

// Classify reads the region off the fractional cell position alone. The
// boundary values t=0 and t=1 are Interior so that evaluation at a grid face
// always takes the interior path.
func Classify(t float64) Region {
	switch {
	case t < 0:
		return Below
	case t > 1:
		return Above
	default:
		return Interior
	}
}

// Locate maps one coordinate to (lowerIndex, t) on the axis. lowerIndex is
// clamped into [0, Count-2] so vertex lookups stay in bounds even when x is
// outside the axis span; t is the true fractional position relative to the
// clamped cell and may be <0 or >1. Regular axes are O(1), rectilinear axes
// are a binary search.
func (ax Axis) Locate(x float64) (lower int, t float64, err error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		err = fmt.Errorf("%w: coordinate is %g", ErrInvalidInput, x)
		return
	}
	switch ax.Kind {
	case Regular:
		raw := (x - ax.Start) / ax.Step
		lower = int(math.Floor(raw))
		if lower < 0 {
			lower = 0
		} else if lower > ax.Count-2 {
			lower = ax.Count - 2
		}
		t = raw - float64(lower)
	case Rectilinear:
		// First cell whose upper knot exceeds x; saturates at the top cell
		// when x is beyond the last knot.
		lower = sort.Search(ax.Count-2, func(k int) bool {
			return x < ax.Knots[k+1]
		})
		t = (x - ax.Knots[lower]) / (ax.Knots[lower+1] - ax.Knots[lower])
	default:
		panic(fmt.Sprintf("unknown axis kind %d", ax.Kind))
	}
	return
}
