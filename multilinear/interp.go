// Package multilinear evaluates multilinear interpolation with affine
// extrapolation over regular or rectilinear rectangular grids in up to
// MaxDims dimensions. The evaluation path performs no heap allocation:
// per-call scratch lives in fixed-size stack buffers.
package multilinear

import (
	"errors"
	"fmt"
	"strings"

	"github.com/notargets/interpn/grid"
)

// MaxDims caps the supported dimension count. The 1<<MaxDims vertex weight
// table must fit in a call frame; 8KiB covers every realistic table.
const MaxDims = 10

var (
	// ErrDimensionMismatch reports an observation point whose length does
	// not equal the grid dimension.
	ErrDimensionMismatch = errors.New("dimension mismatch")
	// ErrOutOfBounds reports an out-of-grid observation point under
	// BoundsError mode.
	ErrOutOfBounds = errors.New("out of bounds")
)

// BoundsMode selects what happens to observation points outside the grid.
type BoundsMode uint8

const (
	// BoundsExtrapolate extends the interpolant affinely per axis.
	BoundsExtrapolate BoundsMode = iota
	// BoundsClamp snaps each coordinate into the axis span before locating
	// the cell, so extrapolation never triggers.
	BoundsClamp
	// BoundsError fails the point with ErrOutOfBounds when any axis is
	// outside the grid.
	BoundsError
)

// NewBoundsMode parses the mode names used by parameter files and CLI flags.
func NewBoundsMode(name string) (BoundsMode, error) {
	switch strings.ToLower(name) {
	case "", "extrapolate":
		return BoundsExtrapolate, nil
	case "clamp":
		return BoundsClamp, nil
	case "error":
		return BoundsError, nil
	}
	return 0, fmt.Errorf("unknown bounds mode %q", name)
}

func (bm BoundsMode) String() string {
	switch bm {
	case BoundsExtrapolate:
		return "Extrapolate"
	case BoundsClamp:
		return "Clamp"
	case BoundsError:
		return "Error"
	}
	return fmt.Sprintf("BoundsMode(%d)", uint8(bm))
}

// Interpolator is an immutable interpolation/extrapolation engine over one
// grid and one flat value table. All methods are safe for concurrent use.
type Interpolator struct {
	g    *grid.Grid
	vals []float64
	mode BoundsMode
}

// New builds an Interpolator. vals is the flat value table in the grid's C
// order (last axis fastest) and is borrowed, not copied; the caller must not
// mutate it while the interpolator is in use.
func New(g *grid.Grid, vals []float64, mode BoundsMode) (*Interpolator, error) {
	if g.NDims() > MaxDims {
		return nil, fmt.Errorf("%w: %d axes exceeds the %d supported",
			grid.ErrMalformedGrid, g.NDims(), MaxDims)
	}
	if len(vals) != g.Size() {
		return nil, fmt.Errorf("%w: %d values for a grid of %d points",
			grid.ErrMalformedGrid, len(vals), g.Size())
	}
	if mode > BoundsError {
		return nil, fmt.Errorf("%w: bad bounds mode %d", grid.ErrMalformedGrid, mode)
	}
	return &Interpolator{g: g, vals: vals, mode: mode}, nil
}

func (itp *Interpolator) NDims() int        { return itp.g.NDims() }
func (itp *Interpolator) Grid() *grid.Grid  { return itp.g }
func (itp *Interpolator) Mode() BoundsMode  { return itp.mode }
func (itp *Interpolator) Values() []float64 { return itp.vals }

// Evaluate computes the interpolant at one observation point of length
// NDims. It allocates nothing.
func (itp *Interpolator) Evaluate(point []float64) (float64, error) {
	var (
		lower  [MaxDims]int
		t      [MaxDims]float64
		excess [MaxDims]float64
		w      [1 << MaxDims]float64
	)
	nd := itp.g.NDims()
	if len(point) != nd {
		return 0, fmt.Errorf("%w: point has %d coordinates, grid has %d axes",
			ErrDimensionMismatch, len(point), nd)
	}

	// Per-axis cell location and bounds policy. After this loop t[d] is the
	// anchor position (clamped into [0,1] for extrapolating axes) and
	// excess[d] carries the signed overhang, zero on interior axes.
	nExtrap := 0
	for d := 0; d < nd; d++ {
		ax := itp.g.Axis(d)
		x := point[d]
		lo, td, err := ax.Locate(x)
		if err != nil {
			return 0, err
		}
		switch grid.Classify(td) {
		case grid.Interior:
		case grid.Below:
			switch itp.mode {
			case BoundsError:
				return 0, fmt.Errorf("%w: axis %d: %g below %g",
					ErrOutOfBounds, d, x, ax.First())
			case BoundsClamp:
				td = 0
			default:
				excess[d] = td
				td = 0
				nExtrap++
			}
		case grid.Above:
			switch itp.mode {
			case BoundsError:
				return 0, fmt.Errorf("%w: axis %d: %g above %g",
					ErrOutOfBounds, d, x, ax.Last())
			case BoundsClamp:
				td = 1
			default:
				excess[d] = td - 1
				td = 1
				nExtrap++
			}
		}
		lower[d] = lo
		t[d] = td
	}

	nv := 1 << nd
	assembleWeights(w[:nv], t[:nd])
	if nExtrap > 0 {
		correctWeights(w[:nv], t[:nd], excess[:nd])
	}

	// Weighted gather over the located cell's vertices.
	var sum float64
	for v := 0; v < nv; v++ {
		if w[v] == 0 {
			continue
		}
		flat := 0
		for d := 0; d < nd; d++ {
			flat += (lower[d] + v>>d&1) * itp.g.Stride(d)
		}
		sum += w[v] * itp.vals[flat]
	}
	return sum, nil
}
