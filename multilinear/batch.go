package multilinear

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// PointError ties one failed observation point in a batch to its index.
type PointError struct {
	Index int
	Err   error
}

func (pe PointError) Error() string {
	return fmt.Sprintf("point %d: %s", pe.Index, pe.Err)
}

func (pe PointError) Unwrap() error { return pe.Err }

// EvalBatch evaluates every point independently into out, which must have
// len(points) slots; a nil out allocates one. A failed point leaves zero in
// its slot and is reported in the returned list without aborting siblings.
// With a caller-supplied out and no failures, the call allocates nothing.
func (itp *Interpolator) EvalBatch(points [][]float64, out []float64) ([]float64, []PointError) {
	if out == nil {
		out = make([]float64, len(points))
	} else if len(out) != len(points) {
		panic(fmt.Sprintf("output has %d slots for %d points", len(out), len(points)))
	}
	var errs []PointError
	for i, pt := range points {
		y, err := itp.Evaluate(pt)
		if err != nil {
			errs = append(errs, PointError{Index: i, Err: err})
			out[i] = 0
			continue
		}
		out[i] = y
	}
	return out, errs
}

// EvalAll is the panic-on-error convenience form of EvalBatch. An optional
// output slice avoids the allocation; if more than one is given only the
// first is used.
func (itp *Interpolator) EvalAll(points [][]float64, out ...[]float64) []float64 {
	dst := []float64(nil)
	if len(out) > 0 {
		dst = out[0]
	}
	dst, errs := itp.EvalBatch(points, dst)
	if len(errs) > 0 {
		panic(errs[0].Error())
	}
	return dst
}

// EvalMat evaluates every row of pts, an MxNDims matrix of observation
// points, returning an M-vector of results. Row views are taken without
// copying.
func (itp *Interpolator) EvalMat(pts *mat.Dense) (*mat.VecDense, []PointError) {
	var (
		m, n = pts.Dims()
	)
	if n != itp.g.NDims() {
		return nil, []PointError{{Index: -1, Err: fmt.Errorf(
			"%w: matrix has %d columns, grid has %d axes",
			ErrDimensionMismatch, n, itp.g.NDims())}}
	}
	y := mat.NewVecDense(m, nil)
	var errs []PointError
	for i := 0; i < m; i++ {
		v, err := itp.Evaluate(pts.RawRowView(i))
		if err != nil {
			errs = append(errs, PointError{Index: i, Err: err})
			continue
		}
		y.SetVec(i, v)
	}
	return y, errs
}
