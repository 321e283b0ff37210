package multilinear

// assembleWeights fills the 2^ndims vertex weight table with the standard
// multilinear basis: vertex v gets the product over axes d of t[d] when bit
// d of v is set, else 1-t[d]. For interior t the weights partition unity.
func assembleWeights(w, t []float64) {
	nd := len(t)
	for v := range w {
		p := 1.0
		for d := 0; d < nd; d++ {
			if v>>d&1 == 1 {
				p *= t[d]
			} else {
				p *= 1 - t[d]
			}
		}
		w[v] = p
	}
}

// correctWeights turns the anchor weight table into an affine extrapolant.
//
// On entry w holds the base weights assembled from the anchor position: t[d]
// is clamped to 0 or 1 on every extrapolating axis d, and excess[d] holds
// the signed overhang t_d - bound_d (zero on interior axes). The anchor
// table alone evaluates the interpolant at the nearest cell face. For each
// extrapolating axis this pass adds the boundary-adjacent finite-difference
// slope along that axis times the overhang, expressed as a signed weight
// pair on the two cell faces normal to the axis:
//
//	w[v] += excess[d] * sgn_d(v) * prod_{a != d} fac_a(v)
//
// with sgn_d(v) = +1 on the upper face, -1 on the lower. The sign
// alternation is the inclusion-exclusion cancellation of multi-axis cross
// terms: anchor factors of the other extrapolating axes are exact 0/1
// indicators, so every product of two or more overhangs vanishes and the
// result is degree exactly one in each extrapolating coordinate. The
// corrected weights still sum to 1, since each slope term contributes a
// zero-sum face pair. When excess[d] is zero the pass is skipped and the
// table is bit-identical to the interior formula, which makes the
// interior/extrapolation seam exact.
//
// Iterative over bit masks, no recursion, no allocation.
func correctWeights(w, t, excess []float64) {
	nd := len(t)
	for d := 0; d < nd; d++ {
		if excess[d] == 0 {
			continue
		}
		for v := range w {
			p := excess[d]
			for a := 0; a < nd; a++ {
				if a == d {
					continue
				}
				if v>>a&1 == 1 {
					p *= t[a]
				} else {
					p *= 1 - t[a]
				}
			}
			if v>>d&1 == 1 {
				w[v] += p
			} else {
				w[v] -= p
			}
		}
	}
}
