package sounding

import (
	"fmt"
	"sort"
)

// linearInterp is a piecewise-linear interpolant over knots with
// ascending x. Evaluation between knots blends linearly; outside the
// knot range the nearest segment's slope is extended indefinitely
// (linear extrapolation, no clamping).
//
// Duplicate x values are tolerated: only the first knot at each
// distinct x is kept, so evaluation exactly at a duplicated coordinate
// returns the first occurrence's y (first-occurrence-wins tie-break).
type linearInterp struct {
	xs, ys []float64 // strictly increasing xs after dedup
}

// newLinearInterp builds an interpolant from knots sorted by ascending
// x. It fails if fewer than two distinct x values remain after
// dropping duplicates, since no segment slope would be defined.
func newLinearInterp(xs, ys []float64) (*linearInterp, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("interpolant: %d x values vs %d y values", len(xs), len(ys))
	}
	dx := make([]float64, 0, len(xs))
	dy := make([]float64, 0, len(ys))
	for i := range xs {
		if i > 0 && xs[i] == dx[len(dx)-1] {
			continue // zero-width segment, first knot wins
		}
		dx = append(dx, xs[i])
		dy = append(dy, ys[i])
	}
	if len(dx) < 2 {
		return nil, fmt.Errorf("interpolant: need at least 2 distinct knots, got %d", len(dx))
	}
	return &linearInterp{xs: dx, ys: dy}, nil
}

// eval returns the interpolated (or extrapolated) value at x.
func (f *linearInterp) eval(x float64) float64 {
	xs, ys := f.xs, f.ys
	n := len(xs)
	// First index with xs[i] >= x.
	i := sort.SearchFloat64s(xs, x)
	switch {
	case i == 0:
		i = 1 // left of all knots: extend the first segment
	case i >= n:
		i = n - 1 // right of all knots: extend the last segment
	}
	x0, x1 := xs[i-1], xs[i]
	y0, y1 := ys[i-1], ys[i]
	return y0 + (x-x0)/(x1-x0)*(y1-y0)
}

// evalAll evaluates the interpolant at every grid point.
func (f *linearInterp) evalAll(grid []float64) []float64 {
	out := make([]float64, len(grid))
	for i, x := range grid {
		out[i] = f.eval(x)
	}
	return out
}
