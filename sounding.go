// Package sounding resamples radiosonde profiles (height, temperature,
// pressure, dew point) onto a uniform vertical grid, evenly spaced in
// height or evenly spaced in pressure, using extrapolating
// piecewise-linear interpolation.
package sounding

import (
	"fmt"
	"math"
	"sort"
)

// Profile is a column-oriented table of radiosonde records. All four
// columns must have the same length; record i is the reading
// (Z[i], T[i], P[i], Td[i]).
//
// Profiles are value tables: resampling never mutates its input and
// never aliases input slices into the result.
type Profile struct {
	Z  []float64 // geopotential height, m
	T  []float64 // temperature, °C
	P  []float64 // pressure, hPa
	Td []float64 // dew point, °C
}

// Len returns the number of records in the profile.
func (p *Profile) Len() int { return len(p.Z) }

// validate checks the shape invariants shared by both resampling axes:
// four equal-length columns and at least two records.
func (p *Profile) validate() error {
	if p == nil {
		return fmt.Errorf("nil profile: %w", ErrInvalidInput)
	}
	n := len(p.Z)
	if len(p.T) != n || len(p.P) != n || len(p.Td) != n {
		return fmt.Errorf("column lengths differ (z=%d T=%d p=%d Td=%d): %w",
			len(p.Z), len(p.T), len(p.P), len(p.Td), ErrInvalidInput)
	}
	if n < 2 {
		return fmt.Errorf("need at least 2 records, got %d: %w", n, ErrInvalidInput)
	}
	return nil
}

// checkFinite rejects NaN and ±Inf along the resampling axis. The
// other columns are not checked: a non-finite dependent value only
// poisons the interpolated output, it cannot corrupt the grid.
func checkFinite(name string, vals []float64) error {
	for i, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s[%d] is not finite (%v): %w", name, i, v, ErrInvalidInput)
		}
	}
	return nil
}

// sortOrder returns the record permutation that stable-sorts the
// profile by axis. Ties keep input order.
func sortOrder(axis []float64, descending bool) []int {
	idx := make([]int, len(axis))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		if descending {
			return axis[idx[a]] > axis[idx[b]]
		}
		return axis[idx[a]] < axis[idx[b]]
	})
	return idx
}

// permute returns a fresh slice with vals reordered by idx.
func permute(vals []float64, idx []int) []float64 {
	out := make([]float64, len(vals))
	for i, j := range idx {
		out[i] = vals[j]
	}
	return out
}
