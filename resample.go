package sounding

import (
	"fmt"
	"math"
)

// Default grid steps used by Resample when no resolution is given.
const (
	DefaultHeightStep   = 10.0 // m
	DefaultPressureStep = 1.0  // hPa
)

// ResampleByHeight resamples the profile onto a uniform height grid.
//
// Records are stable-sorted by ascending height (ties keep input
// order). The grid starts at the lowest height and advances by stepM
// while strictly below max(z)+stepM, so the last grid point may exceed
// the highest sample by up to one step. Temperature, pressure and dew
// point are piecewise-linear in height, extrapolated past both ends of
// the data.
func ResampleByHeight(p *Profile, stepM float64) (*Profile, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	if err := checkStep(stepM); err != nil {
		return nil, err
	}
	if err := checkFinite("z", p.Z); err != nil {
		return nil, err
	}

	idx := sortOrder(p.Z, false)
	z := permute(p.Z, idx)

	fT, err := interpOn(z, permute(p.T, idx))
	if err != nil {
		return nil, fmt.Errorf("height axis: %w", err)
	}
	fP, err := interpOn(z, permute(p.P, idx))
	if err != nil {
		return nil, fmt.Errorf("height axis: %w", err)
	}
	fTd, err := interpOn(z, permute(p.Td, idx))
	if err != nil {
		return nil, fmt.Errorf("height axis: %w", err)
	}

	grid, err := arange(z[0], z[len(z)-1]+stepM, stepM)
	if err != nil {
		return nil, err
	}
	return &Profile{
		Z:  grid,
		T:  fT.evalAll(grid),
		P:  fP.evalAll(grid),
		Td: fTd.evalAll(grid),
	}, nil
}

// ResampleByPressure resamples the profile onto a uniform pressure
// grid, descending from the highest pressure as in real soundings,
// where pressure decreases with altitude.
//
// Records are stable-sorted by descending pressure (ties keep input
// order). The grid starts at max(p) and decreases by stepHPa while
// strictly above min(p)-stepHPa, mirroring the height case's
// inclusive-overshoot bound. Temperature, height and dew point are
// piecewise-linear in pressure, extrapolated past both ends.
func ResampleByPressure(p *Profile, stepHPa float64) (*Profile, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	if err := checkStep(stepHPa); err != nil {
		return nil, err
	}
	if err := checkFinite("p", p.P); err != nil {
		return nil, err
	}

	idx := sortOrder(p.P, true)
	// The interpolant wants ascending knots. Negating the descending
	// pressures gives an ascending axis while keeping the stable-sort
	// tie order, so the first record at a duplicated pressure wins.
	pr := permute(p.P, idx)
	neg := make([]float64, len(pr))
	for i, v := range pr {
		neg[i] = -v
	}

	fT, err := interpOn(neg, permute(p.T, idx))
	if err != nil {
		return nil, fmt.Errorf("pressure axis: %w", err)
	}
	fZ, err := interpOn(neg, permute(p.Z, idx))
	if err != nil {
		return nil, fmt.Errorf("pressure axis: %w", err)
	}
	fTd, err := interpOn(neg, permute(p.Td, idx))
	if err != nil {
		return nil, fmt.Errorf("pressure axis: %w", err)
	}

	grid, err := arange(pr[0], pr[len(pr)-1]-stepHPa, -stepHPa)
	if err != nil {
		return nil, err
	}
	negGrid := make([]float64, len(grid))
	for i, v := range grid {
		negGrid[i] = -v
	}
	return &Profile{
		Z:  fZ.evalAll(negGrid),
		T:  fT.evalAll(negGrid),
		P:  grid,
		Td: fTd.evalAll(negGrid),
	}, nil
}

// interpOn wraps interpolant construction so a degenerate axis (all
// values equal) surfaces as ErrInvalidInput.
func interpOn(xs, ys []float64) (*linearInterp, error) {
	f, err := newLinearInterp(xs, ys)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrInvalidInput)
	}
	return f, nil
}

// checkStep rejects non-positive and non-finite grid steps.
func checkStep(step float64) error {
	if !(step > 0) || math.IsInf(step, 1) {
		return fmt.Errorf("step must be a positive finite number, got %v: %w", step, ErrInvalidInput)
	}
	return nil
}

// maxGridPoints caps the generated grid length. Real soundings span at
// most ~40 km at sub-metre resolution; the cap only stops a tiny step
// over a huge range from exhausting memory.
const maxGridPoints = 1 << 24 // 16,777,216

// arange generates start, start+step, ... stopping before stop, with
// the same exclusive-stop count as an exclusive-end sequence generator:
// ceil((stop-start)/step) points. step may be negative for a
// descending sequence.
func arange(start, stop, step float64) ([]float64, error) {
	count := math.Ceil((stop - start) / step)
	if !(count >= 1) {
		count = 1
	}
	if count > maxGridPoints {
		return nil, fmt.Errorf("grid of %v points exceeds limit %d: %w", count, maxGridPoints, ErrInvalidInput)
	}
	out := make([]float64, int(count))
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out, nil
}
