package sounding

import "errors"

// Sentinel errors. Every failure returned by this package wraps one of
// these; callers distinguish them with errors.Is.
var (
	// ErrInvalidInput reports a profile that cannot be interpolated:
	// mismatched column lengths, fewer than two records, non-finite or
	// all-equal values along the resampling axis, or a non-positive
	// step.
	ErrInvalidInput = errors.New("invalid sounding input")

	// ErrInvalidMethod reports a resampling method string that is
	// neither "pressure" nor "height" (in any accepted spelling).
	ErrInvalidMethod = errors.New("invalid resampling method")
)
