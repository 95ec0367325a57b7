package sounding

import (
	"fmt"
	"strings"
)

// Method selects the resampling axis.
type Method int

const (
	// MethodPressure resamples onto a uniform, descending pressure grid.
	MethodPressure Method = iota
	// MethodHeight resamples onto a uniform, ascending height grid.
	MethodHeight
)

func (m Method) String() string {
	switch m {
	case MethodPressure:
		return "pressure"
	case MethodHeight:
		return "height"
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// ParseMethod parses a method name, case-insensitively. Both the
// English names and the Spanish spellings used by the original
// sounding workflows are accepted ("presion"/"presión", "altura").
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(s) {
	case "pressure", "presion", "presión":
		return MethodPressure, nil
	case "height", "altura":
		return MethodHeight, nil
	}
	return 0, fmt.Errorf("unknown method %q (want \"pressure\" or \"height\"): %w", s, ErrInvalidMethod)
}

// Resample dispatches to ResampleByPressure or ResampleByHeight by
// method name. A resolution of 0 selects the per-method default step
// (DefaultPressureStep hPa or DefaultHeightStep m); a positive value
// overrides it; a negative value is invalid.
func Resample(p *Profile, method string, resolution float64) (*Profile, error) {
	m, err := ParseMethod(method)
	if err != nil {
		return nil, err
	}
	if resolution < 0 {
		return nil, fmt.Errorf("resolution must not be negative, got %v: %w", resolution, ErrInvalidInput)
	}
	switch m {
	case MethodPressure:
		step := resolution
		if step == 0 {
			step = DefaultPressureStep
		}
		return ResampleByPressure(p, step)
	default:
		step := resolution
		if step == 0 {
			step = DefaultHeightStep
		}
		return ResampleByHeight(p, step)
	}
}
