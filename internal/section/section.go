// Package section computes properties of rectangular timber cross-sections.
package section

import (
	"errors"
	"fmt"
)

var ErrInvalidGeometry = errors.New("invalid geometry")

// Rectangle is a rectangular cross-section, dimensions in mm.
type Rectangle struct {
	B float64 `json:"b_mm"`
	H float64 `json:"h_mm"`
}

// New validates the dimensions and returns the section.
func New(b, h float64) (Rectangle, error) {
	if b <= 0 || h <= 0 {
		return Rectangle{}, fmt.Errorf("%w: section %.1fx%.1f mm", ErrInvalidGeometry, b, h)
	}
	return Rectangle{B: b, H: h}, nil
}

// A is the cross-section area [mm2].
func (s Rectangle) A() float64 { return s.B * s.H }

// Iy is the second moment of area about the strong axis [mm4].
func (s Rectangle) Iy() float64 { return s.B * s.H * s.H * s.H / 12 }

// Iz is the second moment of area about the weak axis [mm4].
func (s Rectangle) Iz() float64 { return s.H * s.B * s.B * s.B / 12 }

// Wy is the section modulus about the strong axis [mm3].
func (s Rectangle) Wy() float64 { return s.B * s.H * s.H / 6 }

// Wz is the section modulus about the weak axis [mm3].
func (s Rectangle) Wz() float64 { return s.H * s.B * s.B / 6 }

// ValidateSpan checks the span [m] is positive.
func ValidateSpan(spanM float64) error {
	if spanM <= 0 {
		return fmt.Errorf("%w: span %.2f m", ErrInvalidGeometry, spanM)
	}
	return nil
}

// SpanDepthNote returns a warning when the span-to-depth ratio falls outside
// the plausible range for a timber beam. Out-of-range geometry is reported,
// never rejected.
func SpanDepthNote(spanM, hMM float64) string {
	ratio := spanM * 1000 / hMM
	if ratio < 5 || ratio > 40 {
		return fmt.Sprintf("span-to-depth ratio %.1f is outside the usual 5-40 range", ratio)
	}
	return ""
}
