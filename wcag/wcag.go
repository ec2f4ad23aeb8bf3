// Copyright (c) 2026, The Terminal Color Solver Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wcag implements relative luminance and contrast ratio as
// defined by WCAG 2.1 (https://www.w3.org/TR/WCAG21/).
//
// Channel inputs are 8-bit sRGB intensities in 0-255, but fractional
// and out-of-range values are accepted and decoded as-is; nothing is
// clamped or rounded.
package wcag

import "github.com/pshirshov/terminal-color-solver/internal/fmath"

// Contrast ratio minimums for the WCAG conformance levels.
const (
	AALarge  = 3.0 // AA for large-scale text
	AA       = 4.5 // AA for normal text, AAA for large-scale text
	AAA      = 7.0 // AAA for normal text
	MinRatio = 1.0
	MaxRatio = 21.0
)

// Linearize converts one sRGB channel value in 0-255 to linear light
// using the piecewise transfer curve from the WCAG 2.1 definition of
// relative luminance. Linearize(0) = 0 and Linearize(255) = 1; the
// threshold test runs on the normalized value, so fractional inputs
// decode on the same curve.
func Linearize[T fmath.Float](v T) T {
	s := v / 255
	if s <= 0.04045 {
		return s / 12.92
	}
	return fmath.Pow((s+0.055)/1.055, 2.4)
}

// Luminance returns the WCAG 2.1 relative luminance of an sRGB color,
// using the ITU-R BT.709 weights on linearized channels. It is 0 for
// black and 1 for white.
func Luminance[T fmath.Float](r, g, b T) T {
	return 0.2126*Linearize(r) + 0.7152*Linearize(g) + 0.0722*Linearize(b)
}

// ContrastRatio returns the WCAG 2.1 contrast ratio between two sRGB
// colors. The result is in [1, 21] and is symmetric: neither color is
// distinguished as foreground. The 0.05 term models viewing flare.
func ContrastRatio[T fmath.Float](r1, g1, b1, r2, g2, b2 T) T {
	y1 := Luminance(r1, g1, b1)
	y2 := Luminance(r2, g2, b2)
	return ContrastRatioOfYs(y1, y2)
}

// ContrastRatioOfYs returns the contrast ratio of two relative
// luminance values.
func ContrastRatioOfYs[T fmath.Float](y1, y2 T) T {
	lighter := max(y1, y2)
	darker := min(y1, y2)
	return (lighter + 0.05) / (darker + 0.05)
}
