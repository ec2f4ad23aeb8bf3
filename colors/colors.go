// Copyright (c) 2026, The Terminal Color Solver Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors is the flat adapter surface over the color kernel
// packages ([wcag], [apca], [oklab], [oklch]) for presentation
// callers. The triple-returning forms here and the record-returning
// forms in the kernel packages share one code path, so results are
// bit-identical.
package colors

import (
	"github.com/pshirshov/terminal-color-solver/apca"
	"github.com/pshirshov/terminal-color-solver/internal/fmath"
	"github.com/pshirshov/terminal-color-solver/oklab"
	"github.com/pshirshov/terminal-color-solver/oklch"
	"github.com/pshirshov/terminal-color-solver/wcag"
)

// Linearize converts one sRGB channel value in 0-255 to linear light
// on the WCAG 2.1 piecewise curve.
func Linearize[T fmath.Float](v T) T {
	return wcag.Linearize(v)
}

// Luminance returns the WCAG 2.1 relative luminance of an sRGB color.
func Luminance[T fmath.Float](r, g, b T) T {
	return wcag.Luminance(r, g, b)
}

// ContrastRatio returns the symmetric WCAG 2.1 contrast ratio of two
// sRGB colors, in [1, 21].
func ContrastRatio[T fmath.Float](r1, g1, b1, r2, g2, b2 T) T {
	return wcag.ContrastRatio(r1, g1, b1, r2, g2, b2)
}

// APCAContrast returns the signed APCA Lc of foreground text on a
// background, channels in 0-255.
func APCAContrast[T fmath.Float](fr, fg, fb, br, bg, bb T) T {
	return apca.Contrast(fr, fg, fb, br, bg, bb)
}

// RGBToOklab converts an sRGB color with channels in 0-255 to Oklab,
// returning the components as a flat triple.
func RGBToOklab[T fmath.Float](r, g, b T) (l, a, lb T) {
	c := oklab.FromSRGB(r, g, b)
	return c.L, c.A, c.B
}

// RGBToOklch converts an sRGB color with channels in 0-255 to OKLCH,
// returning the components as a flat triple. Hue is in degrees in
// [0, 360) and is 0 for near-neutral colors.
func RGBToOklch[T fmath.Float](r, g, b T) (l, c, h T) {
	p := oklch.FromSRGB(r, g, b)
	return p.L, p.C, p.H
}

// OklabDistance returns the perceptual Oklab distance between two
// sRGB colors.
func OklabDistance[T fmath.Float](r1, g1, b1, r2, g2, b2 T) T {
	return oklab.Distance(r1, g1, b1, r2, g2, b2)
}

// HueDistance returns the shortest-arc distance in degrees between
// two hue angles in [0, 360).
func HueDistance[T fmath.Float](h1, h2 T) T {
	return oklch.HueDistance(h1, h2)
}
