// Copyright (c) 2026, The Terminal Color Solver Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package oklab implements the Oklab perceptually uniform color space
// (Ottosson 2020, https://bottosson.github.io/posts/oklab/).
//
// Euclidean distance in Oklab approximates perceived color difference;
// distances below [JND] are not noticeable under normal viewing.
package oklab

import (
	"github.com/pshirshov/terminal-color-solver/internal/fmath"
	"github.com/pshirshov/terminal-color-solver/wcag"
)

// JND is the approximate just-noticeable difference in Oklab distance
// units (0.02-0.03 under controlled viewing).
const JND = 0.02

// Lab is an Oklab color. L is perceptual lightness, 0 for black and
// ~1 for white. A is the red(+)/green(-) axis and B the
// yellow(+)/blue(-) axis; both are unbounded but stay roughly within
// [-0.5, 0.5] for in-gamut sRGB.
type Lab[T fmath.Float] struct {
	L, A, B T
}

// FromSRGB converts an sRGB color with channels in 0-255 to Oklab.
// Channels are decoded with the standard piecewise sRGB curve, mixed
// into an LMS-like cone space, compressed by a signed cube root, and
// rotated into Lab. The signed cube root keeps slightly out-of-gamut
// inputs numerically stable.
func FromSRGB[T fmath.Float](r, g, b T) Lab[T] {
	return FromLinear(wcag.Linearize(r), wcag.Linearize(g), wcag.Linearize(b))
}

// FromLinear converts linear-light sRGB channels in 0-1 to Oklab.
func FromLinear[T fmath.Float](r, g, b T) Lab[T] {
	l := 0.4122214708*r + 0.5363325363*g + 0.0514459929*b
	m := 0.2119034982*r + 0.6806995451*g + 0.1073969566*b
	s := 0.0883024619*r + 0.2817188376*g + 0.6299787005*b

	lp := fmath.Cbrt(l)
	mp := fmath.Cbrt(m)
	sp := fmath.Cbrt(s)

	return Lab[T]{
		L: 0.2104542553*lp + 0.7936177850*mp - 0.0040720468*sp,
		A: 1.9779984951*lp - 2.4285922050*mp + 0.4505937099*sp,
		B: 0.0259040371*lp + 0.7827717662*mp - 0.8086757660*sp,
	}
}

// DistanceTo returns the Euclidean distance between two Oklab colors.
func (c Lab[T]) DistanceTo(o Lab[T]) T {
	dl := c.L - o.L
	da := c.A - o.A
	db := c.B - o.B
	return fmath.Sqrt(dl*dl + da*da + db*db)
}

// Distance returns the perceptual distance between two sRGB colors,
// channels in 0-255. It is a metric: non-negative, symmetric, and
// zero only for identical inputs.
func Distance[T fmath.Float](r1, g1, b1, r2, g2, b2 T) T {
	return FromSRGB(r1, g1, b1).DistanceTo(FromSRGB(r2, g2, b2))
}
