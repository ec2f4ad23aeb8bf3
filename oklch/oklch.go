// Copyright (c) 2026, The Terminal Color Solver Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package oklch implements the polar form of Oklab: lightness, chroma
// and hue. Hue is carried in degrees in [0, 360).
//
// Hue is meaningless for near-neutral colors. Below [ChromaEpsilon]
// it is reported as 0 by convention, and callers comparing hues
// should gate on chroma; [HueSimilar] bakes that gate in.
package oklch

import (
	"github.com/pshirshov/terminal-color-solver/internal/fmath"
	"github.com/pshirshov/terminal-color-solver/oklab"
)

const (
	// ChromaEpsilon is the chroma below which hue is undefined and
	// reported as 0.
	ChromaEpsilon = 1e-6

	// GrayChroma is the chroma below which a color counts as
	// effectively achromatic for hue comparisons.
	GrayChroma = 1e-3

	// DefaultHueTolerance is the default hue similarity tolerance in
	// degrees.
	DefaultHueTolerance = 30

	degPerRad = 180 / 3.14159265358979323846264338327950288
)

// LCH is an Oklab color in polar form. L is the Oklab lightness, C
// the chroma (distance from the neutral axis, non-negative) and H the
// hue angle in degrees in [0, 360).
type LCH[T fmath.Float] struct {
	L, C, H T
}

// FromSRGB converts an sRGB color with channels in 0-255 to OKLCH.
func FromSRGB[T fmath.Float](r, g, b T) LCH[T] {
	return FromLab(oklab.FromSRGB(r, g, b))
}

// FromLab converts an Oklab color to its polar form.
func FromLab[T fmath.Float](c oklab.Lab[T]) LCH[T] {
	ch := fmath.Hypot(c.A, c.B)
	var h T
	if ch >= ChromaEpsilon {
		h = fmath.Atan2(c.B, c.A) * degPerRad
		if h < 0 {
			h += 360
		}
		if h >= 360 {
			h -= 360
		}
	}
	return LCH[T]{L: c.L, C: ch, H: h}
}

// Lab converts back to rectangular Oklab. For C >= ChromaEpsilon the
// round trip restores (A, B) within 1e-6.
func (c LCH[T]) Lab() oklab.Lab[T] {
	sin, cos := fmath.Sincos(c.H / degPerRad)
	return oklab.Lab[T]{L: c.L, A: c.C * cos, B: c.C * sin}
}

// HueDistance returns the shortest-arc distance between two hue
// angles in [0, 360), in degrees. The result is in [0, 180].
func HueDistance[T fmath.Float](h1, h2 T) T {
	d := fmath.Abs(h1 - h2)
	if d > 180 {
		d = 360 - d
	}
	return d
}

// HueSimilar reports whether two sRGB colors have similar hues within
// tol degrees. Colors with chroma below [GrayChroma] have no
// meaningful hue and compare similar to everything.
func HueSimilar[T fmath.Float](r1, g1, b1, r2, g2, b2, tol T) bool {
	c1 := FromSRGB(r1, g1, b1)
	c2 := FromSRGB(r2, g2, b2)
	if c1.C < GrayChroma || c2.C < GrayChroma {
		return true
	}
	return HueDistance(c1.H, c2.H) <= tol
}
