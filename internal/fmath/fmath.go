// Copyright (c) 2026, The Terminal Color Solver Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fmath provides the scalar math functions used by the color
// kernel, generic over float32 and float64. The float32 instantiation
// runs on [math32] so that single-precision callers stay on the
// single-precision path; everything else goes through the standard
// library.
package fmath

import (
	"math"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Float is the scalar type parameter of the color kernel.
type Float = constraints.Float

func isF32[T Float](v T) (float32, bool) {
	f, ok := any(v).(float32)
	return f, ok
}

// Abs returns the absolute value of x.
func Abs[T Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Pow returns x**y.
func Pow[T Float](x, y T) T {
	if xf, ok := isF32(x); ok {
		return T(math32.Pow(xf, float32(y)))
	}
	return T(math.Pow(float64(x), float64(y)))
}

// Cbrt returns the cube root of x, preserving the sign of negative
// arguments.
func Cbrt[T Float](x T) T {
	if xf, ok := isF32(x); ok {
		return T(math32.Cbrt(xf))
	}
	return T(math.Cbrt(float64(x)))
}

// Sqrt returns the square root of x.
func Sqrt[T Float](x T) T {
	if xf, ok := isF32(x); ok {
		return T(math32.Sqrt(xf))
	}
	return T(math.Sqrt(float64(x)))
}

// Hypot returns Sqrt(x*x + y*y) without undue overflow.
func Hypot[T Float](x, y T) T {
	if xf, ok := isF32(x); ok {
		return T(math32.Hypot(xf, float32(y)))
	}
	return T(math.Hypot(float64(x), float64(y)))
}

// Atan2 returns the arc tangent of y/x, using the signs of the two to
// determine the quadrant of the return value.
func Atan2[T Float](y, x T) T {
	if yf, ok := isF32(y); ok {
		return T(math32.Atan2(yf, float32(x)))
	}
	return T(math.Atan2(float64(y), float64(x)))
}

// Sincos returns Sin(x), Cos(x).
func Sincos[T Float](x T) (sin, cos T) {
	if xf, ok := isF32(x); ok {
		s, c := math32.Sincos(xf)
		return T(s), T(c)
	}
	s, c := math.Sincos(float64(x))
	return T(s), T(c)
}
