// Copyright (c) 2026, The Terminal Color Solver Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatch(t *testing.T) {
	// both instantiations agree on shared inputs
	assert.InDelta(t, float64(Pow(float32(0.5), 2.4)), Pow(0.5, 2.4), 1e-6)
	assert.InDelta(t, float64(Cbrt(float32(0.3))), Cbrt(0.3), 1e-6)
	assert.InDelta(t, float64(Atan2(float32(1), 2)), Atan2(1.0, 2.0), 1e-6)
	assert.InDelta(t, float64(Hypot(float32(3), 4)), Hypot(3.0, 4.0), 1e-6)
}

func TestCbrtSign(t *testing.T) {
	// the cube root must preserve sign for negative arguments
	assert.Negative(t, Cbrt(-0.001))
	assert.Negative(t, Cbrt(float32(-0.001)))
	assert.InDelta(t, -0.1, Cbrt(-0.001), 1e-9)
	assert.Zero(t, Cbrt(0.0))
}

func TestAbs(t *testing.T) {
	assert.Equal(t, 1.5, Abs(-1.5))
	assert.Equal(t, float32(1.5), Abs(float32(1.5)))
	assert.Equal(t, 0.0, Abs(0.0))
}

func TestSincos(t *testing.T) {
	s, c := Sincos(0.0)
	assert.Zero(t, s)
	assert.Equal(t, 1.0, c)

	s32, c32 := Sincos(float32(3.14159265 / 2))
	assert.InDelta(t, 1, float64(s32), 1e-6)
	assert.InDelta(t, 0, float64(c32), 1e-6)
}
