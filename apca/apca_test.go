// Copyright (c) 2026, The Terminal Color Solver Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package apca

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pshirshov/terminal-color-solver/internal/fmath"
	"github.com/pshirshov/terminal-color-solver/wcag"
)

func TestSRGBToLinear(t *testing.T) {
	t.Run("float32", testSRGBToLinear[float32])
	t.Run("float64", testSRGBToLinear[float64])
}

func testSRGBToLinear[T fmath.Float](t *testing.T) {
	assert.Zero(t, SRGBToLinear(T(0)))
	assert.InDelta(t, 1, float64(SRGBToLinear(T(255))), 1e-3)

	// pure 2.4 gamma decodes darker than the WCAG piecewise curve in
	// the toe region
	assert.Less(t, float64(SRGBToLinear(T(10))), float64(wcag.Linearize(T(10))))

	// monotonic
	prev := SRGBToLinear(T(0))
	for v := T(1); v <= 255; v++ {
		cur := SRGBToLinear(v)
		assert.Greater(t, cur, prev, "not monotonic at %v", v)
		prev = cur
	}
}

func TestContrast(t *testing.T) {
	t.Run("float32", testContrast[float32])
	t.Run("float64", testContrast[float64])
}

func testContrast[T fmath.Float](t *testing.T) {
	// reference extremes from the APCA demonstrator
	wob := Contrast(T(255), 255, 255, 0, 0, 0)
	assert.Negative(t, wob)
	assert.InDelta(t, -108, float64(wob), 5)

	bow := Contrast(T(0), 0, 0, 255, 255, 255)
	assert.Positive(t, bow)
	assert.InDelta(t, 106, float64(bow), 5)

	// identical colors are exactly zero
	assert.Zero(t, Contrast(T(128), 128, 128, 128, 128, 128))
	assert.Zero(t, Contrast(T(0), 0, 0, 0, 0, 0))

	// near-identical colors clip to zero
	assert.Zero(t, Contrast(T(128), 128, 128, 129, 129, 129))

	// sub-threshold |Lc| clips to zero rather than reporting noise
	assert.Zero(t, Contrast(T(120), 120, 120, 128, 128, 128))
}

func TestPolarity(t *testing.T) {
	t.Run("float32", testPolarity[float32])
	t.Run("float64", testPolarity[float64])
}

func testPolarity[T fmath.Float](t *testing.T) {
	pairs := [][6]T{
		{50, 50, 50, 200, 200, 200},
		{0, 0, 0, 255, 255, 255},
		{30, 30, 120, 230, 230, 230},
		{0, 0, 128, 255, 255, 0},
	}
	for _, p := range pairs {
		fwd := Contrast(p[0], p[1], p[2], p[3], p[4], p[5])
		rev := Contrast(p[3], p[4], p[5], p[0], p[1], p[2])
		// swapping text and background inverts the sign; magnitude
		// differs slightly because the polarity exponents differ
		assert.Positive(t, fwd)
		assert.Negative(t, rev)
	}
}

func TestIsReadable(t *testing.T) {
	t.Run("float32", testIsReadable[float32])
	t.Run("float64", testIsReadable[float64])
}

func testIsReadable[T fmath.Float](t *testing.T) {
	assert.True(t, IsReadable(T(255), 255, 255, 0, 0, 0, LcBody))
	assert.True(t, IsReadable(T(0), 0, 0, 255, 255, 255, LcPreferred))
	assert.False(t, IsReadable(T(128), 128, 128, 140, 140, 140, LcBody))

	assert.Equal(t, ContrastAbs(T(255), 255, 255, 0, 0, 0),
		-Contrast(T(255), 255, 255, 0, 0, 0))
}
