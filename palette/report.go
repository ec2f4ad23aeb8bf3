// Copyright (c) 2026, The Terminal Color Solver Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import "github.com/chewxy/math32"

// Evaluation thresholds. Contrast minimums are APCA Lc magnitudes;
// hue spacing is in degrees of OKLCH hue separation between the six
// chromatic base slots.
const (
	// MinOnBackground is the Lc minimum for the chromatic base colors
	// used as text on the background slot.
	MinOnBackground = 45

	// MinBrightPair is the Lc minimum for a bright variant on its
	// base color; bright black on black only has to clear the lower
	// MinBrightBlack since it renders dim text, not emphasis.
	MinBrightPair  = 30
	MinBrightBlack = 15

	// Minimums for text over the colored backgrounds that full-screen
	// terminal programs commonly paint.
	MinOnBlue  = 30
	MinOnGreen = 30
	MinOnCyan  = 20

	// Hue spacing bands: six evenly spaced chromatic slots sit 60
	// degrees apart.
	HueSpacingIdeal = 60
	HueSpacingGood  = 50
	HueSpacingOK    = 30
)

// Report is the result of evaluating a palette.
type Report struct {
	// OnBackground is the Lc of each chromatic base slot (red through
	// cyan, indices 1-6 of the array matching the slot numbers) as
	// text on the background slot 0.
	OnBackground [7]float32

	// BrightPairs is the Lc of each bright variant on its base color.
	BrightPairs [8]float32

	// OnBlue, OnGreen and OnCyan are the Lc of each base slot as text
	// over the colored backgrounds that full-screen programs paint,
	// indexed by the text slot. The background's own slot is zero.
	OnBlue  [8]float32
	OnGreen [8]float32
	OnCyan  [8]float32

	// MinHueSeparation is the smallest pairwise hue distance among
	// the chromatic base slots, with the slots realizing it.
	MinHueSeparation   float32
	HueSlotA, HueSlotB int
}

// Evaluate computes the analyzer report for a palette.
func Evaluate(p Palette) Report {
	var rep Report
	for i := Red; i <= Cyan; i++ {
		rep.OnBackground[i] = p.Lc(i, Black)
	}
	rep.BrightPairs = p.BrightOnBase()
	for fg := Black; fg <= White; fg++ {
		if fg != Blue {
			rep.OnBlue[fg] = p.Lc(fg, Blue)
		}
		if fg != Green {
			rep.OnGreen[fg] = p.Lc(fg, Green)
		}
		if fg != Cyan {
			rep.OnCyan[fg] = p.Lc(fg, Cyan)
		}
	}
	rep.MinHueSeparation, rep.HueSlotA, rep.HueSlotB = p.MinHueSeparation()
	return rep
}

// Pass reports whether every evaluated constraint meets its minimum:
// chromatic colors readable on the background, bright pairs
// distinguishable from their base, every base color readable over the
// blue, green and cyan backgrounds, and hue spacing at least the OK
// band.
func (r Report) Pass() bool {
	for i := Red; i <= Cyan; i++ {
		if math32.Abs(r.OnBackground[i]) < MinOnBackground {
			return false
		}
	}
	if math32.Abs(r.BrightPairs[0]) < MinBrightBlack {
		return false
	}
	for i := 1; i < 8; i++ {
		if math32.Abs(r.BrightPairs[i]) < MinBrightPair {
			return false
		}
	}
	for fg := Black; fg <= White; fg++ {
		if fg != Blue && math32.Abs(r.OnBlue[fg]) < MinOnBlue {
			return false
		}
		if fg != Green && math32.Abs(r.OnGreen[fg]) < MinOnGreen {
			return false
		}
		if fg != Cyan && math32.Abs(r.OnCyan[fg]) < MinOnCyan {
			return false
		}
	}
	return r.MinHueSeparation >= HueSpacingOK
}

// SpacingBand classifies a minimum hue separation into the analyzer
// bands: six evenly spaced chromatic hues sit 60 degrees apart.
type SpacingBand int

const (
	SpacingClose SpacingBand = iota // below HueSpacingOK
	SpacingOK                       // >= 30 degrees
	SpacingGood                     // >= 50 degrees
	SpacingIdeal                    // >= 60 degrees, evenly spaced
)

var spacingNames = [...]string{"close", "ok", "good", "ideal"}

func (b SpacingBand) String() string {
	if b < SpacingClose || b > SpacingIdeal {
		return "invalid"
	}
	return spacingNames[b]
}

// SpacingBandOf classifies a minimum hue separation in degrees.
func SpacingBandOf(deg float32) SpacingBand {
	switch {
	case deg >= HueSpacingIdeal:
		return SpacingIdeal
	case deg >= HueSpacingGood:
		return SpacingGood
	case deg >= HueSpacingOK:
		return SpacingOK
	default:
		return SpacingClose
	}
}
