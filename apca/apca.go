// Copyright (c) 2026, The Terminal Color Solver Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package apca implements the Accessible Perceptual Contrast
// Algorithm (APCA, revision 0.1.9 constants), a signed, polarity-aware
// replacement for the WCAG 2.1 contrast ratio.
// Reference: https://github.com/Myndex/SAPC-APCA
//
// Lc is positive for dark text on a light background and negative for
// light text on a dark background, spanning roughly -108 to +106 at
// the black/white extremes. APCA uses its own pure power-law sRGB
// decoding; it must not be mixed with the WCAG piecewise curve.
package apca

import "github.com/pshirshov/terminal-color-solver/internal/fmath"

// Reference constants from APCA 0.1.9. Deviating from any of these is
// a correctness defect.
const (
	mainTRC = 2.4 // power-law sRGB decoding exponent

	// soft clamp lifting the deep-black region
	blkThrs = 0.022
	blkClmp = 1.414

	// polarity exponents
	normBG  = 0.56 // background, dark text on light
	normTXT = 0.57 // text, dark text on light
	revBG   = 0.65 // background, light text on dark
	revTXT  = 0.62 // text, light text on dark

	scale    = 1.14   // output scale (BoW and WoB)
	loOffset = 0.027  // low-contrast output offset
	deltaMin = 0.0005 // luminance deltas below this are noise
	loThresh = 0.001  // raw contrasts below this clip to zero
	loClip   = 7.5    // |Lc| below this clips to zero
)

// Common Lc magnitude thresholds for readability.
const (
	LcLargeBold = 45 // minimum for large bold text
	LcLarge     = 60 // minimum for large text
	LcBody      = 75 // minimum for body text
	LcPreferred = 90 // preferred for body text
)

// SRGBToLinear converts one sRGB channel value in 0-255 to linear
// light using the APCA pure power-law curve (exponent 2.4, no
// piecewise toe). It decodes darker than the WCAG curve near black,
// which the polarity behavior depends on.
func SRGBToLinear[T fmath.Float](v T) T {
	return fmath.Pow(v/255, mainTRC)
}

// screenLuminance is the APCA estimate of luminance as emitted by a
// display, using BT.709 weights on power-law linearized channels.
func screenLuminance[T fmath.Float](r, g, b T) T {
	return 0.2126*SRGBToLinear(r) + 0.7152*SRGBToLinear(g) + 0.0722*SRGBToLinear(b)
}

// softClamp lifts luminances below blkThrs so that tiny differences
// deep in the black region do not over-contribute.
func softClamp[T fmath.Float](y T) T {
	if y < blkThrs {
		return y + fmath.Pow(blkThrs-y, blkClmp)
	}
	return y
}

// Contrast returns the signed APCA Lc contrast of foreground text
// (fr, fg, fb) on background (br, bg, bb), channels in 0-255.
// Dark-on-light yields positive Lc, light-on-dark negative. Pairs too
// close to distinguish return exactly 0.
func Contrast[T fmath.Float](fr, fg, fb, br, bg, bb T) T {
	ytxt := softClamp(screenLuminance(fr, fg, fb))
	ybg := softClamp(screenLuminance(br, bg, bb))

	if fmath.Abs(ybg-ytxt) < deltaMin {
		return 0
	}

	var lc T
	if ybg > ytxt {
		// normal polarity: dark text on light background
		s := fmath.Pow(ybg, normBG) - fmath.Pow(ytxt, normTXT)
		if s < loThresh {
			return 0
		}
		lc = (s - loOffset) * scale * 100
	} else {
		// reverse polarity: light text on dark background
		s := fmath.Pow(ybg, revBG) - fmath.Pow(ytxt, revTXT)
		if s > -loThresh {
			return 0
		}
		lc = (s + loOffset) * scale * 100
	}

	if fmath.Abs(lc) < loClip {
		return 0
	}
	return lc
}

// ContrastAbs returns the magnitude of [Contrast], discarding
// polarity.
func ContrastAbs[T fmath.Float](fr, fg, fb, br, bg, bb T) T {
	return fmath.Abs(Contrast(fr, fg, fb, br, bg, bb))
}

// IsReadable reports whether the text/background pair meets the given
// Lc magnitude threshold (see [LcLargeBold] through [LcPreferred]).
func IsReadable[T fmath.Float](fr, fg, fb, br, bg, bb, threshold T) bool {
	return ContrastAbs(fr, fg, fb, br, bg, bb) >= threshold
}
