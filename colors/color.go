// Copyright (c) 2026, The Terminal Color Solver Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"

	"github.com/pshirshov/terminal-color-solver/apca"
	"github.com/pshirshov/terminal-color-solver/oklab"
	"github.com/pshirshov/terminal-color-solver/oklch"
	"github.com/pshirshov/terminal-color-solver/wcag"
)

// channels extracts non-premultiplied 8-bit channels from a standard
// [color.Color]. Alpha is discarded; contrast is defined on opaque
// colors.
func channels(c color.Color) (r, g, b float32) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return float32(n.R), float32(n.G), float32(n.B)
}

// WCAGRatio returns the WCAG 2.1 contrast ratio between two standard
// colors.
func WCAGRatio(a, b color.Color) float32 {
	r1, g1, b1 := channels(a)
	r2, g2, b2 := channels(b)
	return wcag.ContrastRatio(r1, g1, b1, r2, g2, b2)
}

// APCALc returns the signed APCA Lc of text fg on background bg.
func APCALc(fg, bg color.Color) float32 {
	fr, fgc, fb := channels(fg)
	br, bgc, bb := channels(bg)
	return apca.Contrast(fr, fgc, fb, br, bgc, bb)
}

// Readable reports whether text fg on background bg meets the given
// APCA Lc magnitude threshold.
func Readable(fg, bg color.Color, threshold float32) bool {
	fr, fgc, fb := channels(fg)
	br, bgc, bb := channels(bg)
	return apca.IsReadable(fr, fgc, fb, br, bgc, bb, threshold)
}

// Oklab converts a standard color to Oklab.
func Oklab(c color.Color) oklab.Lab[float32] {
	r, g, b := channels(c)
	return oklab.FromSRGB(r, g, b)
}

// Oklch converts a standard color to OKLCH.
func Oklch(c color.Color) oklch.LCH[float32] {
	r, g, b := channels(c)
	return oklch.FromSRGB(r, g, b)
}
