// Copyright (c) 2026, The Terminal Color Solver Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package palette evaluates terminal-style 16-color palettes with the
// color kernel: contrast matrices, APCA readability grades, bright
// pair checks and hue spacing. It produces data only; table layout,
// escape sequences and theme file handling belong to the caller.
package palette

import (
	"image/color"

	"github.com/pshirshov/terminal-color-solver/apca"
	"github.com/pshirshov/terminal-color-solver/colors"
	"github.com/pshirshov/terminal-color-solver/oklch"
)

// Standard ANSI palette slots.
const (
	Black = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

// Names are the conventional names of the 16 ANSI palette slots.
var Names = [16]string{
	"black", "red", "green", "yellow",
	"blue", "magenta", "cyan", "white",
	"bright black", "bright red", "bright green", "bright yellow",
	"bright blue", "bright magenta", "bright cyan", "bright white",
}

// Palette is a terminal 16-color palette in ANSI slot order: the
// eight base colors followed by their bright variants.
type Palette [16]color.RGBA

// Default is the xterm default 16-color palette.
var Default = Palette{
	{0, 0, 0, 255},       // black
	{205, 0, 0, 255},     // red
	{0, 205, 0, 255},     // green
	{205, 205, 0, 255},   // yellow
	{0, 0, 238, 255},     // blue
	{205, 0, 205, 255},   // magenta
	{0, 205, 205, 255},   // cyan
	{229, 229, 229, 255}, // white
	{127, 127, 127, 255}, // bright black
	{255, 0, 0, 255},     // bright red
	{0, 255, 0, 255},     // bright green
	{255, 255, 0, 255},   // bright yellow
	{92, 92, 255, 255},   // bright blue
	{255, 0, 255, 255},   // bright magenta
	{0, 255, 255, 255},   // bright cyan
	{255, 255, 255, 255}, // bright white
}

// Lc returns the signed APCA contrast of slot fg as text on slot bg.
func (p Palette) Lc(fg, bg int) float32 {
	return colors.APCALc(p[fg], p[bg])
}

// Ratio returns the WCAG 2.1 contrast ratio between slots a and b.
func (p Palette) Ratio(a, b int) float32 {
	return colors.WCAGRatio(p[a], p[b])
}

// Readable reports whether slot fg as text on slot bg meets the given
// APCA Lc magnitude threshold.
func (p Palette) Readable(fg, bg int, threshold float32) bool {
	return colors.Readable(p[fg], p[bg], threshold)
}

// ContrastMatrix returns the signed APCA Lc of every slot as text on
// every slot as background; the first index is the text slot. The
// diagonal is zero.
func (p Palette) ContrastMatrix() [16][16]float32 {
	var m [16][16]float32
	for fg := range p {
		for bg := range p {
			m[fg][bg] = p.Lc(fg, bg)
		}
	}
	return m
}

// RatioMatrix returns the symmetric WCAG contrast ratio for every
// slot pair. The diagonal is 1.
func (p Palette) RatioMatrix() [16][16]float32 {
	var m [16][16]float32
	for a := range p {
		for b := range p {
			m[a][b] = p.Ratio(a, b)
		}
	}
	return m
}

// BrightOnBase returns the APCA Lc of each bright variant as text on
// its base color: bright black on black, bright red on red, through
// bright white on white. Bright-on-base pairs are how terminals
// render bold-as-bright text over same-hue backgrounds.
func (p Palette) BrightOnBase() [8]float32 {
	var out [8]float32
	for i := 0; i < 8; i++ {
		out[i] = p.Lc(i+8, i)
	}
	return out
}

// MinHueSeparation returns the smallest pairwise OKLCH hue distance
// in degrees among the six chromatic base slots (red through cyan),
// together with the two slot indices realizing it. Slots with chroma
// below [oklch.GrayChroma] carry no hue and are skipped; if fewer
// than two chromatic slots remain, the separation is 180 and the
// indices are -1.
func (p Palette) MinHueSeparation() (deg float32, slotA, slotB int) {
	type slotHue struct {
		slot int
		hue  float32
	}
	var hues []slotHue
	for i := Red; i <= Cyan; i++ {
		c := colors.Oklch(p[i])
		if c.C < oklch.GrayChroma {
			continue
		}
		hues = append(hues, slotHue{i, c.H})
	}

	deg, slotA, slotB = 180, -1, -1
	for i := 0; i < len(hues); i++ {
		for j := i + 1; j < len(hues); j++ {
			d := oklch.HueDistance(hues[i].hue, hues[j].hue)
			if d < deg {
				deg, slotA, slotB = d, hues[i].slot, hues[j].slot
			}
		}
	}
	return deg, slotA, slotB
}

// Grade classifies an APCA Lc magnitude into the common readability
// bands.
type Grade int

const (
	GradeFail      Grade = iota // below every threshold
	GradeLargeBold              // >= 45: large bold text only
	GradeLarge                  // >= 60: large text
	GradeBody                   // >= 75: body text
	GradePreferred              // >= 90: preferred for body text
)

var gradeNames = [...]string{"fail", "large-bold", "large", "body", "preferred"}

func (g Grade) String() string {
	if g < GradeFail || g > GradePreferred {
		return "invalid"
	}
	return gradeNames[g]
}

// GradeOf classifies a signed or absolute APCA Lc value.
func GradeOf(lc float32) Grade {
	if lc < 0 {
		lc = -lc
	}
	switch {
	case lc >= apca.LcPreferred:
		return GradePreferred
	case lc >= apca.LcBody:
		return GradeBody
	case lc >= apca.LcLarge:
		return GradeLarge
	case lc >= apca.LcLargeBold:
		return GradeLargeBold
	default:
		return GradeFail
	}
}
