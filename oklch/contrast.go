// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oklch

import (
	"image/color"

	"cogentcore.org/core/math32"
)

// WCAG contrast ratio thresholds.
const (
	// AANormal is the WCAG AA minimum contrast ratio for normal-size text.
	AANormal = 4.5

	// AALarge is the WCAG AA minimum contrast ratio for large text.
	AALarge = 3

	// AAA is the WCAG AAA minimum contrast ratio for normal-size text.
	AAA = 7
)

// RelativeLuminance returns the WCAG relative luminance (0-1) of the
// given OKLCH coordinates. It is computed as the weighted sum of the
// linear-light sRGB components, each clamped to the 0-1 gamut; the
// gamma transfer function is never applied on this path.
func RelativeLuminance(lightness, chroma, hue float32) float32 {
	r, g, b := ToLinear(lightness, chroma, hue)
	r = math32.Clamp(r, 0, 1)
	g = math32.Clamp(g, 0, 1)
	b = math32.Clamp(b, 0, 1)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// Luminance returns the WCAG relative luminance (0-1) of this color.
func (o OKLCH) Luminance() float32 {
	return RelativeLuminance(o.Lightness, o.Chroma, o.Hue)
}

// ContrastRatio returns the WCAG contrast ratio between two relative
// luminances, from 1 (identical) to 21 (black on white). It is
// symmetric in its arguments.
func ContrastRatio(lumA, lumB float32) float32 {
	lighter := max(lumA, lumB)
	darker := min(lumA, lumB)
	return (lighter + 0.05) / (darker + 0.05)
}

// ContrastRatioOf returns the WCAG contrast ratio between the given
// two colors, from 1 to 21.
func ContrastRatioOf(a, b color.Color) float32 {
	return ContrastRatio(FromColor(a).Luminance(), FromColor(b).Luminance())
}

// TextColor is a recommended text color for a background,
// either pure white or pure black.
type TextColor int32

const (
	// TextBlack is pure black text (luminance 0).
	TextBlack TextColor = iota

	// TextWhite is pure white text (luminance 1).
	TextWhite
)

func (tc TextColor) String() string {
	if tc == TextWhite {
		return "white"
	}
	return "black"
}

// AsRGBA returns the text color as a standard [color.RGBA].
func (tc TextColor) AsRGBA() color.RGBA {
	if tc == TextWhite {
		return color.RGBA{255, 255, 255, 255}
	}
	return color.RGBA{0, 0, 0, 255}
}

// Hex returns the text color as a "#rrggbb" hex string.
func (tc TextColor) Hex() string {
	if tc == TextWhite {
		return "#ffffff"
	}
	return "#000000"
}

// BestTextColor returns whichever of pure white or pure black text
// yields the higher contrast ratio against a background with the given
// relative luminance. Ties favor white.
func BestTextColor(bgLum float32) TextColor {
	if ContrastRatio(1, bgLum) >= ContrastRatio(bgLum, 0) {
		return TextWhite
	}
	return TextBlack
}

// BestContrast returns the higher of the contrast ratios of pure white
// and pure black text against a background with the given relative
// luminance.
func BestContrast(bgLum float32) float32 {
	return max(ContrastRatio(1, bgLum), ContrastRatio(bgLum, 0))
}

// PassesAA reports whether the given contrast ratio meets the WCAG AA
// threshold for normal-size text (4.5).
func PassesAA(ratio float32) bool {
	return ratio >= AANormal
}

// PassesAALarge reports whether the given contrast ratio meets the
// WCAG AA threshold for large text (3).
func PassesAALarge(ratio float32) bool {
	return ratio >= AALarge
}

// PassesAAA reports whether the given contrast ratio meets the WCAG
// AAA threshold for normal-size text (7).
func PassesAAA(ratio float32) bool {
	return ratio >= AAA
}
