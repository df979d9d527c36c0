// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oklch

import (
	"image/color"

	"cogentcore.org/core/math32"
)

// Lighten returns a color that is lighter by the given absolute
// OKLCH lightness amount (0-100, ranges enforced).
func Lighten(c color.Color, amount float32) color.RGBA {
	o := FromColor(c)
	return o.WithLightness(math32.Clamp(o.Lightness+amount/100, 0, 1)).AsRGBA()
}

// Darken returns a color that is darker by the given absolute
// OKLCH lightness amount (0-100, ranges enforced).
func Darken(c color.Color, amount float32) color.RGBA {
	o := FromColor(c)
	return o.WithLightness(math32.Clamp(o.Lightness-amount/100, 0, 1)).AsRGBA()
}

// Saturate returns a color that is more saturated by the given
// absolute OKLCH chroma amount (0-100, ranges enforced).
func Saturate(c color.Color, amount float32) color.RGBA {
	o := FromColor(c)
	return o.WithChroma(math32.Clamp(o.Chroma+amount/100, 0, 1)).AsRGBA()
}

// Desaturate returns a color that is less saturated by the given
// absolute OKLCH chroma amount (0-100, ranges enforced).
func Desaturate(c color.Color, amount float32) color.RGBA {
	o := FromColor(c)
	return o.WithChroma(math32.Clamp(o.Chroma-amount/100, 0, 1)).AsRGBA()
}

// Spin returns a color with its hue rotated by the given number
// of degrees, wrapping around the hue circle.
func Spin(c color.Color, degrees float32) color.RGBA {
	o := FromColor(c)
	return o.WithHue(o.Hue + degrees).AsRGBA()
}
