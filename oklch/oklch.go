// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package oklch provides the OKLCH color system, the cylindrical
// (Lightness, Chroma, Hue) form of the perceptually uniform OKLab
// color space, along with sRGB conversion, relative luminance, and
// WCAG contrast evaluation built on top of it.
package oklch

import (
	"fmt"
	"image/color"

	"cogentcore.org/core/math32"
	"github.com/lucasb-eyer/go-colorful"
)

// OKLCH is a color in the cylindrical form of the OKLab color space,
// in which equal numeric distances approximate equal perceived color
// differences.
type OKLCH struct {

	// Lightness (L) is the perceived lightness of the color,
	// between 0 (black) and 1 (white).
	Lightness float32

	// Chroma (C) is the colorfulness of the color; greyscale colors
	// have no chroma. The in-gamut maximum varies with lightness and
	// hue, but 0.37 is an upper bound for sRGB.
	Chroma float32

	// Hue (H) is the spectral identity of the color (red, green, blue
	// etc) in degrees (0-360).
	Hue float32

	// sRGB standard gamma-corrected 0-1 normalized RGB representation
	// of the color, clamped to the sRGB gamut. Components are not
	// premultiplied by alpha.
	R, G, B, A float32
}

// New returns a new OKLCH color for the given parameters:
// lightness = 0..1, chroma = 0..~0.37, hue in degrees (any value,
// normalized to 0..360). It also computes and sets the sRGB normalized,
// gamma-corrected R, G, B values, clamping each channel to the sRGB
// gamut; out-of-gamut inputs keep their OKLCH coordinates but render
// as the nearest in-gamut color.
func New(lightness, chroma, hue float32) OKLCH {
	r, g, b := ToSRGB(lightness, chroma, hue)
	return OKLCH{Lightness: lightness, Chroma: chroma, Hue: NormHue(hue), R: r, G: g, B: b, A: 1}
}

// FromColor constructs a new OKLCH color from a standard [color.Color].
func FromColor(c color.Color) OKLCH {
	o := OKLCH{}
	o.SetColor(c)
	return o
}

// FromHex constructs a new OKLCH color from a hex string such as
// "#e072a4" (3 and 6 digit forms are supported, per [colorful.Hex]).
func FromHex(hex string) (OKLCH, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return OKLCH{}, fmt.Errorf("oklch.FromHex: %w", err)
	}
	return FromSRGB(float32(c.R), float32(c.G), float32(c.B)), nil
}

// Model is the standard [color.Model] that converts colors to OKLCH.
var Model = color.ModelFunc(model)

func model(c color.Color) color.Color {
	if o, ok := c.(OKLCH); ok {
		return o
	}
	return FromColor(c)
}

// RGBA implements the [color.Color] interface.
// It performs the premultiplication of the RGB components by alpha.
func (o OKLCH) RGBA() (r, g, b, a uint32) {
	r = uint32(o.R*o.A*65535.0 + 0.5)
	g = uint32(o.G*o.A*65535.0 + 0.5)
	b = uint32(o.B*o.A*65535.0 + 0.5)
	a = uint32(o.A*65535.0 + 0.5)
	return
}

// AsRGBA returns the color as a standard [color.RGBA] type.
func (o OKLCH) AsRGBA() color.RGBA {
	return color.RGBA{uint8(o.R*o.A*255.0 + 0.5), uint8(o.G*o.A*255.0 + 0.5), uint8(o.B*o.A*255.0 + 0.5), uint8(o.A*255.0 + 0.5)}
}

// SetUint32 sets components from unsigned 32bit integers (alpha-premultiplied).
func (o *OKLCH) SetUint32(r, g, b, a uint32) {
	fa := float32(a) / 65535.0
	fr := (float32(r) / 65535.0) / fa
	fg := (float32(g) / 65535.0) / fa
	fb := (float32(b) / 65535.0) / fa
	*o = FromSRGB(fr, fg, fb)
	o.A = fa
}

// SetColor sets the color from a standard [color.Color].
func (o *OKLCH) SetColor(ci color.Color) {
	if ci == nil {
		*o = FromSRGB(0, 0, 0)
		o.A = 0
		return
	}
	o.SetUint32(ci.RGBA())
}

// WithLightness returns a new color with the given lightness (0-1),
// keeping the hue and chroma of this color.
func (o OKLCH) WithLightness(lightness float32) OKLCH {
	return New(lightness, o.Chroma, o.Hue)
}

// WithChroma returns a new color with the given chroma,
// keeping the hue and lightness of this color.
func (o OKLCH) WithChroma(chroma float32) OKLCH {
	return New(o.Lightness, chroma, o.Hue)
}

// WithHue returns a new color with the given hue (in degrees,
// normalized to 0-360), keeping the chroma and lightness of this color.
func (o OKLCH) WithHue(hue float32) OKLCH {
	return New(o.Lightness, o.Chroma, hue)
}

// Hex returns the color as a lowercase "#rrggbb" hex string encoding
// the gamut-clamped sRGB representation.
func (o OKLCH) Hex() string {
	r, g, b := SRGBFloatToUint8(o.R, o.G, o.B)
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func (o OKLCH) String() string {
	return fmt.Sprintf("oklch(%g, %g, %g)", o.Lightness, o.Chroma, o.Hue)
}

// NormHue returns the given hue angle in degrees normalized
// to the range 0 <= hue < 360.
func NormHue(hue float32) float32 {
	return math32.Mod(math32.Mod(hue, 360)+360, 360)
}
