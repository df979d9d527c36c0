// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"image/color"

	"cogentcore.org/okcolor/oklch"
)

// Swatch is one fully annotated palette entry: a generated color plus
// the WCAG contrast report for text rendered on top of it.
type Swatch struct {

	// Name is the label of the swatch: a shade name such as "500",
	// or a harmony label such as "Base" or "+30°".
	Name string

	// Color is the OKLCH representation of the swatch.
	Color oklch.OKLCH

	// Hex is the gamut-clamped "#rrggbb" encoding of the color.
	Hex string

	// Luminance is the WCAG relative luminance of the color (0-1).
	Luminance float32

	// Contrast is the contrast ratio of the recommended text color
	// against this swatch.
	Contrast float32

	// Text is the recommended text color, whichever of pure white or
	// pure black contrasts more against this swatch.
	Text oklch.TextColor

	// AA indicates that Contrast meets the WCAG AA threshold for
	// normal-size text.
	AA bool
}

// NewSwatch returns an annotated swatch for the given label and
// OKLCH coordinates.
func NewSwatch(name string, lightness, chroma, hue float32) Swatch {
	c := oklch.New(lightness, chroma, hue)
	lum := c.Luminance()
	best := oklch.BestContrast(lum)
	return Swatch{
		Name:      name,
		Color:     c,
		Hex:       c.Hex(),
		Luminance: lum,
		Contrast:  best,
		Text:      oklch.BestTextColor(lum),
		AA:        oklch.PassesAA(best),
	}
}

// Config is the complete input for generating a [Palette]. It is an
// explicit value passed to [New]; the generator keeps no state of
// its own.
type Config struct {

	// Hue is the base hue in degrees. Any value is accepted and
	// normalized to 0-360.
	Hue float32

	// Mode selects the harmony companion hues.
	Mode HarmonyMode

	// Dark mirrors the shade scale lightness assignment for a dark
	// color scheme.
	Dark bool
}

// ConfigFromColor returns a [Config] whose base hue is taken from the
// given seed color, such as an existing brand color.
func ConfigFromColor(c color.Color, mode HarmonyMode, dark bool) Config {
	return Config{Hue: oklch.FromColor(c).Hue, Mode: mode, Dark: dark}
}

// Palette is a complete generated color system: the shade scale and
// harmony set for one [Config], with every swatch annotated with its
// contrast report. Generation is pure: the same config always yields
// byte-identical hex strings and contrast reports.
type Palette struct {

	// Config is the input the palette was generated from.
	Config Config

	// Scale is the 11-stop shade scale.
	Scale Scale

	// Harmony is the harmony set. Its first swatch is always the
	// un-inverted shade-500 color at the base hue.
	Harmony Set
}

// New generates the palette for the given config.
func New(cfg Config) *Palette {
	return &Palette{
		Config:  cfg,
		Scale:   BuildScale(cfg.Hue, cfg.Dark),
		Harmony: BuildHarmony(cfg.Hue, cfg.Mode),
	}
}
