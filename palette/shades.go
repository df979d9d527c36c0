// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"strconv"

	"cogentcore.org/okcolor/oklch"
)

// NumShades is the number of stops in a [Scale].
const NumShades = 11

// ShadeName is the design-token name of one stop in a [Scale],
// from 50 (lightest) through 950 (darkest).
type ShadeName int32

// ShadeNames are the fixed stop names of a [Scale], in order.
var ShadeNames = [NumShades]ShadeName{50, 100, 200, 300, 400, 500, 600, 700, 800, 900, 950}

// LightnessStops are the fixed lightness values bound to [ShadeNames]
// by position.
var LightnessStops = [NumShades]float32{0.97, 0.93, 0.87, 0.78, 0.69, 0.60, 0.51, 0.43, 0.36, 0.29, 0.25}

func (sn ShadeName) String() string {
	return strconv.Itoa(int(sn))
}

// Scale is an ordered 11-stop shade scale for one hue. The stop names
// are always in [ShadeNames] order; in dark mode the lightness
// assignment is mirrored stop-for-stop while the names stay fixed.
type Scale struct {

	// Hue is the normalized base hue of the scale in degrees.
	Hue float32

	// Dark indicates that the lightness assignment is mirrored
	// for a dark color scheme.
	Dark bool

	// Shades are the stops of the scale, from shade 50 through 950.
	Shades [NumShades]Swatch
}

// BuildScale returns the shade scale for the given base hue,
// in degrees (any value, normalized). For dark, shade 50 receives the
// lightness that shade 950 would otherwise receive, and so on down
// the scale.
func BuildScale(hue float32, dark bool) Scale {
	sc := Scale{Hue: oklch.NormHue(hue), Dark: dark}
	for i := range sc.Shades {
		li := i
		if dark {
			li = NumShades - 1 - i
		}
		l := LightnessStops[li]
		sc.Shades[i] = NewSwatch(ShadeNames[i].String(), l, ChromaFor(l), hue)
	}
	return sc
}

// Shade returns the swatch with the given name,
// or false if no such shade exists.
func (sc *Scale) Shade(name ShadeName) (Swatch, bool) {
	for i, sn := range ShadeNames {
		if sn == name {
			return sc.Shades[i], true
		}
	}
	return Swatch{}, false
}
