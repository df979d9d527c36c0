// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package palette generates accessible color systems from a single
// base hue: an 11-stop shade scale, harmony companion swatches, and
// WCAG contrast annotations for every generated color.
package palette

import "cogentcore.org/core/math32"

// PeakChroma is the maximum chroma produced by [ChromaFor],
// reached at lightness 0.6.
const PeakChroma = 0.15

// ChromaFor returns a perceptually plausible chroma for the given
// lightness, following a parabola that peaks at [PeakChroma] for
// lightness 0.6 and fades toward pure black and white. The result is
// clamped to 0 through [PeakChroma], so it stays in a renderable range
// for any lightness.
func ChromaFor(lightness float32) float32 {
	d := (lightness - 0.6) / 0.5
	return math32.Clamp(PeakChroma*(1-d*d), 0, PeakChroma)
}
