// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"fmt"
	"strings"

	"cogentcore.org/okcolor/oklch"
)

// HarmonyMode is a rule for selecting companion hues
// relative to a base hue.
type HarmonyMode int32

const (
	// Monochromatic uses only the base hue.
	Monochromatic HarmonyMode = iota

	// Analogous adds the hues 30 degrees to either side of the base hue.
	Analogous

	// Complementary adds the hue directly opposite the base hue.
	Complementary

	// Triadic adds the two hues that divide the wheel into thirds
	// with the base hue.
	Triadic
)

// HarmonyModes are all of the valid [HarmonyMode] values.
var HarmonyModes = []HarmonyMode{Monochromatic, Analogous, Complementary, Triadic}

var harmonyOffsets = [...][]float32{
	Monochromatic: {0},
	Analogous:     {0, 30, -30},
	Complementary: {0, 180},
	Triadic:       {0, 120, 240},
}

var harmonyNames = [...]string{
	Monochromatic: "monochromatic",
	Analogous:     "analogous",
	Complementary: "complementary",
	Triadic:       "triadic",
}

// Offsets returns the hue offsets in degrees that the mode applies to
// a base hue. The first offset is always 0 (the base hue itself).
func (hm HarmonyMode) Offsets() []float32 {
	if hm < 0 || int(hm) >= len(harmonyOffsets) {
		return harmonyOffsets[Monochromatic]
	}
	return harmonyOffsets[hm]
}

func (hm HarmonyMode) String() string {
	if hm < 0 || int(hm) >= len(harmonyNames) {
		return "monochromatic"
	}
	return harmonyNames[hm]
}

// MarshalText implements [encoding.TextMarshaler].
func (hm HarmonyMode) MarshalText() ([]byte, error) {
	return []byte(hm.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler],
// accepting the mode name in any case.
func (hm *HarmonyMode) UnmarshalText(text []byte) error {
	name := strings.ToLower(string(text))
	for i, hn := range harmonyNames {
		if hn == name {
			*hm = HarmonyMode(i)
			return nil
		}
	}
	return fmt.Errorf("palette: invalid harmony mode %q", string(text))
}

// Set is an ordered sequence of harmony swatches sharing the shade-500
// lightness and chroma but differing in hue per the [HarmonyMode]
// offsets. The first swatch is always the unmodified base hue.
type Set struct {

	// Mode is the harmony mode that produced the set.
	Mode HarmonyMode

	// Swatches are the harmony swatches, base hue first.
	Swatches []Swatch
}

// BuildHarmony returns the harmony set for the given base hue, in
// degrees (any value, normalized), and mode. Every swatch uses the
// shade-500 lightness and chroma, so the offset-0 swatch matches the
// un-inverted shade-500 color exactly.
func BuildHarmony(hue float32, mode HarmonyMode) Set {
	l := LightnessStops[5]
	c := ChromaFor(l)
	offs := mode.Offsets()
	set := Set{Mode: mode, Swatches: make([]Swatch, len(offs))}
	for i, off := range offs {
		set.Swatches[i] = NewSwatch(offsetLabel(off), l, c, oklch.NormHue(hue+off))
	}
	return set
}

func offsetLabel(off float32) string {
	if off == 0 {
		return "Base"
	}
	return fmt.Sprintf("%+g°", off)
}
