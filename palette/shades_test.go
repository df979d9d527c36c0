// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildScale(t *testing.T) {
	sc := BuildScale(250, false)
	assert.Equal(t, float32(250), sc.Hue)

	for i, sw := range sc.Shades {
		assert.Equal(t, ShadeNames[i].String(), sw.Name)
		assert.Equal(t, LightnessStops[i], sw.Color.Lightness)
		assert.Equal(t, ChromaFor(LightnessStops[i]), sw.Color.Chroma)
		assert.Equal(t, float32(250), sw.Color.Hue)
	}
}

func TestScaleLuminanceMonotonic(t *testing.T) {
	sc := BuildScale(120, false)
	for i := 1; i < NumShades; i++ {
		assert.Less(t, sc.Shades[i].Luminance, sc.Shades[i-1].Luminance,
			"shade %s vs %s", sc.Shades[i].Name, sc.Shades[i-1].Name)
	}

	dsc := BuildScale(120, true)
	for i := 1; i < NumShades; i++ {
		assert.Greater(t, dsc.Shades[i].Luminance, dsc.Shades[i-1].Luminance,
			"shade %s vs %s", dsc.Shades[i].Name, dsc.Shades[i-1].Name)
	}
}

// Dark mode mirrors the lightness assignment stop-for-stop
// while the names stay fixed.
func TestScaleDarkMirrors(t *testing.T) {
	sc := BuildScale(0, true)
	assert.Equal(t, "50", sc.Shades[0].Name)
	assert.Equal(t, float32(0.25), sc.Shades[0].Color.Lightness)
	assert.Equal(t, "950", sc.Shades[10].Name)
	assert.Equal(t, float32(0.97), sc.Shades[10].Color.Lightness)

	light := BuildScale(0, false)
	for i := range sc.Shades {
		assert.Equal(t, light.Shades[NumShades-1-i].Hex, sc.Shades[i].Hex)
	}
}

func TestScaleShadeLookup(t *testing.T) {
	sc := BuildScale(40, false)
	sw, ok := sc.Shade(500)
	assert.True(t, ok)
	assert.Equal(t, "500", sw.Name)
	assert.Equal(t, float32(0.60), sw.Color.Lightness)

	_, ok = sc.Shade(550)
	assert.False(t, ok)
}

func TestScaleHueNormalized(t *testing.T) {
	sc := BuildScale(-110, false)
	assert.Equal(t, float32(250), sc.Hue)
	assert.Equal(t, BuildScale(250, false).Shades[5].Hex, sc.Shades[5].Hex)
}
