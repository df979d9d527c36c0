// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"image/color"
	"testing"

	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/okcolor/oklch"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	p := New(Config{Hue: 250, Mode: Triadic})

	sw, ok := p.Scale.Shade(500)
	assert.True(t, ok)
	assert.Equal(t, float32(0.60), sw.Color.Lightness)
	assert.Equal(t, float32(0.15), sw.Color.Chroma)
	assert.Equal(t, float32(250), sw.Color.Hue)

	assert.Len(t, p.Harmony.Swatches, 3)
	assert.Equal(t, sw.Hex, p.Harmony.Swatches[0].Hex)
}

func TestNewIdempotent(t *testing.T) {
	cfg := Config{Hue: 123.4, Mode: Analogous, Dark: true}
	assert.Equal(t, New(cfg), New(cfg))
}

func TestSwatchAnnotations(t *testing.T) {
	p := New(Config{Hue: 40, Mode: Complementary})
	all := append(p.Scale.Shades[:], p.Harmony.Swatches...)
	for _, sw := range all {
		assert.Equal(t, sw.Color.Hex(), sw.Hex)
		tolassert.Equal(t, sw.Color.Luminance(), sw.Luminance)
		assert.Equal(t, oklch.BestTextColor(sw.Luminance), sw.Text)
		assert.Equal(t, oklch.PassesAA(sw.Contrast), sw.AA)
		assert.GreaterOrEqual(t, sw.Contrast, float32(1))
	}
}

// Light shades get black text and dark shades get white text.
func TestScaleTextColors(t *testing.T) {
	sc := BuildScale(250, false)
	assert.Equal(t, oklch.TextBlack, sc.Shades[0].Text)
	assert.Equal(t, oklch.TextWhite, sc.Shades[10].Text)
}

func TestConfigFromColor(t *testing.T) {
	cfg := ConfigFromColor(color.RGBA{255, 0, 0, 255}, Triadic, false)
	tolassert.EqualTol(t, 29.23, cfg.Hue, 0.6)
	assert.Equal(t, Triadic, cfg.Mode)
}

// The boundary near-white stop renders with every channel at or
// above 0xE0.
func TestNearWhiteShade(t *testing.T) {
	sc := BuildScale(250, false)
	c := sc.Shades[0].Color.AsRGBA()
	assert.GreaterOrEqual(t, c.R, uint8(0xe0))
	assert.GreaterOrEqual(t, c.G, uint8(0xe0))
	assert.GreaterOrEqual(t, c.B, uint8(0xe0))
}
