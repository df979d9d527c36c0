// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
)

func TestTokens(t *testing.T) {
	p := New(Config{Hue: 250, Mode: Triadic, Dark: true})
	tk := p.Tokens()

	assert.Equal(t, float32(250), tk.Hue)
	assert.Equal(t, "triadic", tk.Mode)
	assert.True(t, tk.Dark)
	assert.Len(t, tk.Shades, NumShades)
	assert.Len(t, tk.Harmony, 3)
	assert.Equal(t, "500", tk.Shades[5].Name)
	assert.Equal(t, p.Scale.Shades[5].Hex, tk.Shades[5].Hex)
}

func TestCSS(t *testing.T) {
	p := New(Config{Hue: 250, Mode: Complementary})
	css := p.CSS()

	assert.True(t, strings.HasPrefix(css, ":root {"))
	assert.Contains(t, css, "--color-500: "+p.Scale.Shades[5].Hex+";")
	assert.Contains(t, css, "--color-50-contrast: #000000;")
	assert.Contains(t, css, "--harmony-0: "+p.Harmony.Swatches[0].Hex+";")
	assert.Contains(t, css, "--harmony-1: "+p.Harmony.Swatches[1].Hex+";")
}

func TestJSONRoundTrip(t *testing.T) {
	p := New(Config{Hue: 40, Mode: Analogous})
	b, err := p.JSON()
	assert.NoError(t, err)

	var tk Tokens
	assert.NoError(t, json.Unmarshal(b, &tk))
	assert.Equal(t, p.Tokens(), tk)
}

func TestTOMLRoundTrip(t *testing.T) {
	p := New(Config{Hue: 40, Mode: Monochromatic, Dark: true})
	b, err := p.TOML()
	assert.NoError(t, err)

	var tk Tokens
	assert.NoError(t, toml.Unmarshal(b, &tk))
	assert.Equal(t, p.Tokens(), tk)
}

func TestSave(t *testing.T) {
	p := New(Config{Hue: 120, Mode: Triadic})
	dir := t.TempDir()

	jf := filepath.Join(dir, "tokens.json")
	assert.NoError(t, p.SaveJSON(jf))
	b, err := os.ReadFile(jf)
	assert.NoError(t, err)
	var tk Tokens
	assert.NoError(t, json.Unmarshal(b, &tk))
	assert.Equal(t, "triadic", tk.Mode)

	tf := filepath.Join(dir, "tokens.toml")
	assert.NoError(t, p.SaveTOML(tf))
	b, err = os.ReadFile(tf)
	assert.NoError(t, err)
	assert.NoError(t, toml.Unmarshal(b, &tk))
	assert.Len(t, tk.Harmony, 3)
}
