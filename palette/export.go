// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"cogentcore.org/core/base/iox/jsonx"
	"github.com/pelletier/go-toml/v2"
)

// Token is the serializable design-token form of one [Swatch].
type Token struct {
	Name     string  `json:"name" toml:"name"`
	Hex      string  `json:"hex" toml:"hex"`
	Text     string  `json:"text" toml:"text"`
	Contrast float32 `json:"contrast" toml:"contrast"`
	AA       bool    `json:"aa" toml:"aa"`
}

// Tokens is the serializable design-token form of a [Palette].
type Tokens struct {
	Hue     float32 `json:"hue" toml:"hue"`
	Mode    string  `json:"mode" toml:"mode"`
	Dark    bool    `json:"dark" toml:"dark"`
	Shades  []Token `json:"shades" toml:"shades"`
	Harmony []Token `json:"harmony" toml:"harmony"`
}

// Tokens returns the palette as serializable design tokens.
func (p *Palette) Tokens() Tokens {
	tk := Tokens{
		Hue:     p.Scale.Hue,
		Mode:    p.Harmony.Mode.String(),
		Dark:    p.Scale.Dark,
		Shades:  make([]Token, NumShades),
		Harmony: make([]Token, len(p.Harmony.Swatches)),
	}
	for i, sw := range p.Scale.Shades {
		tk.Shades[i] = newToken(sw)
	}
	for i, sw := range p.Harmony.Swatches {
		tk.Harmony[i] = newToken(sw)
	}
	return tk
}

func newToken(sw Swatch) Token {
	return Token{Name: sw.Name, Hex: sw.Hex, Text: sw.Text.Hex(), Contrast: sw.Contrast, AA: sw.AA}
}

// CSS returns the palette as a block of CSS custom properties:
// one --color-NNN variable per shade with a matching
// --color-NNN-contrast text color, plus --harmony-N variables for the
// harmony swatches.
func (p *Palette) CSS() string {
	var b strings.Builder
	b.WriteString(":root {\n")
	for _, sw := range p.Scale.Shades {
		fmt.Fprintf(&b, "  --color-%s: %s;\n", sw.Name, sw.Hex)
		fmt.Fprintf(&b, "  --color-%s-contrast: %s;\n", sw.Name, sw.Text.Hex())
	}
	for i, sw := range p.Harmony.Swatches {
		fmt.Fprintf(&b, "  --harmony-%d: %s;\n", i, sw.Hex)
		fmt.Fprintf(&b, "  --harmony-%d-contrast: %s;\n", i, sw.Text.Hex())
	}
	b.WriteString("}\n")
	return b.String()
}

// JSON returns the palette design tokens as indented JSON.
func (p *Palette) JSON() ([]byte, error) {
	return json.MarshalIndent(p.Tokens(), "", "  ")
}

// SaveJSON saves the palette design tokens as JSON to the given file.
func (p *Palette) SaveJSON(filename string) error {
	return jsonx.Save(p.Tokens(), filename)
}

// TOML returns the palette design tokens as TOML.
func (p *Palette) TOML() ([]byte, error) {
	return toml.Marshal(p.Tokens())
}

// SaveTOML saves the palette design tokens as TOML to the given file.
func (p *Palette) SaveTOML(filename string) error {
	b, err := p.TOML()
	if err != nil {
		return fmt.Errorf("palette: encoding tokens: %w", err)
	}
	return os.WriteFile(filename, b, 0666)
}
