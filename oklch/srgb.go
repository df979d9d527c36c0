// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oklch

import "cogentcore.org/core/math32"

// SRGBToLinearComp converts an sRGB rgb component (gamma-corrected,
// 0-1 range) to linear light space.
func SRGBToLinearComp(c float32) float32 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math32.Pow((c+0.055)/1.055, 2.4)
}

// SRGBFromLinearComp converts a linear-light rgb component to
// gamma-corrected sRGB (0-1 range).
func SRGBFromLinearComp(c float32) float32 {
	if c <= 0.0031308 {
		return 12.92 * c
	}
	return 1.055*math32.Pow(c, 1.0/2.4) - 0.055
}

// SRGBToLinear converts sRGB components (gamma-corrected, 0-1 range)
// to linear light space.
func SRGBToLinear(r, g, b float32) (rl, gl, bl float32) {
	rl = SRGBToLinearComp(r)
	gl = SRGBToLinearComp(g)
	bl = SRGBToLinearComp(b)
	return
}

// SRGBFromLinear converts linear-light components to gamma-corrected
// sRGB (0-1 range).
func SRGBFromLinear(rl, gl, bl float32) (r, g, b float32) {
	r = SRGBFromLinearComp(rl)
	g = SRGBFromLinearComp(gl)
	b = SRGBFromLinearComp(bl)
	return
}

// SRGBFloatToUint8 converts the given sRGB 0-1 normalized components
// to uint8 values, rounding to the nearest of the 256 levels.
func SRGBFloatToUint8(r, g, b float32) (ru, gu, bu uint8) {
	ru = uint8(r*255.0 + 0.5)
	gu = uint8(g*255.0 + 0.5)
	bu = uint8(b*255.0 + 0.5)
	return
}
