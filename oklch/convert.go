// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Matrix coefficients are from the OKLab reference:
// https://bottosson.github.io/posts/oklab/

package oklch

import "cogentcore.org/core/math32"

// ToLinear converts the given OKLCH coordinates to linear-light sRGB
// components. The hue is in degrees and is normalized first. The stages
// run in this order: cylindrical to Cartesian OKLab, OKLab to LMS'
// (linear combination), cubing, LMS to linear sRGB (matrix). No
// clamping is performed, so out-of-gamut inputs produce components
// outside 0-1; callers that need in-gamut values must clamp.
func ToLinear(lightness, chroma, hue float32) (r, g, b float32) {
	hr := math32.DegToRad(NormHue(hue))
	ca := chroma * math32.Cos(hr)
	cb := chroma * math32.Sin(hr)

	l := lightness + 0.3963377774*ca + 0.2158037573*cb
	m := lightness - 0.1055613458*ca - 0.0638541728*cb
	s := lightness - 0.0894841775*ca - 1.2914855480*cb

	l, m, s = l*l*l, m*m*m, s*s*s

	r = 4.0767416621*l - 3.3077115913*m + 0.2309699292*s
	g = -1.2684380046*l + 2.6097574011*m - 0.3413193965*s
	b = -0.0041960863*l - 0.7034186147*m + 1.7076147010*s
	return
}

// ToSRGB converts the given OKLCH coordinates to gamma-corrected sRGB
// components, with each linear component clamped to the 0-1 gamut
// before the transfer function is applied.
func ToSRGB(lightness, chroma, hue float32) (r, g, b float32) {
	rl, gl, bl := ToLinear(lightness, chroma, hue)
	r = SRGBFromLinearComp(math32.Clamp(rl, 0, 1))
	g = SRGBFromLinearComp(math32.Clamp(gl, 0, 1))
	b = SRGBFromLinearComp(math32.Clamp(bl, 0, 1))
	return
}

// FromSRGB returns the OKLCH representation of the given
// gamma-corrected sRGB components (0-1 range). Alpha is always 1.
func FromSRGB(r, g, b float32) OKLCH {
	rl, gl, bl := SRGBToLinear(r, g, b)

	l := 0.4122214708*rl + 0.5363325363*gl + 0.0514459929*bl
	m := 0.2119034982*rl + 0.6806995451*gl + 0.1073969566*bl
	s := 0.0883024619*rl + 0.2817188376*gl + 0.6299787005*bl

	lp := math32.Cbrt(l)
	mp := math32.Cbrt(m)
	sp := math32.Cbrt(s)

	lightness := 0.2104542553*lp + 0.7936177850*mp - 0.0040720468*sp
	ca := 1.9779984951*lp - 2.4285922050*mp + 0.4505937099*sp
	cb := 0.0259040371*lp + 0.7827717662*mp - 0.8086757660*sp

	chroma := math32.Sqrt(ca*ca + cb*cb)
	hue := math32.RadToDeg(math32.Atan2(cb, ca))
	if hue < 0 {
		hue += 360
	}
	return OKLCH{Lightness: lightness, Chroma: chroma, Hue: hue, R: r, G: g, B: b, A: 1}
}
