// Package color blends colors in the Oklab color space, where intermediate colors keep their perceived lightness
// instead of turning muddy the way they do when blending sRGB components.
package color

import (
	"image/color"
	"math"

	"honnef.co/go/stuff/math/mathutil"
)

// Oklab is a color in the Oklab color space, with straight alpha.
type Oklab struct {
	L, A, B float32
	Alpha   float32
}

// FromNRGBA converts an sRGB color to Oklab.
func FromNRGBA(c color.NRGBA) Oklab {
	r := toLinear(float64(c.R) / 0xFF)
	g := toLinear(float64(c.G) / 0xFF)
	b := toLinear(float64(c.B) / 0xFF)

	l := math.Cbrt(0.4122214708*r + 0.5363325363*g + 0.0514459929*b)
	m := math.Cbrt(0.2119034982*r + 0.6806995451*g + 0.1073969566*b)
	s := math.Cbrt(0.0883024619*r + 0.2817188376*g + 0.6299787005*b)

	return Oklab{
		L:     float32(0.2104542553*l + 0.7936177850*m - 0.0040720468*s),
		A:     float32(1.9779984951*l - 2.4285922050*m + 0.4505937099*s),
		B:     float32(0.0259040371*l + 0.7827717662*m - 0.8086757660*s),
		Alpha: float32(c.A) / 0xFF,
	}
}

// NRGBA converts c to sRGB. Colors outside the sRGB gamut are clipped.
func (c Oklab) NRGBA() color.NRGBA {
	l := float64(c.L + 0.3963377774*c.A + 0.2158037573*c.B)
	m := float64(c.L - 0.1055613458*c.A - 0.0638541728*c.B)
	s := float64(c.L - 0.0894841775*c.A - 1.2914855480*c.B)
	l, m, s = l*l*l, m*m*m, s*s*s

	r := +4.0767416621*l - 3.3077115913*m + 0.2309699292*s
	g := -1.2684380046*l + 2.6097574011*m - 0.3413193965*s
	b := -0.0041960863*l - 0.7034186147*m + 1.7076147010*s

	return color.NRGBA{
		R: toByte(fromLinear(r)),
		G: toByte(fromLinear(g)),
		B: toByte(fromLinear(b)),
		A: toByte(float64(c.Alpha)),
	}
}

// Mix returns the color t of the way from a to b. t is clamped to [0, 1].
func Mix(a, b color.NRGBA, t float32) color.NRGBA {
	switch {
	case t <= 0:
		return a
	case t >= 1:
		return b
	}
	ka, kb := FromNRGBA(a), FromNRGBA(b)
	return Oklab{
		L:     mathutil.Lerp(ka.L, kb.L, float64(t)),
		A:     mathutil.Lerp(ka.A, kb.A, float64(t)),
		B:     mathutil.Lerp(ka.B, kb.B, float64(t)),
		Alpha: mathutil.Lerp(ka.Alpha, kb.Alpha, float64(t)),
	}.NRGBA()
}

func toLinear(v float64) float64 {
	if v >= 0.04045 {
		return math.Pow((v+0.055)/1.055, 2.4)
	}
	return v / 12.92
}

func fromLinear(v float64) float64 {
	if v >= 0.0031308 {
		return 1.055*math.Pow(v, 1/2.4) - 0.055
	}
	return 12.92 * v
}

func toByte(v float64) uint8 {
	return uint8(math.Round(min(max(v, 0), 1) * 0xFF))
}
