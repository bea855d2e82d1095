package colors

import colorful "github.com/lucasb-eyer/go-colorful"

// Color is an RGBA color in sRGB space, components in [0..1].
type Color [4]float32

var (
	Transparent = Color{0, 0, 0, 0}
	White       = Color{1, 1, 1, 1}
	Red         = Color{1, 0, 0, 1}
	Green       = Color{0, 1, 0, 1}
	Blue        = Color{0, 0, 1, 1}
	Black       = Color{0, 0, 0, 1}
	Magenta     = Color{1, 0, 1, 1}
	Cyan        = Color{0, 1, 1, 1}
	Yellow      = Color{1, 1, 0, 1}
	Gray        = Color{0.5, 0.5, 0.5, 1}
	DarkGray    = Color{0.08, 0.10, 0.12, 1}
)

// RGBA builds a color from sRGB components.
func RGBA(r, g, b, a float32) Color { return Color{r, g, b, a} }

func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}

// ToLinear converts the RGB channels from sRGB to linear space; alpha is
// passed through unchanged. Shaders blend in linear space.
func (c Color) ToLinear() Color {
	lr, lg, lb := colorful.Color{R: float64(c[0]), G: float64(c[1]), B: float64(c[2])}.LinearRgb()
	return Color{float32(lr), float32(lg), float32(lb), c[3]}
}
