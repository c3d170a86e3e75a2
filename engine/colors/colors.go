package colors

type Color [4]float32

var (
	White    = Color{1, 1, 1, 1}
	Black    = Color{0, 0, 0, 1}
	Red      = Color{0.85, 0.25, 0.2, 1}
	Green    = Color{0.3, 0.7, 0.35, 1}
	Blue     = Color{0.25, 0.45, 0.85, 1}
	Yellow   = Color{0.9, 0.8, 0.25, 1}
	Slate    = Color{0.32, 0.36, 0.4, 1}
	Sand     = Color{0.76, 0.7, 0.55, 1}
	SkyBlue  = Color{0.45, 0.65, 0.85, 1}
	DarkGray = Color{0.08, 0.10, 0.12, 1}
)

func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}
