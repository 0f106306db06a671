package render

import "image/color"

// blackColor and blackImageColor are the two shapes Ebitengine's drawing
// APIs want a fixed black in: vector.StrokeLine takes a color.Color, the
// v2 text package's ColorScale wants something ScaleWithColor accepts.
var (
	blackColor      = color.NRGBA{A: 255}
	blackImageColor = color.NRGBA{A: 255}
)

// nrgba converts 0..1 float components to a color.Color.
func nrgba(r, g, b, a float32) color.Color {
	return color.NRGBA{
		R: uint8(clamp01(r) * 255),
		G: uint8(clamp01(g) * 255),
		B: uint8(clamp01(b) * 255),
		A: uint8(clamp01(a) * 255),
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
