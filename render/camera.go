// Package render is an Ebitengine-backed GUI for tree23: it turns a
// tree23.Scene into pixels, using gween to fade a node's highlight color
// back to neutral over real time instead of snapping it off between
// frames. Nothing in package tree23 imports this package or knows it
// exists; a caller is free to write a different renderer entirely.
package render

import "github.com/mvislab/tree23"

// Camera pans and zooms the tree canvas. Scene coordinates are fixed
// (tree23 lays nodes out in a stable, scene-local coordinate space);
// Camera only changes where that space lands on screen.
type Camera struct {
	X, Y float64
	Zoom float64
}

// NewCamera creates a camera at 1x zoom that maps the scene origin to the
// screen's top-left corner.
func NewCamera() *Camera {
	return &Camera{Zoom: 1}
}

// ToScreen converts a scene-space point to a screen-space point under this
// camera's current pan and zoom.
func (c *Camera) ToScreen(x, y float64) (sx, sy float64) {
	zoom := c.Zoom
	if zoom == 0 {
		zoom = 1
	}
	return (x - c.X) * zoom, (y - c.Y) * zoom
}

// Pan moves the camera by dx, dy in scene units.
func (c *Camera) Pan(dx, dy float64) {
	c.X += dx
	c.Y += dy
}

// ZoomBy multiplies the current zoom factor, clamping to a sane range so a
// stray scroll event can't flip the view inside out or zoom it to zero.
func (c *Camera) ZoomBy(factor float64) {
	z := c.Zoom * factor
	if z < 0.1 {
		z = 0.1
	}
	if z > 8 {
		z = 8
	}
	c.Zoom = z
}

// colorToRGBA returns a tree23.Color's components as float32 values, still
// in the 0..1 range; nrgba turns them into a color.Color.
func colorToRGBA(c tree23.Color) (r, g, b, a float32) {
	return float32(c.R), float32(c.G), float32(c.B), float32(c.A)
}
