package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/mvislab/tree23"
)

// Renderer paints a tree23.Scene onto an *ebiten.Image, through a Camera
// and a fadeTracker so a highlight doesn't just blink off between frames.
type Renderer struct {
	Camera *Camera
	fades  *fadeTracker
	face   text.Face
	scene  tree23.Scene
}

// NewRenderer creates a Renderer using face for node labels.
func NewRenderer(face text.Face) *Renderer {
	return &Renderer{
		Camera: NewCamera(),
		fades:  newFadeTracker(),
		face:   face,
	}
}

// Feed hands the renderer a new frame from the drawing model. Call this
// once per AnimationProducer frame (i.e. only when it actually advances),
// not once per ebiten Update tick.
func (r *Renderer) Feed(scene tree23.Scene) {
	r.fades.Track(scene)
	r.scene = scene
}

// Update advances the fade animations by dt seconds. Call this every
// ebiten Update tick, independent of how often Feed is called.
func (r *Renderer) Update(dt float64) {
	r.fades.Update(float32(dt))
}

// Draw paints the current scene onto dst.
func (r *Renderer) Draw(dst *ebiten.Image) {
	for _, rect := range r.scene.Rects {
		fill := r.fades.ColorFor(rect.X, rect.Y, rect.Color)
		x0, y0 := r.Camera.ToScreen(rect.X, rect.Y)
		x1, y1 := r.Camera.ToScreen(rect.X+rect.W, rect.Y+rect.H)
		rr, gg, bb, aa := colorToRGBA(fill)
		vector.DrawFilledRect(dst, float32(x0), float32(y0), float32(x1-x0), float32(y1-y0), nrgba(rr, gg, bb, aa), false)

		vector.StrokeLine(dst, float32(x0), float32(y0), float32(x1), float32(y0), 1, blackColor, false)
		vector.StrokeLine(dst, float32(x1), float32(y0), float32(x1), float32(y1), 1, blackColor, false)
		vector.StrokeLine(dst, float32(x1), float32(y1), float32(x0), float32(y1), 1, blackColor, false)
		vector.StrokeLine(dst, float32(x0), float32(y1), float32(x0), float32(y0), 1, blackColor, false)
	}

	for _, line := range r.scene.Lines {
		x0, y0 := r.Camera.ToScreen(line.X1, line.Y1)
		x1, y1 := r.Camera.ToScreen(line.X2, line.Y2)
		vector.StrokeLine(dst, float32(x0), float32(y0), float32(x1), float32(y1), 1, nrgba(0, 0, 0, 1), false)
	}

	if r.face == nil {
		return
	}
	for _, label := range r.scene.Labels {
		x, y := r.Camera.ToScreen(label.X, label.Y)
		op := &text.DrawOptions{}
		op.GeoM.Translate(x, y)
		op.ColorScale.ScaleWithColor(blackImageColor)
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
		text.Draw(dst, label.Text, r.face, op)
	}
}
