package render

import (
	"github.com/mvislab/tree23"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// fadeDuration is how long a highlight takes to fade back to neutral once
// DrawingModel stops reporting it. tree23 itself only ever reports a
// highlight for the single frame it applies, then resets to neutral; this
// package is what makes that highlight visible to a human instead of
// flickering for one frame and vanishing.
const fadeDuration = 0.5

// cellKey identifies a drawn cell across frames by its layout position.
// Positions are stable for a cell representing the same key as long as the
// surrounding structure doesn't change shape, which is enough to carry a
// fade smoothly through a run of Visit/Change batches touching one node.
type cellKey struct {
	x, y float64
}

// fadeTracker interpolates each drawn cell's color from whatever
// highlight tree23 last reported back to neutral, the same role willow's
// TweenGroup/TweenColor play for a sprite's tint (animation.go), retargeted
// here at tree23.Color fields instead of a *Node's.
type fadeTracker struct {
	active map[cellKey]*colorFade
}

type colorFade struct {
	r, g, b, a *gween.Tween
}

func newFadeTracker() *fadeTracker {
	return &fadeTracker{active: make(map[cellKey]*colorFade)}
}

// Track registers scene's current colors as the start of a fade towards
// neutral for any cell whose color isn't already neutral, replacing any
// fade already running for that cell. A cell reported neutral keeps any
// fade already running for it.
func (f *fadeTracker) Track(scene tree23.Scene) {
	for _, rect := range scene.Rects {
		key := cellKey{x: rect.X, y: rect.Y}
		if rect.Color == neutralColor {
			continue
		}
		f.active[key] = &colorFade{
			r: gween.New(float32(rect.Color.R), float32(neutralColor.R), fadeDuration, ease.OutQuad),
			g: gween.New(float32(rect.Color.G), float32(neutralColor.G), fadeDuration, ease.OutQuad),
			b: gween.New(float32(rect.Color.B), float32(neutralColor.B), fadeDuration, ease.OutQuad),
			a: gween.New(float32(rect.Color.A), float32(neutralColor.A), fadeDuration, ease.OutQuad),
		}
	}
}

// Update advances every running fade by dt and drops the ones that finished.
func (f *fadeTracker) Update(dt float32) {
	for key, fade := range f.active {
		_, doneR := fade.r.Update(dt)
		_, doneG := fade.g.Update(dt)
		_, doneB := fade.b.Update(dt)
		_, doneA := fade.a.Update(dt)
		if doneR && doneG && doneB && doneA {
			delete(f.active, key)
		}
	}
}

// ColorFor returns the color a cell at (x, y) should be drawn with: its
// live fade value if one is running, otherwise base unchanged.
func (f *fadeTracker) ColorFor(x, y float64, base tree23.Color) tree23.Color {
	fade, ok := f.active[cellKey{x: x, y: y}]
	if !ok {
		return base
	}
	r, _ := fade.r.Update(0)
	g, _ := fade.g.Update(0)
	b, _ := fade.b.Update(0)
	a, _ := fade.a.Update(0)
	return tree23.Color{R: float64(r), G: float64(g), B: float64(b), A: float64(a)}
}

var neutralColor = tree23.Color{R: 1, G: 1, B: 1, A: 1}
