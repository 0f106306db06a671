package tree23

import "fmt"

// bgState is the highlight state of a drawn node's cells, reset to neutral
// once a frame has been laid out and reported to the caller.
type bgState uint8

const (
	bgNeutral bgState = iota
	bgNew
	bgChanged
	bgVisited
)

// Color is a plain RGBA color in the 0..1 range, independent of any
// rendering toolkit. The render subpackage converts it to whatever pixel
// format its backend wants.
type Color struct {
	R, G, B, A float64
}

var (
	colorNeutral = Color{R: 1, G: 1, B: 1, A: 1}
	colorNew     = Color{R: 0.35, G: 0.80, B: 0.35, A: 1}
	colorChanged = Color{R: 0.95, G: 0.85, B: 0.25, A: 1}
	colorVisited = Color{R: 0.30, G: 0.80, B: 0.85, A: 1}
)

func colorFor(s bgState) Color {
	switch s {
	case bgNew:
		return colorNew
	case bgChanged:
		return colorChanged
	case bgVisited:
		return colorVisited
	default:
		return colorNeutral
	}
}

// Layout constants, in the same units as the original Qt-based drawing
// model: a cell is one key's box, margins separate both cells within a row
// and whole levels of the tree.
const (
	cellWidth      = 50.0
	cellHeight     = 30.0
	horizontalGap  = 50.0
	verticalMargin = 50.0
)

// Rect is one key's drawn box.
type Rect struct {
	X, Y, W, H float64
	Color      Color
}

// Label is the text drawn centered inside a Rect.
type Label struct {
	X, Y float64
	Text string
}

// Line is an edge segment from a parent cell's bottom-center to a child
// node's top-center.
type Line struct {
	X1, Y1, X2, Y2 float64
}

// Scene is everything needed to paint one frame: a flat list of primitives,
// already positioned in absolute coordinates. It carries no reference back
// into the tree or the drawing model.
type Scene struct {
	Rects  []Rect
	Labels []Label
	Lines  []Line
}

type drawNode[K Key] struct {
	keys       []K
	children   []NodeId
	background bgState
}

// DrawingModel folds a tree's action batches into a shadow copy of its
// structure and turns that shadow into a laid-out Scene, one frame at a
// time. It never talks to the tree directly; AnimationProducer is the only
// thing that calls Apply.
type DrawingModel[K Key] struct {
	shadow    map[NodeId]*drawNode[K]
	root      NodeId
	lastScene Scene
}

// NewDrawingModel creates an empty DrawingModel.
func NewDrawingModel[K Key]() *DrawingModel[K] {
	return &DrawingModel[K]{shadow: make(map[NodeId]*drawNode[K])}
}

// Apply folds one batch into the shadow tree, lays the result out, and
// returns the resulting Scene. Every highlight applied by this batch (and
// any still standing from an earlier batch) is visible in the returned
// scene, then reset to neutral, matching the reference model's
// draw-then-clear-backgrounds cadence.
func (m *DrawingModel[K]) Apply(b Batch[K]) Scene {
	for _, a := range b {
		switch a.Type {
		case Create:
			m.shadow[a.Node] = &drawNode[K]{
				keys:       append([]K(nil), a.Data.Keys...),
				children:   append([]NodeId(nil), a.Data.Children...),
				background: bgNew,
			}
		case Change:
			n, ok := m.shadow[a.Node]
			if !ok {
				n = &drawNode[K]{}
				m.shadow[a.Node] = n
			}
			n.keys = append([]K(nil), a.Data.Keys...)
			n.children = append([]NodeId(nil), a.Data.Children...)
			n.background = bgChanged
		case Visit:
			if n, ok := m.shadow[a.Node]; ok {
				n.background = bgVisited
			}
		case Delete:
			delete(m.shadow, a.Node)
		case MakeRoot:
			m.root = a.Node
		case StartQuery, EndQuery:
			// Brackets only; the shadow tree itself doesn't change.
		}
	}
	m.lastScene = m.layout()
	return m.lastScene
}

// Scene returns the most recently computed layout, without folding
// anything new. Useful for redrawing after a resize.
func (m *DrawingModel[K]) Scene() Scene {
	return m.lastScene
}

type layoutCursor struct {
	nextLeafX float64
}

// layout recomputes every node's position from the current shadow tree,
// resets every visited node's highlight to neutral, and garbage-collects
// any shadow entry that is no longer reachable from the root — the same
// cleanup the reference model performs so that a node dropped from the
// structure without an explicit Delete doesn't linger forever.
func (m *DrawingModel[K]) layout() Scene {
	var scene Scene
	if m.root == NoNodeId {
		m.shadow = make(map[NodeId]*drawNode[K])
		return scene
	}

	touched := make(map[NodeId]bool, len(m.shadow))
	cursor := &layoutCursor{}
	m.layoutNode(m.root, 0, cursor, &scene, touched)

	for id := range m.shadow {
		if !touched[id] {
			delete(m.shadow, id)
		}
	}
	return scene
}

// layoutNode positions n and recursively its children first (so a parent
// can center itself over its subtree), emits n's cells/labels/edges into
// scene, resets n's highlight, and returns n's horizontal center so its
// own parent can use it.
func (m *DrawingModel[K]) layoutNode(id NodeId, depth int, cursor *layoutCursor, scene *Scene, touched map[NodeId]bool) float64 {
	touched[id] = true
	n, ok := m.shadow[id]
	if !ok {
		// Referenced by a parent/MakeRoot but never Created; nothing to draw.
		return cursor.nextLeafX
	}

	y := verticalMargin + float64(depth)*(cellHeight+verticalMargin)
	width := float64(len(n.keys)) * cellWidth

	var leftX float64
	childCenters := make([]float64, len(n.children))
	if len(n.children) == 0 {
		leftX = cursor.nextLeafX
		cursor.nextLeafX += width + horizontalGap
	} else {
		for i, c := range n.children {
			childCenters[i] = m.layoutNode(c, depth+1, cursor, scene, touched)
		}
		first, last := childCenters[0], childCenters[len(childCenters)-1]
		leftX = (first+last)/2 - width/2
	}

	color := colorFor(n.background)
	childY := verticalMargin + float64(depth+1)*(cellHeight+verticalMargin)
	for i, k := range n.keys {
		cellX := leftX + float64(i)*cellWidth
		scene.Rects = append(scene.Rects, Rect{X: cellX, Y: y, W: cellWidth, H: cellHeight, Color: color})
		scene.Labels = append(scene.Labels, Label{
			X:    cellX + cellWidth/2,
			Y:    y + cellHeight/2,
			Text: fmt.Sprint(k),
		})
		if i < len(childCenters) {
			scene.Lines = append(scene.Lines, Line{
				X1: cellX + cellWidth/2, Y1: y + cellHeight,
				X2: childCenters[i], Y2: childY,
			})
		}
	}

	n.background = bgNeutral
	return leftX + width/2
}
