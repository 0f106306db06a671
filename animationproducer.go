package tree23

import "fmt"

// FrameDelay is the recommended pacing interval, in seconds, between two
// animated batches. Callers drive the animation by adding the real elapsed
// time of their own update loop to Update; FrameDelay is only a suggested
// cadence, not something this package measures itself.
const FrameDelay = 0.3

// AnimationProducer sits between a Tree's action stream and a DrawingModel,
// pacing the delivery of batches to the model instead of folding them in as
// fast as the tree produces them. This is what turns a sequence of
// structural actions into something a human can watch happen.
//
// A new query (a batch starting with StartQuery) pre-empts whatever
// animation is still in flight: every batch still queued from the previous
// query is drained into the model immediately, so the model never shows a
// half-finished animation of an operation that has already been fully
// superseded by a newer one.
//
// Per spec.md §4.4, receiving EndQuery begins animating immediately: the
// head of the queue is popped and applied the instant the query closes,
// with only the batches after that one waiting out FrameDelay via Update.
// This keeps the first frame of every query visible right away instead of
// making the user wait out a full FrameDelay before seeing anything.
type AnimationProducer[K Key] struct {
	model    *DrawingModel[K]
	observer *Observer[Batch[K]]
	queue    []Batch[K]
	elapsed  float64
}

// NewAnimationProducer creates a producer that paces batches into model.
func NewAnimationProducer[K Key](model *DrawingModel[K]) *AnimationProducer[K] {
	p := &AnimationProducer[K]{model: model}
	p.observer = NewObserver(p.onBatch)
	return p
}

// Observer returns the Observer to pass to Tree.Subscribe.
func (p *AnimationProducer[K]) Observer() *Observer[Batch[K]] {
	return p.observer
}

// HasPending reports whether any batch is still waiting to be animated.
func (p *AnimationProducer[K]) HasPending() bool {
	return len(p.queue) > 0
}

// onBatch receives every batch directly from the tree, in emission order.
func (p *AnimationProducer[K]) onBatch(b Batch[K]) {
	assertWellFormedBatch(b)
	if b.IsStartQuery() && len(p.queue) > 0 {
		p.drainAll()
	}
	p.queue = append(p.queue, b)
	if b.IsEndQuery() {
		p.popHead()
	}
}

// assertWellFormedBatch panics if b mixes a query bracket with structural
// actions, which would be a protocol violation in the tree itself rather
// than anything a caller of AnimationProducer could provoke.
func assertWellFormedBatch[K Key](b Batch[K]) {
	if len(b) == 0 {
		panic("tree23: empty batch")
	}
	for i, a := range b {
		if a.Type == StartQuery && (i != 0 || len(b) != 1) {
			panic(fmt.Sprintf("tree23: StartQuery not alone in batch: %v", b))
		}
		if a.Type == EndQuery && (i != 0 || len(b) != 1) {
			panic(fmt.Sprintf("tree23: EndQuery not alone in batch: %v", b))
		}
	}
}

// drainAll folds every still-pending batch into the model immediately,
// without waiting out FrameDelay between them, and empties the queue.
func (p *AnimationProducer[K]) drainAll() {
	for _, b := range p.queue {
		p.model.Apply(b)
	}
	p.queue = nil
	p.elapsed = 0
}

// popAndApply folds the oldest queued batch into the model and reports
// whether one was applied; it is a no-op that reports false if the queue is
// empty.
func (p *AnimationProducer[K]) popAndApply() bool {
	if len(p.queue) == 0 {
		return false
	}
	next := p.queue[0]
	p.queue = p.queue[1:]
	p.model.Apply(next)
	return true
}

// popHead pops and applies the head of the queue immediately and resets the
// pacing clock, so the batches that follow wait out a full FrameDelay from
// this instant rather than from whenever Update was last called.
func (p *AnimationProducer[K]) popHead() {
	p.popAndApply()
	p.elapsed = 0
}

// Update advances the animation clock by dt seconds. Once dt accumulates
// past FrameDelay, the oldest pending batch is folded into the model and
// the clock carries the remainder forward; at most one batch is applied per
// call, so a caller that stalls and then passes a large dt will catch up
// one frame at a time on subsequent calls rather than skipping batches.
// It reports whether a batch was actually applied this call, so a renderer
// knows when there's a fresh Scene worth re-reading.
func (p *AnimationProducer[K]) Update(dt float64) bool {
	if len(p.queue) == 0 {
		return false
	}
	p.elapsed += dt
	if p.elapsed < FrameDelay {
		return false
	}
	p.elapsed -= FrameDelay
	return p.popAndApply()
}
