// Package tree23 implements a 2-3 search tree that reports every structural
// change it makes as a replayable stream of actions, plus the pieces that
// turn that stream into an animated diagram: a drawing model that folds
// action batches into a shadow copy of the tree and lays it out, an
// animation producer that paces batches against a timer (and can pre-empt
// an in-progress animation when a new query arrives), and a controller
// façade for parsing user input and invoking the tree.
//
// The tree itself never touches a GUI: it only emits batches through
// [Observable]. Rendering lives in the sibling [tree23/render] package,
// which is a full Ebitengine-backed implementation of the GUI collaborator
// this package's design treats as external.
//
// # Quick start
//
//	tree := tree23.New[int]()
//	model := tree23.NewDrawingModel[int]()
//	producer := tree23.NewAnimationProducer[int](model)
//	tree.Subscribe(producer.Observer())
//
//	tree.Insert(5)
//	tree.Insert(2)
//	tree.Insert(7)
//
//	for producer.HasPending() {
//		producer.Update(tree23.FrameDelay)
//	}
//	scene := model.Scene()
package tree23
