package tree23

import "fmt"

// Tree is a 2-3 search tree: every internal node has 2 or 3 children, every
// leaf is at the same depth, and every operation reports the structural
// changes it makes through an Observable[Batch[K]] (spec.md §4.2).
//
// A Tree owns its node graph exclusively; observers receive snapshots
// (NodeInfo) by value and must never mutate tree state directly. The zero
// value is not usable — construct with New.
type Tree[K Key] struct {
	root *node[K]
	port *Observable[Batch[K]]
	// debug, when true, panics on an invariant violation immediately after
	// the mutating operation that produced it, instead of only surfacing
	// the problem the next time a caller runs CheckInvariants. This mirrors
	// willow's globalDebug switch (debug.go): off by default, to be turned
	// on in tests and development builds.
	debug bool
}

// New creates an empty 2-3 tree over key type K.
func New[K Key]() *Tree[K] {
	return &Tree[K]{port: NewObservable[Batch[K]]()}
}

// SetDebug toggles inline invariant assertions after every mutating
// operation. Leave it off in production use — CheckInvariants is always
// available on demand.
func (t *Tree[K]) SetDebug(enabled bool) {
	t.debug = enabled
}

// Subscribe attaches o to this tree's action stream. See Observable.Subscribe
// for re-subscription semantics.
func (t *Tree[K]) Subscribe(o *Observer[Batch[K]]) {
	t.port.Subscribe(o)
}

func (t *Tree[K]) notify(b Batch[K]) {
	t.port.Notify(b)
}

// Contains reports whether k is currently in the tree. It is read-only: it
// brackets a StartQuery/EndQuery pair and emits a Visit for every node on
// the descent path, and nothing else.
func (t *Tree[K]) Contains(k K) bool {
	t.notify(startQueryBatch[K]())
	leaf := t.descend(k)
	found := leaf != nil && indexOfKey(leaf.keys, k) != -1
	t.notify(endQueryBatch[K]())
	return found
}

// Insert adds k to the tree if it is not already present. It returns true
// iff a new key was inserted.
func (t *Tree[K]) Insert(k K) bool {
	t.notify(startQueryBatch[K]())
	defer t.notify(endQueryBatch[K]())

	if t.root == nil {
		root := t.newLeaf([]K{k})
		t.root = root
		t.notify(Batch[K]{
			{Type: Create, Node: root.id, Data: t.nodeInfo(root)},
			{Type: MakeRoot, Node: root.id},
		})
		t.assertValid()
		return true
	}

	leaf := t.descend(k)
	if indexOfKey(leaf.keys, k) != -1 {
		t.assertValid()
		return false
	}

	leaf.keys = insertSorted(leaf.keys, k)
	t.notify(Batch[K]{{Type: Change, Node: leaf.id, Data: t.nodeInfo(leaf)}})
	t.propagateMaxUp(leaf)
	t.splitIfOverfull(leaf)
	t.assertValid()
	return true
}

// Erase removes k from the tree if present. It returns true iff a key was
// removed.
func (t *Tree[K]) Erase(k K) bool {
	t.notify(startQueryBatch[K]())
	defer t.notify(endQueryBatch[K]())

	leaf := t.descend(k)
	if leaf == nil {
		return false
	}
	idx := indexOfKey(leaf.keys, k)
	if idx == -1 {
		t.assertValid()
		return false
	}

	leaf.keys = removeKeyAt(leaf.keys, idx)
	t.notify(Batch[K]{{Type: Change, Node: leaf.id, Data: t.nodeInfo(leaf)}})
	if len(leaf.keys) >= 2 {
		t.propagateMaxUp(leaf)
		t.assertValid()
		return true
	}

	t.mergeUnderfull(leaf)
	t.assertValid()
	return true
}

// descend performs the lower-bound leaf search: starting at the root, at
// each internal node it follows the smallest-indexed child whose key is
// >= k, or the rightmost child if none qualifies, emitting a Visit for
// every node it passes through (including the root). It returns the
// reached leaf, or nil if the tree is empty.
func (t *Tree[K]) descend(k K) *node[K] {
	v := t.root
	if v == nil {
		return nil
	}
	t.notify(Batch[K]{{Type: Visit, Node: v.id}})
	for len(v.children) > 0 {
		idx := -1
		for i, key := range v.keys {
			if k <= key {
				idx = i
				break
			}
		}
		if idx == -1 {
			idx = len(v.children) - 1
		}
		v = v.children[idx]
		t.notify(Batch[K]{{Type: Visit, Node: v.id}})
	}
	return v
}

// propagateMaxUp walks from n.parent to the root, overwriting each
// ancestor's keys with its children's current maxima and emitting a Change
// for every ancestor visited (not only the ones whose key value actually
// moved — this matches the reference implementation, which always
// recomputes and reports the whole chain to the root).
func (t *Tree[K]) propagateMaxUp(n *node[K]) {
	v := n
	for v.parent != nil {
		v = v.parent
		for i, child := range v.children {
			v.keys[i] = child.keys[len(child.keys)-1]
		}
		t.notify(Batch[K]{{Type: Change, Node: v.id, Data: t.nodeInfo(v)}})
	}
}

// splitIfOverfull repeatedly splits start (and any ancestor that overflows
// as a result) while it holds 4 keys, per spec.md §4.2 "Split".
func (t *Tree[K]) splitIfOverfull(start *node[K]) {
	v := start
	for len(v.keys) > 3 {
		left := t.newNode(append([]K(nil), v.keys[0:2]...), nil)
		right := t.newNode(append([]K(nil), v.keys[2:4]...), nil)
		if len(v.children) > 0 {
			left.children = append([]*node[K](nil), v.children[0:2]...)
			right.children = append([]*node[K](nil), v.children[2:4]...)
			for _, c := range left.children {
				c.parent = left
			}
			for _, c := range right.children {
				c.parent = right
			}
		}

		if v.parent == nil {
			newRoot := t.newNode(
				[]K{left.keys[len(left.keys)-1], right.keys[len(right.keys)-1]},
				[]*node[K]{left, right},
			)
			left.parent = newRoot
			right.parent = newRoot
			t.root = newRoot
			t.notify(Batch[K]{
				{Type: Delete, Node: v.id},
				{Type: Create, Node: left.id, Data: t.nodeInfo(left)},
				{Type: Create, Node: right.id, Data: t.nodeInfo(right)},
				{Type: Create, Node: newRoot.id, Data: t.nodeInfo(newRoot)},
				{Type: MakeRoot, Node: newRoot.id},
			})
			return
		}

		parent := v.parent
		i := indexOfChild(parent, v)
		left.parent = parent
		right.parent = parent

		newKeys := make([]K, 0, len(parent.keys)+1)
		newKeys = append(newKeys, parent.keys[:i]...)
		newKeys = append(newKeys, left.keys[len(left.keys)-1], right.keys[len(right.keys)-1])
		newKeys = append(newKeys, parent.keys[i+1:]...)
		parent.keys = newKeys

		newChildren := make([]*node[K], 0, len(parent.children)+1)
		newChildren = append(newChildren, parent.children[:i]...)
		newChildren = append(newChildren, left, right)
		newChildren = append(newChildren, parent.children[i+1:]...)
		parent.children = newChildren

		t.notify(Batch[K]{
			{Type: Delete, Node: v.id},
			{Type: Create, Node: left.id, Data: t.nodeInfo(left)},
			{Type: Create, Node: right.id, Data: t.nodeInfo(right)},
			{Type: Change, Node: parent.id, Data: t.nodeInfo(parent)},
		})
		v = parent
	}
}

// mergeUnderfull handles a node that dropped to 1 key (or, at the root, to
// 0): it repeatedly absorbs the underfull node into a sibling, propagating
// the shrinkage upward until some ancestor is no longer underfull, a merge
// overflows a sibling back into a split, or the root itself is reached.
// Ancestors above the point where it stops get their max keys refreshed, and
// a root left with a single child is replaced by that child.
func (t *Tree[K]) mergeUnderfull(v *node[K]) {
	for v.parent != nil && len(v.keys) < 2 {
		parent := v.parent
		i := indexOfChild(parent, v)

		var sibling *node[K]
		leftMerge := i > 0
		if leftMerge {
			sibling = parent.children[i-1]
		} else {
			sibling = parent.children[i+1]
		}

		var movedChild *node[K]
		if len(v.children) > 0 {
			movedChild = v.children[0]
		}
		if leftMerge {
			sibling.keys = append(sibling.keys, v.keys[0])
			if movedChild != nil {
				movedChild.parent = sibling
				sibling.children = append(sibling.children, movedChild)
			}
			parent.keys[i-1] = sibling.keys[len(sibling.keys)-1]
		} else {
			sibling.keys = append([]K{v.keys[0]}, sibling.keys...)
			if movedChild != nil {
				movedChild.parent = sibling
				sibling.children = append([]*node[K]{movedChild}, sibling.children...)
			}
		}

		parent.keys = removeKeyAt(parent.keys, i)
		parent.children = removeChildAt(parent.children, i)

		t.notify(Batch[K]{
			{Type: Change, Node: sibling.id, Data: t.nodeInfo(sibling)},
			{Type: Change, Node: parent.id, Data: t.nodeInfo(parent)},
			{Type: Delete, Node: v.id},
		})

		if len(sibling.keys) == 4 {
			t.propagateMaxUp(sibling)
			t.splitIfOverfull(sibling)
			return
		}
		v = parent
	}

	if v.parent != nil {
		// Stopped below the root: v's maximum may have changed, so refresh
		// every ancestor above it.
		t.propagateMaxUp(v)
		return
	}
	// v is the root.
	switch {
	case len(v.keys) == 0:
		t.root = nil
		t.notify(Batch[K]{
			{Type: Delete, Node: v.id},
			{Type: MakeRoot, Node: NoNodeId},
		})
	case len(v.children) == 1:
		newRoot := v.children[0]
		newRoot.parent = nil
		t.root = newRoot
		t.notify(Batch[K]{
			{Type: Delete, Node: v.id},
			{Type: MakeRoot, Node: newRoot.id},
		})
	}
}

// CheckInvariants walks the whole tree and reports the first violation of
// spec.md §3's invariants 1-6, or nil if the tree is valid (including the
// empty tree). It is safe to call at any time between operations; it is
// not used on the hot path unless SetDebug(true) was called.
func (t *Tree[K]) CheckInvariants() error {
	return t.checkSubtree(t.root, true)
}

func (t *Tree[K]) checkSubtree(n *node[K], isRoot bool) error {
	if n == nil {
		return nil
	}
	if len(n.children) > 0 && len(n.children) != len(n.keys) {
		return fmt.Errorf("tree23: node %s has %d keys but %d children", n.id, len(n.keys), len(n.children))
	}
	minKeys := 2
	if isRoot {
		minKeys = 1
	}
	if len(n.keys) < minKeys || len(n.keys) > 3 {
		return fmt.Errorf("tree23: node %s has %d keys, want %d..3", n.id, len(n.keys), minKeys)
	}
	for i, c := range n.children {
		if c.parent != n {
			return fmt.Errorf("tree23: node %s child %d has wrong parent back-link", n.id, i)
		}
		if c.keys[len(c.keys)-1] != n.keys[i] {
			return fmt.Errorf("tree23: node %s key %d (%v) does not match child max (%v)", n.id, i, n.keys[i], c.keys[len(c.keys)-1])
		}
	}
	depth := -1
	for i, c := range n.children {
		d, err := t.leafDepth(c, 0)
		if err != nil {
			return err
		}
		if i == 0 {
			depth = d
		} else if d != depth {
			return fmt.Errorf("tree23: node %s has children at unequal depths", n.id)
		}
		if err := t.checkSubtree(c, false); err != nil {
			return err
		}
	}
	return nil
}

func (t *Tree[K]) leafDepth(n *node[K], depth int) (int, error) {
	if len(n.children) == 0 {
		return depth, nil
	}
	return t.leafDepth(n.children[0], depth+1)
}

func (t *Tree[K]) assertValid() {
	if !t.debug {
		return
	}
	if err := t.CheckInvariants(); err != nil {
		panic("tree23: " + err.Error())
	}
}
