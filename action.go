package tree23

import "fmt"

// ActionType identifies which of the seven event variants an Action carries.
type ActionType uint8

const (
	// StartQuery opens a query. A batch containing it contains nothing else.
	StartQuery ActionType = iota
	// EndQuery closes a query. A batch containing it contains nothing else.
	EndQuery
	// Visit reports that the engine has traversed into a node.
	Visit
	// Create reports that a new node has appeared with the given content.
	Create
	// Delete reports that a node no longer exists.
	Delete
	// Change reports that a node's keys/children have been replaced.
	Change
	// MakeRoot reports that the named node (or NoNodeId, meaning an empty
	// tree) is now the root.
	MakeRoot
)

// String implements fmt.Stringer for readable test failures and debug logs.
func (t ActionType) String() string {
	switch t {
	case StartQuery:
		return "StartQuery"
	case EndQuery:
		return "EndQuery"
	case Visit:
		return "Visit"
	case Create:
		return "Create"
	case Delete:
		return "Delete"
	case Change:
		return "Change"
	case MakeRoot:
		return "MakeRoot"
	default:
		return fmt.Sprintf("ActionType(%d)", uint8(t))
	}
}

// NodeInfo is a snapshot of a node's content at the instant it was created
// or changed: its ordered keys and the ordered ids of its children. It
// never includes a parent back-reference — observers reconstruct any
// upward links they need from the batches themselves.
type NodeInfo[K Key] struct {
	Keys     []K
	Children []NodeId
}

// clone returns a copy of info whose slices do not alias the tree's
// internal storage. Actions are handed to observers by value; the engine
// must not let an observer's retained NodeInfo change underfoot on a later
// mutation.
func (info NodeInfo[K]) clone() NodeInfo[K] {
	out := NodeInfo[K]{
		Keys:     append([]K(nil), info.Keys...),
		Children: append([]NodeId(nil), info.Children...),
	}
	return out
}

// Action is one structural event. Node is NoNodeId for StartQuery, EndQuery,
// and a MakeRoot that empties the tree. Data is populated only for Create
// and Change.
type Action[K Key] struct {
	Type ActionType
	Node NodeId
	Data NodeInfo[K]
}

// Batch is a non-empty, ordered sequence of actions emitted atomically.
// StartQuery and EndQuery batches contain exactly one action each and never
// mix with structural actions (Visit/Create/Delete/Change/MakeRoot); a
// mid-query batch contains only structural actions. Observers must treat a
// mid-query batch as all-or-nothing and never inspect tree state between
// two actions of the same batch.
type Batch[K Key] []Action[K]

// IsStartQuery reports whether b is the opening bracket of a query.
func (b Batch[K]) IsStartQuery() bool {
	return len(b) == 1 && b[0].Type == StartQuery
}

// IsEndQuery reports whether b is the closing bracket of a query.
func (b Batch[K]) IsEndQuery() bool {
	return len(b) == 1 && b[0].Type == EndQuery
}

func startQueryBatch[K Key]() Batch[K] {
	return Batch[K]{{Type: StartQuery}}
}

func endQueryBatch[K Key]() Batch[K] {
	return Batch[K]{{Type: EndQuery}}
}
