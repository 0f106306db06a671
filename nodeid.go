package tree23

import (
	"fmt"

	"github.com/hashicorp/go-uuid"
)

// NodeId is an opaque, stable identity for a tree node. It is not a key:
// the action stream uses it only to refer to a node across batches, and
// observers use it only as a map key — never to reconstruct structure by
// comparing or ordering ids.
//
// The zero value is NoNodeId and never identifies a live node.
type NodeId string

// NoNodeId is the absence of a node, used by MakeRoot when the tree becomes
// empty.
const NoNodeId NodeId = ""

// newNodeId mints a fresh, globally unique NodeId. Unlike a reused integer
// counter, a UUID can never collide with an id from an earlier, already
// deleted node, which matters because NodeInfo payloads travel to
// observers that may still be holding a stale reference.
func newNodeId() NodeId {
	id, err := uuid.GenerateUUID()
	if err != nil {
		// go-uuid only fails if the system's CSPRNG can't be read; there is
		// no sane recovery for that in a single-threaded drawing tool.
		panic(fmt.Sprintf("tree23: generating node id: %v", err))
	}
	return NodeId(id)
}
