package tree23

import "golang.org/x/exp/constraints"

// Key is the constraint every tree key type must satisfy: a totally ordered
// value comparable with < and ==. The engine only ever uses those two
// operators (spec.md §3, "Key"), so any ordered primitive — ints, floats,
// or strings — works without modification.
type Key = constraints.Ordered
