package tree23

import (
	"math/rand"
	"sort"
	"testing"
)

func newDebugTree[K Key]() *Tree[K] {
	t := New[K]()
	t.SetDebug(true)
	return t
}

func assertInvariants[K Key](t *testing.T, tr *Tree[K]) {
	t.Helper()
	if err := tr.CheckInvariants(); err != nil {
		t.Fatalf("invariant violated: %v", err)
	}
}

func collect[K Key](tr *Tree[K]) []K {
	var out []K
	var walk func(n *node[K])
	walk = func(n *node[K]) {
		if n == nil {
			return
		}
		if len(n.children) == 0 {
			out = append(out, n.keys...)
			return
		}
		for _, c := range n.children {
			walk(c)
		}
	}
	walk(tr.root)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func TestInsertAscending(t *testing.T) {
	tr := newDebugTree[int]()
	for i := 1; i <= 5; i++ {
		if !tr.Insert(i) {
			t.Fatalf("Insert(%d) returned false on first insert", i)
		}
		assertInvariants(t, tr)
	}
	for i := 1; i <= 5; i++ {
		if !tr.Contains(i) {
			t.Errorf("Contains(%d) = false, want true", i)
		}
	}
}

func TestInsertDuplicateIsNoop(t *testing.T) {
	tr := newDebugTree[int]()
	tr.Insert(3)
	if tr.Insert(3) {
		t.Fatalf("Insert(3) a second time returned true, want false")
	}
	assertInvariants(t, tr)
	if got := collect(tr); len(got) != 1 {
		t.Fatalf("collect(tr) = %v, want a single 3", got)
	}
}

func TestMixedInsertContainsErase(t *testing.T) {
	tr := newDebugTree[int]()
	for _, k := range []int{10, 20, 5, 15, 25, 1} {
		tr.Insert(k)
		assertInvariants(t, tr)
	}
	if !tr.Contains(15) {
		t.Errorf("Contains(15) = false, want true")
	}
	if tr.Contains(99) {
		t.Errorf("Contains(99) = true, want false")
	}
	if !tr.Erase(20) {
		t.Fatalf("Erase(20) = false, want true")
	}
	assertInvariants(t, tr)
	if tr.Contains(20) {
		t.Errorf("Contains(20) = true after Erase, want false")
	}
	if tr.Erase(20) {
		t.Fatalf("second Erase(20) = true, want false")
	}
}

func TestInsertEraseReinsertZeroToNine(t *testing.T) {
	tr := newDebugTree[int]()
	for i := 0; i < 10; i++ {
		tr.Insert(i)
		assertInvariants(t, tr)
	}
	if tr.Insert(5) {
		t.Fatalf("Insert(5) duplicate returned true")
	}
	if !tr.Erase(5) {
		t.Fatalf("Erase(5) = false, want true")
	}
	assertInvariants(t, tr)
	if tr.Contains(5) {
		t.Errorf("Contains(5) = true after Erase, want false")
	}
	if !tr.Insert(5) {
		t.Fatalf("re-Insert(5) = false, want true")
	}
	assertInvariants(t, tr)
	if !tr.Contains(5) {
		t.Errorf("Contains(5) = false after re-Insert, want true")
	}
}

func TestLargeSymmetricRange(t *testing.T) {
	tr := newDebugTree[int]()
	const n = 200
	for i := 0; i < n; i++ {
		tr.Insert(i)
	}
	assertInvariants(t, tr)
	for i := 0; i < n; i++ {
		if !tr.Contains(i) {
			t.Fatalf("Contains(%d) = false after bulk insert", i)
		}
	}
	for i := 0; i < n; i += 2 {
		if !tr.Erase(i) {
			t.Fatalf("Erase(%d) = false", i)
		}
	}
	assertInvariants(t, tr)
	for i := 0; i < n; i++ {
		want := i%2 != 0
		if got := tr.Contains(i); got != want {
			t.Fatalf("Contains(%d) = %v, want %v", i, got, want)
		}
	}
	for i := 1; i < n; i += 2 {
		if !tr.Erase(i) {
			t.Fatalf("Erase(%d) = false", i)
		}
	}
	assertInvariants(t, tr)
	if tr.root != nil {
		t.Fatalf("root = %v, want nil after erasing every key", tr.root)
	}
}

func TestRandomizedAgainstReferenceMap(t *testing.T) {
	tr := newDebugTree[int]()
	reference := make(map[int]bool)
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 1000; i++ {
		k := rng.Intn(50)
		switch rng.Intn(3) {
		case 0:
			got := tr.Insert(k)
			want := !reference[k]
			if got != want {
				t.Fatalf("iter %d: Insert(%d) = %v, want %v", i, k, got, want)
			}
			reference[k] = true
		case 1:
			got := tr.Erase(k)
			want := reference[k]
			if got != want {
				t.Fatalf("iter %d: Erase(%d) = %v, want %v", i, k, got, want)
			}
			delete(reference, k)
		case 2:
			got := tr.Contains(k)
			want := reference[k]
			if got != want {
				t.Fatalf("iter %d: Contains(%d) = %v, want %v", i, k, got, want)
			}
		}
		assertInvariants(t, tr)
	}

	var want []int
	for k, present := range reference {
		if present {
			want = append(want, k)
		}
	}
	sort.Ints(want)
	if got := collect(tr); !equalInts(got, want) {
		t.Fatalf("final tree contents = %v, want %v", got, want)
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestEraseEmptyTree(t *testing.T) {
	tr := newDebugTree[int]()
	if tr.Erase(1) {
		t.Fatalf("Erase on empty tree returned true")
	}
	if tr.Contains(1) {
		t.Fatalf("Contains on empty tree returned true")
	}
}

func TestEraseDownToEmpty(t *testing.T) {
	tr := newDebugTree[int]()
	tr.Insert(7)
	rootID := tr.root.id

	// spec.md §8 "Boundary behaviors": erasing a one-key root emits Delete
	// then MakeRoot(none). Track the last structural (non-EndQuery) batch so
	// we can assert on it directly, not just on the resulting root pointer.
	var finalBatch Batch[int]
	obs := NewObserver(func(b Batch[int]) {
		if !b.IsEndQuery() {
			finalBatch = b
		}
	})
	tr.Subscribe(obs)
	defer obs.Unsubscribe()

	if !tr.Erase(7) {
		t.Fatalf("Erase(7) = false, want true")
	}
	assertInvariants(t, tr)
	if tr.root != nil {
		t.Fatalf("root = %v, want nil", tr.root)
	}

	want := Batch[int]{
		{Type: Delete, Node: rootID},
		{Type: MakeRoot, Node: NoNodeId},
	}
	if len(finalBatch) != len(want) {
		t.Fatalf("final structural batch = %v, want %v", finalBatch, want)
	}
	for i := range want {
		if finalBatch[i].Type != want[i].Type || finalBatch[i].Node != want[i].Node {
			t.Fatalf("final structural batch = %v, want %v", finalBatch, want)
		}
	}
}

func TestDescendVisitsEveryNodeOnPath(t *testing.T) {
	tr := newDebugTree[int]()
	for i := 0; i < 40; i++ {
		tr.Insert(i)
	}

	var visited []NodeId
	obs := NewObserver(func(b Batch[int]) {
		for _, a := range b {
			if a.Type == Visit {
				visited = append(visited, a.Node)
			}
		}
	})
	tr.Subscribe(obs)
	defer obs.Unsubscribe()

	visited = nil
	tr.Contains(39)
	if len(visited) == 0 {
		t.Fatalf("Contains emitted no Visit actions")
	}
	// Root must always be the first node visited.
	if visited[0] != tr.root.id {
		t.Fatalf("first visited node = %v, want root %v", visited[0], tr.root.id)
	}
	// One Visit per level, root through leaf.
	height, _ := tr.leafDepth(tr.root, 0)
	if len(visited) != height+1 {
		t.Fatalf("Contains visited %d nodes, want %d (one per level)", len(visited), height+1)
	}
}
