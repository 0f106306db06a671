package tree23

import "testing"

func TestObserverReceivesInSubscriptionOrder(t *testing.T) {
	ob := NewObservable[int]()
	var order []int
	o1 := NewObserver(func(v int) { order = append(order, 100+v) })
	o2 := NewObserver(func(v int) { order = append(order, 200+v) })
	ob.Subscribe(o1)
	ob.Subscribe(o2)

	ob.Notify(1)

	want := []int{101, 201}
	if len(order) != len(want) || order[0] != want[0] || order[1] != want[1] {
		t.Fatalf("order = %v, want %v", order, want)
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	ob := NewObservable[int]()
	count := 0
	o := NewObserver(func(v int) { count++ })
	ob.Subscribe(o)
	ob.Notify(1)
	o.Unsubscribe()
	ob.Notify(2)
	if count != 1 {
		t.Fatalf("count = %d, want 1", count)
	}
	if o.IsSubscribed() {
		t.Fatalf("IsSubscribed() = true after Unsubscribe")
	}
}

func TestDoubleUnsubscribeIsSafe(t *testing.T) {
	ob := NewObservable[int]()
	o := NewObserver(func(v int) {})
	ob.Subscribe(o)
	o.Unsubscribe()
	o.Unsubscribe()
	if o.IsSubscribed() {
		t.Fatalf("IsSubscribed() = true after double Unsubscribe")
	}
}

func TestResubscribeDetachesFromPreviousObservable(t *testing.T) {
	obA := NewObservable[int]()
	obB := NewObservable[int]()
	var fromA, fromB int
	o := NewObserver(func(v int) {})

	obA.Subscribe(o)
	o.notify = func(v int) { fromA++ }
	obA.Notify(1)
	if fromA != 1 {
		t.Fatalf("fromA = %d, want 1", fromA)
	}

	o.notify = func(v int) { fromB++ }
	obB.Subscribe(o)
	obA.Notify(2)
	obB.Notify(3)
	if fromA != 1 {
		t.Fatalf("fromA = %d after re-subscribe, want unchanged 1", fromA)
	}
	if fromB != 1 {
		t.Fatalf("fromB = %d, want 1", fromB)
	}
}

func TestCloseDetachesAllSubscribers(t *testing.T) {
	ob := NewObservable[int]()
	o1 := NewObserver(func(v int) {})
	o2 := NewObserver(func(v int) {})
	ob.Subscribe(o1)
	ob.Subscribe(o2)
	ob.Close()
	if o1.IsSubscribed() || o2.IsSubscribed() {
		t.Fatalf("observers still subscribed after Close")
	}
}
