package tree23

// Observer receives successive batches pushed by an Observable it has
// subscribed to. Notify is called once per batch, in emission order.
//
// An Observer is meant to be built with NewObserver; the zero value has a
// nil notify function and must not be subscribed.
type Observer[T any] struct {
	notify     func(T)
	observable *Observable[T]
}

// NewObserver wraps notify as an Observer. notify is invoked synchronously,
// on the caller of Observable.Notify's goroutine — there is no queueing or
// buffering at this layer (that discipline lives in AnimationProducer).
func NewObserver[T any](notify func(T)) *Observer[T] {
	return &Observer[T]{notify: notify}
}

// IsSubscribed reports whether o is currently attached to an Observable.
func (o *Observer[T]) IsSubscribed() bool {
	return o.observable != nil
}

// Unsubscribe detaches o from its Observable, if any. It is a no-op if o is
// not currently subscribed — double-unsubscribe is always safe.
func (o *Observer[T]) Unsubscribe() {
	if o.observable == nil {
		return
	}
	o.observable.detach(o)
	o.observable = nil
}

// Observable is a one-to-many broadcast point: each Notify call reaches
// every currently subscribed Observer, in subscription order.
//
// Observable and Observer hold non-owning references to each other.
// Destroying either side first is safe: call Close on an Observable to
// force-detach every subscriber (mirroring a C++ destructor unsubscribing
// its observers before its own storage is released), or call Unsubscribe on
// an Observer to detach just that one link.
type Observable[T any] struct {
	subscribers []*Observer[T]
}

// NewObservable creates an Observable with no subscribers.
func NewObservable[T any]() *Observable[T] {
	return &Observable[T]{}
}

// Subscribe attaches o to ob. If o was already subscribed to some
// Observable (possibly ob itself), it is detached first, then attached
// fresh — a re-subscribe is never additive.
func (ob *Observable[T]) Subscribe(o *Observer[T]) {
	if o.IsSubscribed() {
		o.Unsubscribe()
	}
	ob.subscribers = append(ob.subscribers, o)
	o.observable = ob
}

// Notify delivers data to every subscriber, in subscription order.
func (ob *Observable[T]) Notify(data T) {
	for _, sub := range ob.subscribers {
		sub.notify(data)
	}
}

// Close detaches every subscriber from ob. After Close, ob has no
// subscribers and any of them may be freely reused on a different
// Observable.
func (ob *Observable[T]) Close() {
	for len(ob.subscribers) > 0 {
		ob.subscribers[0].Unsubscribe()
	}
}

// detach removes o from ob's subscriber list. Called only through
// Observer.Unsubscribe, which also clears o.observable.
func (ob *Observable[T]) detach(o *Observer[T]) {
	for i, sub := range ob.subscribers {
		if sub == o {
			ob.subscribers = append(ob.subscribers[:i], ob.subscribers[i+1:]...)
			return
		}
	}
}
