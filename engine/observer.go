package engine

// Observers is a publisher-owned callback list
// Delivery is synchronous in subscription order; not safe for concurrent use
type Observers[T any] struct {
	nextID  uint64
	entries []observerEntry[T]
}

type observerEntry[T any] struct {
	id uint64
	fn func(T)
}

// Subscribe registers fn and returns its unsubscribe func
// Unsubscribing during delivery takes effect from the next notification
func (o *Observers[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	o.nextID++
	id := o.nextID
	o.entries = append(o.entries, observerEntry[T]{id: id, fn: fn})

	return func() {
		for i, e := range o.entries {
			if e.id == id {
				// Copy so an in-flight Notify keeps its own view
				next := make([]observerEntry[T], 0, len(o.entries)-1)
				next = append(next, o.entries[:i]...)
				o.entries = append(next, o.entries[i+1:]...)
				return
			}
		}
	}
}

// Notify delivers v to every subscriber
func (o *Observers[T]) Notify(v T) {
	for _, e := range o.entries {
		e.fn(v)
	}
}

// Len returns the subscriber count
func (o *Observers[T]) Len() int {
	return len(o.entries)
}
