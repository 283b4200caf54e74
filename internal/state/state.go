// Package state holds the authoritative in-memory project store and the
// listener fan-out that keeps every view in sync with it.
//
// Nothing in this package is safe for concurrent use. All mutation and
// notification happens synchronously on the caller's goroutine, which in
// the application is always the UI event loop.
package state

// Listener receives a snapshot of the store's contents after every change.
type Listener[T any] func(items []T)

// registry keeps listeners in registration order.
type registry[T any] struct {
	listeners []Listener[T]
}

func (r *registry[T]) add(fn Listener[T]) {
	r.listeners = append(r.listeners, fn)
}

// publish calls every listener in turn. Each listener gets its own copy
// so one listener cannot corrupt what the next one sees.
func (r *registry[T]) publish(items []T) {
	for _, fn := range r.listeners {
		fn(clone(items))
	}
}

func clone[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}
