// Package observer holds the ordered callback list shared by the theme
// manager and the state store.
package observer

// Handle revokes a registration. Cancel is idempotent.
type Handle interface {
	Cancel()
}

type entry[T any] struct {
	id int
	fn func(T)
}

// List is an ordered set of callbacks. Callbacks run in registration order on
// the caller's goroutine; List is not safe for concurrent use.
type List[T any] struct {
	next    int
	entries []entry[T]
}

// Add appends fn. The same function may be added more than once and is then
// called once per registration.
func (l *List[T]) Add(fn func(T)) Handle {
	l.next++
	id := l.next
	l.entries = append(l.entries, entry[T]{id: id, fn: fn})
	return &handle[T]{list: l, id: id}
}

// Notify calls every registered callback with v. Callbacks added or removed
// during notification take effect from the next Notify.
func (l *List[T]) Notify(v T) {
	snapshot := make([]entry[T], len(l.entries))
	copy(snapshot, l.entries)
	for _, e := range snapshot {
		e.fn(v)
	}
}

// Len reports the number of live registrations.
func (l *List[T]) Len() int {
	return len(l.entries)
}

func (l *List[T]) remove(id int) bool {
	for i, e := range l.entries {
		if e.id == id {
			l.entries = append(l.entries[:i:i], l.entries[i+1:]...)
			return true
		}
	}
	return false
}

type handle[T any] struct {
	list *List[T]
	id   int
}

func (h *handle[T]) Cancel() {
	if h.list == nil {
		return
	}
	h.list.remove(h.id)
	h.list = nil
}
