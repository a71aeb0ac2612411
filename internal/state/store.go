// Package state is the application-wide key/value store with per-key change
// subscriptions.
package state

import (
	"github.com/alexisbeaulieu97/packdeck/internal/observer"
)

// Well-known keys.
const (
	KeyCurrentPage      = "current_page"
	KeyProjectScript    = "project.script"
	KeyProjectOutputDir = "project.output_dir"
	KeyProjectIcon      = "project.icon"
	KeyProjectMultiFile = "project.multi_file"
	KeyPackagingRunning = "packaging.running"
)

type absent struct{}

func (absent) String() string { return "<absent>" }

// Absent is passed as the old value when a key is set for the first time. It
// is distinct from every value a caller can store, nil included.
var Absent any = absent{}

// Change is delivered to subscribers on every Set.
type Change struct {
	Key string
	New any
	Old any
}

// Subscriber receives the new and previous value of a key.
type Subscriber func(newValue, oldValue any)

// Subscription is returned by Subscribe and revokes the callback.
type Subscription = observer.Handle

// Store maps keys to values. It runs on the UI goroutine and is not safe
// for concurrent use.
type Store struct {
	values      map[string]any
	subscribers map[string]*observer.List[Change]
}

// New returns an empty store.
func New() *Store {
	return &Store{
		values:      make(map[string]any),
		subscribers: make(map[string]*observer.List[Change]),
	}
}

// Set stores value under key and notifies the key's subscribers in
// registration order. Subscribers fire even when the value is unchanged.
func (s *Store) Set(key string, value any) {
	old, ok := s.values[key]
	if !ok {
		old = Absent
	}
	s.values[key] = value

	if list, ok := s.subscribers[key]; ok {
		list.Notify(Change{Key: key, New: value, Old: old})
	}
}

// Get returns the value stored under key, or def.
func (s *Store) Get(key string, def any) any {
	if v, ok := s.values[key]; ok {
		return v
	}
	return def
}

// Has reports whether key has been set.
func (s *Store) Has(key string) bool {
	_, ok := s.values[key]
	return ok
}

// String returns the string under key, or def when absent or not a string.
func (s *Store) String(key, def string) string {
	if v, ok := s.values[key].(string); ok {
		return v
	}
	return def
}

// Bool returns the bool under key, or def when absent or not a bool.
func (s *Store) Bool(key string, def bool) bool {
	if v, ok := s.values[key].(bool); ok {
		return v
	}
	return def
}

// Subscribe registers fn for changes of key. The same fn may be subscribed
// more than once.
func (s *Store) Subscribe(key string, fn Subscriber) Subscription {
	list, ok := s.subscribers[key]
	if !ok {
		list = &observer.List[Change]{}
		s.subscribers[key] = list
	}
	return list.Add(func(c Change) { fn(c.New, c.Old) })
}

// Unsubscribe revokes sub. It is a no-op for nil or already revoked
// subscriptions.
func (s *Store) Unsubscribe(sub Subscription) {
	if sub == nil {
		return
	}
	sub.Cancel()
}

// Subscribers reports the number of live subscriptions for key.
func (s *Store) Subscribers(key string) int {
	if list, ok := s.subscribers[key]; ok {
		return list.Len()
	}
	return 0
}
