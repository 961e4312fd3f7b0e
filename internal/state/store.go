package state

import (
	"sync"
	"sync/atomic"
)

// Source is the read-only side of a store handed to UI code.
type Source[T any] interface {
	Get() T
	Subscribe(fn func(T)) (unsubscribe func())
}

type subscription[T any] struct {
	fn     func(T)
	active atomic.Bool
}

// Store holds one value and notifies subscribers on every Set, in
// subscription order, on the goroutine that called Set.
//
// Subscribers may call Get and Subscribe during notification but must not
// call Set on the same store.
type Store[T any] struct {
	setMu sync.Mutex

	mu    sync.RWMutex
	value T
	subs  []*subscription[T]
}

func New[T any](initial T) *Store[T] {
	return &Store[T]{value: initial}
}

// NewRequestStore returns a store in the Idle state.
func NewRequestStore[T any]() *Store[RequestState[T]] {
	return New(Idle[T]())
}

func (s *Store[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.value
}

func (s *Store[T]) Set(value T) {
	s.setMu.Lock()
	defer s.setMu.Unlock()

	s.mu.Lock()
	s.value = value
	subs := make([]*subscription[T], len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, sub := range subs {
		if sub.active.Load() {
			sub.fn(value)
		}
	}
}

func (s *Store[T]) Subscribe(fn func(T)) func() {
	sub := &subscription[T]{fn: fn}
	sub.active.Store(true)

	s.mu.Lock()
	s.subs = append(s.subs, sub)
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			sub.active.Store(false)

			s.mu.Lock()
			defer s.mu.Unlock()
			for i, candidate := range s.subs {
				if candidate == sub {
					s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
					break
				}
			}
		})
	}
}

// SubscriberCount is the number of live subscriptions.
func (s *Store[T]) SubscriberCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.subs)
}

// ReadOnly hides the mutation methods of the store.
func (s *Store[T]) ReadOnly() Source[T] {
	return readOnly[T]{store: s}
}

type readOnly[T any] struct {
	store *Store[T]
}

func (r readOnly[T]) Get() T                      { return r.store.Get() }
func (r readOnly[T]) Subscribe(fn func(T)) func() { return r.store.Subscribe(fn) }
