package state

import "sync"

type derived[T any] struct {
	get       func() T
	subscribe func(fn func(T)) func()
}

func (d derived[T]) Get() T                      { return d.get() }
func (d derived[T]) Subscribe(fn func(T)) func() { return d.subscribe(fn) }

// Map is a computed view of src. It holds no state of its own, so it can
// never drift from its source.
func Map[A, B any](src Source[A], fn func(A) B) Source[B] {
	return derived[B]{
		get: func() B { return fn(src.Get()) },
		subscribe: func(cb func(B)) func() {
			return src.Subscribe(func(a A) { cb(fn(a)) })
		},
	}
}

// Combine is a computed view over two sources, recomputed when either changes.
func Combine[A, B, R any](a Source[A], b Source[B], fn func(A, B) R) Source[R] {
	return derived[R]{
		get: func() R { return fn(a.Get(), b.Get()) },
		subscribe: func(cb func(R)) func() {
			unsubA := a.Subscribe(func(va A) { cb(fn(va, b.Get())) })
			unsubB := b.Subscribe(func(vb B) { cb(fn(a.Get(), vb)) })

			var once sync.Once
			return func() {
				once.Do(func() {
					unsubA()
					unsubB()
				})
			}
		},
	}
}
