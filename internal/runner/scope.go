package runner

import (
	"context"
	"sync"
	"sync/atomic"
)

// Handle identifies one invocation of a Runner.
type Handle struct {
	seq       uint64
	cancel    context.CancelFunc
	cancelled atomic.Bool
	once      sync.Once
	done      chan struct{}
	refused   error
}

func newHandle(cancel context.CancelFunc) *Handle {
	return &Handle{
		cancel: cancel,
		done:   make(chan struct{}),
	}
}

// Cancel suppresses any late result of the invocation and cancels its
// context. Calling it more than once has no further effect.
func (h *Handle) Cancel() {
	h.once.Do(func() {
		h.cancelled.Store(true)
		h.cancel()
	})
}

func (h *Handle) Cancelled() bool {
	return h.cancelled.Load()
}

// Done is closed once the operation has returned and its result was applied
// or discarded.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

func (h *Handle) Wait() {
	<-h.done
}

// Err is errs.ErrScopeClosed when the run was refused because its scope had
// already been closed, and nil otherwise.
func (h *Handle) Err() error {
	return h.refused
}

// Scope owns every outstanding handle started under it. Closing the scope
// cancels them all; it is the teardown hook for a screen controller.
type Scope struct {
	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	handles map[*Handle]struct{}
	closed  bool
}

func NewScope(parent context.Context) *Scope {
	ctx, cancel := context.WithCancel(parent)
	return &Scope{
		ctx:     ctx,
		cancel:  cancel,
		handles: make(map[*Handle]struct{}),
	}
}

func (s *Scope) Context() context.Context {
	return s.ctx
}

func (s *Scope) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	handles := make([]*Handle, 0, len(s.handles))
	for h := range s.handles {
		handles = append(handles, h)
	}
	s.handles = make(map[*Handle]struct{})
	s.mu.Unlock()

	for _, h := range handles {
		h.Cancel()
	}
	s.cancel()
}

func (s *Scope) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.closed
}

// Outstanding is the number of invocations still running.
func (s *Scope) Outstanding() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.handles)
}

func (s *Scope) track(h *Handle) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false
	}
	s.handles[h] = struct{}{}
	return true
}

func (s *Scope) untrack(h *Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.handles, h)
}
