package runner

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/supchaser/quiz_client/internal/metrics"
	"github.com/supchaser/quiz_client/internal/state"
	"github.com/supchaser/quiz_client/internal/utils/errs"
	"github.com/supchaser/quiz_client/internal/utils/logger"
	"go.uber.org/zap"
)

type Operation[T any] func(ctx context.Context) (T, error)

// Progress moves the slot to Accepted when the server has queued the work.
type Progress func(operationID string)

type TrackedOperation[T any] func(ctx context.Context, accepted Progress) (T, error)

type Option func(*options)

type options struct {
	now func() time.Time
}

func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// Runner drives one slot: the request state of a single UI action. A newer
// Run supersedes older ones; their results are dropped when they arrive.
type Runner[T any] struct {
	slot  string
	scope *Scope
	store *state.Store[state.RequestState[T]]
	now   func() time.Time

	mu     sync.Mutex
	latest uint64
}

func New[T any](scope *Scope, slot string, store *state.Store[state.RequestState[T]], opts ...Option) *Runner[T] {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	return &Runner[T]{
		slot:  slot,
		scope: scope,
		store: store,
		now:   o.now,
	}
}

// State is the read-only request state of the slot.
func (r *Runner[T]) State() state.Source[state.RequestState[T]] {
	return r.store.ReadOnly()
}

func (r *Runner[T]) Run(op Operation[T]) *Handle {
	return r.RunTracked(func(ctx context.Context, _ Progress) (T, error) {
		return op(ctx)
	})
}

// RunTracked sets Loading before returning and executes op on its own
// goroutine. Failures never escape: they become Failed states.
func (r *Runner[T]) RunTracked(op TrackedOperation[T]) *Handle {
	const funcName = "Runner.RunTracked"

	ctx, cancel := context.WithCancel(r.scope.Context())
	h := newHandle(cancel)

	if !r.scope.track(h) {
		logger.Warn("run refused",
			zap.String("function", funcName),
			zap.String("slot", r.slot),
			zap.Error(errs.ErrScopeClosed),
		)
		h.refused = errs.ErrScopeClosed
		h.Cancel()
		close(h.done)
		return h
	}

	r.mu.Lock()
	r.latest++
	h.seq = r.latest
	r.setLocked(state.Loading[T](r.now()))
	r.mu.Unlock()

	logger.Debug("operation started",
		zap.String("function", funcName),
		zap.String("slot", r.slot),
		zap.Uint64("seq", h.seq),
	)

	go r.execute(ctx, h, op)

	return h
}

func (r *Runner[T]) execute(ctx context.Context, h *Handle, op TrackedOperation[T]) {
	defer close(h.done)
	defer r.scope.untrack(h)
	defer h.cancel()

	accepted := func(operationID string) {
		r.mu.Lock()
		defer r.mu.Unlock()

		if !r.isLatestLocked(h) {
			return
		}
		r.setLocked(state.Accepted[T](operationID, r.now()))
	}

	value, err := invoke(ctx, op, accepted)
	r.apply(h, value, err)
}

func invoke[T any](ctx context.Context, op TrackedOperation[T], accepted Progress) (value T, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("operation panicked: %v", rec)
		}
	}()

	return op(ctx, accepted)
}

func (r *Runner[T]) apply(h *Handle, value T, err error) {
	const funcName = "Runner.apply"

	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.isLatestLocked(h) {
		metrics.RecordStaleResult(r.slot)
		logger.Debug("discarding stale result",
			zap.String("function", funcName),
			zap.String("slot", r.slot),
			zap.Uint64("seq", h.seq),
			zap.Uint64("latest", r.latest),
			zap.Bool("cancelled", h.Cancelled()),
		)
		return
	}

	if err != nil {
		kind, message := errs.Classify(err)
		logger.Warn("operation failed",
			zap.String("function", funcName),
			zap.String("slot", r.slot),
			zap.String("error_kind", string(kind)),
			zap.Error(err),
		)
		r.setLocked(state.Failed[T](kind, message, r.now()))
		return
	}

	r.setLocked(state.Success(value, r.now()))
}

func (r *Runner[T]) isLatestLocked(h *Handle) bool {
	return h.seq == r.latest && !h.Cancelled()
}

func (r *Runner[T]) setLocked(next state.RequestState[T]) {
	metrics.RecordStateTransition(r.slot, string(next.Kind))
	r.store.Set(next)
}
