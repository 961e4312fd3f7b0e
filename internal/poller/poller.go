package poller

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/supchaser/quiz_client/internal/app"
	"github.com/supchaser/quiz_client/internal/app/models"
	"github.com/supchaser/quiz_client/internal/metrics"
	"github.com/supchaser/quiz_client/internal/utils/errs"
	"github.com/supchaser/quiz_client/internal/utils/logger"
	"go.uber.org/zap"
)

const (
	DefaultSettleDelay     = 3 * time.Second
	DefaultInitialInterval = time.Second
	DefaultMaxInterval     = 10 * time.Second
	DefaultMaxAttempts     = 10

	modeFixedDelay = "fixed_delay"
	modePolling    = "polling"
)

var errStillProcessing = errors.New("operation still processing")

type Config struct {
	// SettleDelay is how long to wait before assuming success when no
	// status checker is available.
	SettleDelay     time.Duration
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxAttempts     uint64
}

func DefaultConfig() Config {
	return Config{
		SettleDelay:     DefaultSettleDelay,
		InitialInterval: DefaultInitialInterval,
		MaxInterval:     DefaultMaxInterval,
		MaxAttempts:     DefaultMaxAttempts,
	}
}

// Outcome is how a long operation ended.
type Outcome struct {
	Operation models.LongOperation
	// Status is the last status reported by the backend; nil when the
	// outcome was synthesized after the settle delay.
	Status      *models.BatchStatus
	Synthesized bool
	Err         error
}

func (o Outcome) Result() models.BatchResult {
	result := models.BatchResult{
		Accepted:    true,
		Operation:   o.Operation,
		Synthesized: o.Synthesized,
	}
	if o.Status != nil {
		result.Created = o.Status.Created
	}
	return result
}

// Poller settles operations the backend acknowledged with 202. With a
// StatusChecker it polls the job status; without one it falls back to a
// fixed delay and reports a synthesized success.
type Poller struct {
	cfg     Config
	checker app.StatusChecker
}

func New(cfg Config, checker app.StatusChecker) *Poller {
	defaults := DefaultConfig()
	if cfg.SettleDelay <= 0 {
		cfg.SettleDelay = defaults.SettleDelay
	}
	if cfg.InitialInterval <= 0 {
		cfg.InitialInterval = defaults.InitialInterval
	}
	if cfg.MaxInterval < cfg.InitialInterval {
		cfg.MaxInterval = max(defaults.MaxInterval, cfg.InitialInterval)
	}
	if cfg.MaxAttempts == 0 {
		cfg.MaxAttempts = defaults.MaxAttempts
	}

	return &Poller{cfg: cfg, checker: checker}
}

func (p *Poller) mode() string {
	if p.checker == nil {
		return modeFixedDelay
	}
	return modePolling
}

// Pending is a settlement running in the background.
type Pending struct {
	cancel context.CancelFunc
	once   sync.Once
	done   chan struct{}
}

// Cancel stops waiting; onSettled will not be called afterwards.
func (p *Pending) Cancel() {
	p.once.Do(p.cancel)
}

func (p *Pending) Done() <-chan struct{} {
	return p.done
}

// HandleAccepted calls onAccepted before returning and onSettled from another
// goroutine once the operation settles. A cancelled ctx or Pending suppresses
// onSettled.
func (p *Poller) HandleAccepted(
	ctx context.Context,
	op models.LongOperation,
	onAccepted func(models.LongOperation),
	onSettled func(Outcome),
) *Pending {
	ctx, cancel := context.WithCancel(ctx)
	pending := &Pending{cancel: cancel, done: make(chan struct{})}

	if onAccepted != nil {
		onAccepted(op)
	}

	go func() {
		defer close(pending.done)
		defer pending.Cancel()

		outcome := p.settle(ctx, op)
		if ctx.Err() != nil {
			return
		}
		if onSettled != nil {
			onSettled(outcome)
		}
	}()

	return pending
}

// Await blocks until op settles and returns its outcome. The error is the
// outcome's Err.
func (p *Poller) Await(ctx context.Context, op models.LongOperation) (Outcome, error) {
	outcome := p.settle(ctx, op)
	return outcome, outcome.Err
}

func (p *Poller) settle(ctx context.Context, op models.LongOperation) Outcome {
	const funcName = "Poller.settle"

	logger.Info("waiting for long operation",
		zap.String("function", funcName),
		zap.String("operation_id", op.ID),
		zap.String("mode", p.mode()),
	)

	var outcome Outcome
	if p.checker == nil {
		outcome = p.waitFixedDelay(ctx, op)
	} else {
		outcome = p.poll(ctx, op)
	}

	result := outcomeLabel(outcome.Err)
	metrics.RecordLongOperation(p.mode(), result)

	if outcome.Err != nil {
		logger.Warn("long operation did not succeed",
			zap.String("function", funcName),
			zap.String("operation_id", op.ID),
			zap.String("outcome", result),
			zap.Error(outcome.Err),
		)
	} else {
		logger.Info("long operation settled",
			zap.String("function", funcName),
			zap.String("operation_id", op.ID),
			zap.Bool("synthesized", outcome.Synthesized),
		)
	}

	return outcome
}

func (p *Poller) waitFixedDelay(ctx context.Context, op models.LongOperation) Outcome {
	timer := time.NewTimer(p.cfg.SettleDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return Outcome{Operation: op, Err: ctx.Err()}
	case <-timer.C:
		return Outcome{Operation: op, Synthesized: true}
	}
}

func (p *Poller) poll(ctx context.Context, op models.LongOperation) Outcome {
	const funcName = "Poller.poll"

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = p.cfg.InitialInterval
	b.MaxInterval = p.cfg.MaxInterval
	b.MaxElapsedTime = 0

	// MaxAttempts counts status requests; retries are the ones after the first.
	policy := backoff.WithContext(backoff.WithMaxRetries(b, p.cfg.MaxAttempts-1), ctx)

	var last *models.BatchStatus
	attempt := 0

	err := backoff.Retry(func() error {
		attempt++

		status, err := p.checker.GetBatchStatus(ctx, op.ID)
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(ctx.Err())
			}
			logger.Debug("status check failed",
				zap.String("function", funcName),
				zap.String("operation_id", op.ID),
				zap.Int("attempt", attempt),
				zap.Error(err),
			)
			return err
		}

		last = status
		logger.Debug("status checked",
			zap.String("function", funcName),
			zap.String("operation_id", op.ID),
			zap.Int("attempt", attempt),
			zap.String("status", string(status.Status)),
		)

		switch status.Status {
		case models.BatchCompleted:
			return nil
		case models.BatchFailed:
			message := status.Error
			if message == "" {
				message = "the server could not process the batch"
			}
			return backoff.Permanent(&errs.JobFailedError{OperationID: op.ID, Message: message})
		default:
			return errStillProcessing
		}
	}, policy)

	outcome := Outcome{Operation: op, Status: last}
	switch {
	case err == nil:
	case ctx.Err() != nil:
		outcome.Err = ctx.Err()
	case isJobFailure(err):
		outcome.Err = err
	default:
		outcome.Err = fmt.Errorf("%w: %s after %d status checks: %w",
			errs.ErrOperationNotSettled, op.ID, attempt, err)
	}

	return outcome
}

func isJobFailure(err error) bool {
	var jobErr *errs.JobFailedError
	return errors.As(err, &jobErr)
}

func outcomeLabel(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, context.Canceled):
		return "cancelled"
	case isJobFailure(err):
		return "failed"
	default:
		return "timeout"
	}
}
