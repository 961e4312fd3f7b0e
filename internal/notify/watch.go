package notify

import (
	"context"
	"strconv"

	"github.com/supchaser/quiz_client/internal/app"
	"github.com/supchaser/quiz_client/internal/app/models"
	"github.com/supchaser/quiz_client/internal/state"
	"github.com/supchaser/quiz_client/internal/utils/errs"
	"github.com/supchaser/quiz_client/internal/utils/logger"
	"go.uber.org/zap"
)

const TimeoutDisclaimer = "The server took long to respond; verify whether the questions were saved."

// Messages renders the notifications Watch posts for one slot.
type Messages[T any] struct {
	Channel      string
	SuccessTitle string
	Success      func(T) string
	FailureTitle string
	// TimeoutBody replaces the error message when the failure kind is Timeout.
	TimeoutBody string
	// LongOperationsOnly restricts notifications to runs that went through
	// Accepted, plus timeouts.
	LongOperationsOnly bool
}

func BatchUploadMessages() Messages[models.BatchResult] {
	return Messages[models.BatchResult]{
		Channel:      "batch_upload",
		SuccessTitle: "Questions uploaded",
		Success: func(r models.BatchResult) string {
			switch {
			case r.Synthesized:
				return "The server accepted the batch and is still processing it."
			case r.Created > 0:
				return pluralize(r.Created)
			default:
				return "The batch was processed."
			}
		},
		FailureTitle:       "Question upload failed",
		TimeoutBody:        TimeoutDisclaimer,
		LongOperationsOnly: true,
	}
}

func pluralize(n int) string {
	if n == 1 {
		return "1 question was created."
	}
	return strconv.Itoa(n) + " questions were created."
}

// Watch posts a notification whenever src reaches Success or Failed. Posting
// happens on its own goroutine and never feeds back into the state. The
// returned function stops watching.
func Watch[T any](ctx context.Context, src state.Source[state.RequestState[T]], n app.Notifier, msgs Messages[T]) func() {
	const funcName = "notify.Watch"

	sawAccepted := false

	return src.Subscribe(func(s state.RequestState[T]) {
		switch {
		case s.IsLoading():
			sawAccepted = false
			return
		case s.IsAccepted():
			sawAccepted = true
			return
		case !s.IsTerminal():
			return
		}

		timedOut := s.IsFailed() && s.ErrorKind == errs.KindTimeout
		if msgs.LongOperationsOnly && !sawAccepted && !timedOut {
			return
		}

		msg, ok := render(s, msgs)
		if !ok {
			return
		}

		go func() {
			if err := n.Notify(ctx, msg); err != nil {
				logger.Warn("failed to post notification",
					zap.String("function", funcName),
					zap.String("channel", msg.Channel),
					zap.Error(err),
				)
			}
		}()
	})
}

func render[T any](s state.RequestState[T], msgs Messages[T]) (models.Notification, bool) {
	msg := models.Notification{Channel: msgs.Channel}

	switch {
	case s.IsSuccess():
		msg.Title = msgs.SuccessTitle
		if msgs.Success != nil {
			msg.Body = msgs.Success(s.Value)
		}
	case s.IsFailed():
		msg.Title = msgs.FailureTitle
		msg.Body = s.Message
		if s.ErrorKind == errs.KindTimeout && msgs.TimeoutBody != "" {
			msg.Body = msgs.TimeoutBody
		}
	default:
		return msg, false
	}

	return msg, msg.Title != "" || msg.Body != ""
}
