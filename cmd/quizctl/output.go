package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/supchaser/quiz_client/internal/app"
	"github.com/supchaser/quiz_client/internal/app/models"
	"github.com/supchaser/quiz_client/internal/state"
)

// notifyGrace bounds how long the CLI waits for a settle notification to be
// delivered before exiting.
const notifyGrace = 6 * time.Second

// trackingNotifier forwards to next and reports each delivery attempt on
// posted, so a short-lived process can wait for it.
type trackingNotifier struct {
	next   app.Notifier
	posted chan struct{}
}

func newTrackingNotifier(next app.Notifier) *trackingNotifier {
	return &trackingNotifier{next: next, posted: make(chan struct{}, 1)}
}

func (n *trackingNotifier) Notify(ctx context.Context, msg models.Notification) error {
	defer func() {
		select {
		case n.posted <- struct{}{}:
		default:
		}
	}()
	return n.next.Notify(ctx, msg)
}

func (n *trackingNotifier) wait(ctx context.Context) {
	timer := time.NewTimer(notifyGrace)
	defer timer.Stop()

	select {
	case <-n.posted:
	case <-timer.C:
	case <-ctx.Done():
	}
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// settled prints the value of a terminal state or turns a failure into an
// error.
func settled[T any](s state.RequestState[T]) error {
	switch {
	case s.IsSuccess():
		return printJSON(s.Value)
	case s.IsFailed():
		return fmt.Errorf("%s: %s", s.ErrorKind, s.Message)
	default:
		return fmt.Errorf("request did not finish (state %s)", s.Kind)
	}
}
