package state

import (
	"time"

	"github.com/supchaser/quiz_client/internal/utils/errs"
)

type Kind string

const (
	KindIdle     Kind = "idle"
	KindLoading  Kind = "loading"
	KindAccepted Kind = "accepted"
	KindSuccess  Kind = "success"
	KindFailed   Kind = "failed"
)

// RequestState is the lifecycle of one asynchronous call. Only the fields
// belonging to Kind are meaningful; At is the start, completion or failure
// time depending on Kind.
type RequestState[T any] struct {
	Kind        Kind
	Value       T
	ErrorKind   errs.ErrorKind
	Message     string
	OperationID string
	At          time.Time
}

func Idle[T any]() RequestState[T] {
	return RequestState[T]{Kind: KindIdle}
}

func Loading[T any](startedAt time.Time) RequestState[T] {
	return RequestState[T]{Kind: KindLoading, At: startedAt}
}

// Accepted is the waypoint between Loading and a terminal state for work the
// server finishes asynchronously.
func Accepted[T any](operationID string, at time.Time) RequestState[T] {
	return RequestState[T]{Kind: KindAccepted, OperationID: operationID, At: at}
}

func Success[T any](value T, completedAt time.Time) RequestState[T] {
	return RequestState[T]{Kind: KindSuccess, Value: value, At: completedAt}
}

func Failed[T any](kind errs.ErrorKind, message string, occurredAt time.Time) RequestState[T] {
	return RequestState[T]{Kind: KindFailed, ErrorKind: kind, Message: message, At: occurredAt}
}

func (s RequestState[T]) IsIdle() bool     { return s.Kind == KindIdle || s.Kind == "" }
func (s RequestState[T]) IsLoading() bool  { return s.Kind == KindLoading }
func (s RequestState[T]) IsAccepted() bool { return s.Kind == KindAccepted }
func (s RequestState[T]) IsSuccess() bool  { return s.Kind == KindSuccess }
func (s RequestState[T]) IsFailed() bool   { return s.Kind == KindFailed }

// IsTerminal reports whether the state ends an invocation.
func (s RequestState[T]) IsTerminal() bool {
	return s.Kind == KindSuccess || s.Kind == KindFailed
}

// IsBusy reports whether a blocking indicator should be shown.
func (s RequestState[T]) IsBusy() bool {
	return s.Kind == KindLoading
}
