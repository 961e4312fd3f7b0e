package errs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/url"
	"regexp"
	"strings"
	"syscall"

	"github.com/go-playground/validator/v10"
)

type ErrorKind string

const (
	KindNetwork     ErrorKind = "network"
	KindTimeout     ErrorKind = "timeout"
	KindServerError ErrorKind = "server_error"
	KindEncoding    ErrorKind = "encoding"
	KindValidation  ErrorKind = "validation"
	KindUnknown     ErrorKind = "unknown"
)

// APIError is a non-2xx answer from the backend.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// NewAPIError builds an APIError with the message extracted from a response body.
func NewAPIError(statusCode int, body []byte) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Message:    CleanMessage(statusCode, body),
	}
}

// JobFailedError reports a batch job the backend marked as failed.
type JobFailedError struct {
	OperationID string
	Message     string
}

func (e *JobFailedError) Error() string {
	return fmt.Sprintf("operation %s failed: %s", e.OperationID, e.Message)
}

var errorFieldPattern = regexp.MustCompile(`"error"\s*:\s*"((?:[^"\\]|\\.)*)"`)

// CleanMessage turns an error response body into a user-facing message.
// {"error": "..."} bodies are unwrapped; empty bodies become "Error {code}".
func CleanMessage(statusCode int, body []byte) string {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return fmt.Sprintf("Error %d", statusCode)
	}

	var payload struct {
		Error   *string `json:"error"`
		Message *string `json:"message"`
	}
	if err := json.Unmarshal([]byte(trimmed), &payload); err == nil {
		if payload.Error != nil && *payload.Error != "" {
			return *payload.Error
		}
		if payload.Message != nil && *payload.Message != "" {
			return *payload.Message
		}
	}

	if m := errorFieldPattern.FindStringSubmatch(trimmed); m != nil && m[1] != "" {
		return strings.ReplaceAll(m[1], `\"`, `"`)
	}

	return trimmed
}

// Classify maps any failure onto the ErrorKind taxonomy and a display message.
func Classify(err error) (ErrorKind, string) {
	if err == nil {
		return "", ""
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return KindServerError, apiErr.Message
	}

	var jobErr *JobFailedError
	if errors.As(err, &jobErr) {
		return KindServerError, jobErr.Message
	}

	if errors.Is(err, ErrOperationNotSettled) {
		return KindTimeout, err.Error()
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout, err.Error()
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return KindTimeout, err.Error()
	}

	if isNetworkError(err) {
		return KindNetwork, err.Error()
	}

	if errors.Is(err, ErrEncoding) {
		return KindEncoding, err.Error()
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) ||
		errors.Is(err, ErrInvalidBatch) ||
		errors.Is(err, ErrEmptyBatch) ||
		errors.Is(err, ErrCorrectOptionCount) ||
		errors.Is(err, ErrInvalidFileType) ||
		errors.Is(err, ErrNotSignedIn) ||
		errors.Is(err, ErrInvalidToken) {
		return KindValidation, err.Error()
	}

	return KindUnknown, err.Error()
}

func isNetworkError(err error) bool {
	if errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNABORTED) ||
		errors.Is(err, syscall.EPIPE) ||
		errors.Is(err, syscall.ENETUNREACH) ||
		errors.Is(err, syscall.EHOSTUNREACH) ||
		errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}

	// The server closed the connection before answering.
	var urlErr *url.Error
	if errors.As(err, &urlErr) && errors.Is(urlErr.Err, io.EOF) {
		return true
	}

	var opErr *net.OpError
	return errors.As(err, &opErr)
}
