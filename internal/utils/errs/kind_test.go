package errs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/url"
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestCleanMessage(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		expected   string
	}{
		{
			name:       "jsonErrorField",
			statusCode: 404,
			body:       `{"error":"not found"}`,
			expected:   "not found",
		},
		{
			name:       "jsonErrorFieldWithSpaces",
			statusCode: 400,
			body:       `  {"error": "el tema ya existe"}  `,
			expected:   "el tema ya existe",
		},
		{
			name:       "jsonMessageField",
			statusCode: 500,
			body:       `{"message":"database unavailable"}`,
			expected:   "database unavailable",
		},
		{
			name:       "embeddedErrorField",
			statusCode: 502,
			body:       `upstream said {"error": "bad \"gateway\""} and closed`,
			expected:   `bad "gateway"`,
		},
		{
			name:       "plainText",
			statusCode: 500,
			body:       "internal failure\n",
			expected:   "internal failure",
		},
		{
			name:       "emptyBody",
			statusCode: 503,
			body:       "",
			expected:   "Error 503",
		},
		{
			name:       "emptyErrorField",
			statusCode: 418,
			body:       `{"error":""}`,
			expected:   `{"error":""}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanMessage(tt.statusCode, []byte(tt.body)))
		})
	}
}

func TestClassify(t *testing.T) {
	connReset := &net.OpError{
		Op:  "read",
		Net: "tcp",
		Err: os.NewSyscallError("read", syscall.ECONNRESET),
	}

	tests := []struct {
		name         string
		err          error
		expectedKind ErrorKind
		expectedMsg  string
	}{
		{
			name:         "connectionReset",
			err:          fmt.Errorf("list areas: %w", connReset),
			expectedKind: KindNetwork,
		},
		{
			name:         "connectionRefusedInURLError",
			err:          &url.Error{Op: "Get", URL: "http://localhost", Err: syscall.ECONNREFUSED},
			expectedKind: KindNetwork,
		},
		{
			name:         "dnsFailure",
			err:          &net.DNSError{Err: "no such host", Name: "api.invalid"},
			expectedKind: KindNetwork,
		},
		{
			name:         "connectionClosedBeforeResponse",
			err:          fmt.Errorf("GET /areas: %w", &url.Error{Op: "Get", URL: "http://localhost/areas", Err: io.EOF}),
			expectedKind: KindNetwork,
		},
		{
			name:         "bareEOF",
			err:          fmt.Errorf("decode: %w", io.EOF),
			expectedKind: KindUnknown,
			expectedMsg:  "decode: EOF",
		},
		{
			name:         "unexpectedEOF",
			err:          fmt.Errorf("read body: %w", io.ErrUnexpectedEOF),
			expectedKind: KindNetwork,
		},
		{
			name:         "serverError404",
			err:          NewAPIError(404, []byte(`{"error":"not found"}`)),
			expectedKind: KindServerError,
			expectedMsg:  "not found",
		},
		{
			name:         "wrappedServerError",
			err:          fmt.Errorf("create topic: %w", NewAPIError(500, nil)),
			expectedKind: KindServerError,
			expectedMsg:  "Error 500",
		},
		{
			name:         "jobFailed",
			err:          &JobFailedError{OperationID: "op-1", Message: "imagen corrupta"},
			expectedKind: KindServerError,
			expectedMsg:  "imagen corrupta",
		},
		{
			name:         "deadlineExceeded",
			err:          fmt.Errorf("upload: %w", context.DeadlineExceeded),
			expectedKind: KindTimeout,
		},
		{
			name:         "netTimeout",
			err:          &url.Error{Op: "Post", URL: "http://localhost", Err: timeoutErr{}},
			expectedKind: KindTimeout,
		},
		{
			name:         "notSettled",
			err:          fmt.Errorf("%w after 5 attempts", ErrOperationNotSettled),
			expectedKind: KindTimeout,
		},
		{
			name:         "encoding",
			err:          fmt.Errorf("%w: unsupported value", ErrEncoding),
			expectedKind: KindEncoding,
		},
		{
			name:         "validation",
			err:          fmt.Errorf("item 0: %w", ErrCorrectOptionCount),
			expectedKind: KindValidation,
		},
		{
			name:         "unknown",
			err:          errors.New("boom"),
			expectedKind: KindUnknown,
			expectedMsg:  "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, msg := Classify(tt.err)
			assert.Equal(t, tt.expectedKind, kind)
			if tt.expectedMsg != "" {
				assert.Equal(t, tt.expectedMsg, msg)
			} else {
				assert.NotEmpty(t, msg)
			}
		})
	}
}

func TestClassify_Nil(t *testing.T) {
	kind, msg := Classify(nil)
	assert.Empty(t, kind)
	assert.Empty(t, msg)
}
