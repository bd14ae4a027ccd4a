package relay

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
)

// Kind classifies why a relay call failed.
type Kind int

const (
	// KindUnexpected covers failures outside the other categories.
	KindUnexpected Kind = iota
	// KindConfig means no webhook URL is configured.
	KindConfig
	// KindRejected means the webhook answered with a status other than 200/201.
	KindRejected
	// KindTimeout means the webhook did not answer within the timeout.
	KindTimeout
	// KindTransport means the webhook could not be reached.
	KindTransport
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindRejected:
		return "rejected"
	case KindTimeout:
		return "timeout"
	case KindTransport:
		return "transport"
	default:
		return "unexpected"
	}
}

// Error is returned by Service.Process for every failed call.
type Error struct {
	Kind Kind
	// UpstreamStatus is set for KindRejected.
	UpstreamStatus int
	Message        string
	Err            error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// StatusCode 返回该错误对应的 HTTP 状态码。
func (e *Error) StatusCode() int {
	if e.Kind == KindTimeout {
		return http.StatusGatewayTimeout
	}
	return http.StatusInternalServerError
}

func configError() *Error {
	return &Error{
		Kind:    KindConfig,
		Message: "webhook URL is not configured, set N8N_WEBHOOK_URL in the environment or .env file",
	}
}

func rejectedError(status int) *Error {
	return &Error{
		Kind:           KindRejected,
		UpstreamStatus: status,
		Message:        fmt.Sprintf("workflow webhook failed with status %d", status),
	}
}

func unexpectedError(err error) *Error {
	return &Error{
		Kind:    KindUnexpected,
		Message: fmt.Sprintf("internal server error: %v", err),
		Err:     err,
	}
}

// classifyTransportError maps an error from http.Client.Do onto a relay Error.
func classifyTransportError(err error) *Error {
	if isTimeout(err) {
		return &Error{
			Kind:    KindTimeout,
			Message: "request to workflow webhook timed out, please try again",
			Err:     err,
		}
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return &Error{
			Kind:    KindTransport,
			Message: fmt.Sprintf("failed to connect to workflow webhook: %v", urlErr.Err),
			Err:     err,
		}
	}

	return unexpectedError(err)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
