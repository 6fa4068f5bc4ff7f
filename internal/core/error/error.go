package errx

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
)

// Kind classifies a failure so callers can apply their per-operation
// policy (absorb to empty, fall back, or surface) without string matching.
type Kind int

const (
	// KindUnknown covers failures that fit no other class.
	KindUnknown Kind = iota
	// KindCredentialUnavailable means no usable token could be resolved.
	// Non-fatal: the request proceeds anonymously.
	KindCredentialUnavailable
	// KindNetworkUnavailable means no response was received at all.
	KindNetworkUnavailable
	// KindTimeout means the request exceeded its deadline.
	KindTimeout
	// KindHTTP means a response arrived with a non-success status.
	KindHTTP
	// KindRemoteImageProvider means the image-search integration failed.
	// Non-fatal: imagery degrades to the static catalog.
	KindRemoteImageProvider
	// KindNotFound means a key-value lookup had no entry.
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindCredentialUnavailable:
		return "credential_unavailable"
	case KindNetworkUnavailable:
		return "network_unavailable"
	case KindTimeout:
		return "timeout"
	case KindHTTP:
		return "http_error"
	case KindRemoteImageProvider:
		return "remote_image_provider_unavailable"
	case KindNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

const (
	// NetworkErrorMessage is the user-facing fallback for transport failures.
	NetworkErrorMessage = "network unavailable"
	// TimeoutErrorMessage describes an expired request deadline.
	TimeoutErrorMessage = "request timed out"
	// StorageErrorMessage describes credential storage failures.
	StorageErrorMessage = "credential storage unavailable"
	// StorageNotFoundMessage describes a missing credential key.
	StorageNotFoundMessage = "credential key not set"
)

// Error wraps an underlying error with a failure class, an optional HTTP
// status, and a message safe to show to the user.
type Error struct {
	Err     error
	Kind    Kind
	Status  int
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

// Unwrap exposes the underlying error for errors.Is / errors.As support.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether the target matches the underlying error or the Error itself.
func (e *Error) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// New creates a new Error with the provided information.
func New(err error, kind Kind, message string) *Error {
	return &Error{
		Err:     err,
		Kind:    kind,
		Message: message,
	}
}

// NewHTTP creates an Error for a response that arrived with a non-success
// status. The message should be the backend-provided one when present.
func NewHTTP(status int, message string) *Error {
	return &Error{
		Kind:    KindHTTP,
		Status:  status,
		Message: message,
	}
}

// KindOf extracts the failure class from an error chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// MessageOf extracts the first non-empty safe message from an error chain,
// falling back to the provided default when the chain carries none.
func MessageOf(err error, fallback string) string {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			break
		}
		if e.Message != "" {
			return e.Message
		}
		err = e.Unwrap()
	}
	return fallback
}

// WrapTransport classifies an error returned by an HTTP round trip into the
// Timeout / NetworkUnavailable taxonomy. A nil error stays nil.
func WrapTransport(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return New(err, KindTimeout, TimeoutErrorMessage)
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return New(err, KindTimeout, TimeoutErrorMessage)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return New(err, KindTimeout, TimeoutErrorMessage)
	}

	return New(err, KindNetworkUnavailable, NetworkErrorMessage)
}
