package httpclient

import (
	"context"
	"errors"
	"fmt"
	"net"
	"syscall"
)

// Kind classifies a transport failure.
type Kind int

const (
	// KindOther is any failure that is not a connectivity problem:
	// malformed URLs, cancelled requests, protocol errors.
	KindOther Kind = iota
	// KindConnectivity means the server could not be reached.
	KindConnectivity
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindConnectivity:
		return "connectivity"
	default:
		return "other"
	}
}

// Error is a transport failure tagged with its Kind.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the Kind of err. Errors that are not *Error are KindOther.
func KindOf(err error) Kind {
	var terr *Error
	if errors.As(err, &terr) {
		return terr.Kind
	}
	return KindOther
}

// classify wraps a net/http failure in an *Error.
func classify(err error) *Error {
	return &Error{Kind: kindOf(err), Err: err}
}

func kindOf(err error) Kind {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return KindOther
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return KindConnectivity
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return KindConnectivity
	}

	for _, errno := range []syscall.Errno{
		syscall.ECONNREFUSED,
		syscall.ECONNRESET,
		syscall.ENETDOWN,
		syscall.ENETUNREACH,
		syscall.EHOSTUNREACH,
	} {
		if errors.Is(err, errno) {
			return KindConnectivity
		}
	}

	return KindOther
}
