// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"fmt"
)

// ErrorKind classifies pipeline failures so callers can apply different
// policies to each.
type ErrorKind string

const (
	// KindTransport covers network failures and non-success HTTP statuses.
	KindTransport ErrorKind = "transport"

	// KindParse covers bodies that are not JSON or lack required structure.
	KindParse ErrorKind = "parse"

	// KindIO covers output destinations that cannot be opened or written.
	KindIO ErrorKind = "io"
)

// Error is a failure at a stage boundary.
type Error struct {
	Kind ErrorKind

	// Op names the failing operation (e.g. "esearch", "write csv").
	Op string

	// StatusCode is the HTTP status for transport errors; 0 when the
	// request never got a response.
	StatusCode int

	Err error
}

func (e *Error) Error() string {
	if e.Op == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// IsKind reports whether err wraps an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// TransportError builds a KindTransport error.
func TransportError(op string, status int, err error) *Error {
	return &Error{Kind: KindTransport, Op: op, StatusCode: status, Err: err}
}

// ParseError builds a KindParse error.
func ParseError(op string, err error) *Error {
	return &Error{Kind: KindParse, Op: op, Err: err}
}

// IOError builds a KindIO error.
func IOError(op string, err error) *Error {
	return &Error{Kind: KindIO, Op: op, Err: err}
}
