// Package apperrors defines the error taxonomy shared by all actions.
//
// Only two kinds of errors ever cross the dispatcher boundary: BadRequest
// and Internal. Both carry a stable literal prefix in their message so a
// fronting gateway can pattern-match ("BAD_REQ: .*" / "INT_ERROR: .*") and
// map them to a status code. Data-access and authorization errors are
// internal-only and must be reclassified before leaving a handler.
package apperrors

import (
	"errors"
	"fmt"
)

const (
	badRequestPrefix = "BAD_REQ: "
	internalPrefix   = "INT_ERROR: "
)

// Repository-level sentinels, matched with errors.Is.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
)

// BadRequestError marks a client-caused failure (4xx-equivalent).
type BadRequestError struct {
	msg string
}

func NewBadRequest(msg string) *BadRequestError {
	return &BadRequestError{msg: msg}
}

func (e *BadRequestError) Error() string {
	return badRequestPrefix + e.msg
}

// InternalError marks a server- or dependency-caused failure
// (5xx-equivalent). The wrapped cause is kept for logs only and is never
// part of the message returned to the caller.
type InternalError struct {
	msg   string
	cause error
}

func NewInternal(msg string) *InternalError {
	return &InternalError{msg: msg}
}

func NewInternalWrap(msg string, cause error) *InternalError {
	return &InternalError{msg: msg, cause: cause}
}

func (e *InternalError) Error() string {
	return internalPrefix + e.msg
}

func (e *InternalError) Unwrap() error {
	return e.cause
}

// DataAccessError reports a persistence-layer fault. It never crosses the
// handler boundary.
type DataAccessError struct {
	Op  string
	Err error
}

func (e *DataAccessError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("data access error: %s", e.Op)
	}
	return fmt.Sprintf("data access error: %s: %v", e.Op, e.Err)
}

func (e *DataAccessError) Unwrap() error {
	return e.Err
}

// AuthorizationError reports a federation-broker fault. It never crosses
// the handler boundary.
type AuthorizationError struct {
	Reason string
	Err    error
}

func (e *AuthorizationError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("authorization error: %s", e.Reason)
	}
	return fmt.Sprintf("authorization error: %s: %v", e.Reason, e.Err)
}

func (e *AuthorizationError) Unwrap() error {
	return e.Err
}

// IsBadRequest reports whether err is classified as a client error.
func IsBadRequest(err error) bool {
	var e *BadRequestError
	return errors.As(err, &e)
}

// IsInternal reports whether err is classified as a server error.
func IsInternal(err error) bool {
	var e *InternalError
	return errors.As(err, &e)
}
