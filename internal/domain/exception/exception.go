// Package exception holds the error taxonomy shared by usecases and controllers.
// Each error carries a Kind, which the HTTP layer maps to a status code, and a
// human readable detail that is sent to the caller verbatim.
package exception

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindValidation Kind = iota + 1
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
	KindTooManyRequests
)

// Status returns the HTTP status code for the kind.
func (k Kind) Status() int {
	switch k {
	case KindValidation:
		return http.StatusUnprocessableEntity
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindTooManyRequests:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

type Error struct {
	Kind   Kind
	Detail string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Detail + ": " + e.Err.Error()
	}
	return e.Detail
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind Kind, detail string, cause []error) *Error {
	e := &Error{Kind: kind, Detail: detail}
	if len(cause) > 0 {
		e.Err = errors.Join(cause...)
	}
	return e
}

func Validation(detail string, cause ...error) *Error {
	return newError(KindValidation, detail, cause)
}

func Unauthorized(detail string, cause ...error) *Error {
	return newError(KindUnauthorized, detail, cause)
}

func Forbidden(detail string, cause ...error) *Error {
	return newError(KindForbidden, detail, cause)
}

func NotFound(detail string, cause ...error) *Error {
	return newError(KindNotFound, detail, cause)
}

func Conflict(detail string, cause ...error) *Error {
	return newError(KindConflict, detail, cause)
}

func TooManyRequests(detail string, cause ...error) *Error {
	return newError(KindTooManyRequests, detail, cause)
}

// As extracts the first *Error in err's chain.
func As(err error) (*Error, bool) {
	var target *Error
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}

// Is reports whether err carries an *Error of the given kind.
func Is(err error, kind Kind) bool {
	target, ok := As(err)
	return ok && target.Kind == kind
}
