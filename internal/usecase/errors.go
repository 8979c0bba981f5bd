package usecase

import (
	"errors"
	"fmt"
)

// Kind classifies a domain failure. Callers branch on the kind, never on the message.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindForbidden
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindForbidden:
		return "forbidden"
	case KindConflict:
		return "conflict"
	}
	return "internal"
}

// Error is the failure variant of every use-case result. A nil error means the
// accompanying value is the success variant.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

// Is matches other *Error values of the same kind when the target carries no
// message, so errors.Is(err, ErrNotFound) works for every not-found sentinel.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Message == "" || t.Message == e.Message)
}

func newError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func validationf(format string, args ...any) *Error {
	return newError(KindValidation, fmt.Sprintf(format, args...))
}

var (
	ErrValidation = &Error{Kind: KindValidation}
	ErrNotFound   = &Error{Kind: KindNotFound}
	ErrForbidden  = &Error{Kind: KindForbidden}
	ErrConflict   = &Error{Kind: KindConflict}
)

// KindOf returns the kind of err, or KindInternal for errors that did not
// originate from a use-case rule.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
