package pkg

import "fmt"

// AppError is the transport-facing error returned by handlers.
//
// Code is a stable machine-readable identifier; Message is safe to show to clients.
// Err keeps the underlying cause for logs and is never serialized.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus, Err: err}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

// ToHTTPError renders the error in the response envelope.
func (e *AppError) ToHTTPError() Envelope {
	return Envelope{Status: e.HTTPStatus, Message: e.Message}
}
