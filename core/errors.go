package core

import "github.com/pkg/errors"

// FieldError ties an error message to one request field, eg. an overlong
// broadcast message.
type FieldError struct {
	Field string
	Error string
}

// ValidationError is a rejected request: bad credentials, a business rule a
// struct tag cannot express, or roster data that failed to load. The API
// renders it as a 400 instead of a server error.
type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

// shutdown means the process can no longer trust its environment, eg. a
// configured roster file vanished at runtime. The API error handler triggers
// a graceful shutdown when it catches one.
type shutdown struct {
	message string
}

func NewShutdownError(msg string) error {
	return &shutdown{message: msg}
}

func (s shutdown) Error() string {
	return s.message
}

func IsShutdown(err error) bool {
	_, ok := errors.Cause(err).(*shutdown)
	return ok
}
