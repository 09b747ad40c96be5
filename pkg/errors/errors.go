package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// CustomizedError carries the scope an error was raised in, the i18n message key
// shown to the caller and the HTTP status that goes with it.
type CustomizedError struct {
	scope string
	msg   string
	err   error
	code  int
}

func New(scope, msg string, err error) *CustomizedError {
	return &CustomizedError{
		scope: scope,
		msg:   msg,
		err:   err,
		code:  http.StatusInternalServerError,
	}
}

// Code sets the HTTP status code reported for this error.
func (e *CustomizedError) Code(code int) *CustomizedError {
	e.code = code
	return e
}

func (e *CustomizedError) HttpCode() int {
	return e.code
}

func (e *CustomizedError) Message() string {
	return e.msg
}

func (e *CustomizedError) Scope() string {
	return e.scope
}

func (e *CustomizedError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("%s: %s", e.scope, e.msg)
	}
	return fmt.Sprintf("%s: %s, %s", e.scope, e.msg, e.err.Error())
}

func (e *CustomizedError) Unwrap() error {
	return e.err
}

// Trace prefixes the scope of err with the caller scope. Errors that are not
// CustomizedError are wrapped as internal errors.
func Trace(scope string, err error) *CustomizedError {
	if err == nil {
		return nil
	}
	var ce *CustomizedError
	if As(err, &ce) {
		return &CustomizedError{
			scope: scope + "." + ce.scope,
			msg:   ce.msg,
			err:   ce.err,
			code:  ce.code,
		}
	}
	return New(scope, "error.internal", err)
}

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func As(err error, target any) bool {
	return stderrors.As(err, target)
}
