package errcode

import (
	"errors"
	"fmt"
)

// Code is the stable numeric error kind returned in the response envelope.
type Code int

const (
	Success         Code = 0
	NotFoundCode    Code = 10001
	IllegalParam    Code = 10002
	ServiceDegraded Code = 99999
	SystemException Code = 500
)

// Message is the default human readable text for the code.
func (c Code) Message() string {
	switch c {
	case Success:
		return "success"
	case NotFoundCode:
		return "transaction does not exist"
	case IllegalParam:
		return "parameter validation failed"
	case ServiceDegraded:
		return "system busy"
	default:
		return "internal error"
	}
}

// Error is an error carrying a Code. Err holds the underlying cause, if any,
// and is never rendered to clients.
type Error struct {
	Code Code
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%d %s: %v", e.Code, e.Msg, e.Err)
	}
	return fmt.Sprintf("%d %s", e.Code, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validation reports malformed client input.
func Validation(msg string) *Error {
	return &Error{Code: IllegalParam, Msg: msg}
}

// NotFound reports an identifier that does not resolve to a transaction.
func NotFound() *Error {
	return &Error{Code: NotFoundCode, Msg: NotFoundCode.Message()}
}

// Degraded hides cause behind the generic service degraded message.
func Degraded(cause error) *Error {
	return &Error{Code: ServiceDegraded, Msg: ServiceDegraded.Message(), Err: cause}
}

// System is the catch-all for failures nobody anticipated.
func System(cause error) *Error {
	return &Error{Code: SystemException, Msg: SystemException.Message(), Err: cause}
}

// As returns the coded error in err's chain.
func As(err error) (*Error, bool) {
	var coded *Error
	if errors.As(err, &coded) {
		return coded, true
	}
	return nil, false
}

// CodeOf returns the code of err. Uncoded errors map to SystemException.
func CodeOf(err error) Code {
	if err == nil {
		return Success
	}
	if coded, ok := As(err); ok {
		return coded.Code
	}
	return SystemException
}

// IsBusiness reports whether err is a validation or not-found error. Those
// are caused by the caller and must not count against a dependency's health.
func IsBusiness(err error) bool {
	coded, ok := As(err)
	if !ok {
		return false
	}
	return coded.Code == IllegalParam || coded.Code == NotFoundCode
}
