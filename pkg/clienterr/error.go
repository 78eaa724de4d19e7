/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package clienterr

import (
	"errors"
	"fmt"

	"github.com/dresume/credit/pkg/canister"
)

type ErrorCode string

const (
	NotAuthenticated ErrorCode = "not-authenticated"
	UserCancelled    ErrorCode = "user-cancelled"
	PopupBlocked     ErrorCode = "popup-blocked"
	Timeout          ErrorCode = "timeout"
	NetworkError     ErrorCode = "network-error"
	InvalidInput     ErrorCode = "invalid-input"
	NotFound         ErrorCode = "not-found"
	Unauthorized     ErrorCode = "unauthorized"
	AlreadyExists    ErrorCode = "already-exists"
	InternalError    ErrorCode = "internal-error"
)

// ErrNotAuthenticated is returned before any remote call when no session or client is available.
var ErrNotAuthenticated = NewCustomError(NotAuthenticated, errors.New("no authenticated session"))

type CustomError struct {
	Code      ErrorCode
	Component Component
	Operation string
	Err       error
}

func NewCustomError(code ErrorCode, err error) *CustomError {
	return &CustomError{
		Code: code,
		Err:  err,
	}
}

func NewValidationError(format string, args ...interface{}) *CustomError {
	return NewCustomError(InvalidInput, fmt.Errorf(format, args...))
}

func NewNotAuthenticatedError(component Component, operation string) *CustomError {
	return &CustomError{
		Code:      NotAuthenticated,
		Component: component,
		Operation: operation,
		Err:       ErrNotAuthenticated.Err,
	}
}

// FromRemote wraps err under the code matching its remote APIError kind.
// Errors that already carry a CustomError keep their code.
func FromRemote(component Component, operation string, err error) *CustomError {
	var ce *CustomError
	if errors.As(err, &ce) {
		return &CustomError{Code: ce.Code, Component: component, Operation: operation, Err: err}
	}

	code := InternalError

	var apiErr *canister.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Kind {
		case canister.InvalidInput:
			code = InvalidInput
		case canister.NotFound:
			code = NotFound
		case canister.Unauthorized:
			code = Unauthorized
		case canister.AlreadyExists:
			code = AlreadyExists
		case canister.InternalError:
			code = InternalError
		}
	}

	return &CustomError{Code: code, Component: component, Operation: operation, Err: err}
}

func (e *CustomError) WithComponent(component Component) *CustomError {
	e.Component = component

	return e
}

func (e *CustomError) WithOperation(operation string) *CustomError {
	e.Operation = operation

	return e
}

func (e *CustomError) Error() string {
	if e.Component == "" && e.Operation == "" {
		return fmt.Sprintf("%s: %v", e.Code, e.Err)
	}

	return fmt.Sprintf("%s[%s, %s]: %v", e.Code, e.Component, e.Operation, e.Err)
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

// Is matches any *CustomError with the same code.
func (e *CustomError) Is(target error) bool {
	t, ok := target.(*CustomError) //nolint:errorlint
	if !ok {
		return false
	}

	return t.Code == e.Code
}

// Retryable reports whether repeating the action may succeed.
func (e *CustomError) Retryable() bool {
	switch e.Code {
	case Timeout, NetworkError, PopupBlocked:
		return true
	case NotAuthenticated, UserCancelled, InvalidInput, NotFound, Unauthorized, AlreadyExists, InternalError:
		return false
	default:
		return false
	}
}

// Hint returns a short actionable message for the user.
func (e *CustomError) Hint() string {
	switch e.Code {
	case NotAuthenticated:
		return "log in and try again"
	case UserCancelled:
		return "login was cancelled"
	case PopupBlocked:
		return "allow the browser to open the login page, or open the printed URL manually"
	case Timeout:
		return "the login window timed out, try again"
	case NetworkError:
		return "check the network connection and try again"
	case InvalidInput:
		return "check the supplied values"
	case NotFound:
		return "the requested record does not exist"
	case Unauthorized:
		return "the current identity is not allowed to do this"
	case AlreadyExists:
		return "the record already exists"
	case InternalError:
		return "the service failed, try again later"
	default:
		return ""
	}
}

// CodeOf returns the code carried by err, or an empty code.
func CodeOf(err error) ErrorCode {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce.Code
	}

	return ""
}

// IsRetryable reports whether err carries a retryable code.
func IsRetryable(err error) bool {
	var ce *CustomError

	return errors.As(err, &ce) && ce.Retryable()
}

func GetErrorDetails(err error) (string, string, string) {
	var ce *CustomError
	if errors.As(err, &ce) {
		msg := ""
		if ce.Err != nil {
			msg = ce.Err.Error()
		}

		return msg, string(ce.Code), ce.Component
	}

	return err.Error(), "", ""
}
