package errors

import (
	"context"
	stderrors "errors"
	"fmt"
)

// Wrap wraps an error with a new occurrence of type t.
//
// If err is an ErrorInfo it becomes the single inner error of the result,
// extending the error tree. Any other error is kept as the cause. Both stay
// reachable through errors.Is and errors.As.
//
// Returns nil if err is nil.
//
// Example:
//
//	row, err := store.Load(ctx, id)
//	if err != nil {
//	    return errors.Wrap(err, errors.ServiceUnavailable, "failed to load order")
//	}
func Wrap(err error, t *ErrorType, message string) ErrorInfo {
	if err == nil {
		return nil
	}

	wrapped := New(t, message).(*errorInfo)
	if info, ok := err.(ErrorInfo); ok {
		wrapped.inner = []ErrorInfo{info}
	} else {
		wrapped.cause = err
	}
	return wrapped
}

// Wrapf wraps an error with a formatted message.
//
// Returns nil if err is nil.
//
// Example:
//
//	if err := validate(input); err != nil {
//	    return errors.Wrapf(err, errors.InvalidArgument, "validation failed for field %s", fieldName)
//	}
func Wrapf(err error, t *ErrorType, format string, args ...any) ErrorInfo {
	if err == nil {
		return nil
	}
	return Wrap(err, t, fmt.Sprintf(format, args...))
}

// From converts any error to an ErrorInfo.
//
// An ErrorInfo is returned as is. Context cancellation maps to Canceled and
// deadline expiry to Timeout. Everything else becomes an Unknown error with
// err as its cause.
//
// Returns nil if err is nil.
func From(err error) ErrorInfo {
	if err == nil {
		return nil
	}

	if info, ok := err.(ErrorInfo); ok {
		return info
	}

	t := Unknown
	switch {
	case stderrors.Is(err, context.Canceled):
		t = Canceled
	case stderrors.Is(err, context.DeadlineExceeded):
		t = Timeout
	}

	e := New(t, err.Error()).(*errorInfo)
	e.cause = err
	return e
}
