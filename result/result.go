package result

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/jmgilman/go/outcome/errors"
)

// Result is the outcome of an operation producing a T.
//
// The zero value is a success holding the zero T.
type Result[T any] struct {
	value    T
	errs     []errors.ErrorInfo
	messages []string
}

// Success returns a successful Result holding value.
func Success[T any](value T, messages ...string) Result[T] {
	return Result[T]{value: value, messages: cloneOrNil(messages)}
}

// Failure returns a failed Result holding errs. Nil entries are skipped.
//
// Failure panics if no non-nil error is given, since a Result without errors
// is a success.
func Failure[T any](errs ...errors.ErrorInfo) Result[T] {
	var kept []errors.ErrorInfo
	for _, e := range errs {
		if e != nil {
			kept = append(kept, e)
		}
	}
	if len(kept) == 0 {
		panic("result: failure requires at least one error")
	}
	return Result[T]{errs: kept}
}

// FailureFrom returns a failed Result from a Go error, converted with
// errors.From. Panics if err is nil.
func FailureFrom[T any](err error) Result[T] {
	if err == nil {
		panic("result: failure requires a non-nil error")
	}
	return Failure[T](errors.From(err))
}

// FromError lifts a (value, error) pair into a Result.
//
// Example:
//
//	r := result.FromError(strconv.Atoi(s))
func FromError[T any](value T, err error) Result[T] {
	if err != nil {
		return FailureFrom[T](err)
	}
	return Success(value)
}

// IsSuccess reports whether the Result holds no errors.
func (r Result[T]) IsSuccess() bool {
	return len(r.errs) == 0
}

// IsFailure reports whether the Result holds at least one error.
func (r Result[T]) IsFailure() bool {
	return !r.IsSuccess()
}

// Value returns the value. It is the zero T for a failure.
func (r Result[T]) Value() T {
	return r.value
}

// Errors returns a copy of the errors.
func (r Result[T]) Errors() []errors.ErrorInfo {
	return cloneOrNil(r.errs)
}

// Messages returns a copy of the informational messages.
func (r Result[T]) Messages() []string {
	return cloneOrNil(r.messages)
}

// ErrorMessage returns the message of the first error, or "" on success.
func (r Result[T]) ErrorMessage() string {
	if r.IsSuccess() {
		return ""
	}
	return r.errs[0].Message()
}

// WithMessages returns a copy with messages appended.
func (r Result[T]) WithMessages(messages ...string) Result[T] {
	if len(messages) == 0 {
		return r
	}
	r.messages = append(slices.Clip(r.messages), messages...)
	return r
}

// Tap calls fn with the value on success and returns r unchanged.
func (r Result[T]) Tap(fn func(T)) Result[T] {
	if r.IsSuccess() {
		fn(r.value)
	}
	return r
}

// OnSuccess is an alias of Tap.
func (r Result[T]) OnSuccess(fn func(T)) Result[T] {
	return r.Tap(fn)
}

// OnFailure calls fn with the errors on failure and returns r unchanged.
func (r Result[T]) OnFailure(fn func([]errors.ErrorInfo)) Result[T] {
	if r.IsFailure() {
		fn(r.Errors())
	}
	return r
}

// Recover replaces a failure with the Result returned by fn. A success is
// returned unchanged.
func (r Result[T]) Recover(fn func([]errors.ErrorInfo) Result[T]) Result[T] {
	if r.IsSuccess() {
		return r
	}
	return fn(r.Errors())
}

// Err returns nil on success, and otherwise the error ValueOrErr would
// return.
func (r Result[T]) Err() error {
	if r.IsSuccess() {
		return nil
	}
	return r.failureError(r.defaultMessage())
}

// ValueOrErr returns the value on success. On failure it returns an error
// whose message includes the first error's message and whose inner errors
// are the failure's errors.
func (r Result[T]) ValueOrErr() (T, error) {
	return r.ValueOrErrMessage(r.defaultMessage())
}

// ValueOrErrMessage is like ValueOrErr with a caller supplied message.
func (r Result[T]) ValueOrErrMessage(message string) (T, error) {
	if r.IsSuccess() {
		return r.value, nil
	}
	var zero T
	return zero, r.failureError(message)
}

// ValueOrErrFunc is like ValueOrErr but builds the error with factory.
// A nil error from factory falls back to the default error.
func (r Result[T]) ValueOrErrFunc(factory func([]errors.ErrorInfo) error) (T, error) {
	if r.IsSuccess() {
		return r.value, nil
	}
	var zero T
	if err := factory(r.Errors()); err != nil {
		return zero, err
	}
	return zero, r.failureError(r.defaultMessage())
}

// MustValue returns the value or panics with the error from ValueOrErr.
func (r Result[T]) MustValue() T {
	v, err := r.ValueOrErr()
	if err != nil {
		panic(err)
	}
	return v
}

// ValueOr returns the value on success, or fallback on failure. A nil
// pointer, map, slice, interface, func or channel value also yields
// fallback.
func (r Result[T]) ValueOr(fallback T) T {
	if r.IsFailure() || isNil(r.value) {
		return fallback
	}
	return r.value
}

// ValueOK returns the value and whether the Result is a success.
func (r Result[T]) ValueOK() (T, bool) {
	return r.value, r.IsSuccess()
}

// ErrorsOK returns the errors and whether the Result is a success.
func (r Result[T]) ErrorsOK() ([]errors.ErrorInfo, bool) {
	return r.Errors(), r.IsSuccess()
}

// Deconstruct returns the success flag, the value and the errors.
//
// Example:
//
//	ok, user, errs := r.Deconstruct()
func (r Result[T]) Deconstruct() (bool, T, []errors.ErrorInfo) {
	return r.IsSuccess(), r.value, r.Errors()
}

// String returns a short description for debugging.
func (r Result[T]) String() string {
	if r.IsSuccess() {
		return fmt.Sprintf("Success(%v)", r.value)
	}
	return fmt.Sprintf("Failure(%s)", r.errs[0].Error())
}

func (r Result[T]) defaultMessage() string {
	msg := "operation failed: " + r.errs[0].Message()
	if n := len(r.errs) - 1; n > 0 {
		msg += fmt.Sprintf(" (and %d more)", n)
	}
	return msg
}

// failureError folds the errors into one ErrorInfo of the first error's type.
func (r Result[T]) failureError(message string) error {
	first := r.errs[0]
	return errors.WithInner(errors.New(first.Definition(), message), r.errs...)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface,
		reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

func cloneOrNil[S ~[]E, E any](s S) S {
	if len(s) == 0 {
		return nil
	}
	return slices.Clone(s)
}
