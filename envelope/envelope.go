package envelope

import (
	"io"
	"slices"
	"strings"

	"github.com/jmgilman/go/outcome/code"
	"github.com/jmgilman/go/outcome/errors"
	"github.com/jmgilman/go/outcome/metadata"
)

// Envelope is the outcome of an operation together with its code and
// transport data. Build one with a Builder or Success / Failure.
type Envelope[V any] struct {
	code     code.Code
	messages []string
	errs     []errors.ErrorInfo
	value    V
	headers  Headers
	stream   io.Reader
	metadata metadata.Metadata
}

// Success returns a successful Envelope with the Success code.
func Success[V any](value V, messages ...string) Envelope[V] {
	return NewBuilder[V]().WithCode(code.Success).WithValue(value).WithMessages(messages...).Build()
}

// Failure returns a failed Envelope with code c. Nil errors are skipped.
// It panics if c is nil or no non-nil error is given.
func Failure[V any](c code.Code, errs ...errors.ErrorInfo) Envelope[V] {
	env := NewBuilder[V]().WithCode(c).WithErrors(errs...).Build()
	if env.IsSuccess() {
		panic("envelope: failure requires at least one error")
	}
	return env
}

// Code returns the outcome code. It is never nil.
func (e Envelope[V]) Code() code.Code {
	if e.code == nil {
		return code.None
	}
	return e.code
}

// Messages returns a copy of the informational messages.
func (e Envelope[V]) Messages() []string { return cloneOrNil(e.messages) }

// Errors returns a copy of the errors.
func (e Envelope[V]) Errors() []errors.ErrorInfo { return cloneOrNil(e.errs) }

// Value returns the value.
func (e Envelope[V]) Value() V { return e.value }

// Headers returns a copy of the headers, or nil if there are none.
func (e Envelope[V]) Headers() Headers { return e.headers.Clone() }

// Stream returns the stream payload, or nil.
func (e Envelope[V]) Stream() io.Reader { return e.stream }

// Metadata returns the attached metadata.
func (e Envelope[V]) Metadata() metadata.Metadata { return e.metadata }

// IsSuccess reports whether the Envelope holds no errors.
func (e Envelope[V]) IsSuccess() bool { return len(e.errs) == 0 }

// IsFailure reports whether the Envelope holds at least one error.
func (e Envelope[V]) IsFailure() bool { return !e.IsSuccess() }

// IsHeadered reports whether the Envelope carries headers.
func (e Envelope[V]) IsHeadered() bool { return len(e.headers) > 0 }

// IsStreamable reports whether the Envelope carries a stream.
func (e Envelope[V]) IsStreamable() bool { return e.stream != nil }

// ErrorMessages returns the message of each error in order.
func (e Envelope[V]) ErrorMessages() []string {
	if len(e.errs) == 0 {
		return nil
	}
	out := make([]string, 0, len(e.errs))
	for _, err := range e.errs {
		out = append(out, err.Message())
	}
	return out
}

// ErrorMessage returns the first error message, or "" on success.
func (e Envelope[V]) ErrorMessage() string {
	if len(e.errs) == 0 {
		return ""
	}
	return e.errs[0].Message()
}

// ErrorSummary returns the error messages joined with "; ", or "" on
// success.
func (e Envelope[V]) ErrorSummary() string {
	return strings.Join(e.ErrorMessages(), "; ")
}

// ErrorsByCategory groups the errors by error type id, keeping their order
// within each group. Returns nil on success.
func (e Envelope[V]) ErrorsByCategory() map[string][]errors.ErrorInfo {
	if len(e.errs) == 0 {
		return nil
	}
	out := make(map[string][]errors.ErrorInfo)
	for _, err := range e.errs {
		id := err.Definition().ID()
		out[id] = append(out[id], err)
	}
	return out
}

// HasValidationErrors reports whether any error, including nested inner
// errors, has a validation error type.
func (e Envelope[V]) HasValidationErrors() bool {
	return slices.ContainsFunc(errors.Flatten(e.errs...), func(err errors.ErrorInfo) bool {
		return err.Definition().IsValidation()
	})
}

// ErrorCodes returns the distinct error type ids in first-seen order.
func (e Envelope[V]) ErrorCodes() []string {
	var out []string
	for _, err := range e.errs {
		if id := err.Definition().ID(); !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}

// PrimaryErrorCode returns the error type id of the first error, or "".
func (e Envelope[V]) PrimaryErrorCode() string {
	if len(e.errs) == 0 {
		return ""
	}
	return e.errs[0].Definition().ID()
}

// Tap calls fn with the value on success and returns e unchanged.
func (e Envelope[V]) Tap(fn func(V)) Envelope[V] {
	if e.IsSuccess() {
		fn(e.value)
	}
	return e
}

// OnFailure calls fn with the errors on failure and returns e unchanged.
func (e Envelope[V]) OnFailure(fn func([]errors.ErrorInfo)) Envelope[V] {
	if e.IsFailure() {
		fn(e.Errors())
	}
	return e
}

// Deconstruct returns the code, the value and the errors.
func (e Envelope[V]) Deconstruct() (code.Code, V, []errors.ErrorInfo) {
	return e.Code(), e.value, e.Errors()
}

func cloneOrNil[S ~[]E, E any](s S) S {
	if len(s) == 0 {
		return nil
	}
	return slices.Clone(s)
}
