package errors

import (
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/jmgilman/go/outcome/metadata"
)

// errorInfo is the concrete implementation of ErrorInfo.
// It is private to enforce construction through package functions.
type errorInfo struct {
	definition *ErrorType
	message    string
	instanceID string
	inner      []ErrorInfo
	metadata   metadata.Metadata
	cause      error
}

// newInstanceID returns a random identifier for a new occurrence.
func newInstanceID() string {
	return uuid.NewString()
}

// Error returns the string representation of the error.
// Format: "[ID] message", followed by ": cause" and "; inner" parts when
// present.
func (e *errorInfo) Error() string {
	var sb strings.Builder
	sb.WriteByte('[')
	sb.WriteString(e.definition.ID())
	sb.WriteString("] ")
	sb.WriteString(e.message)

	sep := ": "
	if e.cause != nil {
		sb.WriteString(sep)
		sb.WriteString(e.cause.Error())
		sep = "; "
	}
	for _, in := range e.inner {
		sb.WriteString(sep)
		sb.WriteString(in.Error())
		sep = "; "
	}
	return sb.String()
}

// Definition returns the error type.
func (e *errorInfo) Definition() *ErrorType {
	return e.definition
}

// Message returns the error message.
func (e *errorInfo) Message() string {
	return e.message
}

// InstanceID returns the occurrence id.
func (e *errorInfo) InstanceID() string {
	return e.instanceID
}

// InnerErrors returns a copy of the inner errors.
func (e *errorInfo) InnerErrors() []ErrorInfo {
	if len(e.inner) == 0 {
		return nil
	}
	return slices.Clone(e.inner)
}

// Metadata returns the attached metadata.
func (e *errorInfo) Metadata() metadata.Metadata {
	return e.metadata
}

// Cause returns the wrapped foreign error.
func (e *errorInfo) Cause() error {
	return e.cause
}

// Unwrap returns the cause and inner errors for standard library compatibility.
func (e *errorInfo) Unwrap() []error {
	if e.cause == nil && len(e.inner) == 0 {
		return nil
	}
	errs := make([]error, 0, len(e.inner)+1)
	if e.cause != nil {
		errs = append(errs, e.cause)
	}
	for _, in := range e.inner {
		errs = append(errs, in)
	}
	return errs
}

// Is reports whether target is the same occurrence, i.e. an ErrorInfo with
// the same instance id. Copies made by WithTag and friends therefore match
// the error they were derived from.
func (e *errorInfo) Is(target error) bool {
	t, ok := target.(ErrorInfo)
	return ok && t.InstanceID() == e.instanceID
}

// clone returns a shallow copy sharing immutable parts.
func (e *errorInfo) clone() *errorInfo {
	c := *e
	return &c
}
