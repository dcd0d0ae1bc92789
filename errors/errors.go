package errors

import (
	"github.com/jmgilman/go/outcome/metadata"
)

// ErrorInfo extends the standard error interface with structured information
// about one occurrence of an error.
//
// ErrorInfo values are immutable. Functions that appear to modify one, such as
// WithTag, return a copy that keeps the same instance id: it is still the same
// occurrence, described in more detail.
type ErrorInfo interface {
	error

	// Definition returns the type of the error.
	Definition() *ErrorType

	// Message returns the human-readable error message.
	Message() string

	// InstanceID returns the identifier of this occurrence. It is unique per
	// occurrence, not per type, and is meant for correlating one failure
	// across systems.
	InstanceID() string

	// InnerErrors returns the nested errors in order. Returns nil if there are
	// none.
	InnerErrors() []ErrorInfo

	// Metadata returns the attached metadata.
	Metadata() metadata.Metadata

	// Cause returns the foreign error this occurrence wraps, or nil.
	Cause() error

	// Unwrap returns the cause followed by the inner errors for errors.Is and
	// errors.As traversal.
	Unwrap() []error
}
