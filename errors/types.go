package errors

import (
	"github.com/jmgilman/go/outcome/typedef"
)

// ErrorType describes a kind of error. It is a registered type definition
// classified by severity, transience and user visibility.
//
// ErrorType values are declared once and shared; they are never mutated.
type ErrorType struct {
	*typedef.Definition

	severity       Severity
	transient      bool
	userFacing     bool
	validationType typedef.TypeDefinition
}

// TypeOption configures an ErrorType.
type TypeOption func(*ErrorType)

// WithSeverity sets the severity. The default is SeverityError.
func WithSeverity(s Severity) TypeOption {
	return func(t *ErrorType) {
		t.severity = s
	}
}

// Transient marks the type as a temporary failure that may succeed on retry.
func Transient() TypeOption {
	return func(t *ErrorType) {
		t.transient = true
	}
}

// UserFacing marks messages of this type as safe to show to end users.
func UserFacing() TypeOption {
	return func(t *ErrorType) {
		t.userFacing = true
	}
}

// WithValidationType marks the type as a validation error produced by the
// given validation type.
func WithValidationType(v typedef.TypeDefinition) TypeOption {
	return func(t *ErrorType) {
		t.validationType = v
	}
}

// NewType creates an ErrorType from a definition.
//
// Example:
//
//	var ErrQuotaExceeded = errors.NewType(
//	    typedef.Must("QUOTA_EXCEEDED", "QuotaExceeded"),
//	    errors.WithSeverity(errors.SeverityWarning),
//	    errors.Transient(),
//	    errors.UserFacing(),
//	)
//
// NewType panics if def is nil.
func NewType(def *typedef.Definition, opts ...TypeOption) *ErrorType {
	if def == nil {
		panic("errors: nil type definition")
	}
	t := &ErrorType{
		Definition: def,
		severity:   SeverityError,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Severity returns the impact classification.
func (t *ErrorType) Severity() Severity {
	return t.severity
}

// IsTransient reports whether a retry may help.
func (t *ErrorType) IsTransient() bool {
	return t.transient
}

// IsUserFacing reports whether messages of this type may be shown verbatim.
func (t *ErrorType) IsUserFacing() bool {
	return t.userFacing
}

// ValidationType returns the validation type for validation errors, or nil.
func (t *ErrorType) ValidationType() typedef.TypeDefinition {
	return t.validationType
}

// IsValidation reports whether the type describes a validation failure.
func (t *ErrorType) IsValidation() bool {
	return t.validationType != nil
}
