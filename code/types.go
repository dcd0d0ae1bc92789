package code

import (
	"github.com/jmgilman/go/outcome/errors"
	"github.com/jmgilman/go/outcome/typedef"
)

// Type describes a kind of code.
type Type struct {
	*typedef.Definition

	severity errors.Severity
}

// TypeOption configures a Type.
type TypeOption func(*Type)

// WithDefaultSeverity sets the severity used by codes of this type that do
// not override it. The default is errors.SeverityInfo.
func WithDefaultSeverity(s errors.Severity) TypeOption {
	return func(t *Type) {
		t.severity = s
	}
}

// NewType creates a code Type. It panics if def is nil.
func NewType(def *typedef.Definition, opts ...TypeOption) *Type {
	if def == nil {
		panic("code: nil type definition")
	}
	t := &Type{Definition: def, severity: errors.SeverityInfo}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// DefaultSeverity returns the severity of codes of this type.
func (t *Type) DefaultSeverity() errors.Severity {
	return t.severity
}

func canonicalType(id, name, description string, category typedef.TypeDefinition, severity errors.Severity) *Type {
	opts := []typedef.Option{typedef.WithDescription(description)}
	if category != nil {
		opts = append(opts, typedef.WithCategory(category))
	}
	return NewType(typedef.Must(id, name, opts...), WithDefaultSeverity(severity))
}

// Canonical code types. Ids carry a CODE_ prefix so they can share a
// registry with the error types of the same name.
var (
	NoneType = canonicalType("CODE_NONE", "None",
		"No outcome has been recorded.", nil, errors.SeverityInfo)
	SuccessType = canonicalType("CODE_SUCCESS", "Success",
		"The operation completed successfully.", nil, errors.SeverityInfo)
	GeneralType = canonicalType("CODE_GENERAL", "General",
		"A general, uncategorized outcome.", nil, errors.SeverityError)
	ValidationType = canonicalType("CODE_VALIDATION", "Validation",
		"Input data failed validation.", errors.CategoryClient, errors.SeverityWarning)
	BadRequestType = canonicalType("CODE_BAD_REQUEST", "BadRequest",
		"The request is semantically or logically invalid.", errors.CategoryClient, errors.SeverityWarning)
	AuthenticationType = canonicalType("CODE_AUTHENTICATION", "Authentication",
		"The caller could not be authenticated.", errors.CategoryClient, errors.SeverityError)
	AuthorizationType = canonicalType("CODE_AUTHORIZATION", "Authorization",
		"The caller is not allowed to perform the operation.", errors.CategoryClient, errors.SeverityError)
	NotFoundType = canonicalType("CODE_NOT_FOUND", "NotFound",
		"The requested resource does not exist.", errors.CategoryClient, errors.SeverityWarning)
	ConflictType = canonicalType("CODE_CONFLICT", "Conflict",
		"The operation conflicts with the current state.", errors.CategoryClient, errors.SeverityWarning)
	BusinessRuleType = canonicalType("CODE_BUSINESS_RULE", "BusinessRule",
		"A business rule or domain invariant was violated.", errors.CategoryClient, errors.SeverityWarning)
	NotImplementedType = canonicalType("CODE_NOT_IMPLEMENTED", "NotImplemented",
		"The operation is not implemented.", errors.CategoryServer, errors.SeverityError)
	InternalErrorType = canonicalType("CODE_INTERNAL_ERROR", "InternalError",
		"An unexpected internal error occurred.", errors.CategoryServer, errors.SeverityCritical)
	ExternalDependencyType = canonicalType("CODE_EXTERNAL_DEPENDENCY", "ExternalDependency",
		"An external dependency failed.", errors.CategoryServer, errors.SeverityError)
	TimeoutType = canonicalType("CODE_TIMEOUT", "Timeout",
		"The operation timed out.", errors.CategoryServer, errors.SeverityError)
	ServiceUnavailableType = canonicalType("CODE_SERVICE_UNAVAILABLE", "ServiceUnavailable",
		"The service is temporarily unavailable.", errors.CategoryServer, errors.SeverityError)
	SecurityViolationType = canonicalType("CODE_SECURITY_VIOLATION", "SecurityViolation",
		"A security violation was detected.", errors.CategoryServer, errors.SeverityCritical)
)

// CanonicalTypes returns all canonical code types.
func CanonicalTypes() []*Type {
	return []*Type{
		NoneType,
		SuccessType,
		GeneralType,
		ValidationType,
		BadRequestType,
		AuthenticationType,
		AuthorizationType,
		NotFoundType,
		ConflictType,
		BusinessRuleType,
		NotImplementedType,
		InternalErrorType,
		ExternalDependencyType,
		TimeoutType,
		ServiceUnavailableType,
		SecurityViolationType,
	}
}
