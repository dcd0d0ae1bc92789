// Package code provides symbolic outcome codes.
//
// A Code names the outcome of an operation ("NotFound", "Success", ...). It
// is an instance of a Type, a registered type definition with a default
// severity, and carries metadata and optionally a strongly typed value such
// as an HTTP status or a domain-specific number.
//
// Codes are value objects: two codes are Equal when their definitions share
// an id and their values are deeply equal. Metadata does not take part.
//
// # Canonical Codes
//
// The package declares one canonical code per common outcome: None,
// Success, General, Validation, BadRequest, Authentication, Authorization,
// NotFound, Conflict, BusinessRule, NotImplemented, InternalError,
// ExternalDependency, Timeout, ServiceUnavailable and SecurityViolation.
//
// # Factories
//
// A Factory creates codes by name and attaches a value of its type:
//
//	http := code.NewFactory[int]()
//	c, err := http.CreateCode("NotFound", 404)
//
// TryCreateCode reports problems as a failed result instead of an error and
// never panics:
//
//	r := code.TryCreateCode("NotFound") // success
//	r = code.TryCreateCode("")          // failure, InvalidArgument
package code
