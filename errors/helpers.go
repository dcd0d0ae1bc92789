package errors

import (
	stderrors "errors"

	"github.com/jmgilman/go/outcome/typedef"
)

// Is reports whether any error in err's tree matches target.
// This is a convenience wrapper around the standard library errors.Is.
//
// Two ErrorInfo values match when they share an instance id.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
// This is a convenience wrapper around the standard library errors.As.
//
// Example:
//
//	var info errors.ErrorInfo
//	if errors.As(err, &info) {
//	    id := info.InstanceID()
//	}
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// GetType extracts the ErrorType from an error.
// Returns Unknown if the error is nil or contains no ErrorInfo.
//
// The type of the first ErrorInfo found in the tree is returned, which is the
// outermost one for errors built by this package.
//
// Example:
//
//	if errors.GetType(err) == errors.NotFound {
//	    // Handle not found
//	}
func GetType(err error) *ErrorType {
	var info ErrorInfo
	if err != nil && stderrors.As(err, &info) {
		return info.Definition()
	}
	return Unknown
}

// SeverityOf returns the severity of the error's type.
// Returns SeverityError for nil or foreign errors.
func SeverityOf(err error) Severity {
	return GetType(err).Severity()
}

// IsTransient returns true if the error's type is transient, meaning a retry
// may succeed. Returns false for nil or foreign errors (safe default).
//
// Example:
//
//	if errors.IsTransient(err) {
//	    // Implement retry with backoff
//	}
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	return GetType(err).IsTransient()
}

// IsUserFacing returns true if the error's message may be shown to end
// users. Returns false for nil or foreign errors.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	return GetType(err).IsUserFacing()
}

// IsType reports whether any ErrorInfo in err's tree has type t.
func IsType(err error, t typedef.TypeDefinition) bool {
	return Find(err, func(info ErrorInfo) bool {
		return typedef.Equal(info.Definition(), t)
	}) != nil
}

// Find walks err's tree depth-first and returns the first ErrorInfo
// satisfying match, or nil.
func Find(err error, match func(ErrorInfo) bool) ErrorInfo {
	var found ErrorInfo
	walk(err, func(e error) bool {
		if info, ok := e.(ErrorInfo); ok && match(info) {
			found = info
			return true
		}
		return false
	})
	return found
}

func walk(err error, visit func(error) bool) bool {
	if err == nil {
		return false
	}
	if visit(err) {
		return true
	}
	switch u := err.(type) {
	case interface{ Unwrap() []error }:
		for _, e := range u.Unwrap() {
			if walk(e, visit) {
				return true
			}
		}
	case interface{ Unwrap() error }:
		return walk(u.Unwrap(), visit)
	}
	return false
}
