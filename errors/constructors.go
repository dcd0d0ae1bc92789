package errors

import "fmt"

// New creates a new ErrorInfo of the given type with a fresh instance id.
// A nil type is treated as Unknown.
//
// Example:
//
//	err := errors.New(errors.NotFound, "project not found")
func New(t *ErrorType, message string) ErrorInfo {
	if t == nil {
		t = Unknown
	}
	return &errorInfo{
		definition: t,
		message:    message,
		instanceID: newInstanceID(),
	}
}

// Newf creates a new ErrorInfo with a formatted message.
//
// Example:
//
//	err := errors.Newf(errors.InvalidArgument, "project name too long: %d characters (max %d)", len(name), maxLen)
func Newf(t *ErrorType, format string, args ...any) ErrorInfo {
	return New(t, fmt.Sprintf(format, args...))
}
