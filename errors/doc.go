// Package errors provides structured, instance-identified error records.
//
// The package separates an error's *type* from each *occurrence* of it. An
// ErrorType is a registered definition (id, name, version) classified by
// severity, transience and whether it is safe to show to users. An
// ErrorInfo is one concrete occurrence: a type, a message, a unique instance
// id, optional inner errors and immutable metadata. ErrorInfo implements the
// error interface and stays compatible with the standard library
// (errors.Is, errors.As, errors.Unwrap).
//
// # Features
//
//   - Canonical error types for common platform scenarios
//   - Severity classification (info, warning, error, critical, fatal)
//   - Transience classification for retry decisions
//   - Per-occurrence instance ids for cross-system correlation
//   - Composite errors through inner errors, with depth-first flattening
//   - Immutable metadata attachment
//   - JSON rendering for logs and diagnostics
//
// # Quick Start
//
// Creating errors:
//
//	// Simple error
//	err := errors.New(errors.NotFound, "user not found")
//
//	// Formatted error
//	err := errors.Newf(errors.InvalidArgument, "invalid age: %d", age)
//
//	// Fully specified error
//	err, buildErr := errors.NewBuilder().
//	    WithDefinition(errors.Validation).
//	    WithMessage("request is invalid").
//	    WithInnerErrors(fieldErrs...).
//	    WithTag("request_id", id).
//	    Build()
//
// Wrapping errors:
//
//	row, err := repo.Query(ctx, id)
//	if err != nil {
//	    return errors.Wrap(err, errors.ServiceUnavailable, "failed to query user")
//	}
//
// Wrapping a foreign error keeps it as the cause. Wrapping an ErrorInfo nests
// it as an inner error, building a tree that Flatten walks parent-first.
//
// Adding metadata:
//
//	err = errors.WithTag(err, "project", "api")
//
// Retry logic:
//
//	if errors.IsTransient(err) {
//	    time.Sleep(backoff)
//	    return retry(operation)
//	}
//
// # Error Types
//
// The package declares canonical types for the common cases:
//
//   - Client errors: NotFound, InvalidArgument, BadRequest, Unauthorized,
//     Forbidden, Conflict, AlreadyExists, UnprocessableEntity, TooManyRequests,
//     Validation
//   - Server errors: InternalError, ServiceUnavailable, GatewayTimeout, Timeout
//   - Flow errors: Canceled, InvalidCast, InvalidState
//   - Generic: Unknown
//
// Applications declare their own with NewType.
//
// # Construction Errors
//
// Builder.Build returns an InvalidState ErrorInfo when a required field is
// missing. Passing nil to a builder setter panics. Both signal programming
// mistakes and are kept apart from operation failures, which travel inside
// result.Result and envelope.Envelope values.
package errors
