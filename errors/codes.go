package errors

import (
	"github.com/jmgilman/go/outcome/typedef"
)

// Categories group the canonical error types.
var (
	// CategoryClient groups errors caused by the caller's request.
	CategoryClient = typedef.Must("CLIENT_ERROR", "ClientError",
		typedef.WithDescription("The request cannot be fulfilled as given."))

	// CategoryServer groups errors caused by the serving side or its dependencies.
	CategoryServer = typedef.Must("SERVER_ERROR", "ServerError",
		typedef.WithDescription("The request was valid but could not be served."))

	// CategoryFlow groups errors about the control flow of an operation.
	CategoryFlow = typedef.Must("FLOW_ERROR", "FlowError",
		typedef.WithDescription("The operation was interrupted or misused."))
)

// GeneralValidation is the validation type of the canonical Validation error.
var GeneralValidation = typedef.Must("GENERAL_VALIDATION", "GeneralValidation",
	typedef.WithDescription("Input failed one or more validation rules."))

func canonical(id, name, description string, category *typedef.Definition, opts ...TypeOption) *ErrorType {
	return NewType(typedef.Must(id, name,
		typedef.WithDescription(description),
		typedef.WithCategory(category),
	), opts...)
}

var (
	// Client errors.

	// NotFound indicates a requested resource does not exist.
	NotFound = canonical("NOT_FOUND", "NotFound",
		"The requested resource does not exist.", CategoryClient, UserFacing())

	// InvalidArgument indicates an argument is invalid or malformed.
	InvalidArgument = canonical("INVALID_ARGUMENT", "InvalidArgument",
		"An argument is invalid or malformed.", CategoryClient, UserFacing())

	// BadRequest indicates the request as a whole is malformed.
	BadRequest = canonical("BAD_REQUEST", "BadRequest",
		"The request is malformed.", CategoryClient, UserFacing())

	// Unauthorized indicates the request lacks valid authentication credentials.
	Unauthorized = canonical("UNAUTHORIZED", "Unauthorized",
		"Authentication is required.", CategoryClient, UserFacing())

	// Forbidden indicates the caller lacks permission for the operation.
	Forbidden = canonical("FORBIDDEN", "Forbidden",
		"The caller lacks permission.", CategoryClient, UserFacing())

	// Conflict indicates a resource state conflict that prevents the operation.
	Conflict = canonical("CONFLICT", "Conflict",
		"The resource state conflicts with the request.", CategoryClient, UserFacing())

	// AlreadyExists indicates a resource already exists and cannot be created again.
	AlreadyExists = canonical("ALREADY_EXISTS", "AlreadyExists",
		"The resource already exists.", CategoryClient, UserFacing())

	// UnprocessableEntity indicates well-formed input that violates domain rules.
	UnprocessableEntity = canonical("UNPROCESSABLE_ENTITY", "UnprocessableEntity",
		"The input violates domain rules.", CategoryClient, UserFacing())

	// TooManyRequests indicates the rate limit has been exceeded.
	TooManyRequests = canonical("TOO_MANY_REQUESTS", "TooManyRequests",
		"The rate limit has been exceeded.", CategoryClient,
		WithSeverity(SeverityWarning), Transient(), UserFacing())

	// Validation indicates input failed validation.
	Validation = canonical("VALIDATION_FAILED", "ValidationFailed",
		"Input failed validation.", CategoryClient,
		UserFacing(), WithValidationType(GeneralValidation))

	// Server errors.

	// InternalError indicates an internal failure.
	InternalError = canonical("INTERNAL_ERROR", "InternalError",
		"An internal error occurred.", CategoryServer, WithSeverity(SeverityCritical))

	// ServiceUnavailable indicates the service or a dependency is temporarily unavailable.
	ServiceUnavailable = canonical("SERVICE_UNAVAILABLE", "ServiceUnavailable",
		"The service is temporarily unavailable.", CategoryServer, Transient())

	// GatewayTimeout indicates an upstream dependency did not answer in time.
	GatewayTimeout = canonical("GATEWAY_TIMEOUT", "GatewayTimeout",
		"An upstream dependency timed out.", CategoryServer, Transient())

	// Timeout indicates an operation exceeded its time limit.
	Timeout = canonical("TIMEOUT", "Timeout",
		"The operation exceeded its time limit.", CategoryServer, Transient())

	// Flow errors.

	// Canceled indicates the operation was canceled by its caller.
	Canceled = canonical("CANCELED", "Canceled",
		"The operation was canceled.", CategoryFlow, WithSeverity(SeverityWarning))

	// InvalidCast indicates a value exists but is not of the requested type.
	InvalidCast = canonical("INVALID_CAST", "InvalidCast",
		"The value is not of the requested type.", CategoryFlow)

	// InvalidState indicates an object is not in a state that permits the call.
	InvalidState = canonical("INVALID_STATE", "InvalidState",
		"The object is not in a valid state for the operation.", CategoryFlow)

	// Generic errors.

	// Unknown indicates an unclassified error, typically a foreign Go error.
	Unknown = canonical("UNKNOWN", "Unknown",
		"An unclassified error occurred.", CategoryServer)
)

// CanonicalTypes returns every canonical error type, for registration.
func CanonicalTypes() []*ErrorType {
	return []*ErrorType{
		NotFound, InvalidArgument, BadRequest, Unauthorized, Forbidden,
		Conflict, AlreadyExists, UnprocessableEntity, TooManyRequests, Validation,
		InternalError, ServiceUnavailable, GatewayTimeout, Timeout,
		Canceled, InvalidCast, InvalidState,
		Unknown,
	}
}
