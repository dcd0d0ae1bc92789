package errors

import (
	"encoding/json"
)

// ErrorResponse is a flat, serializable rendering of an ErrorInfo for logs and
// diagnostics.
//
// The foreign cause is intentionally excluded to prevent information leakage
// while still providing useful context through the type, message, metadata and
// structured inner errors.
type ErrorResponse struct {
	// Type is the error type id.
	Type string `json:"type"`

	// Message is the human-readable error message.
	Message string `json:"message"`

	// Severity is the severity name of the error type.
	Severity string `json:"severity"`

	// Transient indicates whether a retry may succeed.
	Transient bool `json:"transient"`

	// UserFacing indicates whether the message may be shown to end users.
	UserFacing bool `json:"user_facing"`

	// InstanceID identifies this occurrence.
	InstanceID string `json:"instance_id,omitempty"`

	// Metadata contains the attached tags. Omitted from JSON if empty.
	Metadata map[string]any `json:"metadata,omitempty"`

	// Inner contains the inner errors. Omitted from JSON if empty.
	Inner []*ErrorResponse `json:"inner,omitempty"`
}

// ToJSON converts any error to an ErrorResponse suitable for JSON serialization.
// Returns nil if err is nil.
//
// Foreign errors are converted with From and render as Unknown. The foreign
// cause itself is never included.
//
// Example:
//
//	logger.Error("request failed", zap.Any("error", errors.ToJSON(err)))
func ToJSON(err error) *ErrorResponse {
	info := From(err)
	if info == nil {
		return nil
	}
	return toResponse(info)
}

func toResponse(info ErrorInfo) *ErrorResponse {
	t := info.Definition()
	resp := &ErrorResponse{
		Type:       t.ID(),
		Message:    info.Message(),
		Severity:   t.Severity().String(),
		Transient:  t.IsTransient(),
		UserFacing: t.IsUserFacing(),
		InstanceID: info.InstanceID(),
		Metadata:   info.Metadata().Map(),
	}
	for _, in := range info.InnerErrors() {
		resp.Inner = append(resp.Inner, toResponse(in))
	}
	return resp
}

// MarshalJSON implements json.Marshaler for errorInfo.
//
// Example:
//
//	err := errors.New(errors.NotFound, "user not found")
//	jsonBytes, _ := json.Marshal(err)
//	// {"type":"NOT_FOUND","message":"user not found","severity":"ERROR",...}
func (e *errorInfo) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(toResponse(e))
	if err != nil {
		return nil, Wrap(err, InternalError, "failed to marshal error response")
	}
	return data, nil
}
