package errors

import (
	"github.com/jmgilman/go/outcome/metadata"
)

// WithTag adds a single metadata tag to an error.
// Returns a new ErrorInfo with the tag added; the instance id is preserved.
//
// If err is not an ErrorInfo, it is converted with From first.
// Returns nil if err is nil.
//
// Example:
//
//	err := errors.New(errors.NotFound, "order not found")
//	err = errors.WithTag(err, "order_id", "o-42")
//	err = errors.WithTag(err, "tenant", "acme")
func WithTag(err error, key string, value any) ErrorInfo {
	info := From(err)
	if info == nil {
		return nil
	}
	return withMetadata(info, info.Metadata().WithTag(key, value))
}

// WithMetadata merges md into the metadata of an error.
// Returns a new ErrorInfo; tags in md override existing tags with the same key.
//
// If err is not an ErrorInfo, it is converted with From first.
// Returns nil if err is nil.
//
// Example:
//
//	err = errors.WithMetadata(err, metadata.New(
//	    "order_id", orderID,
//	    "attempt", 3,
//	))
func WithMetadata(err error, md metadata.Metadata) ErrorInfo {
	info := From(err)
	if info == nil {
		return nil
	}
	return withMetadata(info, info.Metadata().Merge(md))
}

// WithInner appends inner errors to an error, skipping nils.
// Returns a new ErrorInfo with the same instance id.
//
// Returns nil if err is nil.
func WithInner(err error, inner ...ErrorInfo) ErrorInfo {
	info := From(err)
	if info == nil {
		return nil
	}

	c := copyOf(info)
	for _, in := range inner {
		if in != nil {
			c.inner = append(c.inner, in)
		}
	}
	return c
}

func withMetadata(info ErrorInfo, md metadata.Metadata) ErrorInfo {
	c := copyOf(info)
	c.metadata = md
	return c
}

// copyOf returns a private copy of info that can be modified before it is
// handed out.
func copyOf(info ErrorInfo) *errorInfo {
	if e, ok := info.(*errorInfo); ok {
		c := e.clone()
		c.inner = append([]ErrorInfo(nil), e.inner...)
		return c
	}
	return &errorInfo{
		definition: info.Definition(),
		message:    info.Message(),
		instanceID: info.InstanceID(),
		inner:      info.InnerErrors(),
		metadata:   info.Metadata(),
		cause:      info.Cause(),
	}
}
