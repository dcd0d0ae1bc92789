package errors

import (
	"strings"

	"github.com/jmgilman/go/outcome/metadata"
)

// Builder assembles an ErrorInfo field by field.
//
// A definition and a message are required. The instance id is generated at
// Build time unless set explicitly. A Builder is not safe for concurrent use.
type Builder struct {
	definition *ErrorType
	message    string
	hasMessage bool
	instanceID string
	inner      []ErrorInfo
	cause      error
	metadata   metadata.Metadata
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// WithDefinition sets the error type. Panics if t is nil.
func (b *Builder) WithDefinition(t *ErrorType) *Builder {
	if t == nil {
		panic("errors: nil error definition")
	}
	b.definition = t
	return b
}

// WithMessage sets the message. An explicitly empty message is accepted.
func (b *Builder) WithMessage(message string) *Builder {
	b.message = message
	b.hasMessage = true
	return b
}

// WithInstanceID overrides the generated instance id. Panics if id is empty.
func (b *Builder) WithInstanceID(id string) *Builder {
	if strings.TrimSpace(id) == "" {
		panic("errors: empty instance id")
	}
	b.instanceID = id
	return b
}

// WithInnerError appends one inner error. Panics if inner is nil.
func (b *Builder) WithInnerError(inner ErrorInfo) *Builder {
	if inner == nil {
		panic("errors: nil inner error")
	}
	b.inner = append(b.inner, inner)
	return b
}

// WithInnerErrors appends inner errors, skipping nil entries.
func (b *Builder) WithInnerErrors(inner ...ErrorInfo) *Builder {
	for _, in := range inner {
		if in != nil {
			b.inner = append(b.inner, in)
		}
	}
	return b
}

// WithCause sets the foreign error being wrapped.
func (b *Builder) WithCause(err error) *Builder {
	b.cause = err
	return b
}

// WithMetadata merges md into the metadata collected so far.
func (b *Builder) WithMetadata(md metadata.Metadata) *Builder {
	b.metadata = b.metadata.Merge(md)
	return b
}

// WithTag adds a single metadata tag.
func (b *Builder) WithTag(key string, value any) *Builder {
	b.metadata = b.metadata.WithTag(key, value)
	return b
}

// Build returns the assembled ErrorInfo.
//
// Returns an InvalidState error if the definition or the message was never
// set.
func (b *Builder) Build() (ErrorInfo, error) {
	if b.definition == nil {
		return nil, New(InvalidState, "error definition is required")
	}
	if !b.hasMessage {
		return nil, New(InvalidState, "error message is required")
	}

	id := b.instanceID
	if id == "" {
		id = newInstanceID()
	}

	var inner []ErrorInfo
	if len(b.inner) > 0 {
		inner = append([]ErrorInfo(nil), b.inner...)
	}

	return &errorInfo{
		definition: b.definition,
		message:    b.message,
		instanceID: id,
		inner:      inner,
		metadata:   b.metadata,
		cause:      b.cause,
	}, nil
}
