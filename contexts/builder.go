package contexts

import (
	"strings"

	"github.com/jmgilman/go/outcome/errors"
	"github.com/jmgilman/go/outcome/metadata"
)

// Builder assembles a Context field by field. It is not safe for
// concurrent use.
type Builder struct {
	definition    *Type
	correlationID string
	parent        *Context
	metadata      metadata.Metadata
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// WithDefinition sets the context type. Panics if t is nil.
func (b *Builder) WithDefinition(t *Type) *Builder {
	if t == nil {
		panic("contexts: nil context type")
	}
	b.definition = t
	return b
}

// WithCorrelationID sets the correlation id. Panics if id is empty.
func (b *Builder) WithCorrelationID(id string) *Builder {
	if strings.TrimSpace(id) == "" {
		panic("contexts: empty correlation id")
	}
	b.correlationID = id
	return b
}

// WithParent sets the parent context. Panics if parent is nil.
func (b *Builder) WithParent(parent *Context) *Builder {
	if parent == nil {
		panic("contexts: nil parent")
	}
	b.parent = parent
	return b
}

// WithMetadata merges md into the metadata.
func (b *Builder) WithMetadata(md metadata.Metadata) *Builder {
	b.metadata = b.metadata.Merge(md)
	return b
}

// WithTag adds one metadata tag. Panics if key is empty.
func (b *Builder) WithTag(key string, value any) *Builder {
	b.metadata = b.metadata.WithTag(key, value)
	return b
}

// Build returns the Context, or an InvalidState error if no definition was
// set. The correlation id is the explicit one, else the parent's, else a new
// random id.
func (b *Builder) Build() (*Context, error) {
	if b.definition == nil {
		return nil, errors.New(errors.InvalidState, "context definition is required")
	}
	return newContext(b.definition, b.parent, b.correlationID, b.metadata), nil
}
