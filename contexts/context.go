package contexts

import (
	"fmt"
	"iter"

	"github.com/google/uuid"

	"github.com/jmgilman/go/outcome/metadata"
	"github.com/jmgilman/go/outcome/typedef"
)

// Type describes a kind of context.
type Type struct {
	*typedef.Definition
}

// NewType creates a context Type. It panics if def is nil.
func NewType(def *typedef.Definition) *Type {
	if def == nil {
		panic("contexts: nil type definition")
	}
	return &Type{Definition: def}
}

// Context is an immutable execution scope snapshot.
type Context struct {
	definition    *Type
	correlationID string
	parent        *Context
	metadata      metadata.Metadata
	depth         int
}

// Option configures CreateRoot and CreateChild.
type Option func(*options)

type options struct {
	correlationID string
	metadata      metadata.Metadata
}

// WithCorrelationID sets the correlation id. An empty id is ignored.
func WithCorrelationID(id string) Option {
	return func(o *options) {
		o.correlationID = id
	}
}

// WithMetadata merges md into the context's metadata.
func WithMetadata(md metadata.Metadata) Option {
	return func(o *options) {
		o.metadata = o.metadata.Merge(md)
	}
}

// CreateRoot returns a parent-less context of type t. Without
// WithCorrelationID a new random correlation id is generated.
// It panics if t is nil.
func CreateRoot(t *Type, opts ...Option) *Context {
	return create(t, nil, opts)
}

// CreateChild returns a context of type t whose parent is parent. The
// correlation id is inherited unless WithCorrelationID overrides it.
// It panics if parent or t is nil.
func CreateChild(parent *Context, t *Type, opts ...Option) *Context {
	if parent == nil {
		panic("contexts: nil parent")
	}
	return create(t, parent, opts)
}

func create(t *Type, parent *Context, opts []Option) *Context {
	if t == nil {
		panic("contexts: nil context type")
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return newContext(t, parent, o.correlationID, o.metadata)
}

func newContext(t *Type, parent *Context, correlationID string, md metadata.Metadata) *Context {
	c := &Context{
		definition:    t,
		correlationID: correlationID,
		parent:        parent,
		metadata:      md,
	}
	if parent != nil {
		c.depth = parent.depth + 1
		if c.correlationID == "" {
			c.correlationID = parent.correlationID
		}
	}
	if c.correlationID == "" {
		c.correlationID = uuid.NewString()
	}
	return c
}

// Definition returns the context type.
func (c *Context) Definition() *Type { return c.definition }

// CorrelationID returns the correlation id.
func (c *Context) CorrelationID() string { return c.correlationID }

// Parent returns the parent context, or nil for a root.
func (c *Context) Parent() *Context { return c.parent }

// Metadata returns the context's own metadata.
func (c *Context) Metadata() metadata.Metadata { return c.metadata }

// IsRoot reports whether c has no parent.
func (c *Context) IsRoot() bool { return c.parent == nil }

// Depth returns the number of ancestors; a root has depth 0.
func (c *Context) Depth() int { return c.depth }

// Root returns the top of the parent chain.
func (c *Context) Root() *Context {
	r := c
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// Ancestors yields the parent, its parent and so on up to the root.
func (c *Context) Ancestors() iter.Seq[*Context] {
	return func(yield func(*Context) bool) {
		for p := c.parent; p != nil; p = p.parent {
			if !yield(p) {
				return
			}
		}
	}
}

// Lookup returns the value for key from c's metadata, or from the nearest
// ancestor that has it.
func (c *Context) Lookup(key string) (any, bool) {
	for cur := c; cur != nil; cur = cur.parent {
		if v, ok := cur.metadata.Get(key); ok {
			return v, true
		}
	}
	return nil, false
}

// String returns "name[correlation id]".
func (c *Context) String() string {
	return fmt.Sprintf("%s[%s]", c.definition.Name(), c.correlationID)
}
