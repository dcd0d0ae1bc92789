package code

import (
	"github.com/jmgilman/go/outcome/errors"
	"github.com/jmgilman/go/outcome/metadata"
)

// Builder assembles a ValueCode field by field. It is not safe for
// concurrent use.
type Builder[T any] struct {
	definition *Type
	value      T
	opts       []Option
	metadata   metadata.Metadata
}

// NewBuilder returns an empty Builder.
func NewBuilder[T any]() *Builder[T] {
	return &Builder[T]{}
}

// WithDefinition sets the code type. Panics if t is nil.
func (b *Builder[T]) WithDefinition(t *Type) *Builder[T] {
	if t == nil {
		panic("code: nil code type")
	}
	b.definition = t
	return b
}

// WithValue sets the value.
func (b *Builder[T]) WithValue(value T) *Builder[T] {
	b.value = value
	return b
}

// WithSeverity overrides the type's default severity.
func (b *Builder[T]) WithSeverity(s errors.Severity) *Builder[T] {
	b.opts = append(b.opts, WithSeverity(s))
	return b
}

// WithDescription overrides the type's description.
func (b *Builder[T]) WithDescription(description string) *Builder[T] {
	b.opts = append(b.opts, WithDescription(description))
	return b
}

// WithTag adds or replaces one metadata tag. Panics if key is empty.
func (b *Builder[T]) WithTag(key string, value any) *Builder[T] {
	b.metadata = b.metadata.WithTag(key, value)
	return b
}

// WithMetadata replaces the metadata collected so far.
func (b *Builder[T]) WithMetadata(md metadata.Metadata) *Builder[T] {
	b.metadata = md
	return b
}

// Build returns the assembled code, or an InvalidState error if no
// definition was set.
func (b *Builder[T]) Build() (*ValueCode[T], error) {
	if b.definition == nil {
		return nil, errors.New(errors.InvalidState, "code definition is required")
	}
	opts := append(append([]Option(nil), b.opts...), WithMetadata(b.metadata))
	base, err := create(b.definition, opts)
	if err != nil {
		return nil, err
	}
	return &ValueCode[T]{Base: *base, value: b.value}, nil
}
