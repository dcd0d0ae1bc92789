package envelope

import (
	"io"

	"github.com/jmgilman/go/outcome/code"
	"github.com/jmgilman/go/outcome/errors"
	"github.com/jmgilman/go/outcome/metadata"
)

// Builder accumulates the parts of an Envelope.
//
// The builder does not check that its code agrees with its errors; the built
// Envelope derives its state from the errors. A Builder is not safe for
// concurrent use and may be reused: every Build returns an independent
// Envelope.
type Builder[V any] struct {
	code     code.Code
	messages []string
	errs     []errors.ErrorInfo
	value    V
	headers  Headers
	stream   io.Reader
	metadata metadata.Metadata
}

// NewBuilder returns an empty Builder.
func NewBuilder[V any]() *Builder[V] {
	return &Builder[V]{}
}

// WithCode sets the code. Panics if c is nil.
func (b *Builder[V]) WithCode(c code.Code) *Builder[V] {
	if c == nil {
		panic("envelope: nil code")
	}
	b.code = c
	return b
}

// WithErrors appends errors, skipping nil entries.
func (b *Builder[V]) WithErrors(errs ...errors.ErrorInfo) *Builder[V] {
	for _, err := range errs {
		if err != nil {
			b.errs = append(b.errs, err)
		}
	}
	return b
}

// AddError appends one error. Panics if err is nil.
func (b *Builder[V]) AddError(err errors.ErrorInfo) *Builder[V] {
	if err == nil {
		panic("envelope: nil error")
	}
	b.errs = append(b.errs, err)
	return b
}

// WithValue sets the value.
func (b *Builder[V]) WithValue(value V) *Builder[V] {
	b.value = value
	return b
}

// WithMessages appends informational messages.
func (b *Builder[V]) WithMessages(messages ...string) *Builder[V] {
	b.messages = append(b.messages, messages...)
	return b
}

// WithHeaders adds every value of h.
func (b *Builder[V]) WithHeaders(h Headers) *Builder[V] {
	for k, v := range h {
		b.headers = b.headers.add(k, v...)
	}
	return b
}

// AddHeader adds values under key. A call without values is a no-op.
func (b *Builder[V]) AddHeader(key string, values ...string) *Builder[V] {
	b.headers = b.headers.add(key, values...)
	return b
}

// WithStream sets the stream payload.
func (b *Builder[V]) WithStream(r io.Reader) *Builder[V] {
	b.stream = r
	return b
}

// WithMetadata merges md into the metadata.
func (b *Builder[V]) WithMetadata(md metadata.Metadata) *Builder[V] {
	b.metadata = b.metadata.Merge(md)
	return b
}

// AddMetadata adds one metadata tag. Panics if key is empty.
func (b *Builder[V]) AddMetadata(key string, value any) *Builder[V] {
	b.metadata = b.metadata.WithTag(key, value)
	return b
}

// Build returns the Envelope. The code defaults to code.None.
func (b *Builder[V]) Build() Envelope[V] {
	c := b.code
	if c == nil {
		c = code.None
	}
	return Envelope[V]{
		code:     c,
		messages: cloneOrNil(b.messages),
		errs:     cloneOrNil(b.errs),
		value:    b.value,
		headers:  b.headers.Clone(),
		stream:   b.stream,
		metadata: b.metadata,
	}
}
