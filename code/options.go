package code

import (
	"strings"

	"github.com/jmgilman/go/outcome/errors"
	"github.com/jmgilman/go/outcome/metadata"
)

// Option configures a created code.
type Option func(*settings)

type settings struct {
	severity    *errors.Severity
	description string
	metadata    metadata.Metadata
	err         error
}

// WithSeverity overrides the type's default severity.
func WithSeverity(s errors.Severity) Option {
	return func(o *settings) {
		o.severity = &s
	}
}

// WithDescription overrides the type's description.
func WithDescription(description string) Option {
	return func(o *settings) {
		o.description = description
	}
}

// WithMetadata merges md into the code's metadata.
func WithMetadata(md metadata.Metadata) Option {
	return func(o *settings) {
		o.metadata = o.metadata.Merge(md)
	}
}

// WithTag adds one metadata tag. An empty key makes creation fail.
func WithTag(key string, value any) Option {
	return func(o *settings) {
		if strings.TrimSpace(key) == "" {
			o.err = errors.New(errors.InvalidArgument, "code metadata key must not be empty")
			return
		}
		o.metadata = o.metadata.WithTag(key, value)
	}
}

func (s settings) base(t *Type) *Base {
	return &Base{
		definition:  t,
		severity:    s.severity,
		description: s.description,
		metadata:    s.metadata,
	}
}

func apply(opts []Option) settings {
	var s settings
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	return s
}
