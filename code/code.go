package code

import (
	"fmt"
	"reflect"

	"github.com/jmgilman/go/outcome/errors"
	"github.com/jmgilman/go/outcome/metadata"
)

// Code is a symbolic outcome identifier.
type Code interface {
	// Definition returns the code type.
	Definition() *Type

	// Name returns the symbolic name, which is the name of the type.
	Name() string

	// Severity returns the code's severity, defaulting to the type's.
	Severity() errors.Severity

	// Description returns the code's description, defaulting to the type's.
	Description() string

	// Metadata returns the attached metadata.
	Metadata() metadata.Metadata

	// Value returns the attached value, or nil if there is none.
	Value() any
}

// Base is a Code without a value.
type Base struct {
	definition  *Type
	severity    *errors.Severity
	description string
	metadata    metadata.Metadata
}

// New returns a Base code of type t. It panics if t is nil or an option is
// invalid.
func New(t *Type, opts ...Option) *Base {
	if t == nil {
		panic("code: nil code type")
	}
	s := apply(opts)
	if s.err != nil {
		panic(s.err)
	}
	return s.base(t)
}

// Definition returns the code type.
func (c *Base) Definition() *Type { return c.definition }

// Name returns the symbolic name.
func (c *Base) Name() string { return c.definition.Name() }

// Severity returns the code's severity.
func (c *Base) Severity() errors.Severity {
	if c.severity != nil {
		return *c.severity
	}
	return c.definition.DefaultSeverity()
}

// Description returns the code's description.
func (c *Base) Description() string {
	if c.description != "" {
		return c.description
	}
	return c.definition.Description()
}

// Metadata returns the attached metadata.
func (c *Base) Metadata() metadata.Metadata { return c.metadata }

// Value returns nil.
func (c *Base) Value() any { return nil }

// WithTag returns a copy with one metadata tag added.
func (c *Base) WithTag(key string, value any) *Base {
	cp := *c
	cp.metadata = c.metadata.WithTag(key, value)
	return &cp
}

// WithMetadata returns a copy with md merged into the metadata.
func (c *Base) WithMetadata(md metadata.Metadata) *Base {
	cp := *c
	cp.metadata = c.metadata.Merge(md)
	return &cp
}

// String returns the symbolic name.
func (c *Base) String() string { return c.Name() }

// ValueCode is a Code carrying a strongly typed value.
type ValueCode[T any] struct {
	Base
	value T
}

// NewValue returns a code of type t holding value. It panics if t is nil.
func NewValue[T any](t *Type, value T, opts ...Option) *ValueCode[T] {
	return &ValueCode[T]{Base: *New(t, opts...), value: value}
}

// Value returns the value as an any.
func (c *ValueCode[T]) Value() any { return c.value }

// Typed returns the value.
func (c *ValueCode[T]) Typed() T { return c.value }

// WithTag returns a copy with one metadata tag added.
func (c *ValueCode[T]) WithTag(key string, value any) *ValueCode[T] {
	cp := *c
	cp.metadata = c.metadata.WithTag(key, value)
	return &cp
}

// WithMetadata returns a copy with md merged into the metadata.
func (c *ValueCode[T]) WithMetadata(md metadata.Metadata) *ValueCode[T] {
	cp := *c
	cp.metadata = c.metadata.Merge(md)
	return &cp
}

// String returns the symbolic name followed by the value.
func (c *ValueCode[T]) String() string {
	return fmt.Sprintf("%s(%v)", c.Name(), c.value)
}

// Equal reports whether a and b have the same type id and deeply equal
// values. Metadata, severity and description are ignored.
func Equal(a, b Code) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Definition().ID() == b.Definition().ID() &&
		reflect.DeepEqual(a.Value(), b.Value())
}

// ValueOf returns the value of c if it holds a T.
func ValueOf[T any](c Code) (T, bool) {
	if c == nil {
		var zero T
		return zero, false
	}
	v, ok := c.Value().(T)
	return v, ok
}

// Canonical codes.
var (
	None               = New(NoneType)
	Success            = New(SuccessType)
	General            = New(GeneralType)
	Validation         = New(ValidationType)
	BadRequest         = New(BadRequestType)
	Authentication     = New(AuthenticationType)
	Authorization      = New(AuthorizationType)
	NotFound           = New(NotFoundType)
	Conflict           = New(ConflictType)
	BusinessRule       = New(BusinessRuleType)
	NotImplemented     = New(NotImplementedType)
	InternalError      = New(InternalErrorType)
	ExternalDependency = New(ExternalDependencyType)
	Timeout            = New(TimeoutType)
	ServiceUnavailable = New(ServiceUnavailableType)
	SecurityViolation  = New(SecurityViolationType)
)
